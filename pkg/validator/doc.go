// Package validator provides the rule engine behind form constraint
// validation: small Rule values that pair a boolean Check function with the
// error reported when it fails.
//
// Every constructor mirrors one constraint a browser enforces on an input
// element (required, minlength, maxlength, pattern, type=email, type=url,
// type=number with min/max) and carries the message a browser would show for
// it. Each error has a Code naming the failed constraint. Apply evaluates
// rules in order and aggregates failures into ValidationErrors.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.MinLen("password", password, 8),
//	)
//	for _, verr := range validator.ExtractValidationErrors(err) {
//	    fmt.Println(verr.Field, verr.Code, verr.Message)
//	}
//
// Rules hold no shared state, so they are safe to build and evaluate from
// multiple goroutines.
package validator
