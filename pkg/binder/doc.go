// Package binder moves form data between HTTP requests, field-value mappings
// and typed structs.
//
// FormValues extracts the submitted fields of a urlencoded, multipart or flat
// JSON request body. Decode binds a map[string]string to a struct using `form`
// tags:
//
//	type SignUp struct {
//	    Name     string `form:"name"`
//	    Email    string `form:"email"`
//	    Age      *int   `form:"age"`      // optional
//	    Terms    bool   `form:"terms"`    // "on" from a checkbox
//	    Internal string `form:"-"`        // skipped
//	}
//
//	var dst SignUp
//	if err := binder.Decode(values, &dst); err != nil {
//	    var fe *binder.FieldError
//	    if errors.As(err, &fe) {
//	        // fe.Field names the offending form field
//	    }
//	}
//
// CheckType validates a target type up front so misuse is caught at setup
// instead of on the first submission.
package binder
