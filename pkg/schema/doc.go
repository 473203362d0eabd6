// Package schema loads form definitions from YAML and builds form.Form
// values from them.
//
//	name: signup
//	action: /signup
//	inputs:
//	  - {name: name, type: text, label: Name, required: true}
//	  - {name: email, type: email, label: Email, required: true}
//	  - {name: password, type: password, required: true, minlength: 8}
//	defaults:
//	  email: kareemSouhsa@dev.com
//	errors:
//	  email: Invalid Email Field
//
// A Definition is immutable after Parse; Build returns a new form on every
// call.
package schema
