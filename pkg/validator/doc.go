// Package validator provides small composable validation rules for values
// decoded from untyped input such as JSON or YAML documents.
//
// A Rule pairs a boolean Check function with the ValidationError reported
// when the check fails. Rules are evaluated with Apply (returns an error) or
// Collect (returns the raw ValidationErrors slice); both run every rule and
// keep the failures in rule order, so a caller sees every problem at once.
//
// # Architecture
//
// Each source file groups a family of rules:
//
//   - key_rules.go     – presence of keys in decoded objects
//   - type_rules.go    – dynamic type checks on decoded values
//   - pattern_rules.go – regular expression checks
//   - choice_rules.go  – enumerations
//
// Every exported constructor simply returns a Rule value; the package keeps
// no global state and is safe for concurrent use.
//
// Rules for a single field are usually combined with Chain, which stops at
// the first failing rule so that, for example, a format check never runs
// against a value that already failed its type check.
//
// # Usage
//
//	errs := validator.Collect(
//	    validator.Chain(
//	        validator.RequiredKey("email", obj),
//	        validator.StringValue("email", obj["email"]),
//	    ),
//	    validator.StringOneOf("role", obj["role"], []string{"intern", "admin"}),
//	)
//	for _, e := range errs {
//	    fmt.Println(e.Field, e.Code, e.Message)
//	}
//
// Default messages can be replaced per rule with WithMessage, which lets a
// caller keep an exact, externally visible message catalog.
//
// # Error Handling
//
// ValidationErrors implements error and Is. Each ValidationError unwraps to
// one of the sentinel errors in errors.go according to its Code, so
//
//	errors.Is(err, validator.ErrFieldRequired)
//
// reports whether any field was missing. ExtractValidationErrors recovers
// the full slice from a wrapped error.
package validator
