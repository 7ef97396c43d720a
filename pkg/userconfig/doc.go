// Package userconfig decodes untyped JSON or YAML text into validated User
// records.
//
// Parsing happens in two steps. Decode (or DecodeYAML) turns text into a
// generic value without narrowing its type; ValidateUser then checks the
// value field by field and either builds a User or reports every violated
// rule. ValidateUsers applies the same check to each element of an array
// and stops at the first invalid element.
//
// # Usage
//
//	res := userconfig.ParseUserConfig(`{"id":"u1","email":"a@b.com","role":"intern"}`)
//	if !res.OK() {
//	    log.Println(res.Message())
//	    return
//	}
//	user := res.Value()
//
// The same operations are available as conventional value/error pairs:
//
//	users, err := userconfig.ParseUsers(text)
//	var uerr *userconfig.Error
//	if errors.As(err, &uerr) {
//	    if elem := uerr.Element(); elem != nil {
//	        fmt.Println(uerr.Index, elem.Violations.Fields())
//	    }
//	}
//
// # Failure messages
//
// Result.Message and Error.Error render a fixed set of messages (the Msg*
// constants). Structural failures produce a single message: "Invalid JSON"
// for malformed text or a value that is not an object, "Invalid data type
// (expected array)" when a batch receives an object, and "Invalid User
// shape" when any batch element is rejected. Field failures of a single
// user are concatenated without a separator, exactly as the constants are
// written. The ordered, structured list is Error.Violations.
//
// # Policies
//
// PolicyStrict (the default) reports at most one violation per field.
// PolicyCompat reproduces the cascading message sequences of earlier
// releases; see the Policy constants.
//
// All functions are pure and safe for concurrent use.
package userconfig
