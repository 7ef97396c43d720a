package validator

// RequiredKey validates that key is present in a decoded object.
// A present key holding null still counts as present.
func RequiredKey(field string, data map[string]any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := data[field]
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeRequired,
			Message: "field is required",
		},
	}
}
