package validator

// StringValue validates that a decoded value holds a string.
func StringValue(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := value.(string)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeType,
			Message: "must be a string",
		},
	}
}
