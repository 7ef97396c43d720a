package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that value equals one of the options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeOneOf,
			Message: fmt.Sprintf("must be one of: %v", options),
		},
	}
}

// StringOneOf validates that a decoded value is a string equal to one of the
// options. Non-string values fail without comparison, so values decoded as
// maps or slices never reach an equality check.
func StringOneOf(field string, value any, options []string) Rule {
	return Rule{
		Check: func() bool {
			s, ok := value.(string)
			return ok && OneOf(field, s, options).Check()
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeOneOf,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
		},
	}
}
