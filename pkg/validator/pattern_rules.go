package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates value against a precompiled pattern.
// Callers keep the regexp at package level so it is compiled once.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeFormat,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}

