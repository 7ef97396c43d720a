package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a validation failure independently of its message text.
type Code string

const (
	CodeRequired Code = "required"
	CodeType     Code = "type"
	CodeFormat   Code = "format"
	CodeOneOf    Code = "one_of"
)

// ValidationError represents a single failed rule for one field.
type ValidationError struct {
	Field   string
	Code    Code
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap maps the failure code to the matching package sentinel, so
// errors.Is(verr, ErrFieldRequired) works on individual failures.
func (e ValidationError) Unwrap() error {
	switch e.Code {
	case CodeRequired:
		return ErrFieldRequired
	case CodeType:
		return ErrInvalidType
	case CodeFormat:
		return ErrInvalidFormat
	case CodeOneOf:
		return ErrInvalidValue
	default:
		return ErrValidationFailed
	}
}

// ValidationErrors represents an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any collected failure matches target.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages returns every message in order, one per failure.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

// Codes returns every failure code in order.
func (ve ValidationErrors) Codes() []Code {
	codes := make([]Code, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// failure resolves the reported error lazily; set by Chain.
	failure func() ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of the default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

func (r Rule) validationError() ValidationError {
	if r.failure != nil {
		return r.failure()
	}
	return r.Error
}

// Chain combines rules for a single field into one rule that stops at the
// first failing rule and reports only that failure. Later rules in the chain
// may therefore assume earlier ones passed.
func Chain(rules ...Rule) Rule {
	var failed ValidationError
	return Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					failed = rule.validationError()
					return false
				}
			}
			return true
		},
		failure: func() ValidationError {
			return failed
		},
	}
}

// Collect executes every rule and returns the failures in rule order.
// It returns nil when all rules pass.
func Collect(rules ...Rule) ValidationErrors {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.validationError())
		}
	}

	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Collect(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
