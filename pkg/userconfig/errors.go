package userconfig

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/userconfig/pkg/validator"
)

// Failure messages. These literals are part of the public contract and are
// reproduced byte for byte, including the uneven trailing spaces.
const (
	MsgInvalidJSON        = "Invalid JSON"
	MsgNotArray           = "Invalid data type (expected array)"
	MsgInvalidUserShape   = "Invalid User shape"
	MsgMissingID          = "Missing field: id!"
	MsgInvalidIDType      = "Invalid id type (expected string)!"
	MsgMissingEmail       = "Missing field: email! "
	MsgInvalidEmailType   = "Invalid email type (expected string)!"
	MsgInvalidEmailFormat = "Invalid email format!"
	MsgMissingRole        = "Missing field: role!"
	MsgInvalidRole        = `Invalid role type (expected "intern" | "mentor" | "admin")!`
)

var (
	// ErrMalformedInput is returned when the text is not a single well-formed document.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInputTooLarge is returned when the text exceeds the configured maximum size.
	ErrInputTooLarge = errors.New("input exceeds maximum size")

	// ErrNotObject is returned when the decoded value is not a key/value object.
	ErrNotObject = errors.New("value is not an object")

	// ErrNotArray is returned by the batch operations when the decoded value is an object instead of an array.
	ErrNotArray = errors.New("value is not an array")

	// ErrInvalidUser is returned when an object fails one or more field rules.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidRole is returned by ParseRole for names outside the declared roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidUserShape is returned by the batch operations when an element is not a valid user.
	ErrInvalidUserShape = errors.New("invalid user shape")
)

// Error describes why input could not be turned into users.
//
// Error() renders the fixed failure message. Kind is one of the package
// sentinels; Violations lists the failed field rules in order for
// ErrInvalidUser; Index is the position of the offending element for
// ErrInvalidUserShape and -1 otherwise; Err is the underlying cause (decode
// error, or the element's *Error for batch failures).
type Error struct {
	Kind       error
	Index      int
	Violations validator.ValidationErrors
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidUser:
		return strings.Join(e.Violations.Messages(), "")
	case ErrNotArray:
		return MsgNotArray
	case ErrInvalidUserShape:
		return MsgInvalidUserShape
	default:
		return MsgInvalidJSON
	}
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if len(e.Violations) > 0 {
		errs = append(errs, e.Violations)
	}
	return errs
}

// Element returns the failure of the rejected element for batch errors, nil otherwise.
func (e *Error) Element() *Error {
	var elem *Error
	if e.Kind == ErrInvalidUserShape && errors.As(e.Err, &elem) {
		return elem
	}
	return nil
}
