package userconfig

import (
	"regexp"

	"github.com/dmitrymomot/userconfig/pkg/validator"
)

// emailPattern accepts word, hyphen and dot characters, an @, one or more
// "label." groups and a final label of at least two characters.
var emailPattern = regexp.MustCompile(`^[\w\-\.]+@([\w-]+\.)+[\w-]{2,}$`)

// ValidEmail reports whether s matches the accepted email format.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateUser checks a decoded value and returns the User it describes or
// the complete list of violated field rules.
func ValidateUser(v any, opts ...Option) Result[User] {
	return resultOf(validateUser(v, newOptions(opts)))
}

// ValidateUsers checks a decoded array element by element and stops at the
// first element that is not a valid user.
func ValidateUsers(v any, opts ...Option) Result[[]User] {
	return resultOf(validateUsers(v, newOptions(opts)))
}

func validateUser(v any, o options) (User, error) {
	obj, ok := asObject(v, o.policy)
	if !ok {
		return User{}, &Error{Kind: ErrNotObject, Index: -1}
	}

	if err := validator.Apply(userRules(obj, o.policy)...); err != nil {
		return User{}, &Error{Kind: ErrInvalidUser, Index: -1, Violations: validator.ExtractValidationErrors(err)}
	}

	// every rule passed, so the three fields are strings
	return User{
		ID:    obj["id"].(string),
		Email: obj["email"].(string),
		Role:  Role(obj["role"].(string)),
	}, nil
}

func validateUsers(v any, o options) ([]User, error) {
	if !isContainer(v) {
		return nil, &Error{Kind: ErrNotObject, Index: -1}
	}

	items, ok := v.([]any)
	if !ok {
		return nil, &Error{Kind: ErrNotArray, Index: -1}
	}

	users := make([]User, 0, len(items))
	for i, item := range items {
		u, err := validateUser(item, o)
		if err != nil {
			return nil, &Error{Kind: ErrInvalidUserShape, Index: i, Err: err}
		}
		users = append(users, u)
	}

	return users, nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// asObject narrows v to an object. Under PolicyCompat an array is accepted
// as an object without keys.
func asObject(v any, policy Policy) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		if policy == PolicyCompat {
			return map[string]any{}, true
		}
	}
	return nil, false
}

func userRules(obj map[string]any, policy Policy) []validator.Rule {
	id := obj["id"]
	email, emailPresent := obj["email"]
	role := obj["role"]

	if policy == PolicyCompat {
		return []validator.Rule{
			validator.RequiredKey("id", obj).WithMessage(MsgMissingID),
			validator.StringValue("id", id).WithMessage(MsgInvalidIDType),
			validator.RequiredKey("email", obj).WithMessage(MsgMissingEmail),
			validator.StringValue("email", email).WithMessage(MsgInvalidEmailType),
			validator.MatchesPattern("email", looseString(email, emailPresent), emailPattern, "email").WithMessage(MsgInvalidEmailFormat),
			validator.RequiredKey("role", obj).WithMessage(MsgMissingRole),
			validator.StringOneOf("role", role, roleNames()).WithMessage(MsgInvalidRole),
		}
	}

	// the pattern rule only runs after StringValue passed
	emailStr, _ := email.(string)

	return []validator.Rule{
		validator.Chain(
			validator.RequiredKey("id", obj).WithMessage(MsgMissingID),
			validator.StringValue("id", id).WithMessage(MsgInvalidIDType),
		),
		validator.Chain(
			validator.RequiredKey("email", obj).WithMessage(MsgMissingEmail),
			validator.StringValue("email", email).WithMessage(MsgInvalidEmailType),
			validator.MatchesPattern("email", emailStr, emailPattern, "email").WithMessage(MsgInvalidEmailFormat),
		),
		validator.Chain(
			validator.RequiredKey("role", obj).WithMessage(MsgMissingRole),
			validator.StringOneOf("role", role, roleNames()).WithMessage(MsgInvalidRole),
		),
	}
}
