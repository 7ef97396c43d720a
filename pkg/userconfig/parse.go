package userconfig

// ParseUser decodes JSON text and validates it as a single user.
// Malformed text is reported as an *Error with Kind ErrMalformedInput.
func ParseUser(text string, opts ...Option) (User, error) {
	o := newOptions(opts)
	v, err := Decode(text, opts...)
	if err != nil {
		return User{}, &Error{Kind: ErrMalformedInput, Index: -1, Err: err}
	}
	return validateUser(v, o)
}

// ParseUsers decodes JSON text and validates it as an array of users.
func ParseUsers(text string, opts ...Option) ([]User, error) {
	o := newOptions(opts)
	v, err := Decode(text, opts...)
	if err != nil {
		return nil, &Error{Kind: ErrMalformedInput, Index: -1, Err: err}
	}
	return validateUsers(v, o)
}

// ParseUserYAML is ParseUser for YAML documents.
func ParseUserYAML(text string, opts ...Option) (User, error) {
	o := newOptions(opts)
	v, err := DecodeYAML(text, opts...)
	if err != nil {
		return User{}, &Error{Kind: ErrMalformedInput, Index: -1, Err: err}
	}
	return validateUser(v, o)
}

// ParseUsersYAML is ParseUsers for YAML documents.
func ParseUsersYAML(text string, opts ...Option) ([]User, error) {
	o := newOptions(opts)
	v, err := DecodeYAML(text, opts...)
	if err != nil {
		return nil, &Error{Kind: ErrMalformedInput, Index: -1, Err: err}
	}
	return validateUsers(v, o)
}

// ParseUserConfig is ParseUser returning a Result. Result.Message() yields
// "Invalid JSON" for malformed or non-object input, otherwise the
// concatenated field messages.
func ParseUserConfig(text string, opts ...Option) Result[User] {
	return resultOf(ParseUser(text, opts...))
}

// ParseUsersConfig is ParseUsers returning a Result. A rejected element is
// reported only as "Invalid User shape"; its field violations stay
// reachable through Result.Err().
func ParseUsersConfig(text string, opts ...Option) Result[[]User] {
	return resultOf(ParseUsers(text, opts...))
}
