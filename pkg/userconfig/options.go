package userconfig

import "fmt"

// Policy selects how the rules of a single field interact.
type Policy string

const (
	// PolicyStrict stops checking a field at its first failed rule, so each
	// field contributes at most one violation.
	PolicyStrict Policy = "strict"

	// PolicyCompat runs every rule of every field independently, reproducing
	// the message sequences produced by earlier releases: a missing field is
	// also reported with a wrong type, the email format is checked against
	// non-string values, and arrays are inspected as objects without keys.
	PolicyCompat Policy = "compat"
)

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyStrict, PolicyCompat:
		return p, nil
	case "":
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown validation policy %q: must be %q or %q", s, PolicyStrict, PolicyCompat)
	}
}

// Option configures decoding and validation.
type Option func(*options)

type options struct {
	policy       Policy
	maxInputSize int
}

func newOptions(opts []Option) options {
	o := options{policy: PolicyStrict}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPolicy selects the field rule policy.
// Panics for unknown policies: a misconfigured validator should fail at
// startup rather than silently validate differently.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		switch p {
		case PolicyStrict, PolicyCompat:
			o.policy = p
		default:
			panic(fmt.Errorf("invalid validation policy %q: must be %q or %q", p, PolicyStrict, PolicyCompat))
		}
	}
}

// WithMaxInputSize rejects text longer than n bytes before decoding.
// Input size is unbounded by default; n <= 0 removes the bound.
func WithMaxInputSize(n int) Option {
	return func(o *options) {
		o.maxInputSize = max(n, 0)
	}
}
