package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Source records where input was read from ("-" for stdin).
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// InputFormat records the input document format.
func InputFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// Policy records the validation policy in effect.
func Policy(policy string) slog.Attr {
	return slog.String("policy", policy)
}

// Index records the position of an element inside a batch.
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Count records how many items were processed.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Fields records the names of the fields that failed validation.
// If fields is empty, it returns an empty Attr.
func Fields(fields []string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", fields)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Role records a role name under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
