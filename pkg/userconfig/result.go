package userconfig

import (
	"encoding/json"

	"github.com/dmitrymomot/userconfig/pkg/validator"
)

// Result holds either a value or the error explaining why there is none.
// Check OK before reading Value.
type Result[T any] struct {
	ok    bool
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Fail wraps a failure. A nil err is replaced with validator.ErrValidationFailed
// so a failed Result always carries an error.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = validator.ErrValidationFailed
	}
	return Result[T]{err: err}
}

func resultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the wrapped value, or the zero value for a failed Result.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil for a successful Result.
func (r Result[T]) Err() error {
	return r.err
}

// Message returns the human readable failure message, empty on success.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Unwrap converts the Result into a conventional value/error pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

type okResult[T any] struct {
	OK    bool `json:"ok"`
	Value T    `json:"value"`
}

type failResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// MarshalJSON renders {"ok":true,"value":...} or {"ok":false,"error":"..."}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(okResult[T]{OK: true, Value: r.value})
	}
	return json.Marshal(failResult{OK: false, Error: r.Message()})
}
