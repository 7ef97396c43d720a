package userconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses text as exactly one JSON value and returns it without any
// type narrowing: map[string]any, []any, string, json.Number, bool or nil.
// Numbers keep their literal text, so values outside the float64 range are
// still valid JSON.
// Every failure wraps ErrMalformedInput.
func Decode(text string, opts ...Option) (any, error) {
	o := newOptions(opts)
	if err := checkSize(text, o); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	// Ensure entire input was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedInput)
	}

	return v, nil
}

// DecodeYAML parses text as exactly one YAML document and returns the same
// generic shapes as Decode. Mapping keys are converted to strings.
func DecodeYAML(text string, opts ...Option) (any, error) {
	o := newOptions(opts)
	if err := checkSize(text, o); err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(strings.NewReader(text))

	var v any
	if err := decoder.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after YAML document", ErrMalformedInput)
	}

	return normalizeYAML(v), nil
}

func checkSize(text string, o options) error {
	if o.maxInputSize > 0 && len(text) > o.maxInputSize {
		return errors.Join(ErrMalformedInput, fmt.Errorf("%w (max %d bytes)", ErrInputTooLarge, o.maxInputSize))
	}
	return nil
}

// normalizeYAML rewrites map[any]any produced for non-string keys into
// map[string]any so the validator sees one object representation.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}
