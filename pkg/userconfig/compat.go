package userconfig

import (
	"encoding/json"
	"strconv"
	"strings"
)

// looseString renders a decoded value the way earlier releases did before
// testing it against the email pattern. Absent keys render as "undefined",
// arrays join their elements with commas and objects collapse to a fixed
// placeholder, so only strings and single-element arrays of strings can
// ever match.
func looseString(v any, present bool) string {
	if !present {
		return "undefined"
	}
	return looseElem(v, false)
}

func looseElem(v any, nested bool) string {
	switch t := v.(type) {
	case nil:
		if nested {
			return ""
		}
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []any:
		parts := make([]string, len(t))
		for i, el := range t {
			parts[i] = looseElem(el, true)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return ""
	}
}
