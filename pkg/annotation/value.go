package annotation

import (
	"encoding/json"
	"strings"
)

// ParseValue converts the literal text of a single argument into a typed value.
//
// Text that is a complete JSON literal decodes to string, float64, bool, nil,
// []any or map[string]any. Anything else (bare identifiers, SQL fragments,
// single-quoted text) is returned as the trimmed text itself.
func ParseValue(text string) any {
	trimmed := strings.TrimSpace(text)
	if v, ok := decodeLiteral(trimmed); ok {
		return v
	}
	return trimmed
}

// decodeLiteral reports whether text is exactly one JSON literal.
func decodeLiteral(text string) (any, bool) {
	if text == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}
