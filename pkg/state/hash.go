package state

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// jsonDocument is implemented by values that carry their own serialized form,
// such as *schema.Document.
type jsonDocument interface {
	JSON() ([]byte, error)
}

// Hash returns the lowercase hex SHA-256 of v.
//
// Strings and byte slices are hashed unchanged. json.RawMessage is compacted
// first. Any other value is hashed through its JSON encoding, so Hash(x)
// equals Hash(string(jsonOf(x))).
func Hash(v any) (string, error) {
	var data []byte
	switch t := v.(type) {
	case string:
		return HashString(t), nil
	case []byte:
		data = t
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Compact(&buf, t); err != nil {
			return "", fmt.Errorf("failed to compact json: %w", err)
		}
		data = buf.Bytes()
	case jsonDocument:
		b, err := t.JSON()
		if err != nil {
			return "", fmt.Errorf("failed to serialize document: %w", err)
		}
		data = b
	default:
		b, err := encodeJSON(v)
		if err != nil {
			return "", fmt.Errorf("failed to serialize value: %w", err)
		}
		data = b
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HashString returns the lowercase hex SHA-256 of s.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// encodeJSON encodes v compactly without HTML escaping or a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
