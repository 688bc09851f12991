package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabinadams/schematic/pkg/schema"
)

const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestHash(t *testing.T) {
	t.Run("Empty String", func(t *testing.T) {
		h, err := Hash("")
		require.NoError(t, err)
		assert.Equal(t, emptySHA256, h)
		assert.Equal(t, emptySHA256, HashString(""))
		assert.Len(t, h, 64)
	})

	t.Run("Value Equals Its JSON", func(t *testing.T) {
		v := map[string]any{
			"datamodel": map[string]any{
				"models": []any{map[string]any{"name": "User", "documentation": "a < b && c"}},
			},
		}
		data, err := json.Marshal(v)
		require.NoError(t, err)

		fromValue, err := Hash(v)
		require.NoError(t, err)
		fromBytes, err := Hash(data)
		require.NoError(t, err)

		// json.Marshal escapes HTML, Hash must not.
		assert.NotEqual(t, fromValue, fromBytes)

		compact, err := encodeJSON(v)
		require.NoError(t, err)
		fromString, err := Hash(string(compact))
		require.NoError(t, err)
		assert.Equal(t, fromValue, fromString)
	})

	t.Run("Raw Message Is Compacted", func(t *testing.T) {
		a, err := Hash(json.RawMessage(`{ "a" : [1, 2] }`))
		require.NoError(t, err)
		b, err := Hash(`{"a":[1,2]}`)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Document Hashes Its Source", func(t *testing.T) {
		src := `{
  "datamodel": { "models": [ { "name": "User" } ], "enums": [] }
}`
		doc, err := schema.Parse([]byte(src), ".json")
		require.NoError(t, err)

		a, err := Hash(doc)
		require.NoError(t, err)
		b, err := Hash(json.RawMessage(src))
		require.NoError(t, err)
		assert.Equal(t, b, a)
	})

	t.Run("Lowercase Hex", func(t *testing.T) {
		h := HashString("schematic")
		assert.Regexp(t, `^[0-9a-f]{64}$`, h)
	})
}
