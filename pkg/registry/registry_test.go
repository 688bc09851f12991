package registry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabinadams/schematic/pkg/core"
)

func ptr[T any](v T) *T { return &v }

func TestLookup(t *testing.T) {
	_, ok := Lookup("index")
	assert.True(t, ok)

	_, ok = Lookup("Index")
	assert.False(t, ok, "kinds are case-sensitive")

	_, ok = Lookup("partialIndex")
	assert.False(t, ok)

	assert.Equal(t, []string{"index"}, Kinds())
}

func TestValidate_Index(t *testing.T) {
	t.Run("Minimal", func(t *testing.T) {
		rec, err := Validate(core.RawAnnotation{
			Kind: "index",
			Args: core.Arguments{"fields": []any{"authorId"}},
		})
		require.NoError(t, err)

		idx, ok := rec.(core.IndexRecord)
		require.True(t, ok)
		assert.Equal(t, "index", idx.Kind())
		assert.Equal(t, []string{"authorId"}, idx.Fields)
		assert.Nil(t, idx.Name)
		assert.Nil(t, idx.Type)
		assert.Nil(t, idx.Where)
	})

	t.Run("All Fields", func(t *testing.T) {
		rec, err := Validate(core.RawAnnotation{
			Kind: "index",
			Args: core.Arguments{
				"fields": []any{"email", "tenantId"},
				"name":   "users_active_email",
				"type":   "unique",
				"where":  "active = true",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, core.IndexRecord{
			Name:   ptr("users_active_email"),
			Fields: []string{"email", "tenantId"},
			Type:   ptr(core.IndexTypeUnique),
			Where:  ptr("active = true"),
		}, rec)
	})

	t.Run("Explicit Empty Strings Are Kept", func(t *testing.T) {
		rec, err := Validate(core.RawAnnotation{
			Kind: "index",
			Args: core.Arguments{"fields": []any{"a"}, "name": "", "where": ""},
		})
		require.NoError(t, err)

		idx := rec.(core.IndexRecord)
		require.NotNil(t, idx.Name)
		require.NotNil(t, idx.Where)
		assert.Equal(t, "", *idx.Name)
		assert.Equal(t, "", *idx.Where)
		assert.Nil(t, idx.Type)

		data, err := json.Marshal(idx)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"index","model":"","name":"","fields":["a"],"where":""}`, string(data))
	})
}

func TestValidate_IndexRejections(t *testing.T) {
	tests := []struct {
		name       string
		args       core.Arguments
		field      string
		constraint string
	}{
		{"Missing Fields", core.Arguments{"name": "x"}, "fields", "required"},
		{"Empty Fields", core.Arguments{"fields": []any{}}, "fields", "min"},
		{"Duplicate Fields", core.Arguments{"fields": []any{"a", "a"}}, "fields", "unique"},
		{"Blank Field Name", core.Arguments{"fields": []any{""}}, "fields[0]", "required"},
		{"Fields Not Array", core.Arguments{"fields": "a"}, "fields", "type"},
		{"Name Not String", core.Arguments{"fields": []any{"a"}, "name": 3.0}, "name", "type"},
		{"Bad Type Enum", core.Arguments{"fields": []any{"a"}, "type": "hash"}, "type", "oneof"},
		{"Empty Type Enum", core.Arguments{"fields": []any{"a"}, "type": ""}, "type", "oneof"},
		{"Unknown Key", core.Arguments{"fields": []any{"a"}, "columns": []any{"b"}}, "columns", "unknown"},
		{"Model Is Not An Argument", core.Arguments{"fields": []any{"a"}, "model": "User"}, "model", "unknown"},
		{"Explicit Null", core.Arguments{"fields": []any{"a"}, "where": nil}, "where", "type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(core.RawAnnotation{Kind: "index", Args: tc.args})
			require.Error(t, err)

			var ve *core.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T: %v", err, err)
			assert.Equal(t, "index", ve.Kind)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.constraint, ve.Constraint)
			assert.ErrorIs(t, err, core.ErrValidation)
		})
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	_, err := Validate(core.RawAnnotation{Kind: "partialIndex", Args: core.Arguments{}})
	require.Error(t, err)

	var uk *core.UnknownKindError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, "partialIndex", uk.Kind)
	assert.ErrorIs(t, err, core.ErrUnknownKind)
}
