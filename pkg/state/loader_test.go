package state

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabinadams/schematic/pkg/core"
)

func TestResolvePath(t *testing.T) {
	docPath := filepath.Join("project", "prisma", "dmmf.json")

	assert.Equal(t, filepath.Join("project", "prisma", ".schematic-state.json"), ResolvePath(DefaultFile, docPath))
	assert.Equal(t, filepath.Join("project", "state", "s.json"), ResolvePath("../state/s.json", docPath))

	abs := filepath.Join(t.TempDir(), "s.json")
	assert.Equal(t, abs, ResolvePath(abs, docPath))
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		dir := t.TempDir()
		docPath := filepath.Join(dir, "dmmf.json")
		want := &core.Snapshot{
			GeneratedAt: "2026-01-02T03:04:05.000Z",
			SchemaHash:  emptySHA256,
			Indexes:     []core.IndexRecord{{Model: "Post", Name: ptr(""), Fields: []string{"authorId"}, Where: ptr("x > 1")}},
		}
		require.NoError(t, Write(filepath.Join(dir, ".schematic-state.json"), want))

		got, err := Load(ctx, DefaultFile, docPath)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Missing File", func(t *testing.T) {
		dir := t.TempDir()

		snap, err := Load(ctx, DefaultFile, filepath.Join(dir, "dmmf.json"))
		require.Error(t, err)
		assert.Nil(t, snap)

		var empty *core.EmptyStateError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, filepath.Join(dir, ".schematic-state.json"), empty.Path)
		assert.Contains(t, err.Error(), "State file is empty")
	})

	t.Run("Malformed And Empty Files", func(t *testing.T) {
		for name, content := range map[string]string{
			"malformed": "{not json",
			"empty":     "",
			"null":      "null",
		} {
			t.Run(name, func(t *testing.T) {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte(content), 0644))

				_, err := Load(ctx, "state.json", filepath.Join(dir, "dmmf.json"))
				assert.ErrorIs(t, err, core.ErrEmptyState)
				assert.EqualError(t, err, "State file is empty: "+filepath.Join(dir, "state.json"))
			})
		}
	})

	t.Run("Read Failure Is Wrapped", func(t *testing.T) {
		cause := errors.New("disk on fire")
		l := &Loader{Read: func(ctx context.Context, path string) (*core.Snapshot, error) {
			return nil, cause
		}}

		_, err := l.Load(ctx, "/abs/state.json", "/abs/dmmf.json")
		require.Error(t, err)

		var le *core.LoadError
		require.True(t, errors.As(err, &le))
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, core.ErrLoad)
		assert.Equal(t, "There was an error loading the state file: /abs/state.json. disk on fire", err.Error())
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := Load(cctx, DefaultFile, filepath.Join(t.TempDir(), "dmmf.json"))
		assert.ErrorIs(t, err, core.ErrLoad)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "There was an error loading the state file")
	})
}
