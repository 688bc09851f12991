package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { configPath, prefix = "", "" })

	dir := t.TempDir()
	path := filepath.Join(dir, "schematic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("annotationPrefix: db\nstateFilePath: state.json\n"), 0644))

	configPath = path
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.AnnotationPrefix)
	assert.Equal(t, "state.json", cfg.StateFilePath)

	prefix = "custom"
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.AnnotationPrefix)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"extract", "generate", "state", "watch", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	code := 0
	stderr, exit = &buf, func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = os.Stderr, os.Exit })

	fatal("Error", errors.New("unknown command \"bogus\""))

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: unknown command \"bogus\"\n", buf.String())
}

func TestExecute_ReturnsErrorSilently(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"bogus"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
	assert.NotContains(t, out.String(), "Error:")
}
