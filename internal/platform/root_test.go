package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfig(t *testing.T) {
	// Create a temp directory structure
	// /tmp/
	//   repo/ (.git)
	//     schematic.yaml
	//     subdir/
	//       nested/
	//   empty/ (.git)

	baseDir := t.TempDir()
	repoDir := filepath.Join(baseDir, "repo")
	subDir := filepath.Join(repoDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(emptyDir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(repoDir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoDir, "schematic.yaml"), []byte("annotationPrefix: db\n"), 0644); err != nil {
		t.Fatal(err)
	}

	wantConfig := filepath.Join(repoDir, "schematic.yaml")

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: repoDir,
			want:      wantConfig,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			want:      wantConfig,
		},
		{
			name:      "Start in Nested",
			startPath: nestedDir,
			want:      wantConfig,
		},
		{
			name:      "Stops at Git Root",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConfig(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FindConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"a/dmmf.json", "b/c/dmmf.json", "b/c/notes.txt"} {
		full := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ResolveDocuments(filepath.Join(dir, "**", "*.json"))
	if err != nil {
		t.Fatalf("ResolveDocuments failed: %v", err)
	}
	want := []string{filepath.Join(dir, "a", "dmmf.json"), filepath.Join(dir, "b", "c", "dmmf.json")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ResolveDocuments() = %v, want %v", got, want)
	}

	single, err := ResolveDocuments(filepath.Join(dir, "a", "dmmf.json"))
	if err != nil || len(single) != 1 {
		t.Errorf("expected exact path to resolve to itself, got %v (%v)", single, err)
	}

	if _, err := ResolveDocuments(filepath.Join(dir, "missing", "*.json")); err == nil {
		t.Error("expected error for pattern without matches")
	}
}
