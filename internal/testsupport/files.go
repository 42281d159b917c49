package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteCorpus lays out documents as root/<author>/<name> and returns root.
// docs maps "author/name" to file content.
func WriteCorpus(t testing.TB, root string, docs map[string]string) string {
	t.Helper()

	for rel, content := range docs {
		WriteText(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
	return root
}
