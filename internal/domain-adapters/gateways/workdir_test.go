package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkingContext_Enter(t *testing.T) {
	wc := NewWorkingContext()
	root := t.TempDir()

	got, err := wc.Enter(root)
	if err != nil {
		t.Fatalf("Enter() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Enter() = %s, want absolute path", got)
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := wc.Enter(filepath.Join(root, "does-not-exist")); err == nil {
			t.Error("Enter() should fail for a missing directory")
		}
	})

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(root, "setup.cfg")
		if err := os.WriteFile(file, []byte("[flake8]\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := wc.Enter(file); err == nil {
			t.Error("Enter() should fail for a regular file")
		}
	})
}
