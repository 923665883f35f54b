package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectFernFilesPassesThroughExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.fn")

	if err := os.WriteFile(path, []byte("let x = 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := collectFernFiles([]string{path}, "fn")
	if err != nil {
		t.Fatalf("collectFernFiles() error: %v", err)
	}

	if len(got) != 1 || got[0] != path {
		t.Errorf("collectFernFiles() = %v, want [%q]", got, path)
	}
}

func TestCollectFernFilesMissingPathErrors(t *testing.T) {
	t.Parallel()

	_, err := collectFernFiles([]string{filepath.Join(t.TempDir(), "missing.fn")}, "fn")
	if err == nil {
		t.Fatal("collectFernFiles() for a missing path returned no error")
	}
}
