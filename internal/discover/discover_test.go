package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverPythonFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Create Python files
	writeFile(t, dir, "main.py", "print('hello')")
	writeFile(t, dir, "lib/util.py", "def helper(): pass")
	// Non-Python file should be ignored
	writeFile(t, dir, "readme.txt", "hello")
	// Hidden file should be ignored
	writeFile(t, dir, ".hidden.py", "secret")

	paths, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d: %v", len(paths), paths)
	}

	// Should be sorted
	if paths[0] != filepath.Join("lib", "util.py") {
		t.Errorf("path 0: got %q", paths[0])
	}
	if paths[1] != "main.py" {
		t.Errorf("path 1: got %q", paths[1])
	}
}

func TestDiscoverSkipDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "node_modules/pkg.py", "pass")
	writeFile(t, dir, "__pycache__/cached.py", "pass")
	writeFile(t, dir, ".hidden/secret.py", "pass")

	paths, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if paths[0] != "main.py" {
		t.Errorf("expected main.py, got %q", paths[0])
	}
}

func TestDiscoverGitignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, ".gitignore", "generated/\n")
	writeFile(t, dir, "main.py", "pass")
	writeFile(t, dir, "generated/stub.py", "pass")

	paths, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d: %v", len(paths), paths)
	}
	if paths[0] != "main.py" {
		t.Errorf("expected main.py, got %q", paths[0])
	}
}

func TestDiscoverSymlinksSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "real.py", "pass")

	// Create symlink
	err := os.Symlink(filepath.Join(dir, "real.py"), filepath.Join(dir, "link.py"))
	if err != nil {
		t.Skip("symlinks not supported")
	}

	paths, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected 1 path (no symlink), got %d", len(paths))
	}
	if paths[0] != "real.py" {
		t.Errorf("expected real.py, got %q", paths[0])
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
