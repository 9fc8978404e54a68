package fileutils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAbsPathCleansRelativePaths(t *testing.T) {
	t.Parallel()

	got, err := AbsPath("./a/../b")
	if err != nil {
		t.Fatalf("AbsPath returned error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("AbsPath returned non-absolute path: %s", got)
	}
	if filepath.Base(got) != "b" {
		t.Fatalf("AbsPath did not clean path: %s", got)
	}
}

func TestAbsPathRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := AbsPath("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := ExpandHome("~"); got != home {
		t.Fatalf("ExpandHome(~) = %s, want %s", got, home)
	}
	if got := ExpandHome("~/x"); got != filepath.Join(home, "x") {
		t.Fatalf("ExpandHome(~/x) = %s", got)
	}
	if got := ExpandHome("/etc/x"); got != "/etc/x" {
		t.Fatalf("ExpandHome should leave absolute paths alone, got %s", got)
	}
}

func TestPathExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	exists, err := PathExists(path)
	if err != nil {
		t.Fatalf("PathExists returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected path to exist")
	}

	exists, err = PathExists(filepath.Join(dir, "absent"))
	if err != nil {
		t.Fatalf("PathExists returned error: %v", err)
	}
	if exists {
		t.Fatal("expected path to be absent")
	}
}
