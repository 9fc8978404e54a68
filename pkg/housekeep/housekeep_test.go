package housekeep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeStaleFiles(t *testing.T) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	stale := []string{
		filepath.Join(dir, "lockfile.lock"),
		filepath.Join(dir, "duplicity-full.20260801T000000Z.vol1.difftar.gpg.part"),
	}
	keep := []string{
		filepath.Join(dir, "duplicity-full.20260801T000000Z.manifest"),
		filepath.Join(dir, "duplicity-full-signatures.20260801T000000Z.sigtar.gz"),
	}

	for _, path := range append(append([]string{}, stale...), keep...) {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	return dir, keep
}

func TestStaleFindsLockAndPartFiles(t *testing.T) {
	t.Parallel()

	dir, _ := writeStaleFiles(t)

	stale, err := Stale(dir)
	if err != nil {
		t.Fatalf("Stale returned error: %v", err)
	}
	if len(stale) != 2 {
		t.Fatalf("found %d stale files, want 2: %v", len(stale), stale)
	}
}

func TestStaleMissingDirIsEmpty(t *testing.T) {
	t.Parallel()

	stale, err := Stale(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Stale returned error: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("expected no stale files, got %v", stale)
	}

	stale, err = Stale("")
	if err != nil || len(stale) != 0 {
		t.Fatalf("empty dir should be a no-op, got %v, %v", stale, err)
	}
}

func TestCleanRemovesStaleFilesWhenEngineIsIdle(t *testing.T) {
	t.Parallel()

	dir, keep := writeStaleFiles(t)

	c := New()
	c.Scan = func(context.Context, string) (int32, bool, error) {
		return 0, false, nil
	}

	report, err := c.Clean(context.Background(), dir)
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	if len(report.Removed) != 2 {
		t.Fatalf("removed %d files, want 2: %v", len(report.Removed), report.Removed)
	}

	for _, path := range keep {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("volume data should survive cleanup, stat %s: %v", path, err)
		}
	}
}

func TestCleanRefusesWhileEngineRuns(t *testing.T) {
	t.Parallel()

	dir, _ := writeStaleFiles(t)

	c := New()
	c.Scan = func(context.Context, string) (int32, bool, error) {
		return 4242, true, nil
	}

	_, err := c.Clean(context.Background(), dir)
	var running *EngineRunningError
	if !errors.As(err, &running) {
		t.Fatalf("expected EngineRunningError, got: %v", err)
	}
	if running.PID != 4242 {
		t.Fatalf("error names pid %d, want 4242", running.PID)
	}

	stale, err := Stale(dir)
	if err != nil {
		t.Fatalf("Stale returned error: %v", err)
	}
	if len(stale) != 2 {
		t.Fatalf("stale files must survive a refused cleanup, got %v", stale)
	}
}

func TestCleanSkipsScanWhenNothingIsStale(t *testing.T) {
	t.Parallel()

	c := New()
	c.Scan = func(context.Context, string) (int32, bool, error) {
		t.Fatal("scan should not run when there is nothing to remove")
		return 0, false, nil
	}

	report, err := c.Clean(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	if len(report.Removed) != 0 {
		t.Fatalf("expected empty report, got %v", report.Removed)
	}
}
