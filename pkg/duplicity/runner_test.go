package duplicity

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestRunnerDryRunPrintsCommandLine(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := Runner{
		Binary: "no-such-engine-binary",
		DryRun: true,
		Stdout: &out,
	}

	if err := r.Run(context.Background(), []string{"collection-status", "file:///x"}); err != nil {
		t.Fatalf("dry run returned error: %v", err)
	}

	got := strings.TrimSpace(out.String())
	want := "no-such-engine-binary collection-status file:///x"
	if got != want {
		t.Fatalf("dry run printed %q, want %q", got, want)
	}
}

func TestRunnerPreservesExitCode(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	r := Runner{Binary: "sh", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Stdin: strings.NewReader("")}

	err := r.Run(context.Background(), []string{"-c", "exit 3"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got: %v", err)
	}
	if exitErr.Code != 3 {
		t.Fatalf("exit code = %d, want 3", exitErr.Code)
	}
}

func TestRunnerSucceedsOnZeroExit(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	r := Runner{Binary: "sh", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Stdin: strings.NewReader("")}
	if err := r.Run(context.Background(), []string{"-c", "true"}); err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
}

func TestRunnerPassesEnvToChild(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	var out bytes.Buffer
	r := Runner{
		Binary: "sh",
		Env:    map[string]string{"DUPDRIVE_T_MARKER": "pass-through"},
		Stdout: &out,
		Stderr: &bytes.Buffer{},
		Stdin:  strings.NewReader(""),
	}

	if err := r.Run(context.Background(), []string{"-c", "printf %s \"$DUPDRIVE_T_MARKER\""}); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if out.String() != "pass-through" {
		t.Fatalf("child env = %q, want pass-through", out.String())
	}
}

func TestRunnerReportsMissingBinary(t *testing.T) {
	t.Parallel()

	r := Runner{Binary: "dupdrive-test-no-such-binary", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	err := r.Run(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "locate engine binary") {
		t.Fatalf("expected lookup error, got: %v", err)
	}
}
