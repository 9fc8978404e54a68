package duplicity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olimci/dupdrive/pkg/config"
)

// ExitError preserves the engine's exit status so the shell sees the same
// code it would get from running duplicity directly.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("duplicity exited with status %d", e.Code)
}

// Runner invokes the engine as a subprocess.
type Runner struct {
	Binary string
	Env    map[string]string
	DryRun bool
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

func NewRunner(p config.Profile, logger *log.Logger) Runner {
	return Runner{
		Binary: p.Binary,
		Env:    p.Env,
		DryRun: p.DryRun,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

// Run executes the engine with the assembled arguments. In dry-run mode the
// command line is printed instead and nothing is executed.
func (r Runner) Run(ctx context.Context, args []string) error {
	binary := r.Binary
	if binary == "" {
		binary = "duplicity"
	}

	cmdline := strings.Join(append([]string{binary}, args...), " ")

	if r.DryRun {
		fmt.Fprintln(r.stdout(), cmdline)
		return nil
	}

	resolved, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("locate engine binary %q: %w", binary, err)
	}

	if r.Logger != nil {
		r.Logger.Debug("invoking engine", "command", cmdline)
	}

	cmd := exec.CommandContext(ctx, resolved, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	cmd.Env = append(os.Environ(), envPairs(r.Env)...)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run %s: %w", binary, err)
	}

	return nil
}

func (r Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func envPairs(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+env[key])
	}
	return pairs
}
