// Package housekeep detects and removes stale lock and part files that an
// interrupted engine run leaves in the archive cache. Removal only happens
// after a process-table scan confirms no engine process is alive; cleaning
// under a running engine would corrupt an in-flight backup.
package housekeep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// DefaultEngine is the process name looked for during the safety scan.
const DefaultEngine = "duplicity"

const partSuffix = ".part"

// lockNames are the lock file names the engine has used across versions.
var lockNames = map[string]struct{}{
	"lockfile":      {},
	"lockfile.lock": {},
}

// EngineRunningError reports a live engine process blocking cleanup.
type EngineRunningError struct {
	Engine string
	PID    int32
}

func (e *EngineRunningError) Error() string {
	return fmt.Sprintf("%s appears to be running (pid %d), refusing to remove its files", e.Engine, e.PID)
}

// Report lists what a cleanup pass removed.
type Report struct {
	Removed []string
}

// ScanFunc checks the process table for a live engine process.
type ScanFunc func(ctx context.Context, engine string) (int32, bool, error)

// Cleaner runs stale-file cleanup for one archive directory at a time.
type Cleaner struct {
	Engine string
	Scan   ScanFunc
}

func New() Cleaner {
	return Cleaner{
		Engine: DefaultEngine,
		Scan:   scanProcessTable,
	}
}

// Stale lists the lock and part files currently present under dir. A missing
// directory yields an empty list.
func Stale(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read archive directory %s: %w", dir, err)
	}

	stale := make([]string, 0, 4)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, isLock := lockNames[name]; isLock || strings.HasSuffix(name, partSuffix) {
			stale = append(stale, filepath.Join(dir, name))
		}
	}

	return stale, nil
}

// Clean removes stale files under dir once the process scan confirms the
// engine is not running. Nothing stale means no scan and no error.
func (c Cleaner) Clean(ctx context.Context, dir string) (Report, error) {
	stale, err := Stale(dir)
	if err != nil {
		return Report{}, err
	}
	if len(stale) == 0 {
		return Report{}, nil
	}

	engine := c.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	scan := c.Scan
	if scan == nil {
		scan = scanProcessTable
	}

	pid, running, err := scan(ctx, engine)
	if err != nil {
		return Report{}, fmt.Errorf("scan process table: %w", err)
	}
	if running {
		return Report{}, &EngineRunningError{Engine: engine, PID: pid}
	}

	removed := make([]string, 0, len(stale))
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Report{Removed: removed}, fmt.Errorf("remove stale file %s: %w", path, err)
		}
		removed = append(removed, path)
	}

	return Report{Removed: removed}, nil
}

// scanProcessTable looks for the engine either by process name or, since the
// engine is typically an interpreter script, by a command-line entry whose
// base name matches.
func scanProcessTable(ctx context.Context, engine string) (int32, bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, false, err
	}

	for _, p := range procs {
		if name, err := p.NameWithContext(ctx); err == nil && name == engine {
			return p.Pid, true, nil
		}

		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		for i, arg := range args {
			if i > 1 {
				break
			}
			if filepath.Base(arg) == engine {
				return p.Pid, true, nil
			}
		}
	}

	return 0, false, nil
}
