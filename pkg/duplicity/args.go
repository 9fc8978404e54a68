package duplicity

import (
	"errors"
	"fmt"

	"github.com/olimci/dupdrive/pkg/config"
)

var (
	ErrNoSource = errors.New("no source path configured")
	ErrNoTarget = errors.New("no target URL configured")
)

// BuildArgs assembles the full engine argument list for a request against a
// resolved profile. The assembly is pure; path existence checks belong to
// the caller.
func BuildArgs(p config.Profile, req Request) ([]string, error) {
	name, err := EngineName(req.Action)
	if err != nil {
		return nil, err
	}

	if p.Target == "" {
		return nil, ErrNoTarget
	}

	args := make([]string, 0, 16)
	if name != "" {
		args = append(args, name)
	}

	if takesArg[req.Action] {
		if req.Arg == "" {
			return nil, fmt.Errorf("%s requires a %s argument", req.Action, argLabel(req.Action))
		}
		args = append(args, req.Arg)
	} else if req.Arg != "" {
		return nil, fmt.Errorf("%s does not accept an argument", req.Action)
	}

	args = append(args, optionArgs(p, req)...)

	switch req.Action {
	case ActionBackup, ActionFull, ActionIncr:
		if p.Source == "" {
			return nil, ErrNoSource
		}
		args = append(args, p.Source, p.Target)
	case ActionVerify:
		if p.Source == "" {
			return nil, ErrNoSource
		}
		args = append(args, p.Target, p.Source)
	case ActionRestore:
		if req.RestoreDest == "" {
			return nil, fmt.Errorf("restore requires a destination path")
		}
		args = append(args, p.Target, req.RestoreDest)
	default:
		args = append(args, p.Target)
	}

	return args, nil
}

func optionArgs(p config.Profile, req Request) []string {
	args := make([]string, 0, 8)

	if p.Name != "" {
		args = append(args, "--name", p.Name)
	}
	if p.ArchiveDir != "" {
		args = append(args, "--archive-dir", p.ArchiveDir)
	}

	for _, key := range config.SortedOptionKeys(p.Options) {
		values := p.Options[key]
		if len(values) == 0 {
			args = append(args, "--"+key)
			continue
		}
		for _, value := range values {
			args = append(args, "--"+key, value)
		}
	}

	if req.Action == ActionRestore {
		if req.RestoreFile != "" {
			args = append(args, "--file-to-restore", req.RestoreFile)
		}
		if req.RestoreTime != "" {
			args = append(args, "--restore-time", req.RestoreTime)
		}
	}

	if destructive[req.Action] && req.Force {
		args = append(args, "--force")
	}

	return args
}

func argLabel(action Action) string {
	if action == ActionRemoveOlder {
		return "time"
	}
	return "count"
}
