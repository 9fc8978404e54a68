package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/olimci/dupdrive/pkg/version"
)

var ErrNotFound = errors.New("config file not found")

// Load decodes the config file at path. The file must exist; callers using
// the default location should prefer LoadDefault, which tolerates absence.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("stat %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	if cfg.Tool.Version == "" {
		cfg.Tool.Version = version.Version
	}
	if err := version.EnsureCompatible(cfg.Tool.Version); err != nil {
		return Config{}, fmt.Errorf("unsupported config version %q: %w", cfg.Tool.Version, err)
	}

	if cfg.Tool.Duplicity == "" {
		cfg.Tool.Duplicity = defaultBinary
	}

	if _, err := normalizeOptions(cfg.Options); err != nil {
		return Config{}, fmt.Errorf("invalid [options] in %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDefault loads the config from the default location, falling back to
// built-in defaults when no config file exists yet.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}

	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteDefault writes a default config file at path unless one already
// exists. Reports whether a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := writeTOML(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

func writeTOML(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	tp := path + ".tmp"

	f, err := os.OpenFile(tp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tp, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(value); err != nil {
		_ = os.Remove(tp)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tp)
		return fmt.Errorf("close %s: %w", tp, err)
	}

	if err := os.Rename(tp, path); err != nil {
		_ = os.Remove(tp)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// normalizeOptions flattens the decoded [options] table into ordered value
// lists. A bare true renders as a flag-only option, false drops the key, and
// arrays repeat the option once per element.
func normalizeOptions(raw map[string]any) (map[string][]string, error) {
	if len(raw) == 0 {
		return map[string][]string{}, nil
	}

	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		values, keep, err := normalizeOptionValue(value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		if !keep {
			continue
		}
		out[key] = values
	}

	return out, nil
}

func normalizeOptionValue(value any) ([]string, bool, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, true, nil
	case bool:
		if !v {
			return nil, false, nil
		}
		return []string{}, true, nil
	case int64:
		return []string{strconv.FormatInt(v, 10)}, true, nil
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}, true, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			scalar, keep, err := normalizeOptionValue(item)
			if err != nil {
				return nil, false, err
			}
			if !keep || len(scalar) == 0 {
				return nil, false, fmt.Errorf("list values must be scalars")
			}
			values = append(values, scalar...)
		}
		return values, true, nil
	default:
		return nil, false, fmt.Errorf("unsupported value type %T", value)
	}
}

// SortedOptionKeys returns the keys of a normalized option map in stable
// order, so assembled argument lists are deterministic across runs.
func SortedOptionKeys(options map[string][]string) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
