// Package version gates config files against the running binary: a config
// written by a newer dupdrive, or by a different major, is refused rather
// than half-understood.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

const Version = "0.2.0"

// SemVer is a MAJOR.MINOR.PATCH triple.
type SemVer struct {
	Major int
	Minor int
	Patch int
}

func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders two versions, returning -1, 0 or 1.
func (v SemVer) Compare(o SemVer) int {
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmpInt(v.Patch, o.Patch)
}

// ParseSemVer parses "MAJOR.MINOR.PATCH", tolerating a leading "v".
func ParseSemVer(raw string) (SemVer, error) {
	value := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if value == "" {
		return SemVer{}, fmt.Errorf("version is empty")
	}

	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return SemVer{}, fmt.Errorf("invalid semantic version %q (expected MAJOR.MINOR.PATCH)", raw)
	}

	var v SemVer
	labels := [3]string{"major", "minor", "patch"}
	for i, field := range [3]*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return SemVer{}, fmt.Errorf("invalid %s version in %q", labels[i], raw)
		}
		*field = n
	}

	return v, nil
}

// EnsureCompatible accepts a config version when it shares this build's
// major and is not newer. Empty versions pass, so hand-written configs
// without a [tool] version keep working.
func EnsureCompatible(target string) error {
	value := strings.TrimSpace(target)
	if value == "" {
		return nil
	}

	current, err := ParseSemVer(Version)
	if err != nil {
		return fmt.Errorf("parse current version %q: %w", Version, err)
	}
	required, err := ParseSemVer(value)
	if err != nil {
		return err
	}

	if required.Major != current.Major {
		return fmt.Errorf("config major version %d does not match dupdrive %s", required.Major, current.String())
	}
	if current.Compare(required) < 0 {
		return fmt.Errorf("config requires dupdrive >= %s (this is %s)", required.String(), current.String())
	}

	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
