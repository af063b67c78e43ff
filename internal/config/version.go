package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of untagged builds.
const DevVersion = "dev"

// ErrVersionMismatch is returned when the running tool does not satisfy the
// project's require_version constraint.
var ErrVersionMismatch = errors.New("tool version does not satisfy require_version")

// CheckVersion verifies current against a semver constraint such as ">= 1.2".
// An empty constraint and development builds always pass.
func CheckVersion(current, constraint string) error {
	if constraint == "" || current == DevVersion {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing %s %q: %w", KeyRequireVersion, constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("%w: version %s, required %s", ErrVersionMismatch, current, constraint)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
