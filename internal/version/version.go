// Package version resolves the package version string written into generated
// artifacts and compares installed versions against it.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Fallback is used when neither ldflags nor build info carry a version.
const Fallback = "0.0.0-dev"

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolve returns the version injected at build time, falling back to the
// main module version recorded by the Go toolchain and then to Fallback.
func Resolve(ldflagsVersion string) string {
	if ldflagsVersion != "" && ldflagsVersion != "dev" {
		return strings.TrimPrefix(ldflagsVersion, "v")
	}
	if info, ok := readBuildInfo(); ok {
		v := info.Main.Version
		if v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return Fallback
}

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsOutdated returns true if installed is older than current.
func IsOutdated(installed, current string) (bool, error) {
	cmp, err := Compare(installed, current)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(v, "v")
	return semver.NewVersion(v)
}
