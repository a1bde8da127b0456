package layout

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the range of layout format versions this build reads.
const SupportedVersions = "^1.0.0"

// CheckVersion returns an error unless the layout's format version satisfies
// SupportedVersions. A leading "v" is tolerated.
func CheckVersion(l *Layout) error {
	v, err := semver.NewVersion(strings.TrimPrefix(l.Version, "v"))
	if err != nil {
		return fmt.Errorf("parsing layout version %q: %w", l.Version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("layout version %s is not supported (want %s)", l.Version, SupportedVersions)
	}
	return nil
}
