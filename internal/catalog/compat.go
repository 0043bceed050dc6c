package catalog

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compatible reports whether a dependency's version range admits the given
// boot version. Ranges use the Maven notation published by the service:
// "[3.0.0,3.5.0-M1)" is bounded on both sides, a bare "3.2.0" is a lower
// bound only. Empty or unparseable input is treated as compatible so that a
// catalog the client does not understand never hides options.
func Compatible(versionRange, bootVersion string) bool {
	versionRange = strings.TrimSpace(versionRange)
	if versionRange == "" {
		return true
	}
	boot, err := parseBootVersion(bootVersion)
	if err != nil {
		return true
	}

	r, err := parseRange(versionRange)
	if err != nil {
		return true
	}
	return r.contains(boot)
}

// versionRange is a parsed Maven-style interval. A nil bound is open.
type versionRange struct {
	lower, upper                   *semver.Version
	lowerInclusive, upperInclusive bool
}

func (r versionRange) contains(v *semver.Version) bool {
	if r.lower != nil {
		cmp := v.Compare(r.lower)
		if cmp < 0 || (cmp == 0 && !r.lowerInclusive) {
			return false
		}
	}
	if r.upper != nil {
		cmp := v.Compare(r.upper)
		if cmp > 0 || (cmp == 0 && !r.upperInclusive) {
			return false
		}
	}
	return true
}

func parseRange(s string) (versionRange, error) {
	first, last := s[0], s[len(s)-1]
	if first != '[' && first != '(' {
		v, err := parseBootVersion(s)
		if err != nil {
			return versionRange{}, err
		}
		return versionRange{lower: v, lowerInclusive: true}, nil
	}
	if last != ']' && last != ')' {
		return versionRange{}, semver.ErrInvalidSemVer
	}

	bounds := strings.SplitN(s[1:len(s)-1], ",", 2)
	if len(bounds) != 2 {
		return versionRange{}, semver.ErrInvalidSemVer
	}

	r := versionRange{lowerInclusive: first == '[', upperInclusive: last == ']'}
	if lo := strings.TrimSpace(bounds[0]); lo != "" {
		v, err := parseBootVersion(lo)
		if err != nil {
			return versionRange{}, err
		}
		r.lower = v
	}
	if hi := strings.TrimSpace(bounds[1]); hi != "" {
		v, err := parseBootVersion(hi)
		if err != nil {
			return versionRange{}, err
		}
		r.upper = v
	}
	return r, nil
}

// parseBootVersion accepts both semver ids ("3.5.0-SNAPSHOT") and the legacy
// dotted qualifier form ("2.7.18.RELEASE", "3.0.0.M1"). RELEASE and
// BUILD-SNAPSHOT style qualifiers are mapped so that M < RC < SNAPSHOT < GA.
func parseBootVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	if parts := strings.SplitN(v, ".", 4); len(parts) == 4 {
		v = parts[0] + "." + parts[1] + "." + parts[2] + "-" + parts[3]
	}
	v = strings.TrimSuffix(v, "-RELEASE")
	v = strings.Replace(v, "-BUILD-SNAPSHOT", "-SNAPSHOT", 1)
	return semver.StrictNewVersion(v)
}
