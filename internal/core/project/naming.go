package project

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DerivePackageName builds the default root package from a group id and an
// artifact id: groupId + "." + lowercase(artifactId) with hyphens and
// whitespace removed. An empty artifact part leaves the group id alone.
func DerivePackageName(groupID, artifactID string) string {
	artifact := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cases.Lower(language.Und).String(artifactID))

	switch {
	case groupID == "":
		return artifact
	case artifact == "":
		return groupID
	default:
		return groupID + "." + artifact
	}
}
