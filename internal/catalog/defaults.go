package catalog

import "strings"

// ExtractDefaultValue walks a decoded JSON document along a dotted path
// (e.g. "groupId.default") and returns the string found at the end.
// A missing segment, a non-object intermediate or a non-string terminal
// yields ("", false); callers fall back to their own default.
func ExtractDefaultValue(tree map[string]any, path string) (string, bool) {
	if tree == nil || path == "" {
		return "", false
	}

	parts := strings.Split(path, ".")
	current := tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}

	value, ok := current[parts[len(parts)-1]].(string)
	if !ok {
		return "", false
	}
	return value, true
}
