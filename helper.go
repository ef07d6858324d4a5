// File: lixenwraith/settings/helper.go
package settings

import (
	"sort"
	"strings"
)

// sortedKeys returns the keys of m in lexicographic order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// copyMap returns a shallow copy of m
func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// isValidModulePath checks a dotted settings path such as "mysite.settings".
// Segments are identifiers: a letter or underscore followed by letters,
// digits or underscores.
func isValidModulePath(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if !isValidIdentifier(segment) {
			return false
		}
	}
	return true
}

func isValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || r == '_' || (i > 0 && isDigit)) {
			return false
		}
	}
	return true
}
