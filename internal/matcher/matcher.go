// Package matcher filters setting names with simple CLI patterns.
package matcher

import "strings"

// Match reports whether name satisfies pattern. An empty pattern or "*"
// matches everything, a pattern ending with "*" matches by prefix and any
// other pattern must equal the name. Comparison ignores case and a pattern may
// list several alternatives separated by commas.
func Match(pattern, name string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == "*" {
		return true
	}
	for _, candidate := range strings.Split(pattern, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if prefix, ok := strings.CutSuffix(candidate, "*"); ok {
			if len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
				return true
			}
			continue
		}
		if strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}
