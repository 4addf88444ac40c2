package persist

import (
	"strings"

	"github.com/viant/settingsync/settings"
)

const tokenSeparator = ","

// Union merges two comma separated token lists as sets: tokens are trimmed,
// empty ones dropped and duplicates removed. Tokens of current keep their
// position, new tokens of persisted follow.
func Union(current, persisted string) string {
	tokens := settings.SplitAndTrim(current, tokenSeparator)
	tokens = append(tokens, settings.SplitAndTrim(persisted, tokenSeparator)...)
	seen := make(map[string]bool, len(tokens))
	ret := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		ret = append(ret, token)
	}
	return strings.Join(ret, tokenSeparator)
}

// IsEmptyValue reports whether a credential value counts as unset: blank,
// whitespace only, or an empty quoted string placeholder.
func IsEmptyValue(value string) bool {
	switch strings.TrimSpace(value) {
	case "", `""`, `''`:
		return true
	}
	return false
}
