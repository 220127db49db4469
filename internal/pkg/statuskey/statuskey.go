package statuskey

import (
	"regexp"
	"strings"
)

var separators = regexp.MustCompile(`[-_\s]+`)

// Key lower-cases raw, folds every run of hyphens, underscores and whitespace
// into a single "_" and trims separators from both ends.
// "  Checked-In " and "checked__in" both become "checked_in".
func Key(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = separators.ReplaceAllString(k, "_")
	return strings.Trim(k, "_")
}
