package queries

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// ValidateLimit clamps limit into [1, maxLimit], substituting def for non-positive values.
func ValidateLimit(limit, def, maxLimit int) int {
	if def <= 0 {
		def = DefaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}
	if limit <= 0 {
		return min(def, maxLimit)
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
