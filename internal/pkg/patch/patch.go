package patch

// PreferNonZero returns newer unless it is the zero value of T, in which case older is kept.
func PreferNonZero[T comparable](newer, older T) T {
	var zero T
	if newer == zero {
		return older
	}
	return newer
}
