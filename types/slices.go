package types

// GrowSlice returns a slice of length newCap holding the elements of s, or s itself if it is already long enough
func GrowSlice[T any](s []T, newCap int) []T {
	if len(s) >= newCap {
		return s
	}
	bigger := make([]T, newCap)
	copy(bigger, s)
	return bigger
}
