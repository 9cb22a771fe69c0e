package pure_utils

// Map returns a new slice with the same length as src, but with values transformed by f
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}

// Filter returns a new slice holding the elements of src for which predicate returns true.
func Filter[T any](src []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}
