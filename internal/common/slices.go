package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether s has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of s, or false when s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if IsEmpty(s) {
		var zero E
		return zero, false
	}

	return s[0], true
}

// IndexFrom returns the index of the first element at or after from that
// satisfies f, or len(s) when there is none.
func IndexFrom[S ~[]E, E any](s S, from int, f func(E) bool) int {
	for i := max(from, 0); i < len(s); i++ {
		if f(s[i]) {
			return i
		}
	}

	return len(s)
}
