package slice

// Insert returns a new slice with v placed at pos. A pos past the end appends.
func Insert[T any](s []T, pos int, v T) []T {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(s) {
		out := make([]T, len(s), len(s)+1)
		copy(out, s)
		return append(out, v)
	}
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, v)
	return append(out, s[pos:]...)
}

// RemoveAt returns a new slice without the element at pos.
// Out-of-range positions return the input unchanged.
func RemoveAt[T any](s []T, pos int) []T {
	if pos < 0 || pos >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:pos]...)
	return append(out, s[pos+1:]...)
}

func FindPos[T comparable](s []T, v T) int {
	for i, sv := range s {
		if sv == v {
			return i
		}
	}
	return -1
}
