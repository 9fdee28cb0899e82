package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Numeral is any value that can be spelled as numeral text: a Go number or
// a decimal string.
type Numeral interface {
	number | ~string
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return IsInRange('0', r, '9')
}
