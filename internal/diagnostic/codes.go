package diagnostic

// Code identifies the rule a diagnostic was raised for.
type Code string

// Numeral input.
const (
	CodeEmptyInput     Code = "empty_input"
	CodeNotNumeric     Code = "not_numeric"
	CodeNotFinite      Code = "not_finite"
	CodeNegative       Code = "negative"
	CodeOutOfRange     Code = "out_of_range"
	CodeUnsupported    Code = "unsupported_type"
	CodeFullWidthFold  Code = "full_width_folded"
	CodeExponentFolded Code = "exponent_expanded"
)

// Numeral text.
const (
	CodeMultiplePoints       Code = "multiple_points"
	CodeDanglingPoint        Code = "dangling_point"
	CodeUnknownGlyph         Code = "unknown_glyph"
	CodeRepeatedGlyph        Code = "repeated_glyph"
	CodeDuplicateLargeUnit   Code = "duplicate_large_unit"
	CodeBareUnit             Code = "bare_unit"
	CodeLeadingZeroMagnitude Code = "leading_zero_magnitude"
	CodeLeadingLargeUnit     Code = "leading_large_unit"
	CodeUnitWithoutDigit     Code = "unit_without_digit"
	CodeLargeUnitOrder       Code = "large_unit_order"
	CodeAdjacentLargeUnits   Code = "adjacent_large_units"
	CodeStrandedSmallUnit    Code = "stranded_small_unit"
	CodeEmptyValue           Code = "empty_value"
	CodeInvalidDecimal       Code = "invalid_decimal"
	CodeDecimalTruncated     Code = "decimal_truncated"
	CodeInvalidMoney         Code = "invalid_money"
)
