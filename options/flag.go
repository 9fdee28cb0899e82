package options

type FlagEnum int

const (
	FlagSigned         FlagEnum = 1 << iota // 负 prefix: accept and emit negative values
	FlagFullWidth                           // fold full-width digits, point and sign (１２．５) before formatting
	FlagLenientDecimal                      // truncate the fraction at the first non-digit glyph instead of rejecting the text

	FlagAll  = (1 << iota) - 1 // all flags combined
	FlagNone = 0               // strict defaults
)

// Has reports whether every flag of other is set in f.
func (f FlagEnum) Has(other FlagEnum) bool {
	return f&other == other
}
