package glyph

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (unknown) glyph kind

	KindDigit     // 零 through 玖
	KindSmallUnit // 拾, 佰, 仟: multipliers inside a four digit group
	KindLargeUnit // 万, 亿, 兆 ...: multipliers between groups
	KindPoint     // 点
	KindNegative  // 负
	KindCurrency  // 元, 整, 角, 分

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsNumeric reports whether glyphs of this kind may appear in the integer
// part of a numeral text.
func (k KindEnum) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindDigit, KindSmallUnit, KindLargeUnit:
		return true
	}
}

func (k KindEnum) IsUnit() bool {
	switch k {
	default:
		return false
	case KindSmallUnit, KindLargeUnit:
		return true
	}
}
