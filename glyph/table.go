package glyph

import (
	"math"
	"unicode/utf8"
)

const (
	Point    = "点"
	Negative = "负"

	Yuan  = "元" // integer amount suffix in money text
	Whole = "整" // marks an amount without fractional part
)

// GroupSize is the number of decimal digits covered by one large unit.
const GroupSize = 4

var digits = [...]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}

// smallUnits is ordered most significant first, matching the layout of a
// four digit group: index 0 is the thousands place.
var smallUnits = [...]string{"仟", "佰", "拾"}

var largeUnits = [...]string{
	"万", "亿", "兆", "京", "垓", "秭", "穰", "沟", "涧",
	"正", "载", "极", "恒河沙", "阿僧祗", "那由他", "不可思议", "无量", "大数",
}

var fractionUnits = [...]string{"角", "分"}

// Zero returns the zero glyph.
func Zero() string { return digits[0] }

// Digit returns the glyph for the decimal digit n (0-9).
func Digit(n int) string { return digits[n] }

// SmallUnit returns the unit glyph of the given position inside a four digit
// group, where 0 is the thousands place and 2 the tens place.
func SmallUnit(pos int) string { return smallUnits[pos] }

// SmallUnitCount returns the number of small units, i.e. the group positions
// that carry a unit (the ones place does not).
func SmallUnitCount() int { return len(smallUnits) }

// LargeUnit returns the unit glyph for the group with the given index, where
// 0 is 万 (10^4), 1 is 亿 (10^8) and so on.
func LargeUnit(i int) string { return largeUnits[i] }

func LargeUnitCount() int { return len(largeUnits) }

// FractionUnit returns the money unit of the i-th fractional digit (角, 分).
func FractionUnit(i int) string { return fractionUnits[i] }

func FractionUnitCount() int { return len(fractionUnits) }

// MaxIntegerDigits is the longest integer that can be spelled with the
// available large units.
func MaxIntegerDigits() int { return GroupSize * (len(largeUnits) + 1) }

// Glyph is a single recognised token of numeral text.
type Glyph struct {
	Kind KindEnum
	Text string
	// Value is the digit value for KindDigit, the decimal exponent (3, 2, 1)
	// for KindSmallUnit, the table index for KindLargeUnit and for the
	// fractional money units; 元 and 整 carry -1 and -2.
	Value int
}

// Weight returns the numeric weight carried by the glyph: the digit value
// for digits and the power of ten for units. Other kinds weigh 0.
func (g Glyph) Weight() float64 {
	switch g.Kind {
	case KindDigit:
		return float64(g.Value)
	case KindSmallUnit:
		return math.Pow10(g.Value)
	case KindLargeUnit:
		return math.Pow10(GroupSize * (g.Value + 1))
	default:
		return 0
	}
}

func (g Glyph) IsZero() bool {
	return g.Kind == KindDigit && g.Value == 0
}

func (g Glyph) IsNonZeroDigit() bool {
	return g.Kind == KindDigit && g.Value > 0
}

var (
	index    = buildIndex()
	maxRunes = longestGlyph()
)

func buildIndex() map[string]Glyph {
	idx := make(map[string]Glyph, len(digits)+len(smallUnits)+len(largeUnits)+8)

	for i, s := range digits {
		idx[s] = Glyph{Kind: KindDigit, Text: s, Value: i}
	}

	for i, s := range smallUnits {
		idx[s] = Glyph{Kind: KindSmallUnit, Text: s, Value: len(smallUnits) - i}
	}

	for i, s := range largeUnits {
		idx[s] = Glyph{Kind: KindLargeUnit, Text: s, Value: i}
	}

	idx[Point] = Glyph{Kind: KindPoint, Text: Point}
	idx[Negative] = Glyph{Kind: KindNegative, Text: Negative}
	idx[Yuan] = Glyph{Kind: KindCurrency, Text: Yuan, Value: -1}
	idx[Whole] = Glyph{Kind: KindCurrency, Text: Whole, Value: -2}

	for i, s := range fractionUnits {
		idx[s] = Glyph{Kind: KindCurrency, Text: s, Value: i}
	}

	return idx
}

func longestGlyph() int {
	longest := 0
	for s := range index {
		if n := utf8.RuneCountInString(s); n > longest {
			longest = n
		}
	}

	return longest
}

// Lookup matches the longest known glyph at the start of s. It returns the
// glyph and the number of bytes consumed; size is 0 when s does not start
// with a known glyph.
func Lookup(s string) (g Glyph, size int) {
	// byte offsets of the first maxRunes rune boundaries
	var ends []int

	for i := range s {
		if i > 0 {
			ends = append(ends, i)
		}

		if len(ends) == maxRunes {
			break
		}
	}

	if len(ends) < maxRunes {
		ends = append(ends, len(s))
	}

	for k := len(ends) - 1; k >= 0; k-- {
		if g, ok := index[s[:ends[k]]]; ok {
			return g, ends[k]
		}
	}

	return Glyph{}, 0
}

// Classify returns the kind of a single complete glyph, or the zero
// KindEnum when text is not a glyph.
func Classify(text string) KindEnum {
	return index[text].Kind
}

// DigitValue returns the value of a digit glyph.
func DigitValue(text string) (int, bool) {
	g, ok := index[text]
	if !ok || g.Kind != KindDigit {
		return 0, false
	}

	return g.Value, true
}
