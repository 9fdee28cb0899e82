package format

import (
	"strings"

	"cn-nm/glyph"
)

// group is a four digit chunk of the integer part, most significant digit
// first and left padded with zeros.
type group [glyph.GroupSize]uint8

// splitGroups chunks integer digits from the least significant end and
// returns the groups most significant first.
func splitGroups(integer string) []group {
	n := (len(integer) + glyph.GroupSize - 1) / glyph.GroupSize
	groups := make([]group, n)

	// right align the digits into the flat group array
	pad := n*glyph.GroupSize - len(integer)
	for i := 0; i < len(integer); i++ {
		pos := pad + i
		groups[pos/glyph.GroupSize][pos%glyph.GroupSize] = integer[i] - '0'
	}

	return groups
}

func (g group) isZero() bool {
	return g == group{}
}

// hasLeadingZero reports whether the group value is below 1000, i.e. it
// needs a zero placeholder when it follows a higher group.
func (g group) hasLeadingZero() bool {
	return g[0] == 0
}

// spell writes the group without leading or trailing zero glyphs. A run of
// interior zeros becomes a single zero glyph.
func (g group) spell(b *strings.Builder) {
	first, last := -1, -1
	for i, digit := range g {
		if digit == 0 {
			continue
		}

		if first < 0 {
			first = i
		}

		last = i
	}

	if first < 0 {
		return
	}

	for i := first; i <= last; i++ {
		digit := int(g[i])
		if digit == 0 {
			if g[i-1] != 0 {
				b.WriteString(glyph.Zero())
			}

			continue
		}

		b.WriteString(glyph.Digit(digit))

		if i < glyph.SmallUnitCount() {
			b.WriteString(glyph.SmallUnit(i))
		}
	}
}
