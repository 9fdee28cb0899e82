package format

import (
	"strings"

	"cn-nm/glyph"
	"cn-nm/internal/diagnostic"
	"cn-nm/options"
)

// Text spells a normalized decomposition in the given mode. Money mode keeps
// two fractional digits (角, 分); further digits are dropped and reported as
// a warning on res when res is not nil.
func Text(d Decomposition, mode options.ModeEnum, res *diagnostic.Diagnostics) string {
	var b strings.Builder

	if d.Negative {
		b.WriteString(glyph.Negative)
	}

	switch mode {
	case options.ModeMoney:
		spellMoney(&b, d, res)
	default:
		spellInteger(&b, d.Integer)
		spellDecimal(&b, d.Decimal)
	}

	return b.String()
}

// spellInteger assembles the groups most significant first in one pass.
// Zero groups and the gap before a group below 1000 collapse into at most
// one zero glyph, and nothing is written for zeros at either end.
func spellInteger(b *strings.Builder, integer string) {
	groups := splitGroups(integer)
	emitted, pendingZero := false, false

	for i, g := range groups {
		if g.isZero() {
			pendingZero = emitted
			continue
		}

		if emitted && (pendingZero || g.hasLeadingZero()) {
			b.WriteString(glyph.Zero())
		}

		pendingZero = false

		g.spell(b)

		if unit := len(groups) - i - 2; unit >= 0 {
			b.WriteString(glyph.LargeUnit(unit))
		}

		emitted = true
	}

	if !emitted {
		b.WriteString(glyph.Zero())
	}
}

// spellDecimal writes the point followed by one glyph per digit; zeros are
// kept as they are positional.
func spellDecimal(b *strings.Builder, decimal string) {
	if decimal == "" {
		return
	}

	b.WriteString(glyph.Point)

	for i := 0; i < len(decimal); i++ {
		b.WriteString(glyph.Digit(int(decimal[i] - '0')))
	}
}

func spellMoney(b *strings.Builder, d Decomposition, res *diagnostic.Diagnostics) {
	var cents [2]int
	for i := 0; i < len(d.Decimal) && i < glyph.FractionUnitCount(); i++ {
		cents[i] = int(d.Decimal[i] - '0')
	}

	if len(d.Decimal) > glyph.FractionUnitCount() && res != nil {
		res.AddWarning(diagnostic.CodeDecimalTruncated, "money keeps two fractional digits",
			-1, d.Decimal[glyph.FractionUnitCount():])
	}

	hasInteger := d.Integer != "0"
	if cents == [2]int{} {
		spellInteger(b, d.Integer)
		b.WriteString(glyph.Yuan)
		b.WriteString(glyph.Whole)

		return
	}

	if hasInteger {
		spellInteger(b, d.Integer)
		b.WriteString(glyph.Yuan)
	}

	for i, digit := range cents {
		if digit == 0 {
			// 壹元零伍分: only the tenths can be skipped over
			if i == 0 && hasInteger {
				b.WriteString(glyph.Zero())
			}

			continue
		}

		b.WriteString(glyph.Digit(digit))
		b.WriteString(glyph.FractionUnit(i))
	}
}

// Format normalizes v and spells it. The text is empty whenever the
// returned diagnostics hold an error.
func Format(v any, mode options.ModeEnum, flags options.FlagEnum) (string, *diagnostic.Diagnostics) {
	d, res := Normalize(v, flags)
	if res.HasErrors() {
		return "", res
	}

	return Text(d, mode, res), res
}
