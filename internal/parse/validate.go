package parse

import (
	"fmt"

	"cn-nm/glyph"
	"cn-nm/internal/common"
	"cn-nm/internal/diagnostic"
)

// Validate checks the structure of the integer part of numeral text before
// any value is extracted. Every rule is evaluated, so res collects all
// violations rather than the first one.
func Validate(tokens []Token, res *diagnostic.Diagnostics) {
	if common.IsEmpty(tokens) {
		return
	}

	validateGlyphKinds(tokens, res)
	validateRepeats(tokens, res)
	validateLeading(tokens, res)
	validateLargeUnits(tokens, res)
}

// validateGlyphKinds rejects glyphs that are known but cannot appear in an
// integer, such as 元 or a misplaced 负.
func validateGlyphKinds(tokens []Token, res *diagnostic.Diagnostics) {
	for _, t := range tokens {
		if !t.Kind.IsNumeric() {
			res.AddError(diagnostic.CodeUnknownGlyph,
				fmt.Sprintf("%s glyph is not allowed in an integer", t.Kind), t.Offset, t.Text)
		}
	}
}

// validateRepeats rejects stuttered glyphs such as 壹壹 or 万万. Small units
// may still repeat across groups (壹拾万壹拾) since they are never adjacent.
func validateRepeats(tokens []Token, res *diagnostic.Diagnostics) {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Text == tokens[i-1].Text {
			res.AddError(diagnostic.CodeRepeatedGlyph, "glyph repeats its predecessor", tokens[i].Offset, tokens[i].Text)
		}
	}
}

func validateLeading(tokens []Token, res *diagnostic.Diagnostics) {
	first, _ := common.First(tokens)

	if common.IsSingle(tokens) && first.Kind.IsUnit() {
		res.AddError(diagnostic.CodeBareUnit, "a unit needs at least one digit", first.Offset, first.Text)
	}

	switch {
	case first.Kind == glyph.KindLargeUnit:
		res.AddError(diagnostic.CodeLeadingLargeUnit, "text cannot start with a large unit", first.Offset, first.Text)
	case first.IsZero() && common.IsMultiple(tokens):
		// 零壹万: a leading zero cannot carry a magnitude
		for _, t := range tokens[1:] {
			if t.Kind == glyph.KindLargeUnit {
				res.AddError(diagnostic.CodeLeadingZeroMagnitude,
					"a leading zero cannot be followed by a large unit", t.Offset, t.Text)
			}
		}
	case first.Kind == glyph.KindSmallUnit:
		// 拾万, 拾佰万: units without any digit before a large unit
		i := 1
		for i < len(tokens) && tokens[i].Kind == glyph.KindSmallUnit {
			i++
		}

		if i < len(tokens) && tokens[i].Kind == glyph.KindLargeUnit {
			res.AddError(diagnostic.CodeUnitWithoutDigit,
				"large unit follows small units without a digit", tokens[i].Offset, tokens[i].Text)
		}
	}
}

// validateLargeUnits checks that every large unit is used once, in
// descending magnitude, with a nonzero digit between neighbours, and that no
// lone small unit is stranded after one (壹万拾).
func validateLargeUnits(tokens []Token, res *diagnostic.Diagnostics) {
	seen := make(map[int]bool)
	prev := -1

	for i, t := range tokens {
		if t.Kind != glyph.KindLargeUnit {
			continue
		}

		if seen[t.Value] {
			res.AddError(diagnostic.CodeDuplicateLargeUnit, "large unit is used more than once", t.Offset, t.Text)
		}

		seen[t.Value] = true

		if prev >= 0 {
			p := tokens[prev]

			switch {
			case t.Value >= p.Value:
				res.AddError(diagnostic.CodeLargeUnitOrder,
					fmt.Sprintf("%s cannot follow %s", t.Text, p.Text), t.Offset, t.Text)
			case !hasNonZeroDigit(tokens[prev+1 : i]):
				res.AddError(diagnostic.CodeAdjacentLargeUnits,
					fmt.Sprintf("no digit between %s and %s", p.Text, t.Text), t.Offset, t.Text)
			}
		}

		segment := tokens[i+1 : common.IndexFrom(tokens, i+1, isLargeUnit)]
		if only, ok := common.First(segment); ok && common.IsSingle(segment) && only.Kind == glyph.KindSmallUnit {
			res.AddError(diagnostic.CodeStrandedSmallUnit,
				fmt.Sprintf("%s after %s has no digit", only.Text, t.Text), only.Offset, only.Text)
		}

		prev = i
	}
}

func hasNonZeroDigit(tokens []Token) bool {
	for _, t := range tokens {
		if t.IsNonZeroDigit() {
			return true
		}
	}

	return false
}

func isLargeUnit(t Token) bool {
	return t.Kind == glyph.KindLargeUnit
}
