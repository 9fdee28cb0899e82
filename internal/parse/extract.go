package parse

import (
	"cn-nm/glyph"
)

// Integer sums the weighted groups of validated integer tokens. Each large
// unit closes a group whose sub-thousand value it multiplies.
func Integer(tokens []Token) float64 {
	total := 0.0
	start := 0

	for i, t := range tokens {
		if t.Kind != glyph.KindLargeUnit {
			continue
		}

		total += subThousand(tokens[start:i]) * t.Weight()
		start = i + 1
	}

	return total + subThousand(tokens[start:])
}

// subThousand scans a group left to right. A digit sets the pending value,
// a small unit multiplies the pending value (1 when no digit precedes it,
// so 拾伍 is 15) and zero glyphs are skipped.
func subThousand(tokens []Token) float64 {
	result, pending := 0.0, 0.0

	for _, t := range tokens {
		switch {
		case t.IsNonZeroDigit():
			pending = t.Weight()
		case t.Kind == glyph.KindSmallUnit:
			if pending == 0 {
				pending = 1
			}

			result += pending * t.Weight()
			pending = 0
		}
	}

	return result + pending
}
