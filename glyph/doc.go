// Package glyph holds the lookup tables shared by both conversion
// directions: digit glyphs, the small units used inside a four digit group,
// the large units placed between groups, and the money units.
//
// The tables are positional: Digit(i) denotes the value i, SmallUnit(i)
// the weight 10^(3-i) and LargeUnit(i) the weight 10^(4*(i+1)). They are
// never mutated, so every accessor is safe for concurrent use.
package glyph
