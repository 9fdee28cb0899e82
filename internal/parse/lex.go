package parse

import (
	"fmt"
	"unicode/utf8"

	"cn-nm/glyph"
	"cn-nm/internal/diagnostic"
)

// Token is a glyph found in numeral text together with its rune offset in
// the original input.
type Token struct {
	glyph.Glyph
	Offset int
}

// Lex splits s into glyphs, preferring the longest glyph at every position.
// offset is the rune offset of s within the whole input. Runes that start no
// known glyph are reported as unknown_glyph and skipped.
func Lex(s string, offset int, res *diagnostic.Diagnostics) []Token {
	tokens := make([]Token, 0, utf8.RuneCountInString(s))

	for len(s) > 0 {
		g, size := glyph.Lookup(s)
		if size == 0 {
			r, n := utf8.DecodeRuneInString(s)
			res.AddError(diagnostic.CodeUnknownGlyph, fmt.Sprintf("%q is not a numeral glyph", r), offset, string(r))
			s = s[n:]
			offset++

			continue
		}

		tokens = append(tokens, Token{Glyph: g, Offset: offset})
		offset += utf8.RuneCountInString(s[:size])
		s = s[size:]
	}

	return tokens
}

// Text joins the glyph texts of tokens.
func Text(tokens []Token) string {
	var out []byte
	for _, t := range tokens {
		out = append(out, t.Text...)
	}

	return string(out)
}
