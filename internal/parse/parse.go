package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"cn-nm/glyph"
	"cn-nm/internal/diagnostic"
	"cn-nm/options"
)

// Result is the value of a numeral text.
type Result struct {
	Value    float64
	Negative bool
	// Fraction holds the fractional digits as written, e.g. "05" for 点零伍.
	Fraction string
}

// Parse converts numeral text into its value. The result is only meaningful
// when the returned diagnostics, which are never nil, hold no errors.
func Parse(text string, flags options.FlagEnum) (Result, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	var r Result

	offset := 0
	if flags.Has(options.FlagSigned) && strings.HasPrefix(text, glyph.Negative) {
		r.Negative = true
		text = text[len(glyph.Negative):]
		offset = 1
	}

	if text == "" {
		res.AddError(diagnostic.CodeEmptyInput, "text is empty", -1, "")
		return Result{}, res
	}

	if text == glyph.Zero() {
		return Result{}, res
	}

	parts := strings.Split(text, glyph.Point)
	if len(parts) > 2 {
		res.AddError(diagnostic.CodeMultiplePoints, fmt.Sprintf("%s appears %d times", glyph.Point, len(parts)-1), -1, glyph.Point)
		return Result{}, res
	}

	integerText := parts[0]

	if len(parts) == 2 && (parts[0] == "" || parts[1] == "") {
		pos := offset + utf8.RuneCountInString(parts[0])
		res.AddError(diagnostic.CodeDanglingPoint, "both sides of the point need digits", pos, glyph.Point)

		return Result{}, res
	}

	tokens := Lex(integerText, offset, res)
	if res.HasErrors() {
		return Result{}, res
	}

	Validate(tokens, res)
	if res.HasErrors() {
		return Result{}, res
	}

	r.Value = Integer(tokens)

	// glyphs that pass validation yet spell nothing
	if r.Value == 0 && integerText != glyph.Zero() {
		res.AddError(diagnostic.CodeEmptyValue, "text has no value", offset, integerText)
		return Result{}, res
	}

	if len(parts) == 2 {
		fractionOffset := offset + utf8.RuneCountInString(integerText) + 1
		r.Fraction = Fraction(parts[1], fractionOffset, flags, res)

		if res.HasErrors() {
			return Result{}, res
		}
	}

	if r.Fraction != "" {
		v, err := strconv.ParseFloat(strconv.FormatFloat(r.Value, 'f', -1, 64)+"."+r.Fraction, 64)
		if err != nil {
			res.AddError(diagnostic.CodeInvalidDecimal, err.Error(), -1, r.Fraction)
			return Result{}, res
		}

		r.Value = v
	}

	if r.Value == 0 {
		r.Negative = false
	}

	if r.Negative {
		r.Value = -r.Value
	}

	return r, res
}

// Fraction reads the digits after the point. Every glyph must be a digit;
// with FlagLenientDecimal the fraction is cut at the first other glyph and
// a warning is recorded instead.
func Fraction(s string, offset int, flags options.FlagEnum, res *diagnostic.Diagnostics) string {
	var digits strings.Builder

	for len(s) > 0 {
		g, size := glyph.Lookup(s)
		if size == 0 || g.Kind != glyph.KindDigit {
			bad := s[:max(size, runeLen(s))]

			if flags.Has(options.FlagLenientDecimal) {
				res.AddWarning(diagnostic.CodeDecimalTruncated, "fraction truncated at a non-digit glyph", offset, bad)
				break
			}

			res.AddError(diagnostic.CodeInvalidDecimal, "fraction may only hold digit glyphs", offset, bad)

			return ""
		}

		digits.WriteByte(byte('0' + g.Value))
		s = s[size:]
		offset++
	}

	return digits.String()
}

func runeLen(s string) int {
	_, n := utf8.DecodeRuneInString(s)
	return n
}
