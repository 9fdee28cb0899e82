package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"cn-nm/glyph"
	"cn-nm/internal/diagnostic"
	"cn-nm/options"
)

// ParseMoney converts money text such as 壹佰元整 or 壹元零伍分 into its
// value. The integer before 元 follows the same rules as Parse; the rest
// must be 整 alone, or 角 and 分 amounts in that order.
func ParseMoney(text string, flags options.FlagEnum) (Result, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	negative := false
	offset := 0

	if flags.Has(options.FlagSigned) && strings.HasPrefix(text, glyph.Negative) {
		negative = true
		text = text[len(glyph.Negative):]
		offset = 1
	}

	if text == "" {
		res.AddError(diagnostic.CodeEmptyInput, "text is empty", -1, "")
		return Result{}, res
	}

	integerText, centsText, hasYuan := strings.Cut(text, glyph.Yuan)
	if !hasYuan {
		integerText, centsText = "", text

		if centsText == glyph.Whole {
			res.AddError(diagnostic.CodeInvalidMoney, "整 needs an amount in 元", offset, glyph.Whole)
			return Result{}, res
		}
	}

	var r Result

	if integerText != "" {
		var sub *diagnostic.Diagnostics

		// the integer part is plain numeral text without point or sign
		r, sub = Parse(integerText, flags&^options.FlagSigned)
		shift(sub, offset)
		res.Merge(*sub)

		if res.HasErrors() {
			return Result{}, res
		}

		if r.Fraction != "" {
			res.AddError(diagnostic.CodeInvalidMoney, "the integer amount cannot have a point", offset, glyph.Point)
			return Result{}, res
		}
	} else if hasYuan {
		res.AddError(diagnostic.CodeInvalidMoney, "元 needs an amount", offset, glyph.Yuan)
		return Result{}, res
	}

	centsOffset := offset + utf8.RuneCountInString(integerText)
	if hasYuan {
		centsOffset++
	}

	cents, ok := parseCents(centsText, centsOffset, hasYuan, res)
	if !ok {
		return Result{}, res
	}

	r.Fraction = strings.TrimRight(cents, "0")

	if r.Fraction != "" {
		v, err := strconv.ParseFloat(strconv.FormatFloat(r.Value, 'f', -1, 64)+"."+r.Fraction, 64)
		if err != nil {
			res.AddError(diagnostic.CodeInvalidMoney, err.Error(), -1, centsText)
			return Result{}, res
		}

		r.Value = v
	}

	r.Negative = negative && r.Value != 0
	if r.Negative {
		r.Value = -r.Value
	}

	return r, res
}

// parseCents reads the part after 元: empty, 整, or [digit 角][零][digit 分].
// The zero is only allowed between an integer amount and 分. It returns
// the two cent digits.
func parseCents(s string, offset int, hasInteger bool, res *diagnostic.Diagnostics) (string, bool) {
	if s == "" || s == glyph.Whole {
		return "00", true
	}

	tokens := Lex(s, offset, res)
	if res.HasErrors() {
		return "", false
	}

	cents := []byte{'0', '0'}
	next := 0 // index of the next fraction unit that may appear

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		switch {
		case t.IsZero() && hasInteger && next == 0 && i+1 < len(tokens):
			// 壹元零伍分
			next = 1
			continue
		case t.IsNonZeroDigit() && i+1 < len(tokens):
			unit := tokens[i+1]
			if unit.Kind != glyph.KindCurrency || unit.Value < next {
				res.AddError(diagnostic.CodeInvalidMoney, "digit must be followed by 角 or 分", unit.Offset, unit.Text)
				return "", false
			}

			cents[unit.Value] = byte('0' + t.Value)
			next = unit.Value + 1
			i++

			continue
		}

		res.AddError(diagnostic.CodeInvalidMoney, "unexpected glyph in the fractional amount", t.Offset, t.Text)

		return "", false
	}

	return string(cents), true
}

// shift moves rune offsets of diagnostics by n.
func shift(res *diagnostic.Diagnostics, n int) {
	for _, list := range [][]diagnostic.Diagnostic{res.Errors, res.Warnings, res.Infos} {
		for i := range list {
			if list[i].Offset >= 0 {
				list[i].Offset += n
			}
		}
	}
}
