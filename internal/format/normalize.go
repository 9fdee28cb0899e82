package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"cn-nm/glyph"
	"cn-nm/internal/diagnostic"
	"cn-nm/options"
	"cn-nm/utils"
)

// Decomposition is a validated numeral split into its sign, integer digits
// and fractional digits. Integer has no leading zeros (it is "0" for values
// below one) and Decimal has no trailing zeros.
type Decomposition struct {
	Negative bool
	Integer  string
	Decimal  string
}

// IsZero reports whether the decomposition denotes zero.
func (d Decomposition) IsZero() bool {
	return d.Integer == "0" && d.Decimal == ""
}

// String renders the decomposition as plain decimal text.
func (d Decomposition) String() string {
	var b strings.Builder
	if d.Negative {
		b.WriteByte('-')
	}

	b.WriteString(d.Integer)

	if d.Decimal != "" {
		b.WriteByte('.')
		b.WriteString(d.Decimal)
	}

	return b.String()
}

// Normalize validates v and splits it into a Decomposition. Supported inputs
// are all Go integer and floating point kinds and strings holding a decimal
// number. The returned diagnostics are never nil; the decomposition is only
// meaningful when they hold no errors.
func Normalize(v any, flags options.FlagEnum) (Decomposition, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	text, ok := numericText(v, flags, res)
	if !ok {
		return Decomposition{}, res
	}

	d := decompose(text)

	if d.Negative && !flags.Has(options.FlagSigned) {
		res.AddError(diagnostic.CodeNegative, "negative numbers are not supported", -1, text)
		return Decomposition{}, res
	}

	if len(d.Integer) > glyph.MaxIntegerDigits() {
		res.AddError(diagnostic.CodeOutOfRange,
			fmt.Sprintf("integer part has %d digits, at most %d can be spelled", len(d.Integer), glyph.MaxIntegerDigits()),
			-1, "")

		return Decomposition{}, res
	}

	return d, res
}

// numericText converts v into decimal text without exponent.
func numericText(v any, flags options.FlagEnum, res *diagnostic.Diagnostics) (string, bool) {
	if v == nil {
		res.AddError(diagnostic.CodeEmptyInput, "input is nil", -1, "")
		return "", false
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return floatText(rv.Float(), rv.Type().Bits(), res)
	case reflect.String:
		return stringText(rv.String(), flags, res)
	default:
		res.AddError(diagnostic.CodeUnsupported, fmt.Sprintf("unsupported input type %s", rv.Type()), -1, "")
		return "", false
	}
}

func floatText(f float64, bits int, res *diagnostic.Diagnostics) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		res.AddError(diagnostic.CodeNotFinite, "input is not a finite number", -1, strconv.FormatFloat(f, 'g', -1, bits))
		return "", false
	}

	// -0 spells as zero
	if f == 0 {
		return "0", true
	}

	return strconv.FormatFloat(f, 'f', -1, bits), true
}

func stringText(s string, flags options.FlagEnum, res *diagnostic.Diagnostics) (string, bool) {
	s = strings.TrimSpace(s)

	if flags.Has(options.FlagFullWidth) {
		if narrow := width.Narrow.String(s); narrow != s {
			res.AddInfo(diagnostic.CodeFullWidthFold, "full-width characters folded", -1, s)
			s = strings.TrimSpace(narrow)
		}
	}

	if s == "" {
		res.AddError(diagnostic.CodeEmptyInput, "input is empty", -1, "")
		return "", false
	}

	mantissa, exponent, ok := scanNumber(s)
	if !ok {
		res.AddError(diagnostic.CodeNotNumeric, "input is not a decimal number", -1, s)
		return "", false
	}

	if !exponent {
		return mantissa, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		res.AddError(diagnostic.CodeOutOfRange, "exponent is out of range", -1, s)
		return "", false
	}

	res.AddInfo(diagnostic.CodeExponentFolded, "exponent notation expanded", -1, s)

	return floatText(f, 64, res)
}

// scanNumber checks s against [+-]digits[.digits][(e|E)[+-]digits] with at
// least one mantissa digit. It returns s itself and whether an exponent was
// present.
func scanNumber(s string) (string, bool, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	mantissaDigits := 0
	for i < len(s) && utils.IsDigit(rune(s[i])) {
		i++
		mantissaDigits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		for i < len(s) && utils.IsDigit(rune(s[i])) {
			i++
			mantissaDigits++
		}
	}

	if mantissaDigits == 0 {
		return "", false, false
	}

	if i == len(s) {
		return s, false, true
	}

	if s[i] != 'e' && s[i] != 'E' {
		return "", false, false
	}

	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	expDigits := 0
	for i < len(s) && utils.IsDigit(rune(s[i])) {
		i++
		expDigits++
	}

	if expDigits == 0 || i != len(s) {
		return "", false, false
	}

	return s, true, true
}

// decompose splits scanned decimal text and strips redundant zeros.
func decompose(text string) Decomposition {
	var d Decomposition

	switch {
	case strings.HasPrefix(text, "-"):
		d.Negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	integer, decimal := utils.Unpack2(strings.SplitN(text, ".", 2))

	d.Integer = strings.TrimLeft(integer, "0")
	d.Decimal = strings.TrimRight(decimal, "0")

	if d.Integer == "" {
		d.Integer = "0"
	}

	if d.IsZero() {
		d.Negative = false
	}

	return d
}
