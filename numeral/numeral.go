package numeral

import (
	"cn-nm/utils"
)

var std = New()

// ToText spells v as plain numeral text and returns "" when v cannot be
// spelled.
func ToText[T utils.Numeral](v T) string {
	text, _ := std.FormatText(v)
	return text
}

// ToMoneyText spells v as money text and returns "" when v cannot be
// spelled.
func ToMoneyText[T utils.Numeral](v T) string {
	text, _ := std.FormatMoney(v)
	return text
}

// ToNumber returns the value of numeral text, or 0 when the text is
// malformed. Use ParseNumber to tell 零 apart from invalid text.
func ToNumber(text string) float64 {
	v, _ := std.ParseNumber(text)
	return v
}

// FormatText spells v as plain numeral text.
func FormatText[T utils.Numeral](v T) (string, error) {
	return std.FormatText(v)
}

// FormatMoney spells v as money text.
func FormatMoney[T utils.Numeral](v T) (string, error) {
	return std.FormatMoney(v)
}

// ParseNumber returns the value of numeral text. Malformed text yields an
// error wrapping ErrInvalidText.
func ParseNumber(text string) (float64, error) {
	return std.ParseNumber(text)
}

// ParseMoney returns the value of money text.
func ParseMoney(text string) (float64, error) {
	return std.ParseMoney(text)
}

// Explain lists every rule numeral text violates.
func Explain(text string) []Diagnostic {
	return std.Explain(text)
}
