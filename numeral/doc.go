// Package numeral converts between Arabic numerals and Chinese financial
// numeral text (壹贰叁), in both directions, with a money variant.
//
//	numeral.ToText(10001)        // 壹万零壹
//	numeral.ToText(10.25)        // 壹拾点贰伍
//	numeral.ToMoneyText(100)     // 壹佰元整
//	numeral.ToNumber("壹万零壹") // 10001
//
// ToText, ToMoneyText and ToNumber never fail: rejected input yields "" or
// 0. FormatText, FormatMoney and ParseNumber report rejected input as an
// error wrapping ErrInvalidNumber or ErrInvalidText, which separates 零
// from malformed text. A Converter adds flags (negative numbers, full-width
// input, lenient fractions) and a zap logger for rejected input.
package numeral
