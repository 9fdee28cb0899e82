// Package format spells Arabic numerals as Chinese financial numeral text.
//
// The integer part is cut into four digit groups from the least significant
// end. Each group is spelled with digit glyphs and the small units 仟, 佰, 拾,
// and the groups are joined with the large units 万, 亿, 兆 and so on.
// Zero placeholders are decided in the same pass that joins the groups:
//
//	10001     -> 壹万零壹
//	1020000   -> 壹佰零贰万
//	100000001 -> 壹亿零壹
//
// Fractional digits follow 点 one glyph per digit in plain mode, or are
// rendered as 角 and 分 in money mode.
package format
