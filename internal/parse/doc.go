// Package parse converts Chinese financial numeral text back into numbers.
//
// Parsing runs in three steps. The text is split on 点 and the integer part
// is lexed into glyphs (large units may span several runes, e.g. 不可思议).
// The glyph sequence is then validated structurally: unknown or repeated
// glyphs, large units out of order or without digits between them, and
// units stranded without a digit are all rejected, and every violation is
// reported with its rune offset. Only valid text reaches extraction, which
// splits on the large units and sums the weighted sub-thousand groups.
//
// Rejected text is never given a value; callers that need the historical
// "0 on failure" behaviour get it from package numeral.
package parse
