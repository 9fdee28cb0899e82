// Package diagnostic provides structured errors and warnings produced while
// validating numeral input and numeral text.
//
// Key capabilities:
//   - Stable machine-readable codes for every structural rule
//   - Rune offsets and the offending glyph for text input
//   - Warnings for input that was accepted after lenient handling
package diagnostic
