// Package suite runs YAML fixture files of conversion cases. Each case names
// a kind (text, money, number or roundtrip), an input and the expected
// result; invalid cases expect a rejection and may name its diagnostic code.
package suite
