package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cn-nm/internal/diagnostic"
	"cn-nm/options"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"零元整", 0},
		{"壹元整", 1},
		{"壹佰元整", 100},
		{"壹佰元", 100},
		{"壹万零壹元整", 10001},
		{"壹元伍角", 1.5},
		{"壹元零伍分", 1.05},
		{"壹元伍分", 1.05},
		{"壹拾元贰角伍分", 10.25},
		{"伍角", 0.5},
		{"伍分", 0.05},
		{"伍角伍分", 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			r, res := ParseMoney(tt.input, options.FlagNone)
			require.True(t, res.IsValid(), "unexpected diagnostics: %v", res.Error())
			assert.Equal(t, tt.want, r.Value)
		})
	}
}

func TestParseMoneyRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		code  diagnostic.Code
	}{
		{"", diagnostic.CodeEmptyInput},
		{"整", diagnostic.CodeInvalidMoney},
		{"元整", diagnostic.CodeInvalidMoney},
		{"壹元伍", diagnostic.CodeInvalidMoney},
		{"壹元零", diagnostic.CodeInvalidMoney},
		{"零伍分", diagnostic.CodeInvalidMoney},
		{"壹元伍分贰角", diagnostic.CodeInvalidMoney},
		{"壹元伍角整", diagnostic.CodeInvalidMoney},
		{"壹点伍元", diagnostic.CodeInvalidMoney},
		{"壹元伍厘", diagnostic.CodeUnknownGlyph},
		{"壹万拾元整", diagnostic.CodeStrandedSmallUnit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			r, res := ParseMoney(tt.input, options.FlagNone)
			assert.Zero(t, r)
			require.True(t, res.HasErrors())
			assert.True(t, res.Has(tt.code), "codes: %v", res.Codes())
		})
	}
}

func TestParseMoneySigned(t *testing.T) {
	t.Parallel()

	r, res := ParseMoney("负壹元伍角", options.FlagSigned)
	require.True(t, res.IsValid())
	assert.Equal(t, -1.5, r.Value)

	_, res = ParseMoney("负壹万拾元整", options.FlagSigned)
	require.True(t, res.HasErrors())
	assert.Equal(t, 3, res.Errors[0].Offset)
}
