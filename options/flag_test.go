package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cn-nm/options"
)

func TestFlagEnum(t *testing.T) {
	t.Parallel()

	f := options.FlagSigned | options.FlagLenientDecimal
	assert.True(t, f.Has(options.FlagSigned))
	assert.True(t, f.Has(options.FlagLenientDecimal))
	assert.False(t, f.Has(options.FlagFullWidth))
	assert.False(t, f.Has(options.FlagSigned|options.FlagFullWidth))
	assert.True(t, options.FlagEnum(options.FlagAll).Has(f))
	assert.Equal(t, 7, options.FlagAll)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range []options.ModeEnum{options.ModePlain, options.ModeMoney} {
		got, ok := options.ParseMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	_, ok := options.ParseMode("roman")
	assert.False(t, ok)
	assert.Equal(t, "unknown", options.ModeEnum(9).String())
}
