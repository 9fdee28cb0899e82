package parse_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cn-nm/internal/format"
	"cn-nm/internal/parse"
	"cn-nm/options"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{
		0, 1, 9, 10, 11, 99, 100, 101, 110, 111, 999, 1000, 1001, 1010, 1100, 9999,
		10000, 10001, 12345, 99999, 100000, 123456, 999999, 100000000, 123456789, 1000000000,
		1.5, 3.14, 0.5, 10.25, 100.01, 1000.001, 0.0001, 7.1234,
	}

	for _, v := range values {
		t.Run(strconv.FormatFloat(v, 'f', -1, 64), func(t *testing.T) {
			t.Parallel()

			text, res := format.Format(v, options.ModePlain, options.FlagNone)
			require.True(t, res.IsValid())

			r, res := parse.Parse(text, options.FlagNone)
			require.True(t, res.IsValid(), "%s: %v", text, res.Error())
			assert.Equal(t, v, r.Value, text)
		})
	}
}

func TestRoundTripIntegers(t *testing.T) {
	t.Parallel()

	for n := int64(0); n <= 30000; n++ {
		text, _ := format.Format(n, options.ModePlain, options.FlagNone)

		r, res := parse.Parse(text, options.FlagNone)
		if !res.IsValid() || r.Value != float64(n) {
			t.Fatalf("%d -> %s -> %v (%v)", n, text, r.Value, res.Error())
		}
	}

	for _, n := range []int64{1e8 + 1, 1e8 + 1e4, 1e12 + 1, 102030405060, 900000009, 1000000000001} {
		text, _ := format.Format(n, options.ModePlain, options.FlagNone)

		r, res := parse.Parse(text, options.FlagNone)
		require.True(t, res.IsValid(), "%s: %v", text, res.Error())
		assert.Equal(t, float64(n), r.Value, text)
	}
}

func TestRoundTripMoney(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 1, 100, 1.5, 1.05, 0.05, 0.5, 10.25, 10001, 123456789.99} {
		text, res := format.Format(v, options.ModeMoney, options.FlagNone)
		require.True(t, res.IsValid())

		r, res := parse.ParseMoney(text, options.FlagNone)
		require.True(t, res.IsValid(), "%s: %v", text, res.Error())
		assert.Equal(t, v, r.Value, text)
	}
}

func TestRoundTripSigned(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, -10.25, -100000001} {
		text, res := format.Format(v, options.ModePlain, options.FlagSigned)
		require.True(t, res.IsValid())

		r, res := parse.Parse(text, options.FlagSigned)
		require.True(t, res.IsValid())
		assert.Equal(t, v, r.Value, text)
	}
}
