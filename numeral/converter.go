package numeral

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cn-nm/internal/diagnostic"
	"cn-nm/internal/format"
	"cn-nm/internal/parse"
	"cn-nm/options"
)

var (
	// ErrInvalidNumber is returned for input that cannot be spelled:
	// non-numeric, negative (unless signed), non-finite or too large.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidText is returned for numeral text that is malformed.
	ErrInvalidText = errors.New("invalid numeral text")
)

// Diagnostic describes one rule an input violated.
type Diagnostic = diagnostic.Diagnostic

// Converter converts between numbers and numeral text with a fixed set of
// flags. A Converter holds no mutable state and is safe for concurrent use.
type Converter struct {
	flags  options.FlagEnum
	logger *zap.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithFlags sets the conversion flags.
func WithFlags(flags options.FlagEnum) Option {
	return func(c *Converter) {
		c.flags = flags
	}
}

// WithLogger sets the logger that receives rejected input at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter. Without options it is strict and silent.
func New(opts ...Option) *Converter {
	c := &Converter{
		flags:  options.FlagNone,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Flags returns the flags the converter was created with.
func (c *Converter) Flags() options.FlagEnum {
	return c.flags
}

// Format spells v in the given mode. v may be any Go integer or floating
// point value or a string holding a decimal number.
func (c *Converter) Format(v any, mode options.ModeEnum) (string, error) {
	text, res := format.Format(v, mode, c.flags)
	if err := c.check(res, ErrInvalidNumber, fmt.Sprint(v)); err != nil {
		return "", err
	}

	return text, nil
}

// FormatText spells v as plain numeral text, e.g. 壹拾点贰伍.
func (c *Converter) FormatText(v any) (string, error) {
	return c.Format(v, options.ModePlain)
}

// FormatMoney spells v as money text, e.g. 壹佰元整 or 壹拾元贰角伍分.
func (c *Converter) FormatMoney(v any) (string, error) {
	return c.Format(v, options.ModeMoney)
}

// ParseNumber returns the value of numeral text.
func (c *Converter) ParseNumber(text string) (float64, error) {
	r, res := parse.Parse(text, c.flags)
	if err := c.check(res, ErrInvalidText, text); err != nil {
		return 0, err
	}

	return r.Value, nil
}

// ParseMoney returns the value of money text such as 壹元零伍分.
func (c *Converter) ParseMoney(text string) (float64, error) {
	r, res := parse.ParseMoney(text, c.flags)
	if err := c.check(res, ErrInvalidText, text); err != nil {
		return 0, err
	}

	return r.Value, nil
}

// Explain lists every rule numeral text violates, warnings included. It
// returns nil for valid text.
func (c *Converter) Explain(text string) []Diagnostic {
	_, res := parse.Parse(text, c.flags)
	if res.IsValid() && len(res.Warnings) == 0 {
		return nil
	}

	return append(append([]Diagnostic{}, res.Errors...), res.Warnings...)
}

// check logs the diagnostics of a conversion and turns errors into err
// wrapped around sentinel.
func (c *Converter) check(res *diagnostic.Diagnostics, sentinel error, input string) error {
	for _, w := range res.Warnings {
		c.logger.Debug("numeral input accepted with warning",
			zap.String("input", input),
			zap.String("code", string(w.Code)),
			zap.String("detail", w.String()))
	}

	if res.IsValid() {
		return nil
	}

	codes := make([]string, 0, len(res.Errors))
	for _, code := range res.Codes() {
		codes = append(codes, string(code))
	}

	c.logger.Debug("numeral input rejected",
		zap.String("input", input),
		zap.Strings("codes", codes))

	return fmt.Errorf("%w %q: %w", sentinel, input, res.Error())
}
