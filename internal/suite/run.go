package suite

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cn-nm/numeral"
)

// Failure is a case whose outcome differs from its expectation.
type Failure struct {
	Case   Case
	Got    string
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s (got %q)", f.Case.Label(), f.Reason, f.Got)
}

// Report summarises a run.
type Report struct {
	Total    int
	Failures []Failure
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Runner executes cases against a converter.
type Runner struct {
	conv    *numeral.Converter
	logger  *zap.Logger
	workers int
}

// NewRunner creates a Runner that checks at most workers cases at once.
func NewRunner(conv *numeral.Converter, logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	if workers <= 0 {
		workers = 1
	}

	return &Runner{conv: conv, logger: logger, workers: workers}
}

// Run checks all cases. Failures are reported in case order. The error is
// only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	results := make([]*Failure, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = r.check(c)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Total: len(cases)}

	for _, f := range results {
		if f == nil {
			continue
		}

		r.logger.Info("case failed",
			zap.String("case", f.Case.Label()),
			zap.String("reason", f.Reason))

		report.Failures = append(report.Failures, *f)
	}

	r.logger.Debug("suite finished",
		zap.Int("total", report.Total),
		zap.Int("failed", len(report.Failures)))

	return report, nil
}

func (r *Runner) check(c Case) *Failure {
	switch c.Kind {
	case KindText:
		got, err := r.conv.FormatText(c.Input)
		return expectText(c, got, err)
	case KindMoney:
		got, err := r.conv.FormatMoney(c.Input)
		return expectText(c, got, err)
	case KindNumber:
		got, err := r.conv.ParseNumber(c.Input)
		return expectNumber(c, got, err)
	case KindRoundTrip:
		return r.roundTrip(c)
	default:
		return &Failure{Case: c, Reason: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
}

func (r *Runner) roundTrip(c Case) *Failure {
	text, err := r.conv.FormatText(c.Input)
	if err != nil {
		return &Failure{Case: c, Reason: err.Error()}
	}

	got, err := r.conv.ParseNumber(text)
	if err != nil {
		return &Failure{Case: c, Got: text, Reason: err.Error()}
	}

	want, err := strconv.ParseFloat(c.Input, 64)
	if err != nil {
		return &Failure{Case: c, Reason: fmt.Sprintf("input is not a number: %v", err)}
	}

	if !sameValue(got, want) {
		return &Failure{Case: c, Got: text, Reason: fmt.Sprintf("read back as %v", got)}
	}

	return nil
}

func expectText(c Case, got string, err error) *Failure {
	if c.Invalid {
		return expectInvalid(c, got, err)
	}

	if err != nil {
		return &Failure{Case: c, Reason: err.Error()}
	}

	if got != c.Want {
		return &Failure{Case: c, Got: got, Reason: fmt.Sprintf("want %q", c.Want)}
	}

	return nil
}

func expectNumber(c Case, got float64, err error) *Failure {
	gotText := strconv.FormatFloat(got, 'f', -1, 64)

	if c.Invalid {
		return expectInvalid(c, gotText, err)
	}

	if err != nil {
		return &Failure{Case: c, Reason: err.Error()}
	}

	want, perr := strconv.ParseFloat(c.Want, 64)
	if perr != nil {
		return &Failure{Case: c, Reason: fmt.Sprintf("want is not a number: %v", perr)}
	}

	if !sameValue(got, want) {
		return &Failure{Case: c, Got: gotText, Reason: fmt.Sprintf("want %s", c.Want)}
	}

	return nil
}

func expectInvalid(c Case, got string, err error) *Failure {
	if err == nil {
		return &Failure{Case: c, Got: got, Reason: "want rejection"}
	}

	if !errors.Is(err, numeral.ErrInvalidNumber) && !errors.Is(err, numeral.ErrInvalidText) {
		return &Failure{Case: c, Reason: fmt.Sprintf("unexpected error: %v", err)}
	}

	// Want may name the code the rejection must carry.
	if c.Want != "" && !strings.Contains(err.Error(), "["+c.Want+"]") {
		return &Failure{Case: c, Reason: fmt.Sprintf("want code %s, got %v", c.Want, err)}
	}

	return nil
}

// sameValue compares parsed values with a tolerance relative to their
// magnitude, since decimal fractions are not exact in float64.
func sameValue(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
