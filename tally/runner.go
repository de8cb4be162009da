package tally

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/tallyhq/tally/pkg/option"
)

// Default scenario.
const (
	DefaultInitial = 42
	DefaultAddend  = 12
)

// Runner adds an optional addend to an initial value and prints the sum.
//
// The zero value is usable: Output defaults to os.Stdout, Logger to a no-op logger
// and Clock to the real clock. A nil Addend is treated as empty.
type Runner struct {
	Initial int
	Addend  option.Option[int]

	Output io.Writer
	Logger *zap.Logger
	Clock  clockwork.Clock
}

// NewDefaultRunner returns a Runner for the default scenario: 42 plus Some(12).
func NewDefaultRunner() Runner {
	return Runner{
		Initial: DefaultInitial,
		Addend:  option.Some(DefaultAddend),
	}
}

// Run computes the sum, writes it to Output followed by a newline and returns it.
func (r Runner) Run(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	logger := r.logger()
	clock := r.clock()
	start := clock.Now()

	acc := NewAccumulator(r.Initial)

	added, err := acc.AddOptional(r.Addend)
	if err != nil {
		return 0, err
	}

	_, err = fmt.Fprintln(r.output(), acc.Value())
	if err != nil {
		return 0, fmt.Errorf("writing result: %w", err)
	}

	logger.Debug(
		"run finished",
		zap.Int("initial", r.Initial),
		zap.Bool("added", added),
		zap.Int("result", acc.Value()),
		zap.Duration("elapsed", clock.Since(start)),
	)

	return acc.Value(), nil
}

func (r Runner) output() io.Writer {
	if r.Output == nil {
		return os.Stdout
	}

	return r.Output
}

func (r Runner) logger() *zap.Logger {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runID, err := uuid.NewV4()
	if err != nil {
		// the run ID only decorates log entries
		return logger
	}

	return logger.With(zap.String("run_id", runID.String()))
}

func (r Runner) clock() clockwork.Clock {
	if r.Clock == nil {
		return clockwork.NewRealClock()
	}

	return r.Clock
}

// Run executes the default scenario on standard output.
// A failed write to standard output is unrecoverable and panics.
func Run() {
	if _, err := NewDefaultRunner().Run(context.Background()); err != nil {
		panic(err)
	}
}
