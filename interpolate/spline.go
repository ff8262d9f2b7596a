/*package interpolate evaluates 1D cubic splines which are described by their
knots, the values at those knots, and the second derivatives at those knots.
*/
package interpolate

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sync"
)

var (
	// ErrEmptySpline is returned when evaluating a spline with no knots.
	ErrEmptySpline = errors.New("spline has no knots")
	// ErrDegenerateInterval is returned when the bracketing interval is
	// narrower than twice the machine epsilon.
	ErrDegenerateInterval = errors.New("spline interval has zero width")
	// ErrNaNPoint is returned when evaluating a spline at NaN.
	ErrNaNPoint = errors.New("point is NaN")
	// ErrLengthMismatch is returned when the knots, values, and second
	// derivatives have different lengths.
	ErrLengthMismatch = errors.New("spline sequences have unequal lengths")
	// ErrUnsortedKnots is returned when the knots decrease.
	ErrUnsortedKnots = errors.New("spline knots are not sorted")
	// ErrMalformedFile is returned when a text-format spline can't be parsed.
	ErrMalformedFile = errors.New("malformed spline file")
	// ErrMissingKey is returned when a map record lacks xlist, ylist, or Mlist.
	ErrMissingKey = errors.New("spline record is missing a key")
)

const (
	defaultWidth     = 10
	defaultPrecision = 5
	// MinPrecision is the lowest precision used by the text format. Integers
	// are written without a decimal point below it, and the reader drops the
	// sign of a number without one.
	MinPrecision = 1
)

// CubicSpline represents a 1D cubic spline which can be used to interpolate
// between knots.
//
// A CubicSpline is safe for concurrent use. Evaluations may run in parallel
// with each other, but replacing the knots blocks until they finish.
type CubicSpline struct {
	mu         sync.RWMutex
	xs, ys, ms []float64

	log              *log.Logger
	width, precision int
	verbose          bool
}

// Option configures a CubicSpline.
type Option func(sp *CubicSpline)

// WithLogger sends the spline's warnings and errors to logger instead of
// stdout. A nil logger discards them.
func WithLogger(logger *log.Logger) Option {
	return func(sp *CubicSpline) {
		if logger == nil {
			logger = log.New(ioutil.Discard, "", 0)
		}
		sp.log = logger
	}
}

// WithFormat sets the width and number of decimal digits used when writing
// knots in the text format. Precisions below MinPrecision are raised to
// MinPrecision.
func WithFormat(width, precision int) Option {
	return func(sp *CubicSpline) {
		if precision < MinPrecision {
			precision = MinPrecision
		}
		sp.width, sp.precision = width, precision
	}
}

// WithVerbose prints the spline to the logger once it has been created.
func WithVerbose() Option {
	return func(sp *CubicSpline) { sp.verbose = true }
}

// New creates a spline from its knots, the values at its knots, and the second
// derivatives at its knots. The knots must be in increasing order. Empty and
// single-knot splines are allowed.
//
// The input slices are copied.
func New(xs, ys, ms []float64, opts ...Option) (*CubicSpline, error) {
	sp := &CubicSpline{
		log:       log.New(os.Stdout, "", 0),
		width:     defaultWidth,
		precision: defaultPrecision,
	}
	for _, opt := range opts {
		opt(sp)
	}

	if err := sp.SetRecord(Record{X: xs, Y: ys, M: ms}); err != nil {
		return nil, err
	}

	if sp.verbose {
		sp.log.Print(sp.String())
	}
	return sp, nil
}

// Len returns the number of knots in the spline.
func (sp *CubicSpline) Len() int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return len(sp.xs)
}

// Knots returns a copy of the spline's knots.
func (sp *CubicSpline) Knots() []float64 {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return clone(sp.xs)
}

// Values returns a copy of the values at the spline's knots.
func (sp *CubicSpline) Values() []float64 {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return clone(sp.ys)
}

// SecondDerivatives returns a copy of the second derivatives at the spline's
// knots.
func (sp *CubicSpline) SecondDerivatives() []float64 {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return clone(sp.ms)
}

// Reset removes every knot from the spline.
func (sp *CubicSpline) Reset() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.xs, sp.ys, sp.ms = []float64{}, []float64{}, []float64{}
}

// checkKnots returns an error if the sequences cannot describe a spline.
// Repeated knots are allowed here and are caught by Eval instead.
func checkKnots(xs, ys, ms []float64) error {
	if len(xs) != len(ys) || len(xs) != len(ms) {
		return fmt.Errorf(
			"%w: len(xlist) = %d, len(ylist) = %d, len(Mlist) = %d",
			ErrLengthMismatch, len(xs), len(ys), len(ms),
		)
	}

	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] < xs[i] {
			return fmt.Errorf(
				"%w: xlist[%d] = %g is smaller than xlist[%d] = %g",
				ErrUnsortedKnots, i+1, xs[i+1], i, xs[i],
			)
		}
	}
	return nil
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
