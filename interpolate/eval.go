package interpolate

import (
	"fmt"
	"math"
)

// machineEpsilon is the unit round-off of a float64.
const machineEpsilon = 0x1p-52

// Status describes how a Result was computed.
type Status int

const (
	// Interpolated values lie between two knots.
	Interpolated Status = iota
	// ExtrapolatedLeft values lie below the first knot.
	ExtrapolatedLeft
	// ExtrapolatedRight values lie above the last knot.
	ExtrapolatedRight
	// SinglePoint values are the only value of a one-knot spline.
	SinglePoint
	// Failed results have no value. Result.Err says why.
	Failed
)

func (s Status) String() string {
	switch s {
	case Interpolated:
		return "Interpolated"
	case ExtrapolatedLeft:
		return "ExtrapolatedLeft"
	case ExtrapolatedRight:
		return "ExtrapolatedRight"
	case SinglePoint:
		return "SinglePoint"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Warning returns true if the value was computed, but not by interpolating
// between two knots.
func (s Status) Warning() bool {
	return s == ExtrapolatedLeft || s == ExtrapolatedRight || s == SinglePoint
}

// Result is the outcome of evaluating a spline at a single point. Value is
// only meaningful if OK() returns true.
type Result struct {
	Value  float64
	Status Status
	Err    error
}

// OK returns true if a value was computed.
func (r Result) OK() bool { return r.Err == nil }

// Eval computes the value of the spline at t. Points outside the range of the
// knots are extrapolated from the nearest interval.
func (sp *CubicSpline) Eval(t float64) Result {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.eval(t)
}

// EvalAll evaluates the spline at every point in ts. An optional output slice
// can be supplied to prevent heap allocations.
func (sp *CubicSpline) EvalAll(ts []float64, out ...[]Result) []Result {
	var res []Result
	if len(out) > 0 && len(out[0]) >= len(ts) {
		res = out[0][:len(ts)]
	} else {
		res = make([]Result, len(ts))
	}

	sp.mu.RLock()
	defer sp.mu.RUnlock()
	for i, t := range ts {
		res[i] = sp.eval(t)
	}
	return res
}

// Interval returns the index i of the interval [x[i], x[i+1]] used to
// evaluate the spline at t.
func (sp *CubicSpline) Interval(t float64) (int, Status, error) {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.interval(t)
}

func (sp *CubicSpline) interval(t float64) (int, Status, error) {
	n := len(sp.xs)
	switch {
	case n == 0:
		return 0, Failed, ErrEmptySpline
	case math.IsNaN(t):
		return 0, Failed, ErrNaNPoint
	case n == 1:
		return 0, SinglePoint, nil
	case t < sp.xs[0]:
		return 0, ExtrapolatedLeft, nil
	case t > sp.xs[n-1]:
		return n - 2, ExtrapolatedRight, nil
	}
	return sp.bsearch(t), Interpolated, nil
}

// bsearch returns the index of the largest knot which is smaller than or
// equal to t, capped at len(xs) - 2. t must be within the range of the knots.
func (sp *CubicSpline) bsearch(t float64) int {
	lo, hi := 0, len(sp.xs)-1
	for hi > lo+1 {
		mid := (lo + hi) / 2
		if t < sp.xs[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

func (sp *CubicSpline) eval(t float64) Result {
	i, status, err := sp.interval(t)
	switch status {
	case Failed:
		sp.log.Printf("Error: cannot evaluate spline at %g: %s.", t, err)
		return Result{Status: Failed, Err: err}
	case SinglePoint:
		sp.log.Printf(
			"Warning: spline has a single knot; returning its value %g "+
				"instead of interpolating to %g.", sp.ys[0], t,
		)
		return Result{Value: sp.ys[0], Status: SinglePoint}
	case ExtrapolatedLeft, ExtrapolatedRight:
		sp.log.Printf(
			"Warning: point %g is outside the spline range [%g, %g]; "+
				"extrapolating.", t, sp.xs[0], sp.xs[len(sp.xs)-1],
		)
	}

	x0, x1 := sp.xs[i], sp.xs[i+1]
	h := x1 - x0
	if h < 2*machineEpsilon {
		err := fmt.Errorf(
			"%w: [%g, %g] (interval %d)", ErrDegenerateInterval, x0, x1, i,
		)
		sp.log.Printf("Error: cannot evaluate spline at %g: %s.", t, err)
		return Result{Status: Failed, Err: err}
	}

	y0, y1 := sp.ys[i], sp.ys[i+1]
	m0, m1 := sp.ms[i], sp.ms[i+1]
	d1, d2 := t-x0, x1-t

	val := d1*(y1/h-m1*h/6+d1*d1*m1/(6*h)) +
		d2*(y0/h-m0*h/6+d2*d2*m0/(6*h))
	return Result{Value: val, Status: status}
}
