package interpolate

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	sp, err := New([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Len())
	assert.Equal(t, []float64{1, 2, 3}, sp.Knots())
	assert.Equal(t, []float64{4, 5, 6}, sp.Values())
	assert.Equal(t, []float64{7, 8, 9}, sp.SecondDerivatives())

	sp, err = New(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Len())
}

func TestNewCopies(t *testing.T) {
	xs := []float64{1, 2, 3}
	sp, err := New(xs, []float64{4, 5, 6}, []float64{7, 8, 9})
	require.NoError(t, err)

	xs[0] = 100
	assert.Equal(t, 1.0, sp.Knots()[0])
	sp.Knots()[1] = 100
	assert.Equal(t, 2.0, sp.Knots()[1])
}

func TestNewInvalid(t *testing.T) {
	_, err := New([]float64{1, 2}, []float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = New([]float64{0, 2, 1}, []float64{0, 0, 0}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrUnsortedKnots)

	_, err = New([]float64{1, 1, 1}, []float64{0, 0, 0}, []float64{0, 0, 0})
	assert.NoError(t, err)
}

func TestNewVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := New(
		[]float64{1, 2}, []float64{3, 4}, []float64{0, 0},
		WithLogger(log.New(buf, "", 0)), WithVerbose(),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Cubic spline. Length:    2")
}

func TestReset(t *testing.T) {
	sp, _ := testSpline(t, testXs, testYs, testMs)
	sp.Reset()
	assert.Equal(t, 0, sp.Len())
	assert.Equal(t, []float64{}, sp.Knots())
	assert.Equal(t, []float64{}, sp.Values())
	assert.Equal(t, []float64{}, sp.SecondDerivatives())
	assert.ErrorIs(t, sp.Eval(1).Err, ErrEmptySpline)
}
