package interpolate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	sp, _ := testSpline(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	assert.Equal(t, map[string]interface{}{
		"xlist": []float64{1, 2, 3},
		"ylist": []float64{4, 5, 6},
		"Mlist": []float64{7, 8, 9},
	}, sp.Record().Map())
}

func TestSetRecord(t *testing.T) {
	sp, _ := testSpline(t, testXs, testYs, testMs)

	require.NoError(t, sp.SetRecord(Record{
		X: []float64{11, 22, 33},
		Y: []float64{44, 55, 66},
		M: []float64{77, 88, 99},
	}))
	assert.Equal(t, []float64{11, 22, 33}, sp.Knots())
	assert.Equal(t, []float64{44, 55, 66}, sp.Values())
	assert.Equal(t, []float64{77, 88, 99}, sp.SecondDerivatives())

	err := sp.SetRecord(Record{X: []float64{1, 2}, Y: []float64{1}, M: []float64{1}})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	err = sp.SetRecord(Record{
		X: []float64{3, 2}, Y: []float64{1, 1}, M: []float64{1, 1},
	})
	assert.ErrorIs(t, err, ErrUnsortedKnots)
	assert.Equal(t, []float64{11, 22, 33}, sp.Knots(), "failed set left spline unchanged")
}

func TestRecordFromMap(t *testing.T) {
	rec, err := RecordFromMap(map[string]interface{}{
		"xlist": []interface{}{1, "2.5", 3.0},
		"ylist": []float64{4, 5, 6},
		"Mlist": []int{7, 8, 9},
	})
	require.NoError(t, err)
	assert.Equal(t, Record{
		X: []float64{1, 2.5, 3},
		Y: []float64{4, 5, 6},
		M: []float64{7, 8, 9},
	}, rec)

	orig := Record{X: []float64{1}, Y: []float64{2}, M: []float64{3}}
	rec, err = RecordFromMap(orig.Map())
	require.NoError(t, err)
	assert.Equal(t, orig, rec)

	_, err = RecordFromMap(map[string]interface{}{
		"xlist": []float64{1}, "ylist": []float64{1},
	})
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = RecordFromMap(map[string]interface{}{
		"xlist": []interface{}{"abc"}, "ylist": []float64{1}, "Mlist": []float64{1},
	})
	assert.Error(t, err)

	_, err = RecordFromMap(map[string]interface{}{
		"xlist": "1 2 3", "ylist": []float64{1}, "Mlist": []float64{1},
	})
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	sp, _ := testSpline(t, testXs, testYs, testMs)

	buf := &bytes.Buffer{}
	require.NoError(t, sp.WriteYAML(buf))
	assert.Contains(t, buf.String(), "xlist:")
	assert.Contains(t, buf.String(), "Mlist:")

	out, _ := testSpline(t, nil, nil, nil)
	require.NoError(t, out.ReadYAML(buf))
	assert.Equal(t, sp.Record(), out.Record())

	err := out.ReadYAML(bytes.NewBufferString("xlist: [2, 1]\nylist: [0, 0]\nMlist: [0, 0]\n"))
	assert.ErrorIs(t, err, ErrUnsortedKnots)
}
