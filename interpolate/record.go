package interpolate

import (
	"fmt"
	"io"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	xKey = "xlist"
	yKey = "ylist"
	mKey = "Mlist"
)

// Record is the flat form of a spline: its knots, the values at those knots,
// and the second derivatives at those knots.
type Record struct {
	X []float64 `yaml:"xlist" json:"xlist"`
	Y []float64 `yaml:"ylist" json:"ylist"`
	M []float64 `yaml:"Mlist" json:"Mlist"`
}

// Map returns the record as a map keyed by "xlist", "ylist", and "Mlist".
func (rec Record) Map() map[string]interface{} {
	return map[string]interface{}{xKey: rec.X, yKey: rec.Y, mKey: rec.M}
}

// RecordFromMap reads a record out of a map with the keys "xlist", "ylist",
// and "Mlist". Each value must be a slice whose elements can be converted to
// float64.
func RecordFromMap(m map[string]interface{}) (Record, error) {
	rec := Record{}
	for _, field := range []struct {
		key string
		out *[]float64
	}{{xKey, &rec.X}, {yKey, &rec.Y}, {mKey, &rec.M}} {
		v, ok := m[field.key]
		if !ok {
			return Record{}, fmt.Errorf("%w: '%s'", ErrMissingKey, field.key)
		}

		xs, err := toFloat64Slice(v)
		if err != nil {
			return Record{}, fmt.Errorf("spline record key '%s': %w", field.key, err)
		}
		*field.out = xs
	}
	return rec, nil
}

func toFloat64Slice(v interface{}) ([]float64, error) {
	switch vs := v.(type) {
	case nil:
		return []float64{}, nil
	case []float64:
		return clone(vs), nil
	case []int:
		xs := make([]float64, len(vs))
		for i := range vs {
			xs[i] = float64(vs[i])
		}
		return xs, nil
	case []interface{}:
		xs := make([]float64, len(vs))
		for i := range vs {
			x, err := cast.ToFloat64E(vs[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			xs[i] = x
		}
		return xs, nil
	}
	return nil, fmt.Errorf("unable to cast %#v of type %T to []float64", v, v)
}

// Record returns a copy of the spline's sequences.
func (sp *CubicSpline) Record() Record {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return Record{X: clone(sp.xs), Y: clone(sp.ys), M: clone(sp.ms)}
}

// SetRecord replaces every knot in the spline with the contents of rec. The
// spline is left unchanged if rec is invalid.
func (sp *CubicSpline) SetRecord(rec Record) error {
	if err := checkKnots(rec.X, rec.Y, rec.M); err != nil {
		return err
	}

	xs, ys, ms := clone(rec.X), clone(rec.Y), clone(rec.M)
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.xs, sp.ys, sp.ms = xs, ys, ms
	return nil
}

// WriteYAML writes the spline's record to w as YAML.
func (sp *CubicSpline) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(sp.Record()); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML replaces the spline's knots with a YAML record read from r.
func (sp *CubicSpline) ReadYAML(r io.Reader) error {
	rec := Record{}
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return err
	}
	return sp.SetRecord(rec)
}
