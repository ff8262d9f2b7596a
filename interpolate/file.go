package interpolate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/phil-mansfield/table"
)

// Table columns read by ReadTable.
const (
	xCol, yCol, mCol = 0, 1, 2
)

type fileFormat int

const (
	textFormat fileFormat = iota
	zstdFormat
	yamlFormat
)

func formatOf(fname string) fileFormat {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".zst":
		return zstdFormat
	case ".yaml", ".yml":
		return yamlFormat
	default:
		return textFormat
	}
}

// ReadFile replaces the spline's knots with the contents of the given file.
// Files ending in .yaml or .yml are read as YAML records, files ending in
// .zst are read as zstd-compressed text, and everything else is read as text.
func (sp *CubicSpline) ReadFile(fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	switch formatOf(fname) {
	case yamlFormat:
		err = sp.ReadYAML(f)
	case zstdFormat:
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer dec.Close()
		err = sp.ReadText(dec)
	default:
		err = sp.ReadText(f)
	}

	if err != nil {
		return fmt.Errorf("reading spline file '%s': %w", fname, err)
	}
	return nil
}

// WriteFile writes the spline to the given file, choosing the format from the
// file extension in the same way as ReadFile.
func (sp *CubicSpline) WriteFile(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	switch formatOf(fname) {
	case yamlFormat:
		err = sp.WriteYAML(f)
	case zstdFormat:
		var enc *zstd.Encoder
		enc, err = zstd.NewWriter(f)
		if err == nil {
			err = sp.WriteText(enc)
			if cerr := enc.Close(); err == nil {
				err = cerr
			}
		}
	default:
		err = sp.WriteText(f)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadTable creates a spline from a whitespace-separated table file where
// the first three columns are the knots, the values at the knots, and the
// second derivatives at the knots.
func ReadTable(fname string, opts ...Option) (*CubicSpline, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol, mCol}, nil)
	if err != nil {
		return nil, err
	}
	return New(cols[0], cols[1], cols[2], opts...)
}
