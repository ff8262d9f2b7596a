package io

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/cspline/interpolate"
)

const (
	ExampleSplineFile = `[Spline]

#######################
# Optional Parameters #
#######################

# Width and number of decimal digits used for each number when splines are
# written in the text format. Reading a spline back loses everything past
# Precision digits, so don't set this too low. Precision must be at least 1.
# Defaults are 10 and 5.
# Width = 10
# Precision = 5

# Warnings and errors from spline evaluation are written here. Default is
# stdout.
# LogFile = spline.log

# Set to true to throw away all warnings and errors.
# Quiet = false

# Set to true to print every spline as soon as it's created.
# Verbose = false`
)

type SplineConfig struct {
	// Optional
	Width, Precision int
	LogFile string
	Quiet, Verbose bool
}

type SplineWrapper struct {
	Spline SplineConfig
}

func DefaultSplineWrapper() *SplineWrapper {
	con := SplineConfig{}
	con.Width = 10
	con.Precision = 5
	return &SplineWrapper{con}
}

func (con *SplineConfig) ValidWidth() bool {
	return con.Width > 0
}
func (con *SplineConfig) ValidPrecision() bool {
	return con.Precision >= interpolate.MinPrecision && con.Precision < con.Width
}
func (con *SplineConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// CheckInit returns an error describing the first invalid field in con.
func (con *SplineConfig) CheckInit() error {
	if !con.ValidWidth() {
		return fmt.Errorf("Spline Width must be positive, but is %d.", con.Width)
	} else if !con.ValidPrecision() {
		return fmt.Errorf(
			"Spline Precision must be in the range [%d, %d), but is %d.",
			interpolate.MinPrecision, con.Width, con.Precision,
		)
	} else if con.Quiet && con.ValidLogFile() {
		return fmt.Errorf("Cannot set both Quiet and LogFile.")
	}
	return nil
}

// ReadSplineConfig reads and checks the [Spline] section of a config file.
func ReadSplineConfig(fname string) (*SplineConfig, error) {
	wrap := DefaultSplineWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Spline.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Spline, nil
}

// ParseSplineConfig is identical to ReadSplineConfig, except that it reads
// the config from a string.
func ParseSplineConfig(str string) (*SplineConfig, error) {
	wrap := DefaultSplineWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.Spline.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Spline, nil
}

// Options converts the config into spline options. If LogFile is set, the
// returned file is the open log and must be closed by the caller. Otherwise
// it is nil.
func (con *SplineConfig) Options() ([]interpolate.Option, *os.File, error) {
	opts := []interpolate.Option{
		interpolate.WithFormat(con.Width, con.Precision),
	}
	if con.Verbose {
		opts = append(opts, interpolate.WithVerbose())
	}

	var f *os.File
	switch {
	case con.Quiet:
		opts = append(opts, interpolate.WithLogger(log.New(ioutil.Discard, "", 0)))
	case con.ValidLogFile():
		var err error
		f, err = os.OpenFile(
			con.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644,
		)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, interpolate.WithLogger(log.New(f, "", log.LstdFlags)))
	}

	return opts, f, nil
}
