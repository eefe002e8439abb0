package io

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/intersect/geom"
)

const (
	ExampleIntersectFile = `[Intersect]

#######################
# Required Parameters #
#######################

# Each of the two lines is given either inline, with Line1/Line2, or as a file
# of points, with Line1File/Line2File. Not both.
#
# Inline lines are lists of one to four numbers separated by commas or spaces:
#   x              the vertical line x = x
#   m, b           the line y = m*x + b
#   x, y, m        the line through (x, y) with slope m
#   x1, y1, x2, y2 the line through (x1, y1) and (x2, y2)
Line1 = 5, 2
Line2 = 10, 4, 7

# A points file is a whitespace-separated text table with an x column and a
# y column and exactly two rows. The line runs through both points.
# Line1File = path/to/points.txt
# Line2File = path/to/points.txt

#######################
# Optional Parameters #
#######################

# If set, a plot of both lines and their intersection is written here. This
# needs a working python installation with matplotlib.
# Plot = intersection.png`
)

// IntersectConfig describes the two lines that should be intersected.
type IntersectConfig struct {
	// Required
	Line1, Line2         string
	Line1File, Line2File string

	// Optional
	Plot string
}

type IntersectWrapper struct {
	Intersect IntersectConfig
}

func DefaultIntersectWrapper() *IntersectWrapper {
	return &IntersectWrapper{}
}

// CheckInit trims the config's values and checks that each line has exactly
// one source.
func (con *IntersectConfig) CheckInit() error {
	con.Line1 = strings.TrimSpace(con.Line1)
	con.Line2 = strings.TrimSpace(con.Line2)
	con.Line1File = strings.TrimSpace(con.Line1File)
	con.Line2File = strings.TrimSpace(con.Line2File)
	con.Plot = strings.TrimSpace(con.Plot)

	if err := checkSource(1, con.Line1, con.Line1File); err != nil {
		return err
	}
	return checkSource(2, con.Line2, con.Line2File)
}

func checkSource(n int, line, file string) error {
	if line == "" && file == "" {
		return errors.Newf(
			"Need to specify either 'Line%d' or 'Line%dFile'.", n, n,
		)
	} else if line != "" && file != "" {
		return errors.Newf(
			"Only one of 'Line%d' and 'Line%dFile' can be set.", n, n,
		)
	}
	return nil
}

// Lines returns the two lines described by the config. CheckInit must have
// been called first.
func (con *IntersectConfig) Lines() (l1, l2 geom.Line, err error) {
	l1, err = readLine(1, con.Line1, con.Line1File)
	if err != nil {
		return nil, nil, err
	}
	l2, err = readLine(2, con.Line2, con.Line2File)
	if err != nil {
		return nil, nil, err
	}
	return l1, l2, nil
}

func readLine(n int, line, file string) (geom.Line, error) {
	if file != "" {
		l, err := ReadPointsLine(file)
		return l, errors.Wrapf(err, "'Line%dFile'", n)
	}
	l, err := geom.ParseLine(line)
	return l, errors.Wrapf(err, "'Line%d'", n)
}

// ReadIntersectConfig reads and validates an [Intersect] config file.
func ReadIntersectConfig(fname string) (*IntersectConfig, error) {
	wrap := DefaultIntersectWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Intersect.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Intersect, nil
}

// ReadPointsLine reads a two-row table of x and y columns and returns the
// line through both points.
func ReadPointsLine(fname string) (geom.Line, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != 2 {
		return nil, errors.Mark(errors.Newf(
			"Points file '%s' must have 2 rows, but has %d.", fname, len(xs),
		), geom.ErrInvalidInputShape)
	}
	return geom.TwoPoint{X1: xs[0], Y1: ys[0], X2: xs[1], Y2: ys[1]}, nil
}
