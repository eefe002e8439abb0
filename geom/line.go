/*package geom computes the intersections of infinite lines in the plane.

Lines can be given in any of four forms (Vertical, SlopeIntercept, PointSlope,
and TwoPoint). Every line is reduced to a Canonical point-slope triple before
two lines are compared, and comparisons between slopes and intercepts are
exact. If you are feeding in noisy measurements, round them first.
*/
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Line is one of Vertical, SlopeIntercept, PointSlope, or TwoPoint.
type Line interface {
	// Slice returns the positional representation of the line: one, two,
	// three, or four values depending on the form.
	Slice() []float64
	isLine()
}

// Vertical is the line x = X.
type Vertical struct {
	X float64
}

// SlopeIntercept is the line y = M*x + B.
type SlopeIntercept struct {
	M, B float64
}

// PointSlope is the line passing through (X, Y) with slope M.
type PointSlope struct {
	X, Y, M float64
}

// TwoPoint is the line passing through (X1, Y1) and (X2, Y2). The two points
// must be distinct.
type TwoPoint struct {
	X1, Y1, X2, Y2 float64
}

func (Vertical) isLine()       {}
func (SlopeIntercept) isLine() {}
func (PointSlope) isLine()     {}
func (TwoPoint) isLine()       {}

func (l Vertical) Slice() []float64       { return []float64{l.X} }
func (l SlopeIntercept) Slice() []float64 { return []float64{l.M, l.B} }
func (l PointSlope) Slice() []float64     { return []float64{l.X, l.Y, l.M} }
func (l TwoPoint) Slice() []float64 {
	return []float64{l.X1, l.Y1, l.X2, l.Y2}
}

func (l Vertical) String() string { return fmt.Sprintf("x = %g", l.X) }
func (l SlopeIntercept) String() string {
	return fmt.Sprintf("y = %g*x + %g", l.M, l.B)
}
func (l PointSlope) String() string {
	return fmt.Sprintf("(%g, %g) m = %g", l.X, l.Y, l.M)
}
func (l TwoPoint) String() string {
	return fmt.Sprintf("(%g, %g) -> (%g, %g)", l.X1, l.Y1, l.X2, l.Y2)
}

// FromSlice interprets vals positionally:
//
//	[x]              Vertical
//	[m, b]           SlopeIntercept
//	[x, y, m]        PointSlope
//	[x1, y1, x2, y2] TwoPoint
//
// Any other length returns an error wrapping ErrInvalidInputShape.
func FromSlice(vals []float64) (Line, error) {
	switch len(vals) {
	case 1:
		return Vertical{vals[0]}, nil
	case 2:
		return SlopeIntercept{vals[0], vals[1]}, nil
	case 3:
		return PointSlope{vals[0], vals[1], vals[2]}, nil
	case 4:
		return TwoPoint{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return nil, errors.Wrapf(
		ErrInvalidInputShape, "line has %d values, need 1 to 4", len(vals),
	)
}

// ParseLine parses a positional line written as numbers separated by commas
// and/or whitespace, e.g. "10, 4, 7".
func ParseLine(s string) (Line, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	vals := make([]float64, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Mark(
				errors.Wrapf(err, "value %d of line '%s'", i+1, s),
				ErrInvalidInputShape,
			)
		}
		vals[i] = x
	}
	return FromSlice(vals)
}

// Canonical is the point-slope form every Line is reduced to. M is NaN for
// vertical lines, in which case Y is 0. M is never infinite.
type Canonical struct {
	X, Y, M float64
}

// IsVertical returns true if c is parallel to the y-axis.
func (c Canonical) IsVertical() bool { return math.IsNaN(c.M) }

// Intercept returns the y-intercept of a non-vertical line.
func (c Canonical) Intercept() float64 { return c.Y - c.M*c.X }

// Eval returns the y value of the line at x. ok is false for vertical lines.
func (c Canonical) Eval(x float64) (y float64, ok bool) {
	if c.IsVertical() {
		return 0, false
	}
	return c.M*(x-c.X) + c.Y, true
}

func (c Canonical) String() string {
	if c.IsVertical() {
		return fmt.Sprintf("x = %g", c.X)
	}
	return fmt.Sprintf("y = %g*(x - %g) + %g", c.M, c.X, c.Y)
}

// Normalize reduces l to its canonical point-slope form.
//
// A TwoPoint line whose points share an x coordinate becomes vertical. A
// TwoPoint line whose points coincide returns an error wrapping
// ErrDegenerateInput. So does any NaN or infinite value in any form.
func Normalize(l Line) (Canonical, error) {
	switch l := l.(type) {
	case Vertical:
		if !isFinite(l.X) {
			return Canonical{}, coordError(l)
		}
		return Canonical{l.X, 0, math.NaN()}, nil

	case SlopeIntercept:
		if !isFinite(l.M) {
			return Canonical{}, slopeError(l.M)
		} else if !isFinite(l.B) {
			return Canonical{}, coordError(l)
		}
		return Canonical{0, l.B, l.M}, nil

	case PointSlope:
		if !isFinite(l.M) {
			return Canonical{}, slopeError(l.M)
		} else if !isFinite(l.X) || !isFinite(l.Y) {
			return Canonical{}, coordError(l)
		}
		return Canonical{l.X, l.Y, l.M}, nil

	case TwoPoint:
		if !isFinite(l.X1) || !isFinite(l.Y1) ||
			!isFinite(l.X2) || !isFinite(l.Y2) {
			return Canonical{}, coordError(l)
		}
		if l.X1 == l.X2 && l.Y1 == l.Y2 {
			return Canonical{}, errors.WithHint(
				errors.Wrapf(
					ErrDegenerateInput,
					"cannot make line between (%g, %g) and itself", l.X1, l.Y1,
				),
				"the two points of a two-point line must be distinct",
			)
		}

		m := (l.Y2 - l.Y1) / (l.X2 - l.X1)
		if math.IsInf(m, 0) {
			return Canonical{l.X1, 0, math.NaN()}, nil
		} else if math.IsNaN(m) {
			// Both differences overflowed.
			return Canonical{}, errors.Wrapf(
				ErrDegenerateInput, "slope of line %s overflows", l,
			)
		}
		return Canonical{l.X1, l.Y1, m}, nil

	case nil:
		return Canonical{}, errors.Wrap(ErrInvalidInputShape, "nil line")
	}
	return Canonical{}, errors.Wrapf(
		ErrInvalidInputShape, "unrecognized line type %T", l,
	)
}

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func coordError(l Line) error {
	return errors.Wrapf(ErrDegenerateInput, "line %s has a non-finite value", l)
}

func slopeError(m float64) error {
	return errors.WithHint(
		errors.Wrapf(ErrDegenerateInput, "slope is %g", m),
		"use Vertical to describe a line parallel to the y-axis",
	)
}
