package geom

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"
)

// Log receives the warnings Intersect emits for collinear and parallel lines.
// Replace it before calling Intersect from multiple goroutines, not during.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Kind is the relationship between two lines.
type Kind int

const (
	// Unique means the lines cross at exactly one point.
	Unique Kind = iota
	// Collinear means the lines are the same line.
	Collinear
	// Parallel means the lines never meet.
	Parallel
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Collinear:
		return "collinear"
	case Parallel:
		return "parallel"
	}
	return "unknown"
}

// Result is the outcome of intersecting two lines. Point is only meaningful
// when Kind is Unique.
type Result struct {
	Kind  Kind
	Point r2.Point
}

// Coords returns the intersection as a pair of floats. Collinear lines give
// (NaN, NaN) and parallel lines give (+Inf, +Inf).
func (res Result) Coords() (x, y float64) {
	switch res.Kind {
	case Collinear:
		return math.NaN(), math.NaN()
	case Parallel:
		return math.Inf(+1), math.Inf(+1)
	}
	return res.Point.X, res.Point.Y
}

func unique(x, y float64) Result {
	return Result{Unique, r2.Point{X: x, Y: y}}
}

// Classify finds the relationship between c1 and c2 and, if it exists, their
// unique intersection point. Slopes and intercepts are compared exactly.
func Classify(c1, c2 Canonical) Result {
	v1, v2 := c1.IsVertical(), c2.IsVertical()

	switch {
	case !v1 && !v2 && c1.M != c2.M:
		x := ((c1.M*c1.X - c2.M*c2.X) - (c1.Y - c2.Y)) / (c1.M - c2.M)
		return unique(x, c1.M*(x-c1.X)+c1.Y)
	case v1 && !v2:
		return unique(c1.X, c2.Y+c2.M*(c1.X-c2.X))
	case !v1 && v2:
		return unique(c2.X, c1.Y+c1.M*(c2.X-c1.X))
	case v1 && v2 && c1.X == c2.X:
		return Result{Kind: Collinear}
	case !v1 && !v2 && c1.Intercept() == c2.Intercept():
		return Result{Kind: Collinear}
	default:
		// Either both are vertical at different x or both share a slope and
		// have different intercepts.
		return Result{Kind: Parallel}
	}
}

// Contains returns true if p lies exactly on c.
func (c Canonical) Contains(p r2.Point) bool {
	if c.IsVertical() {
		return p.X == c.X
	}
	y, _ := c.Eval(p.X)
	return y == p.Y
}

// Intersect intersects l1 and l2. Collinear and parallel lines are not
// errors, but a warning is written to Log when they occur.
func Intersect(l1, l2 Line) (Result, error) {
	c1, err := Normalize(l1)
	if err != nil {
		return Result{}, errors.Wrap(err, "line 1")
	}
	c2, err := Normalize(l2)
	if err != nil {
		return Result{}, errors.Wrap(err, "line 2")
	}

	res := Classify(c1, c2)
	if res.Kind != Unique {
		Log.WithFields(logrus.Fields{
			"line1":  l1,
			"line2":  l2,
			"result": res.Kind.String(),
		}).Warnf("lines are %s", res.Kind)
	}
	return res, nil
}

// IntersectSlices intersects two lines in positional form (see FromSlice)
// and returns the intersection as a pair of floats (see Result.Coords).
func IntersectSlices(line1, line2 []float64) (x, y float64, err error) {
	l1, err := FromSlice(line1)
	if err != nil {
		return 0, 0, errors.Wrap(err, "line 1")
	}
	l2, err := FromSlice(line2)
	if err != nil {
		return 0, 0, errors.Wrap(err, "line 2")
	}

	res, err := Intersect(l1, l2)
	if err != nil {
		return 0, 0, err
	}
	x, y = res.Coords()
	return x, y, nil
}
