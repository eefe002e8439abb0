package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietLog swaps Log for a discarding logger and returns a hook recording
// everything written to it.
func quietLog(t *testing.T) *test.Hook {
	logger, hook := test.NewNullLogger()
	old := Log
	Log = logger
	t.Cleanup(func() { Log = old })
	return hook
}

func TestIntersectSlices(t *testing.T) {
	quietLog(t)

	table := []struct {
		l1, l2 []float64
		x, y   float64
	}{
		{[]float64{5, 2}, []float64{10, 4, 7}, 34, 172},
		{[]float64{5}, []float64{0, 0, 1}, 5, 5},
		{[]float64{0, 0, 1}, []float64{5}, 5, 5},
		{[]float64{1, 0}, []float64{-1, 2}, 1, 1},
		{[]float64{0, 0, 1, 1}, []float64{0, 2, 2, 0}, 1, 1},
		{[]float64{2, 0, 2, 5}, []float64{0, 3}, 2, 3},
		{[]float64{3}, []float64{7}, math.Inf(+1), math.Inf(+1)},
		{[]float64{1, 0}, []float64{1, 1}, math.Inf(+1), math.Inf(+1)},
	}

	for i, line := range table {
		x, y, err := IntersectSlices(line.l1, line.l2)
		require.NoError(t, err)
		if x != line.x || y != line.y {
			t.Errorf("%d) Found that %v intersects with %v at (%g, %g), "+
				"not (%g, %g).", i+1, line.l1, line.l2, x, y, line.x, line.y)
		}
	}
}

func TestIntersectSlicesErrors(t *testing.T) {
	quietLog(t)

	_, _, err := IntersectSlices([]float64{1, 2, 3, 4, 5}, []float64{1})
	assert.True(t, errors.Is(err, ErrInvalidInputShape))
	_, _, err = IntersectSlices([]float64{1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidInputShape))
	_, _, err = IntersectSlices([]float64{1}, []float64{4, 4, 4, 4})
	assert.True(t, errors.Is(err, ErrDegenerateInput))
	assert.Contains(t, err.Error(), "line 2")
}

func TestClassifyCases(t *testing.T) {
	vert := func(x float64) Canonical { return Canonical{x, 0, math.NaN()} }

	table := []struct {
		name   string
		c1, c2 Canonical
		kind   Kind
		p      r2.Point
	}{
		{"sloped", Canonical{0, 2, 5}, Canonical{10, 4, 7}, Unique, r2.Point{X: 34, Y: 172}},
		{"vertical first", vert(5), Canonical{0, 0, 1}, Unique, r2.Point{X: 5, Y: 5}},
		{"vertical second", Canonical{0, 0, 1}, vert(5), Unique, r2.Point{X: 5, Y: 5}},
		{"same vertical", vert(2), vert(2), Collinear, r2.Point{}},
		{"same sloped", Canonical{0, 1, 2}, Canonical{1, 3, 2}, Collinear, r2.Point{}},
		{"distinct verticals", vert(3), vert(7), Parallel, r2.Point{}},
		{"distinct sloped", Canonical{0, 1, 2}, Canonical{0, 2, 2}, Parallel, r2.Point{}},
		{"distinct horizontal", Canonical{0, 1, 0}, Canonical{4, 2, 0}, Parallel, r2.Point{}},
	}

	for _, cs := range table {
		res := Classify(cs.c1, cs.c2)
		assert.Equal(t, cs.kind, res.Kind, cs.name)
		assert.Equal(t, cs.p, res.Point, cs.name)
	}
}

func TestResultCoords(t *testing.T) {
	x, y := Result{Kind: Collinear}.Coords()
	assert.True(t, math.IsNaN(x) && math.IsNaN(y))

	x, y = Result{Kind: Parallel}.Coords()
	assert.True(t, math.IsInf(x, +1) && math.IsInf(y, +1))

	x, y = unique(1, 2).Coords()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)

	assert.Equal(t, "unique", Unique.String())
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "parallel", Parallel.String())
	assert.Equal(t, "unknown", Kind(17).String())
}

func TestCollinearTwoPoint(t *testing.T) {
	quietLog(t)

	pairs := [][2][]float64{
		{{0, 0, 1, 1}, {2, 2, 3, 3}},
		{{0, 1, 1, 3}, {-1, -1, 2, 5}},
		{{4, 0, 4, 1}, {4, -3, 4, 9}},
	}
	for _, pair := range pairs {
		x, y, err := IntersectSlices(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(x), "%v", pair)
		assert.True(t, math.IsNaN(y), "%v", pair)
	}
}

func TestRepresentationInvariance(t *testing.T) {
	quietLog(t)

	// y = 2x + 1 in every form that can express it.
	same := []Line{
		SlopeIntercept{2, 1},
		PointSlope{1, 3, 2},
		PointSlope{-2, -3, 2},
		TwoPoint{0, 1, 1, 3},
		TwoPoint{5, 11, -1, -1},
	}
	other := SlopeIntercept{-1, 4}

	for _, l := range same {
		res, err := Intersect(l, other)
		require.NoError(t, err)
		require.Equal(t, Unique, res.Kind, "%s", l)
		assert.InDelta(t, 1, res.Point.X, 1e-12, "%s", l)
		assert.InDelta(t, 3, res.Point.Y, 1e-12, "%s", l)
	}
}

func randomLine(rng *rand.Rand) Line {
	f := func() float64 { return float64(rng.Intn(21) - 10) }
	switch rng.Intn(4) {
	case 0:
		return Vertical{f()}
	case 1:
		return SlopeIntercept{f(), f()}
	case 2:
		return PointSlope{f(), f(), f()}
	}
	x1, y1 := f(), f()
	x2, y2 := x1+f(), y1+f()
	if x1 == x2 && y1 == y2 {
		x2++
	}
	return TwoPoint{x1, y1, x2, y2}
}

func TestIntersectProperties(t *testing.T) {
	quietLog(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		l1, l2 := randomLine(rng), randomLine(rng)
		r12, err := Intersect(l1, l2)
		require.NoError(t, err)
		r21, err := Intersect(l2, l1)
		require.NoError(t, err)

		require.Equal(t, r12.Kind, r21.Kind, "%s and %s", l1, l2)
		if r12.Kind != Unique {
			continue
		}

		p, q := r12.Point, r21.Point
		assert.Equal(t, p.X, q.X, "%s and %s", l1, l2)
		assert.InDelta(t, p.Y, q.Y, 1e-9*(1+math.Abs(p.Y)), "%s and %s", l1, l2)

		// The point lies on both lines.
		for _, l := range []Line{l1, l2} {
			c, _ := Normalize(l)
			if c.IsVertical() {
				assert.Equal(t, c.X, r12.Point.X, "%s", l)
				continue
			}
			y, _ := c.Eval(r12.Point.X)
			assert.InDelta(t, y, r12.Point.Y, 1e-9*(1+math.Abs(y)), "%s", l)
		}
	}
}

func TestIntersectAdvisories(t *testing.T) {
	hook := quietLog(t)

	_, err := Intersect(SlopeIntercept{5, 2}, PointSlope{10, 4, 7})
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())

	res, err := Intersect(Vertical{2}, TwoPoint{2, 0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, Collinear, res.Kind)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "lines are collinear", hook.LastEntry().Message)
	assert.Equal(t, "collinear", hook.LastEntry().Data["result"])

	hook.Reset()
	res, err = Intersect(Vertical{3}, Vertical{7})
	require.NoError(t, err)
	assert.Equal(t, Parallel, res.Kind)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "lines are parallel", hook.LastEntry().Message)

	hook.Reset()
	_, err = Intersect(TwoPoint{1, 1, 1, 1}, Vertical{7})
	require.Error(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestIntersectNonFinite(t *testing.T) {
	hook := quietLog(t)

	table := []struct {
		l1, l2 Line
	}{
		{SlopeIntercept{1, math.Inf(+1)}, SlopeIntercept{2, 0}},
		{SlopeIntercept{1, math.NaN()}, SlopeIntercept{2, 0}},
		{Vertical{math.NaN()}, Vertical{math.NaN()}},
		{PointSlope{math.NaN(), 0, 1}, Vertical{3}},
	}

	for i, line := range table {
		_, err := Intersect(line.l1, line.l2)
		assert.True(t, errors.Is(err, ErrDegenerateInput), "%d) %v", i+1, err)
	}
	assert.Empty(t, hook.AllEntries())

	_, _, err := IntersectSlices([]float64{0, math.NaN()}, []float64{1, 0})
	assert.True(t, errors.Is(err, ErrDegenerateInput))
}

func TestCanonicalContains(t *testing.T) {
	c, err := Normalize(SlopeIntercept{5, 2})
	require.NoError(t, err)
	assert.True(t, c.Contains(r2.Point{X: 34, Y: 172}))
	assert.False(t, c.Contains(r2.Point{X: 34, Y: 171}))

	v, err := Normalize(Vertical{3})
	require.NoError(t, err)
	assert.True(t, v.Contains(r2.Point{X: 3, Y: -40}))
	assert.False(t, v.Contains(r2.Point{X: 4, Y: 0}))
}

func BenchmarkIntersect(b *testing.B) {
	logger, _ := test.NewNullLogger()
	old := Log
	Log = logger
	defer func() { Log = old }()

	rng := rand.New(rand.NewSource(0))
	lines := make([]Line, 1000)
	for i := range lines {
		lines[i] = randomLine(rng)
	}

	j1, j2 := 0, 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Intersect(lines[j1], lines[j2])
		j1, j2 = (j1+1)%len(lines), (j2+1)%len(lines)
	}
}
