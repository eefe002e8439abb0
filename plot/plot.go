/*package plot draws pairs of lines with matplotlib, by way of pyplot.
*/
package plot

import (
	"fmt"

	"github.com/golang/geo/r2"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/intersect/geom"
)

// Margin is the minimum distance between the interesting points of a plot
// and its edges.
var Margin = 5.0

// Window returns the region that should be plotted for c1 and c2: a box
// around their intersection if there is one, or around the points that
// anchor each line otherwise.
func Window(c1, c2 geom.Canonical, res geom.Result) r2.Rect {
	var rect r2.Rect
	if res.Kind == geom.Unique {
		rect = r2.RectFromPoints(res.Point)
	} else {
		rect = r2.RectFromPoints(anchor(c1), anchor(c2))
	}
	return rect.ExpandedByMargin(Margin)
}

func anchor(c geom.Canonical) r2.Point {
	if c.IsVertical() {
		return r2.Point{X: c.X, Y: 0}
	}
	return r2.Point{X: c.X, Y: c.Y}
}

// segment returns the end points of the part of c that falls within the
// horizontal extent of window.
func segment(c geom.Canonical, window r2.Rect) (xs, ys []float64) {
	if c.IsVertical() {
		return []float64{c.X, c.X}, []float64{window.Y.Lo, window.Y.Hi}
	}
	yLo, _ := c.Eval(window.X.Lo)
	yHi, _ := c.Eval(window.X.Hi)
	return []float64{window.X.Lo, window.X.Hi}, []float64{yLo, yHi}
}

// Lines plots c1 and c2 along with res, their intersection, and saves the
// figure to fname.
func Lines(fname string, c1, c2 geom.Canonical, res geom.Result) {
	window := Window(c1, c2, res)

	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))

	xs, ys := segment(c1, window)
	plt.Plot(xs, ys, "r", plt.LW(2))
	xs, ys = segment(c2, window)
	plt.Plot(xs, ys, "b", plt.LW(2))

	switch res.Kind {
	case geom.Unique:
		plt.Plot([]float64{res.Point.X}, []float64{res.Point.Y}, "ok")
		plt.Title(fmt.Sprintf(
			"%s and %s meet at (%.4g, %.4g)", c1, c2, res.Point.X, res.Point.Y,
		))
	default:
		plt.Title(fmt.Sprintf("%s and %s are %s", c1, c2, res.Kind))
	}

	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.XLim(window.X.Lo, window.X.Hi)
	plt.YLim(window.Y.Lo, window.Y.Hi)
	plt.SaveFig(fname)
	plt.Execute()
}
