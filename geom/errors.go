package geom

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidInputShape is returned when a line is given with a number of
	// values that doesn't correspond to any line form.
	ErrInvalidInputShape = errors.New("invalid line shape")
	// ErrDegenerateInput is returned when the values of a line don't define a
	// line, e.g. a two-point line through a single point.
	ErrDegenerateInput = errors.New("degenerate line")
)
