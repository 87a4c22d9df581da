package moqi

import (
	"github.com/ar90n/moqi/common"
	"github.com/ar90n/moqi/linalg"
	"github.com/ar90n/moqi/number"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// GenerationalDistance is the mean distance from each computed point to its
// nearest reference point. Smaller is better and zero means every computed
// point lies on the reference set.
//
// Distances that are undefined for a pair of points (NaN, e.g. the cosine
// distance to the zero vector) are ignored when looking for the nearest
// reference point. A computed point with no defined distance at all is
// reported as ErrNumericAnomaly.
type GenerationalDistance[T number.Number] struct {
	config config
}

var _ Indicator[float64] = (*GenerationalDistance[float64])(nil)

func NewGenerationalDistance[T number.Number](opts ...Option) *GenerationalDistance[T] {
	return &GenerationalDistance[T]{
		config: newConfig(opts),
	}
}

func (gd *GenerationalDistance[T]) Name() string {
	return "gd"
}

func (gd *GenerationalDistance[T]) Evaluate(reference, computed [][]T) (float64, error) {
	m, dist, err := gd.config.resolveMetric()
	if err != nil {
		return 0, err
	}

	ref, comp, err := toDensePair(reference, computed)
	if err != nil {
		return 0, err
	}

	procs := common.GetProcNum(gd.config.maxGoroutines)
	d := linalg.Pairwise(ref, comp, dist, procs)
	minima, undefined := linalg.NanMinCols(d)
	if len(undefined) != 0 {
		return 0, errors.Wrapf(ErrNumericAnomaly,
			"%s distance from computed point %d to every reference point is undefined", m, undefined[0])
	}

	value := floats.Sum(minima) / float64(len(minima))
	if err := checkFinite(gd.Name(), value); err != nil {
		return 0, err
	}

	nRef, dim := ref.Dims()
	gd.config.logger.Debug("evaluated indicator",
		"indicator", gd.Name(),
		"metric", m.String(),
		"reference", nRef,
		"computed", len(minima),
		"dim", dim,
		"goroutines", procs,
		"value", value,
	)

	return value, nil
}

// GD returns the generational distance of computed with respect to reference.
func GD[T number.Number](reference, computed [][]T, opts ...Option) (float64, error) {
	return NewGenerationalDistance[T](opts...).Evaluate(reference, computed)
}
