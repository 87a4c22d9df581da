package moqi

import (
	"github.com/ar90n/moqi/common"
	"github.com/ar90n/moqi/linalg"
	"github.com/ar90n/moqi/number"
)

// AdditiveEpsilon is the additive unary epsilon indicator I_eps+: the smallest
// value that, added to every coordinate of the computed points, makes the
// computed set weakly dominate every reference point (minimization assumed).
//
//	I_eps+ = max_{r in reference} min_{c in computed} max_i (c_i - r_i)
//
// The value is negative when the computed set dominates the reference set
// with slack. Smaller is better. Metric options are ignored.
type AdditiveEpsilon[T number.Number] struct {
	config config
}

var _ Indicator[float64] = (*AdditiveEpsilon[float64])(nil)

func NewAdditiveEpsilon[T number.Number](opts ...Option) *AdditiveEpsilon[T] {
	return &AdditiveEpsilon[T]{
		config: newConfig(opts),
	}
}

func (ae *AdditiveEpsilon[T]) Name() string {
	return "epsilon_add"
}

func (ae *AdditiveEpsilon[T]) Evaluate(reference, computed [][]T) (float64, error) {
	ref, comp, err := toDensePair(reference, computed)
	if err != nil {
		return 0, err
	}

	procs := common.GetProcNum(ae.config.maxGoroutines)
	value := linalg.AdditiveEpsilon(ref, comp, procs)
	if err := checkFinite(ae.Name(), value); err != nil {
		return 0, err
	}

	nRef, dim := ref.Dims()
	nComp, _ := comp.Dims()
	ae.config.logger.Debug("evaluated indicator",
		"indicator", ae.Name(),
		"reference", nRef,
		"computed", nComp,
		"dim", dim,
		"goroutines", procs,
		"value", value,
	)

	return value, nil
}

// EpsilonAdd returns the additive unary epsilon indicator of computed with respect to reference.
func EpsilonAdd[T number.Number](reference, computed [][]T, opts ...Option) (float64, error) {
	return NewAdditiveEpsilon[T](opts...).Evaluate(reference, computed)
}
