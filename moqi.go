// Package moqi computes quality indicators that compare a computed
// approximation of a Pareto front against a reference front.
//
// Points are slices of objective values and every point of both sets must
// have the same dimension. Both indicators are pure: they copy their input,
// keep no state between calls and are safe for concurrent use.
//
//	reference := [][]float64{{1, 1}, {2, 0.5}, {4, 0.25}}
//	computed := [][]float64{{1, 1.02}, {2, 0.53}, {4, 0.26}}
//	gd, _ := moqi.GD(reference, computed, moqi.WithMetric(metric.Chebyshev))
//	eps, _ := moqi.EpsilonAdd(reference, computed)
//
// Invalid input is reported before any computation as ErrInvalidInput, and
// non-finite coordinates as ErrNumericAnomaly.
package moqi

import "github.com/ar90n/moqi/number"

type Indicator[T number.Number] interface {
	Name() string
	Evaluate(reference, computed [][]T) (float64, error)
}
