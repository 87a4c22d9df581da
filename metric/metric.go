// Package metric provides the pairwise distance functions available to
// distance based indicators. Names follow the scipy.spatial.distance ones.
package metric

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metric selects a pairwise distance function. The zero value is Euclidean.
type Metric int

const (
	Euclidean Metric = iota
	SqEuclidean
	Chebyshev
	Cityblock
	Cosine
	Correlation
	Canberra
	BrayCurtis
)

var names = map[Metric]string{
	Euclidean:   "euclidean",
	SqEuclidean: "sqeuclidean",
	Chebyshev:   "chebyshev",
	Cityblock:   "cityblock",
	Cosine:      "cosine",
	Correlation: "correlation",
	Canberra:    "canberra",
	BrayCurtis:  "braycurtis",
}

func (m Metric) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// Metrics returns every supported metric in declaration order.
func Metrics() []Metric {
	return []Metric{Euclidean, SqEuclidean, Chebyshev, Cityblock, Cosine, Correlation, Canberra, BrayCurtis}
}

// Parse maps a metric name to its Metric. Matching is case insensitive and
// accepts "manhattan" for Cityblock.
func Parse(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "manhattan" {
		return Cityblock, nil
	}
	for m, n := range names {
		if n == key {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMetric, "%q", name)
}

// Func computes the distance between two points of equal length.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case Euclidean:
		return EuclideanDist, nil
	case SqEuclidean:
		return SqEuclideanDist, nil
	case Chebyshev:
		return ChebyshevDist, nil
	case Cityblock:
		return CityblockDist, nil
	case Cosine:
		return CosineDist, nil
	case Correlation:
		return CorrelationDist, nil
	case Canberra:
		return CanberraDist, nil
	case BrayCurtis:
		return BrayCurtisDist, nil
	default:
		return nil, errors.Wrapf(ErrUnknownMetric, "%v", m)
	}
}

func EuclideanDist(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func SqEuclideanDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func ChebyshevDist(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

func CityblockDist(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// CosineDist is 1 - cos(a, b). It is NaN when either point is the zero vector.
func CosineDist(a, b []float64) float64 {
	return cosineDist(a, b)
}

// CorrelationDist is the cosine distance between the mean-centered points.
// It is NaN when either point has all coordinates equal.
func CorrelationDist(a, b []float64) float64 {
	return cosineDist(centered(a), centered(b))
}

// CanberraDist skips coordinates where both values are zero.
func CanberraDist(a, b []float64) float64 {
	dist := 0.0
	for i := range a {
		denom := math.Abs(a[i]) + math.Abs(b[i])
		if denom == 0 {
			continue
		}
		dist += math.Abs(a[i]-b[i]) / denom
	}

	return dist
}

// BrayCurtisDist is NaN when sum |a_i + b_i| is zero.
func BrayCurtisDist(a, b []float64) float64 {
	num, denom := 0.0, 0.0
	for i := range a {
		num += math.Abs(a[i] - b[i])
		denom += math.Abs(a[i] + b[i])
	}
	if denom == 0 {
		return math.NaN()
	}

	return num / denom
}

func cosineDist(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return math.NaN()
	}

	// rounding can push 1 - cos slightly outside [0, 2]
	return math.Min(math.Max(1-floats.Dot(a, b)/(na*nb), 0), 2)
}

func centered(x []float64) []float64 {
	c := make([]float64, len(x))
	copy(c, x)
	floats.AddConst(-floats.Sum(x)/float64(len(x)), c)
	return c
}
