// Package linalg holds the dense kernels behind the indicators. Point sets
// are row-major matrices: one row per point, one column per objective.
package linalg

import (
	"math"

	"github.com/ar90n/moqi/common"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Pairwise returns the |x| by |y| matrix D with D[i][j] = dist(x_i, y_j).
// Columns are split into chunks filled by at most procs goroutines.
func Pairwise(x, y *mat.Dense, dist func(a, b []float64) float64, procs uint) *mat.Dense {
	xr, _ := x.Dims()
	yr, _ := y.Dims()
	d := mat.NewDense(xr, yr, nil)

	chunks := common.Chunks(uint(yr), procs)
	if len(chunks) == 0 {
		return d
	}

	p := pool.New().WithMaxGoroutines(len(chunks))
	for _, c := range chunks {
		c := c
		p.Go(func() {
			for j := int(c.Begin); j < int(c.End); j++ {
				yj := y.RawRowView(j)
				for i := 0; i < xr; i++ {
					d.Set(i, j, dist(x.RawRowView(i), yj))
				}
			}
		})
	}
	p.Wait()

	return d
}

// NanMinCols returns the minimum of every column of d, ignoring NaN entries.
// Columns holding nothing but NaN get a NaN minimum and are listed in undefined.
func NanMinCols(d *mat.Dense) (minima []float64, undefined []int) {
	r, c := d.Dims()
	minima = make([]float64, c)
	for j := 0; j < c; j++ {
		m := math.NaN()
		for i := 0; i < r; i++ {
			v := d.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(m) || v < m {
				m = v
			}
		}
		minima[j] = m
		if math.IsNaN(m) {
			undefined = append(undefined, j)
		}
	}

	return minima, undefined
}

// AdditiveEpsilon returns max over rows r of x of the min over rows c of y of
// max_k (c_k - r_k). Rows of x are split into chunks scanned by at most procs
// goroutines. x and y must be non-empty with the same number of columns.
func AdditiveEpsilon(x, y *mat.Dense, procs uint) float64 {
	xr, dim := x.Dims()
	yr, _ := y.Dims()

	chunks := common.Chunks(uint(xr), procs)
	partial := make([]float64, len(chunks))
	p := pool.New().WithMaxGoroutines(len(chunks))
	for k, c := range chunks {
		k, c := k, c
		p.Go(func() {
			diff := make([]float64, dim)
			eps := math.Inf(-1)
			for i := int(c.Begin); i < int(c.End); i++ {
				xi := x.RawRowView(i)
				epsJ := math.Inf(1)
				for j := 0; j < yr; j++ {
					floats.SubTo(diff, y.RawRowView(j), xi)
					epsJ = min(epsJ, floats.Max(diff))
				}
				eps = max(eps, epsJ)
			}
			partial[k] = eps
		})
	}
	p.Wait()

	return floats.Max(partial)
}
