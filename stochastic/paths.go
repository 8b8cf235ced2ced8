package stochastic

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Paths is a value with one realisation per simulation path.
type Paths []float64

// NewPaths returns a copy of 'realisations' as Paths.
func NewPaths(realisations ...float64) Paths { return Paths(slices.Clone(realisations)) }

// Scale returns a new Paths with every realisation multiplied by w.
func (p Paths) Scale(w float64) Value {
	dst := slices.Clone(p)
	floats.Scale(w, dst)
	return Paths(dst)
}

// Add returns the path-wise sum.
//
// A Scalar is added to every path. Adding Paths of different sizes is a
// programming error and panics. Other values are left to add p themselves.
func (p Paths) Add(o Value) Value {
	dst := slices.Clone(p)
	switch v := o.(type) {
	case Scalar:
		floats.AddConst(float64(v), dst)
	case Paths:
		if len(v) != len(p) {
			panic(fmt.Sprintf("stochastic: adding %d paths to %d paths", len(v), len(p)))
		}
		floats.Add(dst, v)
	default:
		return o.Add(p)
	}
	return Paths(dst)
}

// Average returns the mean over all paths, 0 when there are none.
func (p Paths) Average() float64 {
	if len(p) == 0 {
		return 0
	}
	return stat.Mean(p, nil)
}

// StdDev returns the sample standard deviation over all paths.
func (p Paths) StdDev() float64 {
	if len(p) < 2 {
		return 0
	}
	return stat.StdDev(p, nil)
}

func (p Paths) Size() int { return len(p) }

// Get returns the realisation on path i.
func (p Paths) Get(i int) float64 { return p[i] }
