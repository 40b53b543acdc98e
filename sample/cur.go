/*
 * cur.go, part of automl-autoplex.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sample

import (
	"math"
	"sort"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/descriptor"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// CUROptions controls diversity selection.
type CUROptions struct {
	Computer   descriptor.Computer //required
	KernelExp  int                 //elementwise power of the Gram matrix; 0 decomposes the raw descriptor matrix
	N          int                 //number of configurations to select
	Stochastic bool                //draw with probability proportional to leverage instead of top-k
	Workers    int                 //descriptor workers, <= 0 means one per CPU
	Seed       uint64              //stochastic mode only
}

// CUR selects a diverse subset of the pool via leverage scores from a
// truncated singular value decomposition of the descriptor kernel. The
// output keeps the pool's index order, never exceeds the pool size and
// never contains the same configuration twice. An empty pool selects
// nothing, without attempting a decomposition.
func CUR(confs []*autoplex.Conf, o *CUROptions) ([]*autoplex.Conf, error) {
	if o == nil || o.Computer == nil {
		return nil, autoplex.NewError("CUR", "a descriptor computer is required")
	}
	if len(confs) == 0 {
		return nil, nil
	}
	if o.N <= 0 {
		return nil, autoplex.NewError("CUR", "nothing to select, N = %d", o.N)
	}
	if o.N >= len(confs) {
		return append([]*autoplex.Conf{}, confs...), nil
	}
	scores, err := LeverageScores(confs, o.Computer, o.KernelExp, o.N, o.Workers)
	if err != nil {
		return nil, errDecorate(err, "CUR")
	}
	var picked []int
	if o.Stochastic {
		rng := rand.New(rand.NewSource(o.Seed))
		a := newArena(scores)
		for i := 0; i < o.N; i++ {
			picked = append(picked, a.draw(rng))
		}
	} else {
		picked = topK(scores, o.N)
	}
	sort.Ints(picked)
	out := make([]*autoplex.Conf, 0, len(picked))
	for _, ix := range picked {
		out = append(out, confs[ix])
	}
	return out, nil
}

// LeverageScores computes one CUR leverage score per configuration: the
// mean squared right-singular-vector component over the retained singular
// components. The truncation rank is max(1, nSelect/2), capped at one
// below the smaller matrix dimension to keep the decomposition well-posed.
func LeverageScores(confs []*autoplex.Conf, comp descriptor.Computer, kernelExp, nSelect, workers int) ([]float64, error) {
	vecs, err := descriptor.Map(confs, comp, workers)
	if err != nil {
		return nil, errDecorate(err, "LeverageScores")
	}
	n := len(vecs)
	d := len(vecs[0])
	//descriptor matrix with one configuration per column
	D := mat.NewDense(d, n, nil)
	for j, v := range vecs {
		for i, x := range v {
			D.Set(i, j, x)
		}
	}
	var target *mat.Dense
	if kernelExp > 0 {
		K := mat.NewDense(n, n, nil)
		K.Mul(D.T(), D)
		if kernelExp > 1 {
			K.Apply(func(_, _ int, v float64) float64 {
				return math.Pow(v, float64(kernelExp))
			}, K)
		}
		target = K
	} else {
		target = D
	}
	rows, cols := target.Dims()
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	k := nSelect / 2
	if k < 1 {
		k = 1
	}
	if k > minDim-1 {
		k = minDim - 1
	}
	if k < 1 {
		k = 1
	}
	var svd mat.SVD
	if ok := svd.Factorize(target, mat.SVDThin); !ok {
		return nil, autoplex.NewError("LeverageScores", "singular value decomposition failed")
	}
	var V mat.Dense
	svd.VTo(&V)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < k; j++ {
			v := V.At(i, j)
			s += v * v
		}
		scores[i] = s / float64(k)
	}
	return scores, nil
}

// topK returns the indices of the k largest scores, ties broken by index
// order, in no particular output order.
func topK(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx[:k]
}
