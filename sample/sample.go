/*
 * sample.go, part of automl-autoplex.
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

//Package sample selects training subsets from pools of candidate
//configurations. CUR picks for descriptor diversity via leverage scores
//from a truncated SVD; BoltzmannHist resamples by enthalpy with a
//Boltzmann-tempered flat histogram; HullBoltzmann does the same with the
//convex-hull distance as the energy proxy. The samplers draw without
//replacement, so no configuration is ever selected twice in one call.
package sample

import (
	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/logger"
	"golang.org/x/exp/rand"
)

var log = logger.NewLogger("INFO", "sample")

func errDecorate(err error, caller string) error {
	err2, ok := err.(autoplex.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// Flatten merges nested configuration pools into one flat pool, keeping
// the order of the input pools and of the configurations within each.
func Flatten(pools ...[]*autoplex.Conf) []*autoplex.Conf {
	total := 0
	for _, p := range pools {
		total += len(p)
	}
	out := make([]*autoplex.Conf, 0, total)
	for _, p := range pools {
		out = append(out, p...)
	}
	return out
}

// arena supports weighted sampling without replacement. Drawn entries are
// swap-removed, so each draw is O(n) for the CDF walk but removal is O(1)
// and never invalidates the remaining indices.
type arena struct {
	idx     []int
	weights []float64
}

func newArena(weights []float64) *arena {
	a := &arena{
		idx:     make([]int, len(weights)),
		weights: append([]float64{}, weights...),
	}
	for i := range a.idx {
		a.idx[i] = i
	}
	return a
}

func (a *arena) len() int { return len(a.idx) }

// draw picks one remaining index with probability proportional to its
// weight, removes it and returns it. With all remaining weights zero the
// draw degrades to uniform.
func (a *arena) draw(rng *rand.Rand) int {
	total := 0.0
	for _, w := range a.weights {
		total += w
	}
	var pick int
	if total <= 0 {
		pick = rng.Intn(len(a.idx))
	} else {
		r := rng.Float64() * total
		acc := 0.0
		pick = len(a.idx) - 1
		for i, w := range a.weights {
			acc += w
			if r < acc {
				pick = i
				break
			}
		}
	}
	chosen := a.idx[pick]
	last := len(a.idx) - 1
	a.idx[pick] = a.idx[last]
	a.weights[pick] = a.weights[last]
	a.idx = a.idx[:last]
	a.weights = a.weights[:last]
	return chosen
}
