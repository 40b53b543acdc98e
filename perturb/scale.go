/*
 * scale.go, part of automl-autoplex.
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

package perturb

import (
	"math"
	"sort"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// defaultScaleFactors is the strain set used when the caller supplies
// neither a range nor custom factors.
var defaultScaleFactors = []float64{0.90, 0.95, 0.98, 0.99, 1.01, 1.02, 1.05, 1.10}

// ScaleOptions controls volumetric strain generation. Exactly one of
// ScaleRange and CustomFactors may be set; with neither, a fixed default
// factor set is used and a warning logged.
type ScaleOptions struct {
	ScaleRange    []float64 //[low, high] volume-factor bounds, inclusive
	NStructures   int       //number of factors when ScaleRange is set, default 10
	CustomFactors []float64 //explicit volume factors, used verbatim
}

// ScaleCell produces one configuration per volume scale factor s, with the
// lattice set to s^(1/3) times the original and the atoms following the cell
// (fractional coordinates fixed). When a range is given the factors are
// linearly spaced between the bounds inclusive and the neutral factor 1.0 is
// inserted if absent, so the undistorted cell is always part of the output.
func ScaleCell(c *autoplex.Conf, o *ScaleOptions) ([]*autoplex.Conf, error) {
	if c == nil {
		return nil, autoplex.NewError("ScaleCell", "nil configuration")
	}
	if o == nil {
		o = &ScaleOptions{}
	}
	if len(o.ScaleRange) > 0 && len(o.CustomFactors) > 0 {
		return nil, autoplex.NewError("ScaleCell", "ScaleRange and CustomFactors are mutually exclusive")
	}
	var factors []float64
	switch {
	case len(o.CustomFactors) > 0:
		factors = append(factors, o.CustomFactors...)
	case len(o.ScaleRange) > 0:
		if len(o.ScaleRange) != 2 || o.ScaleRange[0] > o.ScaleRange[1] {
			return nil, autoplex.NewError("ScaleCell", "ScaleRange must be [low, high] with low <= high")
		}
		n := o.NStructures
		if n <= 0 {
			n = 10
		}
		factors = linspace(o.ScaleRange[0], o.ScaleRange[1], n)
		factors = insertNeutral(factors)
	default:
		log.Warning("no scale factors given, using default set")
		factors = append(factors, defaultScaleFactors...)
	}
	out := make([]*autoplex.Conf, 0, len(factors))
	for _, s := range factors {
		n := c.Copy()
		scaled := c.Lattice.Clone()
		scaled.Scale(math.Cbrt(s), scaled.Dense)
		if err := n.SetCell(scaled, true); err != nil {
			return nil, errDecorate(err, "ScaleCell")
		}
		out = append(out, n)
	}
	return out, nil
}

func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// insertNeutral adds the factor 1.0 to a sorted factor list if no factor
// is already within 1e-9 of it.
func insertNeutral(factors []float64) []float64 {
	for _, f := range factors {
		if math.Abs(f-1.0) < 1e-9 {
			return factors
		}
	}
	factors = append(factors, 1.0)
	sort.Float64s(factors)
	return factors
}
