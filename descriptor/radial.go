/*
 * radial.go, part of automl-autoplex.
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

package descriptor

import (
	"math"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Radial is a Gaussian-smeared pair-distance histogram descriptor. One
// channel of NBins bins per unordered species pair, concatenated in pair
// order, the whole vector normalized by the atom count so cells of
// different sizes remain comparable.
type Radial struct {
	Species []string //closed species list, fixes the channel layout
	Cutoff  float64  //Å, default 5.0
	NBins   int      //bins per pair channel, default 40
	Sigma   float64  //Å, smearing width, default 0.5

	pairIdx map[[2]string]int
	nPairs  int
}

// NewRadial builds a Radial descriptor computer over the given species.
// Zero-valued parameters take their defaults.
func NewRadial(species []string, cutoff float64, nbins int, sigma float64) (*Radial, error) {
	if len(species) == 0 {
		return nil, autoplex.NewError("NewRadial", "empty species list")
	}
	if cutoff == 0 {
		cutoff = 5.0
	}
	if nbins == 0 {
		nbins = 40
	}
	if sigma == 0 {
		sigma = 0.5
	}
	if cutoff < 0 || nbins < 0 || sigma < 0 {
		return nil, autoplex.NewError("NewRadial", "negative descriptor parameter")
	}
	r := &Radial{Species: species, Cutoff: cutoff, NBins: nbins, Sigma: sigma}
	r.pairIdx = make(map[[2]string]int)
	for i := 0; i < len(species); i++ {
		for j := i; j < len(species); j++ {
			k := pairKey(species[i], species[j])
			if _, dup := r.pairIdx[k]; dup {
				return nil, autoplex.NewError("NewRadial", "duplicate species %s", species[i])
			}
			r.pairIdx[k] = r.nPairs
			r.nPairs++
		}
	}
	return r, nil
}

// Len returns the descriptor vector length.
func (R *Radial) Len() int {
	return R.nPairs * R.NBins
}

// Vector computes the descriptor for one configuration. Symbols outside
// the computer's species list are a hard error, since they would need a
// channel the layout does not have.
func (R *Radial) Vector(c *autoplex.Conf) ([]float64, error) {
	if c == nil || c.Len() == 0 {
		return nil, autoplex.NewError("Radial.Vector", "nil or empty configuration")
	}
	for _, s := range c.Symbols {
		if _, ok := R.pairIdx[pairKey(s, s)]; !ok {
			return nil, autoplex.NewError("Radial.Vector", "species %s not in descriptor species list", s)
		}
	}
	vec := make([]float64, R.Len())
	width := R.Cutoff / float64(R.NBins)
	inv2s2 := 1 / (2 * R.Sigma * R.Sigma)
	for i := 0; i < c.Len(); i++ {
		for j := i + 1; j < c.Len(); j++ {
			d := c.DistanceMIC(i, j)
			if d >= R.Cutoff+3*R.Sigma {
				continue
			}
			ch := R.pairIdx[pairKey(c.Symbols[i], c.Symbols[j])]
			base := ch * R.NBins
			for b := 0; b < R.NBins; b++ {
				r := (float64(b) + 0.5) * width
				vec[base+b] += math.Exp(-(d - r) * (d - r) * inv2s2)
			}
		}
	}
	norm := 1 / float64(c.Len())
	for i := range vec {
		vec[i] *= norm
	}
	return vec, nil
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
