/*
 * rattle.go, part of automl-autoplex.
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

	autoplex "github.com/naik-aakash/automl-autoplex"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RattleOptions controls Gaussian rattling.
type RattleOptions struct {
	NStructures int     //default 10
	Std         float64 //Å, default 0.01
	Seed        uint64  //structure i uses Seed+i, default 42
}

// StdRattle generates NStructures copies of the configuration with
// independent Gaussian noise of standard deviation Std added to every
// cartesian coordinate. Structure i is drawn with seed Seed+i, so a run is
// reproducible and no two outputs are identical.
func StdRattle(c *autoplex.Conf, o *RattleOptions) ([]*autoplex.Conf, error) {
	if c == nil {
		return nil, autoplex.NewError("StdRattle", "nil configuration")
	}
	if o == nil {
		o = &RattleOptions{}
	}
	n := o.NStructures
	if n <= 0 {
		n = 10
	}
	std := o.Std
	if std == 0 {
		std = 0.01
	}
	seed := o.Seed
	if seed == 0 {
		seed = 42
	}
	out := make([]*autoplex.Conf, 0, n)
	for i := 0; i < n; i++ {
		norm := distuv.Normal{Mu: 0, Sigma: std, Src: rand.NewSource(seed + uint64(i))}
		r := c.Copy()
		for a := 0; a < r.Len(); a++ {
			for k := 0; k < 3; k++ {
				r.Coords.Set(a, k, r.Coords.At(a, k)+norm.Rand())
			}
		}
		r.Info.ConfigType = "rattled"
		out = append(out, r)
	}
	return out, nil
}

// MCRattleOptions controls Monte-Carlo rattling. The expected displacement
// magnitude grows roughly with sqrt(NIter)*Std.
type MCRattleOptions struct {
	NStructures int     //default 10
	Std         float64 //Å, per-move proposal width, default 0.03
	MinDistance float64 //Å, hard acceptance floor, default 1.9
	NIter       int     //Monte-Carlo sweeps per structure, default 10
	MaxAttempts int     //proposal bound per atom per sweep, default 5000
	Seed        uint64  //structure i uses Seed+i, default 42
}

// MCRattle generates NStructures rattled copies of the configuration via a
// Metropolis-like random walk: for NIter sweeps, each atom's displacement is
// re-drawn until a proposal keeps all of its minimum-image distances above
// MinDistance and passes a soft acceptance that damps near-contact moves.
// An atom exhausting MaxAttempts proposals inside one sweep aborts the call,
// as does an input that already violates MinDistance.
func MCRattle(c *autoplex.Conf, o *MCRattleOptions) ([]*autoplex.Conf, error) {
	if c == nil {
		return nil, autoplex.NewError("MCRattle", "nil configuration")
	}
	if o == nil {
		o = &MCRattleOptions{}
	}
	n := o.NStructures
	if n <= 0 {
		n = 10
	}
	std := o.Std
	if std == 0 {
		std = 0.03
	}
	minDist := o.MinDistance
	if minDist == 0 {
		minDist = 1.9
	}
	nIter := o.NIter
	if nIter <= 0 {
		nIter = 10
	}
	maxAttempts := o.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5000
	}
	seed := o.Seed
	if seed == 0 {
		seed = 42
	}
	if c.Len() > 1 && !CheckDistances(c, minDist) {
		return nil, autoplex.NewError("MCRattle",
			"input configuration already violates the %.3f Å minimum distance", minDist)
	}
	out := make([]*autoplex.Conf, 0, n)
	for i := 0; i < n; i++ {
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		norm := distuv.Normal{Mu: 0, Sigma: std, Src: rng}
		r := c.Copy()
		for sweep := 0; sweep < nIter; sweep++ {
			for a := 0; a < r.Len(); a++ {
				if err := mcMove(r, a, minDist, rng, norm, maxAttempts); err != nil {
					return nil, errDecorate(err, "MCRattle")
				}
			}
		}
		r.Info.ConfigType = "mc_rattled"
		out = append(out, r)
	}
	return out, nil
}

// mcMove displaces atom a by one accepted Monte-Carlo proposal.
func mcMove(c *autoplex.Conf, a int, minDist float64, rng *rand.Rand, norm distuv.Normal, maxAttempts int) error {
	var orig [3]float64
	for k := 0; k < 3; k++ {
		orig[k] = c.Coords.At(a, k)
	}
	const softWidth = 0.1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		for k := 0; k < 3; k++ {
			c.Coords.Set(a, k, orig[k]+norm.Rand())
		}
		d := minDistanceAtom(c, a)
		if d > minDist {
			//soft acceptance damping moves that approach the contact floor
			p := 0.5 * math.Erfc((minDist-d)/softWidth)
			if rng.Float64() < p {
				return nil
			}
		}
	}
	for k := 0; k < 3; k++ {
		c.Coords.Set(a, k, orig[k])
	}
	return autoplex.NewError("mcMove", "no acceptable move for atom %d within %d proposals", a, maxAttempts)
}
