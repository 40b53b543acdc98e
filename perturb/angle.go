/*
 * angle.go, part of automl-autoplex.
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
)

// AngleOptions controls lattice-angle distortion. AngleIndices selects
// which of alpha (0), beta (1), gamma (2) get perturbed; the zero value
// perturbs all three.
type AngleOptions struct {
	MinDistance     float64 //Å, acceptance floor, default 1.5
	PercentageScale float64 //maximum angle change in percent, default 10
	AngleIndices    []int   //subset of {0, 1, 2}, default all
	NStructures     int     //default 8
	MaxAttempts     int     //rejection-loop bound per structure, default 1000
	Seed            uint64
}

// RandomVaryAngle generates NStructures configurations whose lattice angles
// are randomly distorted by an integer percentage within
// ±PercentageScale percent. Before distorting, the cell is stretched by a
// fixed 3% volume factor to create slack for the angle changes. Each
// candidate must pass the minimum-image distance check; a candidate failing
// it is re-drawn, and exhausting MaxAttempts for any single target aborts
// the whole call.
func RandomVaryAngle(c *autoplex.Conf, o *AngleOptions) ([]*autoplex.Conf, error) {
	if c == nil {
		return nil, autoplex.NewError("RandomVaryAngle", "nil configuration")
	}
	if c.Lattice == nil {
		return nil, autoplex.NewError("RandomVaryAngle", "configuration has no lattice")
	}
	if o == nil {
		o = &AngleOptions{}
	}
	minDist := o.MinDistance
	if minDist == 0 {
		minDist = 1.5
	}
	pct := o.PercentageScale
	if pct == 0 {
		pct = 10
	}
	indices := o.AngleIndices
	if len(indices) == 0 {
		indices = []int{0, 1, 2}
	}
	for _, ix := range indices {
		if ix < 0 || ix > 2 {
			return nil, autoplex.NewError("RandomVaryAngle", "angle index %d out of range [0,2]", ix)
		}
	}
	n := o.NStructures
	if n <= 0 {
		n = 8
	}
	maxAttempts := o.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	rng := rand.New(rand.NewSource(o.Seed))
	out := make([]*autoplex.Conf, 0, n)
	for i := 0; i < n; i++ {
		//stretch first, so the distorted cell has room before atoms collide
		stretched := c.Copy()
		sl := stretched.Lattice.Clone()
		sl.Scale(math.Cbrt(1.03), sl.Dense)
		if err := stretched.SetCell(sl, true); err != nil {
			return nil, errDecorate(err, "RandomVaryAngle")
		}
		par := autoplex.CellPar(stretched.Lattice)
		accepted := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			trialPar := par
			for _, ix := range indices {
				//integer percentage draw in [-pct, pct]
				k := float64(rng.Intn(2*int(pct)+1) - int(pct))
				trialPar[3+ix] = par[3+ix] * (1 + k/100)
			}
			if !validAngles(trialPar) {
				continue
			}
			trial := stretched.Copy()
			if err := trial.SetCell(autoplex.CellFromPar(trialPar), true); err != nil {
				continue
			}
			if CheckDistances(trial, minDist) {
				trial.Info.ConfigType = "angle_distorted"
				out = append(out, trial)
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, autoplex.NewError("RandomVaryAngle",
				"no valid angle distortion found within %d attempts for structure %d", maxAttempts, i)
		}
	}
	return out, nil
}

// validAngles rejects parameter sets whose angles leave the conventional
// cell construction degenerate.
func validAngles(par [6]float64) bool {
	for i := 3; i < 6; i++ {
		if par[i] <= 10 || par[i] >= 170 {
			return false
		}
	}
	cosA := math.Cos(par[3] * autoplex.Deg2Rad)
	cosB := math.Cos(par[4] * autoplex.Deg2Rad)
	cosG := math.Cos(par[5] * autoplex.Deg2Rad)
	//Gram determinant of the angle metric must stay positive
	g := 1 - cosA*cosA - cosB*cosB - cosG*cosG + 2*cosA*cosB*cosG
	return g > 1e-6
}
