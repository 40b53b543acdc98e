/*
 * supercell.go, part of automl-autoplex.
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

//Package supercell searches for an integer transformation matrix turning a
//unit cell into a supercell that satisfies lattice-length and atom-count
//windows. The search relaxes its shape constraints in tiers and reports
//which tier succeeded; when every tier fails for every trial length, a
//deterministic diagonal scaling guarantees an answer.
package supercell

import (
	"fmt"
	"math"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/logger"
)

var log = logger.NewLogger("INFO", "supercell")

// Tier identifies which stage of the constraint relaxation produced a
// transformation matrix.
type Tier int

const (
	//TierCubic found a diagonal matrix with all supercell angles at 90°.
	TierCubic Tier = iota
	//TierAngles found a diagonal matrix with the 90° forcing relaxed.
	TierAngles
	//TierGeneral found a matrix with off-diagonal entries.
	TierGeneral
	//TierFallback used the deterministic diagonal scaling.
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierCubic:
		return "cubic"
	case TierAngles:
		return "angles-relaxed"
	case TierGeneral:
		return "general"
	case TierFallback:
		return "fallback"
	}
	return "unknown"
}

// Params bounds the supercell search. Zero values take the defaults noted
// on each field.
type Params struct {
	MinLength         float64 //Å, default 18
	MaxLength         float64 //Å, default 22
	FallbackMinLength float64 //Å, lowest trial length before giving up, default 12
	MinAtoms          int     //default 100
	MaxAtoms          int     //default 500
	StepSize          float64 //Å, trial-length decrement, default 1
}

func (p *Params) withDefaults() Params {
	out := Params{MinLength: 18, MaxLength: 22, FallbackMinLength: 12,
		MinAtoms: 100, MaxAtoms: 500, StepSize: 1}
	if p == nil {
		return out
	}
	if p.MinLength > 0 {
		out.MinLength = p.MinLength
	}
	if p.MaxLength > 0 {
		out.MaxLength = p.MaxLength
	}
	if p.FallbackMinLength > 0 {
		out.FallbackMinLength = p.FallbackMinLength
	}
	if p.MinAtoms > 0 {
		out.MinAtoms = p.MinAtoms
	}
	if p.MaxAtoms > 0 {
		out.MaxAtoms = p.MaxAtoms
	}
	if p.StepSize > 0 {
		out.StepSize = p.StepSize
	}
	return out
}

// angleTol is how far from 90° a supercell angle may stray in the cubic
// tier, in degrees.
const angleTol = 0.1

// FindMatrix searches for a supercell transformation satisfying the given
// bounds, trying trial minimum lengths from MinLength down to
// FallbackMinLength and, per length, three tiers of shape relaxation. The
// returned matrix is the transpose of the transformation, matching the
// row convention of MakeSupercell. It never fails for a configuration
// with a valid lattice: the diagonal fallback always produces a
// non-singular matrix.
func FindMatrix(c *autoplex.Conf, p *Params) ([3][3]int, Tier, error) {
	var zero [3][3]int
	if c == nil || c.Lattice == nil {
		return zero, TierFallback, autoplex.NewError("FindMatrix", "configuration with a lattice is required")
	}
	par := p.withDefaults()
	lens := autoplex.LatticeLengths(c.Lattice)
	for trial := par.MinLength; trial >= par.FallbackMinLength-1e-9; trial -= par.StepSize {
		for tier := TierCubic; tier <= TierGeneral; tier++ {
			if t, ok := searchTier(c, lens, trial, par, tier); ok {
				return t, tier, nil
			}
		}
	}
	log.Warningf("no supercell matrix satisfies the bounds, using the diagonal fallback")
	return fallbackMatrix(lens, par.MaxLength), TierFallback, nil
}

// searchTier enumerates candidate matrices for one tier and trial length
// and returns the best feasible one. Candidates are visited in a fixed
// order and compared by anisotropy then atom count, so the result is
// deterministic.
func searchTier(c *autoplex.Conf, lens [3]float64, trial float64, p Params, tier Tier) ([3][3]int, bool) {
	minLen := math.Min(lens[0], math.Min(lens[1], lens[2]))
	maxDiag := int(p.MaxLength/minLen) + 1
	if maxDiag < 1 {
		maxDiag = 1
	}
	if maxDiag > 10 {
		maxDiag = 10
	}
	best := [3][3]int{}
	bestAniso := math.Inf(1)
	bestAtoms := 0
	found := false
	consider := func(cand [3][3]int) {
		//candidates are enumerated in the column convention; the transpose
		//is what MakeSupercell applies row-wise
		t := transpose(cand)
		aniso, atoms, ok := feasible(c, t, trial, p, tier)
		if !ok {
			return
		}
		if aniso < bestAniso-1e-12 || (math.Abs(aniso-bestAniso) <= 1e-12 && atoms < bestAtoms) {
			best, bestAniso, bestAtoms, found = t, aniso, atoms, true
		}
	}
	for d0 := 1; d0 <= maxDiag; d0++ {
		for d1 := 1; d1 <= maxDiag; d1++ {
			for d2 := 1; d2 <= maxDiag; d2++ {
				if tier != TierGeneral {
					consider([3][3]int{{d0, 0, 0}, {0, d1, 0}, {0, 0, d2}})
					continue
				}
				for o0 := -1; o0 <= 1; o0++ {
					for o1 := -1; o1 <= 1; o1++ {
						for o2 := -1; o2 <= 1; o2++ {
							consider([3][3]int{{d0, o0, o1}, {0, d1, o2}, {0, 0, d2}})
						}
					}
				}
			}
		}
	}
	return best, found
}

// feasible checks one candidate against the tier's constraints, returning
// its anisotropy (longest over shortest supercell length) and atom count.
func feasible(c *autoplex.Conf, t [3][3]int, trial float64, p Params, tier Tier) (float64, int, bool) {
	det := autoplex.DetInt(t)
	if det == 0 {
		return 0, 0, false
	}
	atoms := int(math.Abs(float64(det))) * c.Len()
	if atoms < p.MinAtoms || atoms > p.MaxAtoms {
		return 0, 0, false
	}
	super := autoplex.TransformLattice(t, c.Lattice)
	sl := autoplex.LatticeLengths(super)
	lo, hi := sl[0], sl[0]
	for _, l := range sl[1:] {
		lo = math.Min(lo, l)
		hi = math.Max(hi, l)
	}
	if lo < trial || hi > p.MaxLength {
		return 0, 0, false
	}
	if tier == TierCubic {
		par := autoplex.CellPar(super)
		for i := 3; i < 6; i++ {
			if math.Abs(par[i]-90) > angleTol {
				return 0, 0, false
			}
		}
	}
	return hi / lo, atoms, true
}

// fallbackMatrix scales each lattice vector by max(floor(maxLength/len), 1).
func fallbackMatrix(lens [3]float64, maxLength float64) [3][3]int {
	var t [3][3]int
	for i := 0; i < 3; i++ {
		s := int(maxLength / lens[i])
		if s < 1 {
			s = 1
		}
		t[i][i] = s
	}
	return t
}

func transpose(t [3][3]int) [3][3]int {
	var out [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = t[i][j]
		}
	}
	return out
}

// Check validates already-built supercells against the length and atom
// bounds widened by the relative tolerance tol. Violations are logged as
// warnings, never raised: an out-of-tolerance supercell is still usable
// training data, just worth knowing about.
func Check(confs []*autoplex.Conf, names []string, p *Params, tol float64) {
	par := p.withDefaults()
	for i, c := range confs {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		for _, v := range violations(c, par, tol) {
			log.Warningf("supercell %s: %s", name, v)
		}
	}
}

// violations collects the out-of-tolerance findings for one supercell. The
// lower length bound is the fallback floor, so fallback-tier cells pass.
func violations(c *autoplex.Conf, par Params, tol float64) []string {
	var out []string
	if c.Len() < int(float64(par.MinAtoms)*(1-tol)) || c.Len() > int(float64(par.MaxAtoms)*(1+tol)) {
		out = append(out, fmt.Sprintf("%d atoms outside [%d, %d]", c.Len(), par.MinAtoms, par.MaxAtoms))
	}
	if c.Lattice == nil {
		return append(out, "no lattice to validate")
	}
	lens := autoplex.LatticeLengths(c.Lattice)
	for k, l := range lens {
		if l < par.FallbackMinLength*(1-tol) || l > par.MaxLength*(1+tol) {
			out = append(out, fmt.Sprintf("lattice length %d = %.2f Å outside [%.2f, %.2f]",
				k, l, par.FallbackMinLength, par.MaxLength))
		}
	}
	return out
}
