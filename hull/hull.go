/*
 * hull.go, part of automl-autoplex.
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

//Package hull builds convex hulls of formation-energy points and measures
//each configuration's distance above the hull. The distance replaces the raw
//enthalpy as the energy proxy when the sampler runs in hull mode: structures
//close to the hull are thermodynamically interesting regardless of their
//absolute energy.
//
//Two schemes are available, a 2-D hull over (volume-per-atom,
//energy-per-atom) and a 3-D hull over (mole fraction, volume-per-atom,
//energy-per-atom) for two-component systems. Extending the second scheme to
//more components is an open limitation, not something the code papers over.
package hull

import (
	"sort"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Point is one configuration's coordinates in the 2-D hull space:
// volume per atom (Å^3) against formation energy per atom (eV).
type Point struct {
	V float64
	E float64
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(autoplex.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// FormationEnergyPerAtom returns (E - sum of isolated-atom reference
// energies)/natoms for the energy stored under the given label. A species
// missing from isol is a hard error.
func FormationEnergyPerAtom(c *autoplex.Conf, isol map[string]float64, label string) (float64, error) {
	e, err := c.EnergyLabel(label)
	if err != nil {
		return 0, errDecorate(err, "FormationEnergyPerAtom")
	}
	for _, s := range c.Symbols {
		ref, ok := isol[s]
		if !ok {
			return 0, autoplex.NewError("FormationEnergyPerAtom",
				"no isolated-atom energy for species %s", s)
		}
		e -= ref
	}
	return e / float64(c.Len()), nil
}

// referenceConfigTypes tags configurations that exist only to pin the
// isolated-atom references; they never enter the hull itself.
var referenceConfigTypes = map[string]bool{
	"isolated_atom": true,
	"IsolatedAtom":  true,
	"dimer":         true,
}

// PointsEV maps configurations to 2-D hull points, skipping isolated-atom
// and dimer reference configurations. The returned index slice maps each
// point back to its configuration.
func PointsEV(confs []*autoplex.Conf, isol map[string]float64, label string) ([]Point, []int, error) {
	if len(isol) == 0 {
		return nil, nil, autoplex.NewError("PointsEV", "isolated-atom energies are required for hull construction")
	}
	var points []Point
	var idx []int
	for i, c := range confs {
		if referenceConfigTypes[c.Info.ConfigType] {
			continue
		}
		e, err := FormationEnergyPerAtom(c, isol, label)
		if err != nil {
			return nil, nil, errDecorate(err, "PointsEV")
		}
		points = append(points, Point{V: c.Volume() / float64(c.Len()), E: e})
		idx = append(idx, i)
	}
	return points, idx, nil
}

// Lower returns the lower convex hull of the points, ordered by increasing
// V, via the monotone-chain construction. At least one point is required.
func Lower(points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, autoplex.NewError("Lower", "no points to build a hull from")
	}
	sorted := append([]Point{}, points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].V != sorted[j].V {
			return sorted[i].V < sorted[j].V
		}
		return sorted[i].E < sorted[j].E
	})
	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	return lower, nil
}

// cross is the z-component of (b-a) x (c-a); positive when c lies above
// the a-b line, so keeping only non-positive turns builds the lower chain.
func cross(a, b, c Point) float64 {
	return (b.V-a.V)*(c.E-a.E) - (b.E-a.E)*(c.V-a.V)
}

// Interp evaluates the lower hull at volume v, clamping outside the hull's
// volume range to the nearest endpoint energy.
func Interp(lower []Point, v float64) float64 {
	if len(lower) == 1 || v <= lower[0].V {
		return lower[0].E
	}
	last := lower[len(lower)-1]
	if v >= last.V {
		return last.E
	}
	i := sort.Search(len(lower), func(i int) bool { return lower[i].V >= v })
	a, b := lower[i-1], lower[i]
	t := (v - a.V) / (b.V - a.V)
	return a.E + t*(b.E-a.E)
}

// DistanceToLower returns the vertical energy gap between the point and
// the lower hull at the point's volume. Hull members come out at zero up
// to floating-point noise; the gap is never meaningfully negative for
// points that participated in building the hull.
func DistanceToLower(lower []Point, p Point) float64 {
	return p.E - Interp(lower, p.V)
}
