/*
 * hull3d.go, part of automl-autoplex.
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

package hull

import (
	"math"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Point3 is one configuration's coordinates in the volume-stoichiometry
// hull space: mole fraction of the second element, volume per atom (Å^3)
// and formation energy per atom (eV).
type Point3 struct {
	X float64
	V float64
	E float64
}

// PointsXVE maps configurations of a two-component system to 3-D hull
// points. elementOrder fixes the composition axis: X is the mole fraction
// of elementOrder[1]. Symbols outside elementOrder, and element lists that
// are not exactly two long, are hard errors. The returned index slice maps
// points back to configurations.
func PointsXVE(confs []*autoplex.Conf, isol map[string]float64, label string, elementOrder []string) ([]Point3, []int, error) {
	if len(isol) == 0 {
		return nil, nil, autoplex.NewError("PointsXVE", "isolated-atom energies are required for hull construction")
	}
	if len(elementOrder) != 2 {
		return nil, nil, autoplex.NewError("PointsXVE",
			"volume-stoichiometry hulls need exactly 2 elements, got %d", len(elementOrder))
	}
	var points []Point3
	var idx []int
	for i, c := range confs {
		if referenceConfigTypes[c.Info.ConfigType] {
			continue
		}
		e, err := FormationEnergyPerAtom(c, isol, label)
		if err != nil {
			return nil, nil, errDecorate(err, "PointsXVE")
		}
		second := 0
		for _, s := range c.Symbols {
			switch s {
			case elementOrder[0]:
			case elementOrder[1]:
				second++
			default:
				return nil, nil, autoplex.NewError("PointsXVE",
					"species %s not in the element order %v", s, elementOrder)
			}
		}
		points = append(points, Point3{
			X: float64(second) / float64(c.Len()),
			V: c.Volume() / float64(c.Len()),
			E: e,
		})
		idx = append(idx, i)
	}
	return points, idx, nil
}

// Facet is one triangular face of a 3-D hull, given as indices into the
// point slice it was built from.
type Facet [3]int

type vec3 [3]float64

func (p Point3) vec() vec3 { return vec3{p.X, p.V, p.E} }

func sub3(a, b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross3(a, b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Hull3D computes the convex hull of the points by incremental insertion.
// A degenerate (coplanar or smaller) point set is a hard error; for such
// systems the linear-hull scheme is the right tool.
func Hull3D(points []Point3) ([]Facet, error) {
	n := len(points)
	if n < 4 {
		return nil, autoplex.NewError("Hull3D", "need at least 4 points, got %d", n)
	}
	v := make([]vec3, n)
	scale := 0.0
	for i, p := range points {
		v[i] = p.vec()
		for _, x := range v[i] {
			if a := math.Abs(x); a > scale {
				scale = a
			}
		}
	}
	if scale == 0 {
		scale = 1
	}
	eps := 1e-9 * scale
	i0, i1, i2, i3, err := initialTetrahedron(v, eps)
	if err != nil {
		return nil, err
	}
	interior := vec3{}
	for _, i := range []int{i0, i1, i2, i3} {
		for k := 0; k < 3; k++ {
			interior[k] += v[i][k] / 4
		}
	}
	facets := []Facet{{i0, i1, i2}, {i0, i1, i3}, {i0, i2, i3}, {i1, i2, i3}}
	for fi := range facets {
		facets[fi] = orient(facets[fi], v, interior)
	}
	used := map[int]bool{i0: true, i1: true, i2: true, i3: true}
	for p := 0; p < n; p++ {
		if used[p] {
			continue
		}
		facets = addPoint(facets, v, interior, p, eps)
	}
	return facets, nil
}

// initialTetrahedron picks four points spanning a non-degenerate volume.
func initialTetrahedron(v []vec3, eps float64) (int, int, int, int, error) {
	degenerate := autoplex.NewError("Hull3D", "degenerate point set, the points span less than 3 dimensions")
	i0 := 0
	i1, best := -1, eps
	for i := 1; i < len(v); i++ {
		d := sub3(v[i], v[i0])
		if l := math.Sqrt(dot3(d, d)); l > best {
			i1, best = i, l
		}
	}
	if i1 < 0 {
		return 0, 0, 0, 0, degenerate
	}
	dir := sub3(v[i1], v[i0])
	i2, best := -1, eps
	for i := 0; i < len(v); i++ {
		if i == i0 || i == i1 {
			continue
		}
		c := cross3(dir, sub3(v[i], v[i0]))
		if l := math.Sqrt(dot3(c, c)); l > best {
			i2, best = i, l
		}
	}
	if i2 < 0 {
		return 0, 0, 0, 0, degenerate
	}
	normal := cross3(dir, sub3(v[i2], v[i0]))
	i3, best := -1, eps
	for i := 0; i < len(v); i++ {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		if h := math.Abs(dot3(normal, sub3(v[i], v[i0]))); h > best {
			i3, best = i, h
		}
	}
	if i3 < 0 {
		return 0, 0, 0, 0, degenerate
	}
	return i0, i1, i2, i3, nil
}

// orient flips the facet if needed so its normal points away from the
// interior reference point.
func orient(f Facet, v []vec3, interior vec3) Facet {
	n := facetNormal(f, v)
	if dot3(n, sub3(interior, v[f[0]])) > 0 {
		f[1], f[2] = f[2], f[1]
	}
	return f
}

func facetNormal(f Facet, v []vec3) vec3 {
	return cross3(sub3(v[f[1]], v[f[0]]), sub3(v[f[2]], v[f[0]]))
}

// addPoint performs one incremental-insertion step: remove the facets the
// point can see, stitch the horizon with new facets through the point.
func addPoint(facets []Facet, v []vec3, interior vec3, p int, eps float64) []Facet {
	var visible, kept []Facet
	for _, f := range facets {
		n := facetNormal(f, v)
		if dot3(n, sub3(v[p], v[f[0]])) > eps {
			visible = append(visible, f)
		} else {
			kept = append(kept, f)
		}
	}
	if len(visible) == 0 {
		return facets //point inside the current hull
	}
	//horizon edges are those appearing in exactly one visible facet
	edgeCount := make(map[[2]int]int)
	for _, f := range visible {
		for _, e := range [][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}} {
			edgeCount[edgeKey(e)]++
		}
	}
	out := kept
	for e, cnt := range edgeCount {
		if cnt != 1 {
			continue
		}
		out = append(out, orient(Facet{e[0], e[1], p}, v, interior))
	}
	return out
}

func edgeKey(e [2]int) [2]int {
	if e[0] > e[1] {
		e[0], e[1] = e[1], e[0]
	}
	return e
}

// LowerFacets keeps only facets whose outward normal points downward in
// energy; those form the thermodynamic stability surface.
func LowerFacets(points []Point3, facets []Facet) []Facet {
	v := make([]vec3, len(points))
	for i, p := range points {
		v[i] = p.vec()
	}
	var lower []Facet
	for _, f := range facets {
		if facetNormal(f, v)[2] < 0 {
			lower = append(lower, f)
		}
	}
	return lower
}

// DistanceToHull3D returns the energy gap between the point and the lower
// hull surface at the point's (X, V) coordinates. The containing facet is
// located by barycentric coordinates in the (X, V) projection; when
// floating-point noise leaves the query just outside every facet, the
// facet it violates least is used.
func DistanceToHull3D(points []Point3, lower []Facet, p Point3) (float64, error) {
	if len(lower) == 0 {
		return 0, autoplex.NewError("DistanceToHull3D", "empty lower hull")
	}
	bestViolation := math.Inf(1)
	bestGap := 0.0
	for _, f := range lower {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		den := (b.V-c.V)*(a.X-c.X) + (c.X-b.X)*(a.V-c.V)
		if math.Abs(den) < 1e-300 {
			continue
		}
		l1 := ((b.V-c.V)*(p.X-c.X) + (c.X-b.X)*(p.V-c.V)) / den
		l2 := ((c.V-a.V)*(p.X-c.X) + (a.X-c.X)*(p.V-c.V)) / den
		l3 := 1 - l1 - l2
		violation := 0.0
		for _, l := range []float64{l1, l2, l3} {
			if l < 0 {
				violation -= l
			}
		}
		if violation < bestViolation {
			bestViolation = violation
			planeE := l1*a.E + l2*b.E + l3*c.E
			bestGap = p.E - planeE
		}
	}
	if math.IsInf(bestViolation, 1) {
		return 0, autoplex.NewError("DistanceToHull3D", "no facet projects onto the query point")
	}
	return bestGap, nil
}
