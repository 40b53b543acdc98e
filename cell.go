/*
 * cell.go, part of automl-autoplex.
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

package autoplex

import (
	"math"

	v3 "github.com/naik-aakash/automl-autoplex/v3"
	"gonum.org/v1/gonum/floats"
)

// CellPar returns the cell parameters of a lattice as [a, b, c, alpha, beta,
// gamma], lengths in Å and angles in degrees. Alpha is the angle between
// the b and c vectors, beta between a and c, gamma between a and b.
func CellPar(lattice *v3.Matrix) [6]float64 {
	if lattice == nil {
		panic(ErrNoLattice)
	}
	var par [6]float64
	rows := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		rows[i] = []float64{lattice.At(i, 0), lattice.At(i, 1), lattice.At(i, 2)}
		par[i] = math.Sqrt(floats.Dot(rows[i], rows[i]))
	}
	angle := func(u, v []float64, lu, lv float64) float64 {
		cos := floats.Dot(u, v) / (lu * lv)
		// clamp against roundoff before acos
		cos = math.Max(-1, math.Min(1, cos))
		return math.Acos(cos) * Rad2Deg
	}
	par[3] = angle(rows[1], rows[2], par[1], par[2])
	par[4] = angle(rows[0], rows[2], par[0], par[2])
	par[5] = angle(rows[0], rows[1], par[0], par[1])
	return par
}

// CellFromPar builds a lattice from cell parameters [a, b, c, alpha, beta,
// gamma] (Å and degrees), with the conventional orientation: a along x,
// b in the xy plane.
func CellFromPar(par [6]float64) *v3.Matrix {
	a, b, c := par[0], par[1], par[2]
	cosAlpha := math.Cos(par[3] * Deg2Rad)
	cosBeta := math.Cos(par[4] * Deg2Rad)
	cosGamma := math.Cos(par[5] * Deg2Rad)
	sinGamma := math.Sin(par[5] * Deg2Rad)
	cy := c * (cosAlpha - cosBeta*cosGamma) / sinGamma
	cz2 := c*c - c*c*cosBeta*cosBeta - cy*cy
	if cz2 < 0 {
		cz2 = 0 //roundoff on nearly-degenerate cells
	}
	lattice, _ := v3.NewMatrix([]float64{
		a, 0, 0,
		b * cosGamma, b * sinGamma, 0,
		c * cosBeta, cy, math.Sqrt(cz2),
	})
	return lattice
}

// Frac returns the fractional coordinates of the configuration's atoms,
// i.e. the cartesian coordinates expressed in the lattice basis.
func (C *Conf) Frac() (*v3.Matrix, error) {
	if C.Lattice == nil {
		return nil, NewError("Frac", "configuration has no lattice")
	}
	inv := v3.Zeros(3)
	if err := inv.Inv(C.Lattice); err != nil {
		return nil, errDecorate(err, "Frac")
	}
	f := v3.Zeros(C.Len())
	f.Mul(C.Coords, inv)
	return f, nil
}

// SetCell replaces the lattice of the configuration. If scaleAtoms is true
// the fractional coordinates of the atoms are kept fixed, so the atoms move
// with the cell; otherwise the cartesian coordinates are untouched.
func (C *Conf) SetCell(lattice *v3.Matrix, scaleAtoms bool) error {
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return NewError("SetCell", "lattice must be 3x3, got %dx%d", r, c)
	}
	if scaleAtoms {
		frac, err := C.Frac()
		if err != nil {
			return errDecorate(err, "SetCell")
		}
		C.Coords.Mul(frac, lattice)
	}
	C.Lattice = lattice.Clone()
	return nil
}

// DistanceMIC returns the distance between atoms i and j under the minimum
// image convention: the shortest |r_i - r_j + n·L| over the 27 neighboring
// cell translations n. For the very skewed cells produced by our angle
// distortions one shell of images is sufficient.
func (C *Conf) DistanceMIC(i, j int) float64 {
	if i >= C.Len() || j >= C.Len() {
		panic(ErrAtomOutOfRange)
	}
	var d [3]float64
	for k := 0; k < 3; k++ {
		d[k] = C.Coords.At(i, k) - C.Coords.At(j, k)
	}
	if C.Lattice == nil {
		return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	}
	best := math.Inf(1)
	for na := -1; na <= 1; na++ {
		for nb := -1; nb <= 1; nb++ {
			for nc := -1; nc <= 1; nc++ {
				if (na != 0 && !C.PBC[0]) || (nb != 0 && !C.PBC[1]) || (nc != 0 && !C.PBC[2]) {
					continue
				}
				var r2 float64
				for k := 0; k < 3; k++ {
					x := d[k] + float64(na)*C.Lattice.At(0, k) +
						float64(nb)*C.Lattice.At(1, k) +
						float64(nc)*C.Lattice.At(2, k)
					r2 += x * x
				}
				if r2 < best {
					best = r2
				}
			}
		}
	}
	return math.Sqrt(best)
}

// MinDistance returns the smallest minimum-image distance over all atom
// pairs of the configuration, or +Inf for single-atom configurations.
func (C *Conf) MinDistance() float64 {
	best := math.Inf(1)
	for i := 0; i < C.Len(); i++ {
		for j := i + 1; j < C.Len(); j++ {
			if d := C.DistanceMIC(i, j); d < best {
				best = d
			}
		}
	}
	return best
}
