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

package autoplex

import (
	"math"

	v3 "github.com/naik-aakash/automl-autoplex/v3"
)

// DetInt returns the determinant of an integer 3x3 transformation matrix.
func DetInt(t [3][3]int) int {
	return t[0][0]*(t[1][1]*t[2][2]-t[1][2]*t[2][1]) -
		t[0][1]*(t[1][0]*t[2][2]-t[1][2]*t[2][0]) +
		t[0][2]*(t[1][0]*t[2][1]-t[1][1]*t[2][0])
}

// TransformLattice returns t·L, the supercell lattice produced by the
// transformation t, whose rows are integer combinations of the unit-cell
// lattice vectors.
func TransformLattice(t [3][3]int, lattice *v3.Matrix) *v3.Matrix {
	out := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			var s float64
			for j := 0; j < 3; j++ {
				s += float64(t[i][j]) * lattice.At(j, k)
			}
			out.Set(i, k, s)
		}
	}
	return out
}

// MakeSupercell applies an integer transformation matrix to a configuration,
// replicating its atoms into the new cell. The matrix rows are the integer
// combinations of unit-cell vectors forming the supercell vectors, the same
// convention supercell.FindMatrix returns. Scalar labels are dropped; they do
// not survive a change of cell.
func MakeSupercell(c *Conf, t [3][3]int) (*Conf, error) {
	if c == nil || c.Lattice == nil {
		return nil, NewError("MakeSupercell", "nil configuration or missing lattice")
	}
	det := DetInt(t)
	if det == 0 {
		return nil, NewError("MakeSupercell", "singular transformation matrix")
	}
	ncells := det
	if ncells < 0 {
		ncells = -ncells
	}
	newLattice := TransformLattice(t, c.Lattice)
	// invert t as floats to test which integer translations fall inside
	// the supercell
	tf := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tf.Set(i, j, float64(t[i][j]))
		}
	}
	tinv := v3.Zeros(3)
	if err := tinv.Inv(tf); err != nil {
		return nil, errDecorate(err, "MakeSupercell")
	}
	// bounding box of the supercell corners in unit-cell integer space
	lo, hi := [3]int{0, 0, 0}, [3]int{0, 0, 0}
	for mask := 0; mask < 8; mask++ {
		var corner [3]int
		for i := 0; i < 3; i++ {
			if mask&(1<<i) != 0 {
				for j := 0; j < 3; j++ {
					corner[j] += t[i][j]
				}
			}
		}
		for j := 0; j < 3; j++ {
			if corner[j] < lo[j] {
				lo[j] = corner[j]
			}
			if corner[j] > hi[j] {
				hi[j] = corner[j]
			}
		}
	}
	const eps = 1e-9
	var shifts [][3]int
	for na := lo[0]; na <= hi[0]; na++ {
		for nb := lo[1]; nb <= hi[1]; nb++ {
			for nc := lo[2]; nc <= hi[2]; nc++ {
				inside := true
				for j := 0; j < 3; j++ {
					f := float64(na)*tinv.At(0, j) + float64(nb)*tinv.At(1, j) + float64(nc)*tinv.At(2, j)
					if f < -eps || f >= 1-eps {
						inside = false
						break
					}
				}
				if inside {
					shifts = append(shifts, [3]int{na, nb, nc})
				}
			}
		}
	}
	if len(shifts) != ncells {
		return nil, NewError("MakeSupercell", "found %d lattice points inside the supercell, expected %d", len(shifts), ncells)
	}
	natoms := c.Len()
	coords := v3.Zeros(natoms * ncells)
	symbols := make([]string, 0, natoms*ncells)
	for si, n := range shifts {
		var shift [3]float64
		for k := 0; k < 3; k++ {
			shift[k] = float64(n[0])*c.Lattice.At(0, k) +
				float64(n[1])*c.Lattice.At(1, k) +
				float64(n[2])*c.Lattice.At(2, k)
		}
		for a := 0; a < natoms; a++ {
			for k := 0; k < 3; k++ {
				coords.Set(si*natoms+a, k, c.Coords.At(a, k)+shift[k])
			}
			symbols = append(symbols, c.Symbols[a])
		}
	}
	out, err := NewConf(newLattice, coords, symbols)
	if err != nil {
		return nil, errDecorate(err, "MakeSupercell")
	}
	out.PBC = c.PBC
	out.Info.ConfigType = c.Info.ConfigType
	return out, nil
}

// LatticeLengths returns the lengths of the three lattice vectors in Å.
func LatticeLengths(lattice *v3.Matrix) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		var s float64
		for k := 0; k < 3; k++ {
			s += lattice.At(i, k) * lattice.At(i, k)
		}
		out[i] = math.Sqrt(s)
	}
	return out
}
