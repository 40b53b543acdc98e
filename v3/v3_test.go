/*
 * v3_test.go, part of automl-autoplex.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if a.NVecs() != 2 {
		Te.Errorf("wrong number of vectors: %d", a.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
}

func TestVecViewIsView(Te *testing.T) {
	a := Zeros(3)
	v := a.VecView(1)
	v.Set(0, 2, 4.25)
	if a.At(1, 2) != 4.25 {
		Te.Error("VecView does not share memory with its parent")
	}
}

func TestDetInv(Te *testing.T) {
	l, _ := NewMatrix([]float64{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	})
	if d := l.Det(); math.Abs(d-24) > 1e-12 {
		Te.Errorf("wrong determinant %f", d)
	}
	inv := Zeros(3)
	if err := inv.Inv(l); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(inv.At(2, 2)-0.25) > 1e-12 {
		Te.Errorf("wrong inverse element %f", inv.At(2, 2))
	}
}

func TestAddSubVec(Te *testing.T) {
	a, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	shift, _ := NewMatrix([]float64{1, 0, -1})
	r := Zeros(2)
	r.AddVec(a, shift)
	if r.At(0, 0) != 2 || r.At(1, 2) != 1 {
		Te.Error("AddVec gave wrong values")
	}
	r.SubVec(r, shift)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if r.At(i, j) != a.At(i, j) {
				Te.Error("SubVec did not undo AddVec")
			}
		}
	}
}

func TestSomeVecs(Te *testing.T) {
	a, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	sub := Zeros(2)
	sub.SomeVecs(a, []int{2, 0})
	if sub.At(0, 1) != 2 || sub.At(1, 1) != 0 {
		Te.Error("SomeVecs picked wrong vectors")
	}
}
