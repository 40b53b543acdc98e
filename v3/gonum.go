/*
 * gonum.go, part of automl-autoplex.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of row vectors in 3D space. The underlying implementation
// is a gonum Dense matrix with 3 columns, so every gonum function that takes
// a mat.Matrix can consume it directly.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix embedded in A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a gonum Dense matrix into a Matrix. It panics if the
// matrix does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data,
// which is arranged row-major.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-initialized Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len returns the number of vectors, so a Matrix can stand in for
// anything expecting a Len() method.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// VecView returns a view (not a copy) of the ith vector of the matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F starting from i,j and spanning r rows and
// c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

// Clone returns an independent copy of the receiver.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

// SetMatrix puts the matrix A in the receiver, starting from the ith vector
// and jth column of the receiver.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ar+i > fr || ac+j > fc {
		panic(ErrShape)
	}
	row := make([]float64, ac)
	for k := 0; k < ar; k++ {
		mat.Row(row, k, A.Dense)
		for l, v := range row {
			F.Set(i+k, j+l, v)
		}
	}
}

// SomeVecs fills the receiver with the vectors of A indexed in clist,
// in the given order. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		for l := 0; l < 3; l++ {
			F.Set(k, l, A.At(j, l))
		}
	}
}

// SetVecs sets the vectors of the receiver indexed in clist to the
// vectors of A, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() < len(clist) || F.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		for l := 0; l < 3; l++ {
			F.Set(j, l, A.At(k, l))
		}
	}
}

// Mul wraps the gonum multiplication to take care of the case when one of the
// arguments is also the receiver: the gonum check compares the embedded Dense
// against the wrapper, so aliasing would go undetected otherwise.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if C, ok := B.(*Matrix); ok {
		B = C.Dense
	}
	F.Dense.Mul(A, B)
}

// AddVec adds the 1-vector matrix vec to every vector of A and puts the
// result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

// SubVec subtracts the 1-vector matrix vec from every vector of A and puts
// the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

// Norm returns the Frobenius norm of the receiver. For a 1-vector matrix
// this is the euclidean length of the vector.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

// Det returns the determinant of the receiver, which must be a 3x3 matrix
// (i.e. a lattice).
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return F.At(0, 0)*(F.At(1, 1)*F.At(2, 2)-F.At(1, 2)*F.At(2, 1)) -
		F.At(0, 1)*(F.At(1, 0)*F.At(2, 2)-F.At(1, 2)*F.At(2, 0)) +
		F.At(0, 2)*(F.At(1, 0)*F.At(2, 1)-F.At(1, 1)*F.At(2, 0))
}

// Inv puts the inverse of the 3x3 matrix A in the receiver, which must
// also be 3x3. It returns an error for singular matrices.
func (F *Matrix) Inv(A *Matrix) error {
	r, c := F.Dims()
	ar, ac := A.Dims()
	if r != 3 || c != 3 || ar != 3 || ac != 3 {
		panic(ErrDeterminant)
	}
	err := F.Dense.Inverse(A.Dense)
	if err != nil {
		return Error{fmt.Sprintf("gonum inversion failed: %v", err), []string{"Inv"}, true}
	}
	return nil
}

// Errors

// Error is the concrete error type for the v3 package. It implements the
// chem-style Error interface of the parent package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics. It does satisfy the error interface,
// but for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("autoplex/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("autoplex/v3: Dimension mismatch")
	ErrDeterminant  = PanicMsg("autoplex/v3: Determinants and inverses are only available for 3x3 matrices")
)
