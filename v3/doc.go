/*
 * doc.go, part of automl-autoplex.
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

/*Package v3 implements a matrix type for sets of vectors in 3D space, as a thin
wrapper over the gonum Dense matrix. Within the package a "vector" is a row
vector, i.e. the cartesian coordinates of one point (or one lattice vector) in
3D space. Most functionality of the embedded gonum type is available directly;
this package only adds what atomic-structure manipulation needs: vector views,
per-vector arithmetic and 3x3 determinants and inverses for lattices.*/
package v3
