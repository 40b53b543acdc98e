/*
 * descriptor.go, part of automl-autoplex.
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

//Package descriptor turns atomic configurations into fixed-length real
//vectors for diversity selection. The Computer interface is the seam where
//an external descriptor engine can be plugged in; the built-in Radial
//computer is a smeared pair-distance histogram, rotation and permutation
//invariant by construction.
package descriptor

import (
	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Computer maps one configuration to a fixed-length descriptor vector.
// Implementations must be safe for concurrent use, as Map fans one Computer
// out over several goroutines.
type Computer interface {
	Vector(c *autoplex.Conf) ([]float64, error)
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(autoplex.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
