/*
 * perturb.go, part of automl-autoplex.
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

//Package perturb produces candidate training configurations from a reference
//crystal structure: volumetric strain, lattice-angle distortion with rejection
//sampling, Gaussian rattling and Monte-Carlo rattling with a minimum-distance
//bias. All generators return new configurations and never touch their input.
package perturb

import (
	"math"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/logger"
)

var log = logger.NewLogger("INFO", "perturb")

func errDecorate(err error, caller string) error {
	err2, ok := err.(autoplex.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// CheckDistances reports whether every pairwise minimum-image distance in
// the configuration exceeds minDistance. It is the acceptance predicate of
// the rejection-sampling generators and doubles as a pre-flight check.
func CheckDistances(c *autoplex.Conf, minDistance float64) bool {
	return c.MinDistance() > minDistance
}

// minDistanceAtom returns the smallest minimum-image distance from atom i
// to any other atom, or +Inf for single-atom configurations.
func minDistanceAtom(c *autoplex.Conf, i int) float64 {
	best := math.Inf(1)
	for j := 0; j < c.Len(); j++ {
		if j == i {
			continue
		}
		if d := c.DistanceMIC(i, j); d < best {
			best = d
		}
	}
	return best
}
