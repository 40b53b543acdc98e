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

/*Package autoplex provides structure generation and data selection for
training machine-learned interatomic potentials (MLIPs).

The root package holds the core data model (the Conf atomic configuration with
its lattice, species and label metadata), lattice-parameter math, minimum-image
distances, species enumeration and the extended-XYZ boundary IO. The actual
machinery lives in the subpackages:

    perturb     volume scaling, angle distortion, Gaussian and Monte-Carlo rattling
    descriptor  invariant structural descriptors and their parallel evaluation
    sample      Boltzmann flat-histogram and CUR diversity selection
    hull        convex hulls of formation energies and distances to them
    supercell   supercell transformation-matrix searches
    params      YAML pipeline parameter files
    logger      leveled per-module logging
    v3          Nx3 coordinate matrices over gonum

Coordinates are cartesian and in Å throughout; energies in eV; pressures
in GPa unless stated otherwise.*/
package autoplex
