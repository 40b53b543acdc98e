/*
 * atomicdata.go, part of automl-autoplex.
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

//A map from chemical symbol to atomic number, covering the elements one
//is likely to train a potential for. Extend as needed.
var symbolZ = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25,
	"Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32,
	"As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54,
	"Cs": 55, "Ba": 56, "La": 57, "Ce": 58, "Pr": 59, "Nd": 60, "Pm": 61,
	"Sm": 62, "Eu": 63, "Gd": 64, "Tb": 65, "Dy": 66, "Ho": 67, "Er": 68,
	"Tm": 69, "Yb": 70, "Lu": 71, "Hf": 72, "Ta": 73, "W": 74, "Re": 75,
	"Os": 76, "Ir": 77, "Pt": 78, "Au": 79, "Hg": 80, "Tl": 81, "Pb": 82,
	"Bi": 83, "Po": 84, "At": 85, "Rn": 86,
}

//A map for assigning mass to elements, in unified atomic mass units.
var symbolMass = map[string]float64{
	"H": 1.008, "He": 4.003,
	"Li": 6.94, "Be": 9.012, "B": 10.81, "C": 12.011, "N": 14.007,
	"O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948,
	"K": 39.098, "Ca": 40.078, "Ti": 47.867, "V": 50.942, "Cr": 51.996,
	"Mn": 54.938, "Fe": 55.845, "Co": 58.933, "Ni": 58.693, "Cu": 63.546,
	"Zn": 65.38, "Ga": 69.723, "Ge": 72.630, "As": 74.922, "Se": 78.971,
	"Br": 79.904, "Sr": 87.62, "Zr": 91.224, "Nb": 92.906, "Mo": 95.95,
	"Ag": 107.868, "Cd": 112.414, "In": 114.818, "Sn": 118.710,
	"Sb": 121.760, "Te": 127.60, "I": 126.904, "Ba": 137.327,
	"W": 183.84, "Pt": 195.084, "Au": 196.967, "Pb": 207.2, "Bi": 208.980,
}

// ZFromSymbol returns the atomic number of the element with the given
// chemical symbol, or an error if the symbol is unknown.
func ZFromSymbol(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, NewError("ZFromSymbol", "unknown chemical symbol %q", symbol)
	}
	return z, nil
}

// MassFromSymbol returns the atomic mass, in amu, of the element with the
// given chemical symbol, or an error if the symbol is unknown.
func MassFromSymbol(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, NewError("MassFromSymbol", "no mass for chemical symbol %q", symbol)
	}
	return m, nil
}
