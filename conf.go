/*
 * conf.go, part of automl-autoplex.
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

// Documented label keys under which scalar and per-atom data travel between
// the generation, fitting and benchmarking stages.
const (
	LabelEnergy    = "energy"
	LabelRefEnergy = "REF_energy"
	LabelForces    = "forces"
	LabelRefForces = "REF_forces"
)

// Info carries the scalar and per-atom labels attached to one configuration.
// The schema is fixed: each documented label has its own field, and a nil
// field means "label absent", which the accessors turn into a hard error
// rather than a silent zero.
type Info struct {
	Energy     *float64   //eV, as computed by the potential being fitted
	RefEnergy  *float64   //eV, ab-initio reference
	Forces     *v3.Matrix //eV/Å
	RefForces  *v3.Matrix //eV/Å, ab-initio reference
	Stress     []float64  //Voigt order, eV/Å^3
	Pressure   *float64   //GPa
	ConfigType string     //provenance tag: "rattled", "isolated_atom", "hull"...
}

// Copy returns a deep copy of the Info.
func (I *Info) Copy() Info {
	n := Info{ConfigType: I.ConfigType}
	if I.Energy != nil {
		e := *I.Energy
		n.Energy = &e
	}
	if I.RefEnergy != nil {
		e := *I.RefEnergy
		n.RefEnergy = &e
	}
	if I.Forces != nil {
		n.Forces = I.Forces.Clone()
	}
	if I.RefForces != nil {
		n.RefForces = I.RefForces.Clone()
	}
	if I.Stress != nil {
		n.Stress = append([]float64{}, I.Stress...)
	}
	if I.Pressure != nil {
		p := *I.Pressure
		n.Pressure = &p
	}
	return n
}

// Conf is one atomic configuration: a lattice (3 row vectors), cartesian
// coordinates (N row vectors, Å), one chemical symbol per atom and periodic
// boundary flags. Perturbation functions never mutate a Conf they are given;
// they always return new ones.
type Conf struct {
	Lattice *v3.Matrix
	Coords  *v3.Matrix
	Symbols []string
	PBC     [3]bool
	Info    Info
}

// NewConf builds a configuration and checks that the lattice is 3x3 and
// that symbols and coordinates agree in length.
func NewConf(lattice, coords *v3.Matrix, symbols []string) (*Conf, error) {
	if lattice == nil || coords == nil {
		return nil, NewError("NewConf", "nil lattice or coordinates")
	}
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return nil, NewError("NewConf", "lattice must be 3x3, got %dx%d", r, c)
	}
	if coords.NVecs() != len(symbols) {
		return nil, NewError("NewConf", "coordinates for %d atoms but %d symbols", coords.NVecs(), len(symbols))
	}
	return &Conf{
		Lattice: lattice,
		Coords:  coords,
		Symbols: symbols,
		PBC:     [3]bool{true, true, true},
	}, nil
}

// Len returns the number of atoms in the configuration.
func (C *Conf) Len() int {
	return len(C.Symbols)
}

// Copy returns a deep copy of the configuration, including labels.
func (C *Conf) Copy() *Conf {
	if C == nil {
		panic(ErrNilConf)
	}
	n := new(Conf)
	if C.Lattice != nil {
		n.Lattice = C.Lattice.Clone()
	}
	n.Coords = C.Coords.Clone()
	n.Symbols = append([]string{}, C.Symbols...)
	n.PBC = C.PBC
	n.Info = C.Info.Copy()
	return n
}

// Volume returns the cell volume in Å^3.
func (C *Conf) Volume() float64 {
	if C.Lattice == nil {
		panic(ErrNoLattice)
	}
	return math.Abs(C.Lattice.Det())
}

// EnergyLabel returns the energy stored under the given label key
// ("energy" or "REF_energy"). A missing label, or an unknown label key,
// is a hard error, never a silent zero.
func (C *Conf) EnergyLabel(label string) (float64, error) {
	switch label {
	case LabelEnergy:
		if C.Info.Energy == nil {
			return 0, NewError("EnergyLabel", "configuration has no %q label", label)
		}
		return *C.Info.Energy, nil
	case LabelRefEnergy:
		if C.Info.RefEnergy == nil {
			return 0, NewError("EnergyLabel", "configuration has no %q label", label)
		}
		return *C.Info.RefEnergy, nil
	}
	return 0, NewError("EnergyLabel", "unknown energy label %q", label)
}

// SetEnergyLabel stores e under the given label key. Unknown keys are
// rejected like in EnergyLabel.
func (C *Conf) SetEnergyLabel(label string, e float64) error {
	switch label {
	case LabelEnergy:
		C.Info.Energy = &e
	case LabelRefEnergy:
		C.Info.RefEnergy = &e
	default:
		return NewError("SetEnergyLabel", "unknown energy label %q", label)
	}
	return nil
}

// ForcesLabel returns the per-atom forces stored under the given label
// key ("forces" or "REF_forces"), erroring out on absence.
func (C *Conf) ForcesLabel(label string) (*v3.Matrix, error) {
	switch label {
	case LabelForces:
		if C.Info.Forces == nil {
			return nil, NewError("ForcesLabel", "configuration has no %q label", label)
		}
		return C.Info.Forces, nil
	case LabelRefForces:
		if C.Info.RefForces == nil {
			return nil, NewError("ForcesLabel", "configuration has no %q label", label)
		}
		return C.Info.RefForces, nil
	}
	return nil, NewError("ForcesLabel", "unknown forces label %q", label)
}
