/*
 * hullsample.go, part of automl-autoplex.
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

package sample

import (
	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/descriptor"
	"github.com/naik-aakash/automl-autoplex/hull"
)

// Hull schemes accepted by HullBoltzmann.
const (
	SchemeLinearHull   = "linear-hull"
	SchemeVolumeStoich = "volume-stoichiometry"
)

// HullOptions controls hull-relative resampling.
type HullOptions struct {
	Scheme           string             //default "linear-hull"
	IsolatedEnergies map[string]float64 //required
	EnergyLabel      string             //default "REF_energy"
	ElementOrder     []string           //the two elements spanning the composition axis, volume-stoichiometry only
	KT               float64            //eV, tempering of the flat histogram
	Frac             float64            //default 0.1
	MaxNum           int
	CURNum           int
	KernelExp        int
	Computer         descriptor.Computer
	Workers          int
	Seed             uint64
}

// HullBoltzmann resamples the pool like BoltzmannHist, but with each
// configuration's distance above the convex hull of formation energies as
// the energy proxy instead of the raw enthalpy. Isolated-atom and dimer
// reference configurations are excluded from both hull and output.
// Missing isolated-atom energies and unknown scheme names are rejected at
// entry.
func HullBoltzmann(confs []*autoplex.Conf, o *HullOptions) ([]*autoplex.Conf, error) {
	if o == nil {
		return nil, autoplex.NewError("HullBoltzmann", "nil options")
	}
	if len(o.IsolatedEnergies) == 0 {
		return nil, autoplex.NewError("HullBoltzmann", "isolated-atom energies are required for hull-mode sampling")
	}
	scheme := o.Scheme
	if scheme == "" {
		scheme = SchemeLinearHull
	}
	label := o.EnergyLabel
	if label == "" {
		label = autoplex.LabelRefEnergy
	}
	if len(confs) == 0 {
		return nil, nil
	}
	var distances []float64
	var idx []int
	var err error
	switch scheme {
	case SchemeLinearHull:
		distances, idx, err = linearHullDistances(confs, o.IsolatedEnergies, label)
	case SchemeVolumeStoich:
		distances, idx, err = stoichHullDistances(confs, o.IsolatedEnergies, label, o.ElementOrder)
	default:
		return nil, autoplex.NewError("HullBoltzmann", "unknown hull scheme %q", scheme)
	}
	if err != nil {
		return nil, errDecorate(err, "HullBoltzmann")
	}
	if len(idx) == 0 {
		return nil, nil
	}
	pool := make([]*autoplex.Conf, len(idx))
	for i, ix := range idx {
		pool[i] = confs[ix]
	}
	selected, err := flatHistogramSelect(pool, distances, o.KT, o.Frac, o.MaxNum, o.Seed)
	if err != nil {
		return nil, errDecorate(err, "HullBoltzmann")
	}
	return curPrune(selected, &BoltzOptions{
		CURNum:    o.CURNum,
		KernelExp: o.KernelExp,
		Computer:  o.Computer,
		Workers:   o.Workers,
		Seed:      o.Seed,
	})
}

func linearHullDistances(confs []*autoplex.Conf, isol map[string]float64, label string) ([]float64, []int, error) {
	points, idx, err := hull.PointsEV(confs, isol, label)
	if err != nil {
		return nil, nil, err
	}
	if len(points) == 0 {
		return nil, nil, nil
	}
	lower, err := hull.Lower(points)
	if err != nil {
		return nil, nil, err
	}
	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = hull.DistanceToLower(lower, p)
	}
	return distances, idx, nil
}

func stoichHullDistances(confs []*autoplex.Conf, isol map[string]float64, label string, elementOrder []string) ([]float64, []int, error) {
	points, idx, err := hull.PointsXVE(confs, isol, label, elementOrder)
	if err != nil {
		return nil, nil, err
	}
	if len(points) == 0 {
		return nil, nil, nil
	}
	facets, err := hull.Hull3D(points)
	if err != nil {
		return nil, nil, err
	}
	lower := hull.LowerFacets(points, facets)
	distances := make([]float64, len(points))
	for i, p := range points {
		d, err := hull.DistanceToHull3D(points, lower, p)
		if err != nil {
			return nil, nil, err
		}
		distances[i] = d
	}
	return distances, idx, nil
}
