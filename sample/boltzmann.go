/*
 * boltzmann.go, part of automl-autoplex.
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
	"math"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/descriptor"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// histogramBins is the fixed bin count of the flat-histogram weighting.
const histogramBins = 10

// BoltzOptions controls Boltzmann flat-histogram resampling.
type BoltzOptions struct {
	IsolatedEnergies map[string]float64 //per-species reference energies, required
	EnergyLabel      string             //default "energy"
	KT               float64            //eV; <= 0 disables the Boltzmann factor
	Frac             float64            //target fraction of the pool, default 0.1
	MaxNum           int                //hard cap on the target count, default pool size
	CURNum           int                //final CUR pruning count; 0 skips the pruning
	KernelExp        int
	Computer         descriptor.Computer //required when CURNum > 0
	Pressures        []float64           //GPa, per configuration; nil falls back to each configuration's pressure label
	Workers          int
	Seed             uint64
}

// BoltzmannHist resamples the pool by an enthalpy proxy using a
// Boltzmann-tempered flat histogram, then optionally prunes the result
// with CUR. The enthalpy of each configuration is its formation energy per
// atom plus a PV term; weighting by the inverse occupancy of the
// configuration's enthalpy bin flattens the energy density so rare
// high-energy structures are not starved out, while the Boltzmann factor
// keeps the far tail in check. Sampling is without replacement.
func BoltzmannHist(confs []*autoplex.Conf, o *BoltzOptions) ([]*autoplex.Conf, error) {
	if o == nil {
		return nil, autoplex.NewError("BoltzmannHist", "nil options")
	}
	if len(confs) == 0 {
		return nil, nil
	}
	if len(o.IsolatedEnergies) == 0 {
		return nil, autoplex.NewError("BoltzmannHist", "isolated-atom energies are required")
	}
	label := o.EnergyLabel
	if label == "" {
		label = autoplex.LabelEnergy
	}
	enthalpies := make([]float64, len(confs))
	for i, c := range confs {
		h, err := enthalpyProxy(c, o.IsolatedEnergies, label, o.Pressures, i)
		if err != nil {
			return nil, errDecorate(err, "BoltzmannHist")
		}
		enthalpies[i] = h
	}
	selected, err := flatHistogramSelect(confs, enthalpies, o.KT, o.Frac, o.MaxNum, o.Seed)
	if err != nil {
		return nil, errDecorate(err, "BoltzmannHist")
	}
	return curPrune(selected, o)
}

// enthalpyProxy computes (E - sum isol)/n + V*P/n, with the pressure taken
// from the explicit list when given and from the configuration's pressure
// label otherwise. No pressure anywhere is a configuration error.
func enthalpyProxy(c *autoplex.Conf, isol map[string]float64, label string, pressures []float64, i int) (float64, error) {
	e, err := c.EnergyLabel(label)
	if err != nil {
		return 0, err
	}
	for _, s := range c.Symbols {
		ref, ok := isol[s]
		if !ok {
			return 0, autoplex.NewError("enthalpyProxy", "no isolated-atom energy for species %s", s)
		}
		e -= ref
	}
	var p float64 //GPa
	switch {
	case pressures != nil:
		if i >= len(pressures) {
			return 0, autoplex.NewError("enthalpyProxy",
				"pressure list has %d entries but configuration %d was requested", len(pressures), i)
		}
		p = pressures[i]
	case c.Info.Pressure != nil:
		p = *c.Info.Pressure
	default:
		return 0, autoplex.NewError("enthalpyProxy", "no pressures available for Boltzmann weighting")
	}
	n := float64(c.Len())
	return e/n + c.Volume()*p*autoplex.GPa2EvA3/n, nil
}

// flatHistogramSelect draws min(round(frac*n), maxNum) indices without
// replacement, weighting each configuration by the inverse occupancy of
// its proxy bin times, for kT > 0, a Boltzmann factor relative to the
// proxy minimum.
func flatHistogramSelect(confs []*autoplex.Conf, proxy []float64, kT, frac float64, maxNum int, seed uint64) ([]*autoplex.Conf, error) {
	n := len(confs)
	if frac <= 0 {
		log.Warning("no selection fraction given, using 0.1")
		frac = 0.1
	}
	if maxNum <= 0 {
		maxNum = n
	}
	target := int(math.Round(frac * float64(n)))
	if target > maxNum {
		target = maxNum
	}
	if target > n {
		target = n
	}
	if target == 0 {
		//a fraction that rounds to zero selects nothing
		return nil, nil
	}
	weights := histogramWeights(proxy, kT)
	rng := rand.New(rand.NewSource(seed))
	a := newArena(weights)
	out := make([]*autoplex.Conf, 0, target)
	for i := 0; i < target; i++ {
		out = append(out, confs[a.draw(rng)])
	}
	return out, nil
}

func histogramWeights(proxy []float64, kT float64) []float64 {
	lo := floats.Min(proxy)
	hi := floats.Max(proxy)
	width := (hi - lo) / histogramBins
	bin := func(h float64) int {
		if width == 0 {
			return 0
		}
		b := int((h - lo) / width)
		if b >= histogramBins {
			b = histogramBins - 1
		}
		return b
	}
	var occupancy [histogramBins]int
	for _, h := range proxy {
		occupancy[bin(h)]++
	}
	weights := make([]float64, len(proxy))
	for i, h := range proxy {
		w := 1 / float64(occupancy[bin(h)])
		if kT > 0 {
			w *= math.Exp(-(h - lo) / kT)
		}
		weights[i] = w
	}
	return weights
}

// curPrune runs the diversity selector over an already-resampled subset
// when the requested CUR count is smaller than the subset.
func curPrune(selected []*autoplex.Conf, o *BoltzOptions) ([]*autoplex.Conf, error) {
	if o.CURNum <= 0 || o.CURNum >= len(selected) {
		return selected, nil
	}
	if o.Computer == nil {
		return nil, autoplex.NewError("BoltzmannHist", "CUR pruning requested but no descriptor computer given")
	}
	return CUR(selected, &CUROptions{
		Computer:   o.Computer,
		KernelExp:  o.KernelExp,
		N:          o.CURNum,
		Stochastic: true,
		Workers:    o.Workers,
		Seed:       o.Seed,
	})
}
