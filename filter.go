/*
 * filter.go, part of automl-autoplex.
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

// Outlier filtering between a reference pool (ab-initio labels under
// REF_energy/REF_forces) and a predicted pool (MLIP labels under
// energy/forces). Pairs are matched by index; both filters keep the two
// pools aligned, dropping the pair whenever the reference side is an
// outlier.

// FilterOutlierEnergy splits the paired pools by the per-atom energy RMSE
// between reference and prediction. Pairs at or above criteria (eV/atom)
// land in outliers (reference side only, as that is what gets re-labeled).
func FilterOutlierEnergy(ref, pred []*Conf, criteria float64) (keptRef, keptPred, outliers []*Conf, err error) {
	if len(ref) != len(pred) {
		return nil, nil, nil, NewError("FilterOutlierEnergy", "pool size mismatch: %d vs %d", len(ref), len(pred))
	}
	for i := range ref {
		eRef, err := ref[i].EnergyLabel(LabelRefEnergy)
		if err != nil {
			return nil, nil, nil, errDecorate(err, "FilterOutlierEnergy")
		}
		ePred, err := pred[i].EnergyLabel(LabelEnergy)
		if err != nil {
			return nil, nil, nil, errDecorate(err, "FilterOutlierEnergy")
		}
		n1 := float64(ref[i].Len())
		n2 := float64(pred[i].Len())
		rms, err := RmsDict([]float64{eRef / n1}, []float64{ePred / n2})
		if err != nil {
			return nil, nil, nil, errDecorate(err, "FilterOutlierEnergy")
		}
		if rms.RMSE < criteria {
			keptRef = append(keptRef, ref[i])
			keptPred = append(keptPred, pred[i])
		} else {
			outliers = append(outliers, ref[i])
		}
	}
	return keptRef, keptPred, outliers, nil
}

// FilterOutlierForces splits the paired pools by the per-atom force RMSE,
// considering only atoms of the given chemical symbol. Pairs whose largest
// per-atom force RMSE reaches criteria (eV/Å) land in outliers.
func FilterOutlierForces(ref, pred []*Conf, symbol string, criteria float64) (keptRef, keptPred, outliers []*Conf, err error) {
	if len(ref) != len(pred) {
		return nil, nil, nil, NewError("FilterOutlierForces", "pool size mismatch: %d vs %d", len(ref), len(pred))
	}
	for i := range ref {
		fRef, err := ref[i].ForcesLabel(LabelRefForces)
		if err != nil {
			return nil, nil, nil, errDecorate(err, "FilterOutlierForces")
		}
		fPred, err := pred[i].ForcesLabel(LabelForces)
		if err != nil {
			return nil, nil, nil, errDecorate(err, "FilterOutlierForces")
		}
		if ref[i].Len() != pred[i].Len() {
			return nil, nil, nil, NewError("FilterOutlierForces", "atom count mismatch in pair %d", i)
		}
		worst := 0.0
		for a, sym := range ref[i].Symbols {
			if sym != symbol {
				continue
			}
			r := []float64{fRef.At(a, 0), fRef.At(a, 1), fRef.At(a, 2)}
			p := []float64{fPred.At(a, 0), fPred.At(a, 1), fPred.At(a, 2)}
			rms, err := RmsDict(r, p)
			if err != nil {
				return nil, nil, nil, errDecorate(err, "FilterOutlierForces")
			}
			if rms.RMSE > worst {
				worst = rms.RMSE
			}
		}
		if worst < criteria {
			keptRef = append(keptRef, ref[i])
			keptPred = append(keptPred, pred[i])
		} else {
			outliers = append(outliers, ref[i])
		}
	}
	return keptRef, keptPred, outliers, nil
}
