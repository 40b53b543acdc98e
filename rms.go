/*
 * rms.go, part of automl-autoplex.
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
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RMS holds the root-mean-square error between a prediction and its
// reference, together with the standard deviation of the squared errors.
type RMS struct {
	RMSE float64
	Std  float64
}

// RmsDict computes the RMSE of pred against ref. Mismatched lengths are an
// input-contract violation and produce an error, never a truncated result.
func RmsDict(ref, pred []float64) (*RMS, error) {
	if len(ref) != len(pred) {
		return nil, NewError("RmsDict", "not matching shapes in rms: %d vs %d", len(ref), len(pred))
	}
	if len(ref) == 0 {
		return nil, NewError("RmsDict", "empty input")
	}
	err2 := make([]float64, len(ref))
	for i := range ref {
		d := ref[i] - pred[i]
		err2[i] = d * d
	}
	mean := stat.Mean(err2, nil)
	return &RMS{RMSE: math.Sqrt(mean), Std: stat.PopStdDev(err2, nil)}, nil
}

// RMSOverall computes the overall RMS difference between two phonon band
// structures, given as [band][kpoint] frequency arrays of identical shape.
func RMSOverall(bands1, bands2 [][]float64) (float64, error) {
	if err := checkBandShapes(bands1, bands2); err != nil {
		return 0, errDecorate(err, "RMSOverall")
	}
	var sum float64
	var n int
	for i := range bands1 {
		for j := range bands1[i] {
			d := bands1[i][j] - bands2[i][j]
			sum += d * d
			n++
		}
	}
	return math.Sqrt(sum / float64(n)), nil
}

// RMSOverallSorted is like RMSOverall, but first sorts the frequencies at
// each k-point by value, making the comparison independent of band ordering.
func RMSOverallSorted(bands1, bands2 [][]float64) (float64, error) {
	if err := checkBandShapes(bands1, bands2); err != nil {
		return 0, errDecorate(err, "RMSOverallSorted")
	}
	s1 := sortBands(bands1)
	s2 := sortBands(bands2)
	return RMSOverall(s1, s2)
}

// RMSKdep computes one RMS value per k-point between two band structures
// of identical [band][kpoint] shape.
func RMSKdep(bands1, bands2 [][]float64) ([]float64, error) {
	if err := checkBandShapes(bands1, bands2); err != nil {
		return nil, errDecorate(err, "RMSKdep")
	}
	nk := len(bands1[0])
	out := make([]float64, nk)
	for j := 0; j < nk; j++ {
		var sum float64
		for i := range bands1 {
			d := bands1[i][j] - bands2[i][j]
			sum += d * d
		}
		out[j] = math.Sqrt(sum / float64(len(bands1)))
	}
	return out, nil
}

func checkBandShapes(a, b [][]float64) error {
	if len(a) == 0 || len(a) != len(b) {
		return NewError("checkBandShapes", "band count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i]) != len(b[i]) || len(a[i]) != len(a[0]) {
			return NewError("checkBandShapes", "k-point count mismatch in band %d", i)
		}
	}
	return nil
}

// sortBands returns a copy with the frequencies at each k-point sorted
// ascending along the band axis.
func sortBands(bands [][]float64) [][]float64 {
	nb := len(bands)
	nk := len(bands[0])
	out := make([][]float64, nb)
	for i := range out {
		out[i] = make([]float64, nk)
	}
	col := make([]float64, nb)
	for j := 0; j < nk; j++ {
		for i := 0; i < nb; i++ {
			col[i] = bands[i][j]
		}
		sort.Float64s(col)
		for i := 0; i < nb; i++ {
			out[i][j] = col[i]
		}
	}
	return out
}
