/*
 * species.go, part of automl-autoplex.
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
	"strconv"
	"strings"
)

// Species enumerates the chemical elements present in a collection of
// configurations, in first-appearance order, and derives the element-pair
// and atomic-number lists that descriptor and fitting setups need.
type Species struct {
	confs []*Conf
}

// NewSpecies returns a Species utility over the given configurations.
func NewSpecies(confs ...*Conf) *Species {
	return &Species{confs: confs}
}

// List returns the unique chemical symbols over all configurations,
// in order of first appearance.
func (S *Species) List() []string {
	seen := make(map[string]bool)
	var list []string
	for _, c := range S.confs {
		for _, sym := range c.Symbols {
			if seen[sym] {
				continue
			}
			seen[sym] = true
			list = append(list, sym)
		}
	}
	return list
}

// Num returns the number of unique species present.
func (S *Species) Num() int {
	return len(S.List())
}

// Pairs returns all unordered element pairs, including the homonuclear
// ones, over the given symbol list, or over List() if symbols is nil.
// n species give n*(n+1)/2 pairs.
func (S *Species) Pairs(symbols []string) [][2]string {
	if symbols == nil {
		symbols = S.List()
	}
	var pairs [][2]string
	for i := 0; i < len(symbols); i++ {
		for j := i; j < len(symbols); j++ {
			pairs = append(pairs, [2]string{symbols[i], symbols[j]})
		}
	}
	return pairs
}

// ZString returns the atomic numbers of the unique species as a
// curly-brace-enclosed, space-separated list (e.g. "{14 8}"), the format
// GAP-style descriptor strings expect.
func (S *Species) ZString() (string, error) {
	list := S.List()
	if len(list) == 0 {
		return "", NewError("ZString", "no species present")
	}
	zs := make([]string, 0, len(list))
	for _, sym := range list {
		z, err := ZFromSymbol(sym)
		if err != nil {
			return "", errDecorate(err, "ZString")
		}
		zs = append(zs, strconv.Itoa(z))
	}
	return "{" + strings.Join(zs, " ") + "}", nil
}
