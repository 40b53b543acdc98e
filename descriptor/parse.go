/*
 * parse.go, part of automl-autoplex.
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

package descriptor

import (
	"strconv"
	"strings"

	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Parse builds a Computer from a descriptor specification string such as
//
//	radial cutoff=5.0 n_bins=40 sigma=0.5 species={Si O}
//
// The first token names the descriptor kind; unrecognized kinds and
// malformed parameters are hard errors.
func Parse(spec string) (Computer, error) {
	tokens := splitSpec(spec)
	if len(tokens) == 0 {
		return nil, autoplex.NewError("Parse", "empty descriptor specification")
	}
	kind := tokens[0]
	params := make(map[string]string)
	for _, t := range tokens[1:] {
		kv := strings.SplitN(t, "=", 2)
		if len(kv) != 2 {
			return nil, autoplex.NewError("Parse", "malformed parameter %q in descriptor specification", t)
		}
		params[kv[0]] = kv[1]
	}
	switch kind {
	case "radial":
		return parseRadial(params)
	}
	return nil, autoplex.NewError("Parse", "unknown descriptor kind %q", kind)
}

func parseRadial(params map[string]string) (Computer, error) {
	var cutoff, sigma float64
	var nbins int
	var species []string
	for k, v := range params {
		var err error
		switch k {
		case "cutoff":
			cutoff, err = strconv.ParseFloat(v, 64)
		case "sigma":
			sigma, err = strconv.ParseFloat(v, 64)
		case "n_bins":
			nbins, err = strconv.Atoi(v)
		case "species":
			species = strings.Fields(strings.Trim(v, "{}"))
		default:
			return nil, autoplex.NewError("Parse", "unknown radial parameter %q", k)
		}
		if err != nil {
			return nil, autoplex.NewError("Parse", "bad value %q for radial parameter %q", v, k)
		}
	}
	if len(species) == 0 {
		return nil, autoplex.NewError("Parse", "radial descriptor needs a species={...} parameter")
	}
	return NewRadial(species, cutoff, nbins, sigma)
}

// splitSpec tokenizes on spaces but keeps {...} groups attached to their
// key, so species={Si O} stays one token.
func splitSpec(spec string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0
	for _, r := range spec {
		switch {
		case r == '{':
			depth++
			cur.WriteRune(r)
		case r == '}':
			depth--
			cur.WriteRune(r)
		case r == ' ' && depth == 0:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
