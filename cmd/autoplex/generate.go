/*
 * generate.go, part of automl-autoplex.
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

package main

import (
	"fmt"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/perturb"
	"github.com/naik-aakash/automl-autoplex/sample"
	"github.com/spf13/cobra"
)

// generateCmd builds a candidate pool from a reference structure.
var generateCmd = &cobra.Command{
	Use:   "generate [reference structure]",
	Short: "Perturb a reference structure into a candidate pool",
	Long: `
Reads the first configuration of the given extended-XYZ file and applies
volume scaling, lattice-angle distortion and rattling, writing all
resulting configurations to the output pool.

autoplex generate -p run.yaml -o pool.xyz.zst prim.xyz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		confs, err := autoplex.ReadXYZ(args[0])
		if err != nil {
			return err
		}
		if len(confs) == 0 {
			return autoplex.NewError("generate", "no configurations in %s", args[0])
		}
		ref := confs[0]
		scaled, err := perturb.ScaleCell(ref, &perturb.ScaleOptions{
			ScaleRange:    p.ScaleRange,
			NStructures:   p.NVolume,
			CustomFactors: p.ScaleFactors,
		})
		if err != nil {
			return err
		}
		angled, err := perturb.RandomVaryAngle(ref, &perturb.AngleOptions{
			MinDistance:     p.MinDistance,
			PercentageScale: p.AngleScale,
			NStructures:     p.NAngle,
			Seed:            p.Seed,
		})
		if err != nil {
			return err
		}
		var rattled []*autoplex.Conf
		if p.RattleMC {
			rattled, err = perturb.MCRattle(ref, &perturb.MCRattleOptions{
				NStructures: p.NRattle,
				Std:         p.RattleStd,
				MinDistance: p.MinDistance,
				NIter:       p.MCIterations,
				Seed:        p.RattleSeed,
			})
		} else {
			rattled, err = perturb.StdRattle(ref, &perturb.RattleOptions{
				NStructures: p.NRattle,
				Std:         p.RattleStd,
				Seed:        p.RattleSeed,
			})
		}
		if err != nil {
			return err
		}
		pool := sample.Flatten(scaled, angled, rattled)
		out, _ := cmd.Flags().GetString("output")
		if err := autoplex.WriteXYZ(out, pool); err != nil {
			return err
		}
		fmt.Printf("wrote %d configurations to %s\n", len(pool), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "pool.xyz", "output pool file")
}
