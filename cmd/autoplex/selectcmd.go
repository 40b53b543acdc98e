/*
 * selectcmd.go, part of automl-autoplex.
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
	"github.com/naik-aakash/automl-autoplex/descriptor"
	"github.com/naik-aakash/automl-autoplex/sample"
	"github.com/spf13/cobra"
)

// selectCmd subsamples a candidate pool for training.
var selectCmd = &cobra.Command{
	Use:   "select [pool file]",
	Short: "Subsample a candidate pool for training",
	Long: `
Selects training configurations from the pool. The mode flag picks the
algorithm: "cur" for pure diversity selection, "boltzmann" for
enthalpy-based flat-histogram resampling, "hull" for resampling by
distance above the convex hull.

autoplex select -p run.yaml -m boltzmann -o train.xyz pool.xyz.zst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		pool, err := autoplex.ReadXYZ(args[0])
		if err != nil {
			return err
		}
		var comp descriptor.Computer
		if p.Descriptor != "" {
			comp, err = descriptor.Parse(p.Descriptor)
			if err != nil {
				return err
			}
		}
		mode, _ := cmd.Flags().GetString("mode")
		var selected []*autoplex.Conf
		switch mode {
		case "cur":
			selected, err = sample.CUR(pool, &sample.CUROptions{
				Computer:   comp,
				KernelExp:  p.KernelExponent,
				N:          p.SelectN,
				Stochastic: p.Stochastic,
				Workers:    p.Workers,
				Seed:       p.Seed,
			})
		case "boltzmann":
			selected, err = sample.BoltzmannHist(pool, &sample.BoltzOptions{
				IsolatedEnergies: p.IsolatedEnergies,
				EnergyLabel:      p.EnergyLabel,
				KT:               p.KT,
				Frac:             p.Fraction,
				MaxNum:           p.MaxSelect,
				CURNum:           p.CURCount,
				KernelExp:        p.KernelExponent,
				Computer:         comp,
				Pressures:        p.Pressures,
				Workers:          p.Workers,
				Seed:             p.Seed,
			})
		case "hull":
			selected, err = sample.HullBoltzmann(pool, &sample.HullOptions{
				Scheme:           p.HullScheme,
				IsolatedEnergies: p.IsolatedEnergies,
				EnergyLabel:      p.EnergyLabel,
				ElementOrder:     p.ElementOrder,
				KT:               p.KT,
				Frac:             p.Fraction,
				MaxNum:           p.MaxSelect,
				CURNum:           p.CURCount,
				KernelExp:        p.KernelExponent,
				Computer:         comp,
				Workers:          p.Workers,
				Seed:             p.Seed,
			})
		default:
			return autoplex.NewError("select", "unknown selection mode %q", mode)
		}
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		if err := autoplex.WriteXYZ(out, selected); err != nil {
			return err
		}
		fmt.Printf("selected %d of %d configurations into %s\n", len(selected), len(pool), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().StringP("mode", "m", "boltzmann", "selection mode: cur, boltzmann or hull")
	selectCmd.Flags().StringP("output", "o", "train.xyz", "output file for the selected configurations")
}
