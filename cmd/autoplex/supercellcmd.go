/*
 * supercellcmd.go, part of automl-autoplex.
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
	"github.com/naik-aakash/automl-autoplex/supercell"
	"github.com/spf13/cobra"
)

// supercellCmd searches a supercell transformation for each input structure.
var supercellCmd = &cobra.Command{
	Use:   "supercell [structure file]",
	Short: "Search supercell matrices for the given structures",
	Long: `
For every configuration in the input file, searches a supercell
transformation matrix satisfying the length and atom-count windows of the
parameter file, prints the matrix and the search tier that produced it,
and optionally writes the built supercells.

autoplex supercell -p run.yaml -o supercells.xyz prim.xyz`,
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
		sp := &supercell.Params{
			MinLength:         p.MinLength,
			MaxLength:         p.MaxLength,
			FallbackMinLength: p.FallbackMinLength,
			MinAtoms:          p.MinAtoms,
			MaxAtoms:          p.MaxAtoms,
			StepSize:          p.StepSize,
		}
		var supers []*autoplex.Conf
		for i, c := range confs {
			t, tier, err := supercell.FindMatrix(c, sp)
			if err != nil {
				return err
			}
			fmt.Printf("structure %d: tier %s, matrix %v\n", i, tier, t)
			s, err := autoplex.MakeSupercell(c, t)
			if err != nil {
				return err
			}
			supers = append(supers, s)
		}
		tol, _ := cmd.Flags().GetFloat64("tolerance")
		names := make([]string, len(supers))
		for i := range names {
			names[i] = fmt.Sprintf("structure %d", i)
		}
		supercell.Check(supers, names, sp, tol)
		out, _ := cmd.Flags().GetString("output")
		if out != "" {
			if err := autoplex.WriteXYZ(out, supers); err != nil {
				return err
			}
			fmt.Printf("wrote %d supercells to %s\n", len(supers), out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supercellCmd)
	supercellCmd.Flags().StringP("output", "o", "", "write the built supercells to this file")
	supercellCmd.Flags().Float64("tolerance", 0.1, "relative tolerance for the validation warnings")
}
