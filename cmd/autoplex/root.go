/*
 * root.go, part of automl-autoplex.
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

//The autoplex command drives the structure generation and selection
//pipeline from the shell: perturb a reference cell into a candidate pool,
//subsample the pool for training, and search supercell matrices.
package main

import (
	"fmt"
	"os"

	"github.com/naik-aakash/automl-autoplex/params"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autoplex",
	Short: "Structure generation and selection for MLIP training data",
	Long: `
autoplex perturbs a reference crystal structure into a pool of candidate
training configurations and subsamples that pool with Boltzmann
flat-histogram and CUR diversity selection.

Structures travel as extended-XYZ files, optionally gzip- or
zstd-compressed (by file extension). Run parameters come from a YAML
file given with --params; command-line flags override it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var paramsFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&paramsFile, "params", "p", "", "YAML parameter file")
}

// loadParams reads the --params file, or returns empty parameters when
// none was given.
func loadParams() (*params.Pipeline, error) {
	if paramsFile == "" {
		return &params.Pipeline{}, nil
	}
	return params.Load(paramsFile)
}

func main() {
	Execute()
}
