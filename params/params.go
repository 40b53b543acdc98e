/*
 * params.go, part of automl-autoplex.
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

//Package params reads the YAML pipeline configuration used by the
//command-line tools. The numeric core never reads files itself; it gets
//everything through option structs, and this package is where those
//options come from in a batch run.
package params

import (
	"fmt"
	"os"
	"sort"

	"github.com/ghodss/yaml"
	autoplex "github.com/naik-aakash/automl-autoplex"
)

// Pipeline holds the parameters of one sampling run, as read from the
// YAML input file.
type Pipeline struct {
	Title string `yaml:"Title"`

	//generation
	ScaleRange      []float64 `yaml:"ScaleRange"`
	ScaleFactors    []float64 `yaml:"ScaleFactors"`
	NVolume         int       `yaml:"NVolume"`
	NAngle          int       `yaml:"NAngle"`
	AngleScale      float64   `yaml:"AngleScale"`
	NRattle         int       `yaml:"NRattle"`
	RattleStd       float64   `yaml:"RattleStd"`
	RattleSeed      uint64    `yaml:"RattleSeed"`
	RattleMC        bool      `yaml:"RattleMC"`
	MCIterations    int       `yaml:"MCIterations"`
	MinDistance     float64   `yaml:"MinDistance"`

	//selection
	Descriptor       string             `yaml:"Descriptor"`
	KernelExponent   int                `yaml:"KernelExponent"`
	SelectN          int                `yaml:"SelectN"`
	Stochastic       bool               `yaml:"Stochastic"`
	KT               float64            `yaml:"KT"`
	Fraction         float64            `yaml:"Fraction"`
	MaxSelect        int                `yaml:"MaxSelect"`
	CURCount         int                `yaml:"CURCount"`
	EnergyLabel      string             `yaml:"EnergyLabel"`
	HullScheme       string             `yaml:"HullScheme"`
	ElementOrder     []string           `yaml:"ElementOrder"`
	IsolatedEnergies map[string]float64 `yaml:"IsolatedEnergies"`
	Pressures        []float64          `yaml:"Pressures"`
	Workers          int                `yaml:"Workers"`
	Seed             uint64             `yaml:"Seed"`

	//supercells
	MinLength         float64 `yaml:"MinLength"`
	MaxLength         float64 `yaml:"MaxLength"`
	FallbackMinLength float64 `yaml:"FallbackMinLength"`
	MinAtoms          int     `yaml:"MinAtoms"`
	MaxAtoms          int     `yaml:"MaxAtoms"`
	StepSize          float64 `yaml:"StepSize"`
}

// Parse fills the pipeline parameters from YAML data.
func (p *Pipeline) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return autoplex.NewError("Parse", "bad pipeline YAML: %v", err)
	}
	return nil
}

// Load reads and parses a pipeline YAML file.
func Load(filename string) (*Pipeline, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, autoplex.NewError("Load", "unable to read parameter file: %v", err)
	}
	p := &Pipeline{}
	if err := p.Parse(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Print writes a human-readable parameter summary to stdout.
func (p *Pipeline) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("%8.5f\t\t= KT\n", p.KT)
	fmt.Printf("%8.5f\t\t= Fraction\n", p.Fraction)
	fmt.Printf("[%s]\t\t= Descriptor\n", p.Descriptor)
	fmt.Printf("[%s]\t\t= HullScheme\n", p.HullScheme)
	fmt.Printf("[%d]\t\t\t= SelectN\n", p.SelectN)
	fmt.Printf("[%.2f, %.2f]\t= supercell length window\n", p.MinLength, p.MaxLength)
	keys := make([]string, 0, len(p.IsolatedEnergies))
	for k := range p.IsolatedEnergies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("IsolatedEnergies[%s] = %v\n", k, p.IsolatedEnergies[k])
	}
}
