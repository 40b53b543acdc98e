/*
 * xyz.go, part of automl-autoplex.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/naik-aakash/automl-autoplex/v3"
)

//Extended-XYZ is the interchange format between the generation, fitting and
//benchmark stages: one frame per configuration, the comment line carrying
//Lattice, Properties and the scalar labels. Files ending in .gz or .zst are
//transparently (de)compressed; zstd goes through the klauspost engine.

// ReadXYZ reads all configurations from an extended-XYZ file. Compression
// is inferred from the file name.
func ReadXYZ(filename string) ([]*Conf, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, NewError("ReadXYZ", "unable to open file: %v", err)
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(filename, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, NewError("ReadXYZ", "zstd: %v", err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(filename, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, NewError("ReadXYZ", "gzip: %v", err)
		}
		defer gr.Close()
		r = gr
	}
	return readXYZFrames(bufio.NewReader(r))
}

func readXYZFrames(r *bufio.Reader) ([]*Conf, error) {
	var confs []*Conf
	for {
		line, err := readLine(r)
		if err == io.EOF {
			return confs, nil
		}
		if err != nil {
			return nil, NewError("ReadXYZ", "read: %v", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, NewError("ReadXYZ", "malformed atom-count line %q", line)
		}
		comment, err := readLine(r)
		if err != nil {
			return nil, NewError("ReadXYZ", "missing comment line")
		}
		conf, err := parseFrame(r, natoms, comment)
		if err != nil {
			return nil, errDecorate(err, "ReadXYZ")
		}
		confs = append(confs, conf)
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

func parseFrame(r *bufio.Reader, natoms int, comment string) (*Conf, error) {
	kv := parseComment(comment)
	var lattice *v3.Matrix
	if ls, ok := kv["Lattice"]; ok {
		fields := strings.Fields(ls)
		if len(fields) != 9 {
			return nil, NewError("parseFrame", "Lattice needs 9 numbers, got %d", len(fields))
		}
		data := make([]float64, 9)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, NewError("parseFrame", "bad Lattice entry %q", f)
			}
			data[i] = v
		}
		lattice, _ = v3.NewMatrix(data)
	}
	props := kv["Properties"]
	if props == "" {
		props = "species:S:1:pos:R:3"
	}
	cols, err := parseProperties(props)
	if err != nil {
		return nil, err
	}
	coords := v3.Zeros(natoms)
	symbols := make([]string, natoms)
	var forces, refForces *v3.Matrix
	for _, c := range cols {
		if c.name == "forces" {
			forces = v3.Zeros(natoms)
		}
		if c.name == "REF_forces" {
			refForces = v3.Zeros(natoms)
		}
	}
	for i := 0; i < natoms; i++ {
		line, err := readLine(r)
		if err != nil {
			return nil, NewError("parseFrame", "truncated frame at atom %d", i)
		}
		fields := strings.Fields(line)
		at := 0
		for _, c := range cols {
			if at+c.width > len(fields) {
				return nil, NewError("parseFrame", "atom line %d has too few columns", i)
			}
			switch c.name {
			case "species":
				symbols[i] = fields[at]
			case "pos", "forces", "REF_forces":
				dst := coords
				if c.name == "forces" {
					dst = forces
				} else if c.name == "REF_forces" {
					dst = refForces
				}
				for k := 0; k < 3; k++ {
					v, err := strconv.ParseFloat(fields[at+k], 64)
					if err != nil {
						return nil, NewError("parseFrame", "bad number %q in atom line %d", fields[at+k], i)
					}
					dst.Set(i, k, v)
				}
			}
			at += c.width
		}
	}
	var conf *Conf
	if lattice != nil {
		var err error
		conf, err = NewConf(lattice, coords, symbols)
		if err != nil {
			return nil, err
		}
	} else {
		conf = &Conf{Coords: coords, Symbols: symbols}
	}
	if pbc, ok := kv["pbc"]; ok {
		flags := strings.Fields(pbc)
		for i := 0; i < len(flags) && i < 3; i++ {
			conf.PBC[i] = flags[i] == "T" || flags[i] == "true"
		}
	}
	for _, label := range []string{LabelEnergy, LabelRefEnergy} {
		if s, ok := kv[label]; ok {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, NewError("parseFrame", "bad %s value %q", label, s)
			}
			conf.SetEnergyLabel(label, v)
		}
	}
	if s, ok := kv["pressure"]; ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, NewError("parseFrame", "bad pressure value %q", s)
		}
		conf.Info.Pressure = &v
	}
	conf.Info.ConfigType = kv["config_type"]
	conf.Info.Forces = forces
	conf.Info.RefForces = refForces
	return conf, nil
}

type xyzColumn struct {
	name  string
	width int
}

func parseProperties(props string) ([]xyzColumn, error) {
	fields := strings.Split(props, ":")
	if len(fields)%3 != 0 {
		return nil, NewError("parseProperties", "malformed Properties string %q", props)
	}
	var cols []xyzColumn
	for i := 0; i < len(fields); i += 3 {
		w, err := strconv.Atoi(fields[i+2])
		if err != nil || w < 1 {
			return nil, NewError("parseProperties", "bad column width in %q", props)
		}
		cols = append(cols, xyzColumn{name: fields[i], width: w})
	}
	return cols, nil
}

// parseComment splits an extended-XYZ comment line into key=value pairs,
// honoring double quotes around values.
func parseComment(line string) map[string]string {
	kv := make(map[string]string)
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		start := i
		for i < len(line) && line[i] != '=' && line[i] != ' ' {
			i++
		}
		if i >= len(line) || line[i] != '=' {
			continue
		}
		key := line[start:i]
		i++ // skip '='
		var val string
		if i < len(line) && line[i] == '"' {
			i++
			vstart := i
			for i < len(line) && line[i] != '"' {
				i++
			}
			val = line[vstart:i]
			i++ // skip closing quote
		} else {
			vstart := i
			for i < len(line) && line[i] != ' ' {
				i++
			}
			val = line[vstart:i]
		}
		kv[key] = val
	}
	return kv
}

// WriteXYZ writes configurations to an extended-XYZ file, compressing
// according to the file name (.gz for gzip, .zst for zstd).
func WriteXYZ(filename string, confs []*Conf) error {
	f, err := os.Create(filename)
	if err != nil {
		return NewError("WriteXYZ", "unable to create file: %v", err)
	}
	defer f.Close()
	var w io.Writer = f
	var closer io.Closer
	switch {
	case strings.HasSuffix(filename, ".zst"):
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return NewError("WriteXYZ", "zstd: %v", err)
		}
		w = zw
		closer = zw
	case strings.HasSuffix(filename, ".gz"):
		gw := gzip.NewWriter(f)
		w = gw
		closer = gw
	}
	bw := bufio.NewWriter(w)
	for _, c := range confs {
		if err := writeFrame(bw, c); err != nil {
			return errDecorate(err, "WriteXYZ")
		}
	}
	if err := bw.Flush(); err != nil {
		return NewError("WriteXYZ", "flush: %v", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return NewError("WriteXYZ", "close compressor: %v", err)
		}
	}
	return nil
}

func writeFrame(w *bufio.Writer, c *Conf) error {
	fmt.Fprintf(w, "%d\n", c.Len())
	var parts []string
	if c.Lattice != nil {
		l := make([]string, 0, 9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				l = append(l, strconv.FormatFloat(c.Lattice.At(i, j), 'g', 12, 64))
			}
		}
		parts = append(parts, `Lattice="`+strings.Join(l, " ")+`"`)
	}
	props := "species:S:1:pos:R:3"
	if c.Info.Forces != nil {
		props += ":forces:R:3"
	}
	if c.Info.RefForces != nil {
		props += ":REF_forces:R:3"
	}
	parts = append(parts, "Properties="+props)
	if c.Info.Energy != nil {
		parts = append(parts, fmt.Sprintf("energy=%.10f", *c.Info.Energy))
	}
	if c.Info.RefEnergy != nil {
		parts = append(parts, fmt.Sprintf("REF_energy=%.10f", *c.Info.RefEnergy))
	}
	if c.Info.Pressure != nil {
		parts = append(parts, fmt.Sprintf("pressure=%.6f", *c.Info.Pressure))
	}
	if c.Info.ConfigType != "" {
		parts = append(parts, "config_type="+c.Info.ConfigType)
	}
	pbc := make([]string, 3)
	for i, p := range c.PBC {
		if p {
			pbc[i] = "T"
		} else {
			pbc[i] = "F"
		}
	}
	parts = append(parts, `pbc="`+strings.Join(pbc, " ")+`"`)
	fmt.Fprintln(w, strings.Join(parts, " "))
	for i := 0; i < c.Len(); i++ {
		fmt.Fprintf(w, "%-3s %16.8f %16.8f %16.8f", c.Symbols[i],
			c.Coords.At(i, 0), c.Coords.At(i, 1), c.Coords.At(i, 2))
		if c.Info.Forces != nil {
			fmt.Fprintf(w, " %16.8f %16.8f %16.8f",
				c.Info.Forces.At(i, 0), c.Info.Forces.At(i, 1), c.Info.Forces.At(i, 2))
		}
		if c.Info.RefForces != nil {
			fmt.Fprintf(w, " %16.8f %16.8f %16.8f",
				c.Info.RefForces.At(i, 0), c.Info.RefForces.At(i, 1), c.Info.RefForces.At(i, 2))
		}
		fmt.Fprintln(w)
	}
	return nil
}
