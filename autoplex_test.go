package autoplex

import (
	"math"
	"testing"

	v3 "github.com/naik-aakash/automl-autoplex/v3"
)

func cubic(Te *testing.T, a float64) *Conf {
	lattice, err := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, a / 2, a / 2, a / 2})
	if err != nil {
		Te.Fatal(err)
	}
	c, err := NewConf(lattice, coords, []string{"Si", "Si"})
	if err != nil {
		Te.Fatal(err)
	}
	return c
}

func TestCellParRoundtrip(Te *testing.T) {
	par := [6]float64{4.0, 5.0, 6.0, 80.0, 95.0, 100.0}
	lattice := CellFromPar(par)
	back := CellPar(lattice)
	for i := 0; i < 6; i++ {
		if math.Abs(back[i]-par[i]) > 1e-9 {
			Te.Errorf("parameter %d: got %g, want %g", i, back[i], par[i])
		}
	}
}

func TestCellParCubic(Te *testing.T) {
	c := cubic(Te, 4.0)
	par := CellPar(c.Lattice)
	want := [6]float64{4, 4, 4, 90, 90, 90}
	for i := range par {
		if math.Abs(par[i]-want[i]) > 1e-10 {
			Te.Errorf("parameter %d: got %g, want %g", i, par[i], want[i])
		}
	}
}

func TestVolume(Te *testing.T) {
	c := cubic(Te, 4.0)
	if math.Abs(c.Volume()-64) > 1e-10 {
		Te.Errorf("volume %g, want 64", c.Volume())
	}
}

func TestFracSetCell(Te *testing.T) {
	c := cubic(Te, 4.0)
	frac, err := c.Frac()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(frac.At(1, 0)-0.5) > 1e-12 {
		Te.Errorf("fractional coordinate %g, want 0.5", frac.At(1, 0))
	}
	bigger, err := v3.NewMatrix([]float64{8, 0, 0, 0, 8, 0, 0, 0, 8})
	if err != nil {
		Te.Fatal(err)
	}
	if err := c.SetCell(bigger, true); err != nil {
		Te.Fatal(err)
	}
	//fractional position preserved, cartesian doubled
	if math.Abs(c.Coords.At(1, 0)-4.0) > 1e-10 {
		Te.Errorf("atom did not follow the cell: %g", c.Coords.At(1, 0))
	}
}

func TestDistanceMIC(Te *testing.T) {
	c := cubic(Te, 4.0)
	//atoms at the origin and the body center: direct distance and MIC agree
	want := math.Sqrt(3) * 2
	if d := c.DistanceMIC(0, 1); math.Abs(d-want) > 1e-10 {
		Te.Errorf("distance %g, want %g", d, want)
	}
	//an atom near the far corner is close to the origin through the boundary
	c.Coords.Set(1, 0, 3.9)
	c.Coords.Set(1, 1, 0)
	c.Coords.Set(1, 2, 0)
	if d := c.DistanceMIC(0, 1); math.Abs(d-0.1) > 1e-10 {
		Te.Errorf("minimum-image distance %g, want 0.1", d)
	}
}

func TestMakeSupercell(Te *testing.T) {
	c := cubic(Te, 4.0)
	e := -10.0
	c.Info.Energy = &e
	c.Info.ConfigType = "bulk"
	t := [3][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	s, err := MakeSupercell(c, t)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Len() != 16 {
		Te.Fatalf("expected 16 atoms, got %d", s.Len())
	}
	if math.Abs(s.Volume()-8*c.Volume()) > 1e-9 {
		Te.Errorf("supercell volume %g, want %g", s.Volume(), 8*c.Volume())
	}
	//scalar labels do not survive replication, the provenance tag does
	if s.Info.Energy != nil {
		Te.Error("energy label must not be copied to the supercell")
	}
	if s.Info.ConfigType != "bulk" {
		Te.Error("config type lost in replication")
	}
	//the supercell keeps the unit cell's minimum distance
	if math.Abs(s.MinDistance()-c.MinDistance()) > 1e-9 {
		Te.Errorf("minimum distance changed: %g vs %g", s.MinDistance(), c.MinDistance())
	}
}

func TestMakeSupercellSingular(Te *testing.T) {
	c := cubic(Te, 4.0)
	if _, err := MakeSupercell(c, [3][3]int{}); err == nil {
		Te.Error("expected error for a singular transformation")
	}
}

func TestSpecies(Te *testing.T) {
	si := cubic(Te, 4.0)
	sio, err := NewConf(si.Lattice.Clone(), si.Coords.Clone(), []string{"Si", "O"})
	if err != nil {
		Te.Fatal(err)
	}
	sp := NewSpecies(si, sio)
	if sp.Num() != 2 {
		Te.Fatalf("expected 2 species, got %d", sp.Num())
	}
	pairs := sp.Pairs(sp.List())
	if len(pairs) != 3 {
		Te.Fatalf("expected 3 pairs, got %d: %v", len(pairs), pairs)
	}
	zs, err := sp.ZString()
	if err != nil {
		Te.Fatal(err)
	}
	if zs != "{14 8}" {
		Te.Errorf("ZString = %q, want {14 8}", zs)
	}
}

func TestRmsDict(Te *testing.T) {
	r, err := RmsDict([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if r.RMSE != 0 || r.Std != 0 {
		Te.Errorf("identical inputs must give zero rmse and std, got %+v", r)
	}
	if _, err := RmsDict([]float64{1}, []float64{1, 2}); err == nil {
		Te.Error("expected error for mismatched lengths")
	}
	r, err = RmsDict([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		Te.Fatal(err)
	}
	want := math.Sqrt(12.5)
	if math.Abs(r.RMSE-want) > 1e-12 {
		Te.Errorf("RMSE %g, want %g", r.RMSE, want)
	}
}

func TestEnergyLabels(Te *testing.T) {
	c := cubic(Te, 4.0)
	if _, err := c.EnergyLabel(LabelEnergy); err == nil {
		Te.Error("missing label must be an error, not zero")
	}
	if err := c.SetEnergyLabel(LabelEnergy, -7.5); err != nil {
		Te.Fatal(err)
	}
	e, err := c.EnergyLabel(LabelEnergy)
	if err != nil {
		Te.Fatal(err)
	}
	if e != -7.5 {
		Te.Errorf("energy %g, want -7.5", e)
	}
	if err := c.SetEnergyLabel("banana", 1); err == nil {
		Te.Error("unknown label keys must be rejected")
	}
}

func TestCopyIsDeep(Te *testing.T) {
	c := cubic(Te, 4.0)
	e := -1.0
	c.Info.Energy = &e
	n := c.Copy()
	n.Coords.Set(0, 0, 99)
	*n.Info.Energy = 5
	if c.Coords.At(0, 0) == 99 {
		Te.Error("coordinates shared between copies")
	}
	if *c.Info.Energy != -1.0 {
		Te.Error("labels shared between copies")
	}
}

func TestZFromSymbol(Te *testing.T) {
	z, err := ZFromSymbol("Si")
	if err != nil {
		Te.Fatal(err)
	}
	if z != 14 {
		Te.Errorf("Z(Si) = %d, want 14", z)
	}
	if _, err := ZFromSymbol("Xx"); err == nil {
		Te.Error("expected error for an unknown symbol")
	}
}

func TestFilterOutlierEnergy(Te *testing.T) {
	good := cubic(Te, 4.0)
	goodPred := cubic(Te, 4.0)
	bad := cubic(Te, 4.0)
	badPred := cubic(Te, 4.0)
	if err := good.SetEnergyLabel(LabelRefEnergy, -10.0); err != nil {
		Te.Fatal(err)
	}
	if err := goodPred.SetEnergyLabel(LabelEnergy, -10.01); err != nil {
		Te.Fatal(err)
	}
	if err := bad.SetEnergyLabel(LabelRefEnergy, -10.0); err != nil {
		Te.Fatal(err)
	}
	if err := badPred.SetEnergyLabel(LabelEnergy, -8.0); err != nil {
		Te.Fatal(err)
	}
	keptRef, keptPred, outliers, err := FilterOutlierEnergy(
		[]*Conf{good, bad}, []*Conf{goodPred, badPred}, 0.1)
	if err != nil {
		Te.Fatal(err)
	}
	if len(keptRef) != 1 || len(keptPred) != 1 || len(outliers) != 1 {
		Te.Fatalf("kept %d/%d, outliers %d; want 1/1 and 1", len(keptRef), len(keptPred), len(outliers))
	}
	if outliers[0] != bad {
		Te.Error("wrong pair flagged as outlier")
	}
	if _, _, _, err := FilterOutlierEnergy([]*Conf{good}, nil, 0.1); err == nil {
		Te.Error("expected error for mismatched pool sizes")
	}
}

func TestConversionConstants(Te *testing.T) {
	//1 GPa in eV/Å^3, and back
	if math.Abs(GPa2EvA3*160.21766208-1) > 1e-12 {
		Te.Error("GPa conversion constant is off")
	}
	if math.Abs(GPa2EvA3*EvA32GPa-1) > 1e-12 {
		Te.Error("conversion constants are not inverses")
	}
}
