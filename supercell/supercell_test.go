package supercell

import (
	"math"
	"testing"

	autoplex "github.com/naik-aakash/automl-autoplex"
	v3 "github.com/naik-aakash/automl-autoplex/v3"
)

func cubicConf(Te *testing.T, a float64, natoms int) *autoplex.Conf {
	lattice, err := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	coords := v3.Zeros(natoms)
	symbols := make([]string, natoms)
	for i := 0; i < natoms; i++ {
		symbols[i] = "Si"
		coords.Set(i, 0, float64(i)*a/float64(natoms))
		coords.Set(i, 1, float64(i)*a/float64(natoms))
		coords.Set(i, 2, float64(i)*a/float64(natoms))
	}
	c, err := autoplex.NewConf(lattice, coords, symbols)
	if err != nil {
		Te.Fatal(err)
	}
	return c
}

func TestFindMatrixCubic(Te *testing.T) {
	c := cubicConf(Te, 4.0, 2)
	p := &Params{MinLength: 10, MaxLength: 14, FallbackMinLength: 8, MinAtoms: 50, MaxAtoms: 200}
	t, tier, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	if tier == TierFallback {
		if autoplex.DetInt(t) == 0 {
			Te.Fatal("fallback produced a singular matrix")
		}
		return
	}
	//a 3x3x3 supercell of a 4 Å cubic cell: 12 Å lengths, 54 atoms
	if tier != TierCubic {
		Te.Errorf("expected the cubic tier for a cubic cell, got %v", tier)
	}
	super, err := autoplex.MakeSupercell(c, t)
	if err != nil {
		Te.Fatal(err)
	}
	if super.Len() < 50 || super.Len() > 200 {
		Te.Errorf("atom count %d outside [50, 200]", super.Len())
	}
	lens := autoplex.LatticeLengths(super.Lattice)
	for i, l := range lens {
		if l < 10-1e-9 || l > 14+1e-9 {
			Te.Errorf("lattice length %d = %g outside [10, 14]", i, l)
		}
	}
}

func TestFindMatrixAnisotropicCell(Te *testing.T) {
	//a stretched cell forces unequal diagonal entries
	lattice, err := v3.NewMatrix([]float64{3.0, 0, 0, 0, 6.0, 0, 0, 0, 3.0})
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1.5, 3.0, 1.5})
	if err != nil {
		Te.Fatal(err)
	}
	c, err := autoplex.NewConf(lattice, coords, []string{"Si", "Si"})
	if err != nil {
		Te.Fatal(err)
	}
	p := &Params{MinLength: 10, MaxLength: 14, FallbackMinLength: 8, MinAtoms: 20, MaxAtoms: 200}
	t, tier, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	if tier == TierFallback {
		Te.Fatal("expected a non-fallback solution for this cell")
	}
	super, err := autoplex.MakeSupercell(c, t)
	if err != nil {
		Te.Fatal(err)
	}
	lens := autoplex.LatticeLengths(super.Lattice)
	for i, l := range lens {
		if l < 10-1e-9 || l > 14+1e-9 {
			Te.Errorf("lattice length %d = %g outside [10, 14]", i, l)
		}
	}
}

func TestFindMatrixFallback(Te *testing.T) {
	//an atom-count window nothing can satisfy: the fallback must fire
	c := cubicConf(Te, 4.0, 2)
	p := &Params{MinLength: 10, MaxLength: 14, FallbackMinLength: 8, MinAtoms: 1000, MaxAtoms: 1001}
	t, tier, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	if tier != TierFallback {
		Te.Fatalf("expected the fallback tier, got %v", tier)
	}
	if autoplex.DetInt(t) == 0 {
		Te.Fatal("fallback produced a singular matrix")
	}
	//max(floor(14/4), 1) = 3 along each vector
	for i := 0; i < 3; i++ {
		if t[i][i] != 3 {
			Te.Errorf("fallback diagonal entry %d = %d, want 3", i, t[i][i])
		}
		for j := 0; j < 3; j++ {
			if i != j && t[i][j] != 0 {
				Te.Error("fallback matrix is not diagonal")
			}
		}
	}
}

func TestFindMatrixDeterministic(Te *testing.T) {
	c := cubicConf(Te, 4.0, 2)
	p := &Params{MinLength: 10, MaxLength: 14, FallbackMinLength: 8, MinAtoms: 50, MaxAtoms: 200}
	a, tierA, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	b, tierB, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	if a != b || tierA != tierB {
		Te.Error("repeated searches disagree")
	}
}

func TestFindMatrixNeedsLattice(Te *testing.T) {
	if _, _, err := FindMatrix(nil, nil); err == nil {
		Te.Error("expected error for a nil configuration")
	}
}

func TestTierString(Te *testing.T) {
	for tier, want := range map[Tier]string{
		TierCubic:    "cubic",
		TierAngles:   "angles-relaxed",
		TierGeneral:  "general",
		TierFallback: "fallback",
		Tier(99):     "unknown",
	} {
		if tier.String() != want {
			Te.Errorf("Tier(%d).String() = %q, want %q", tier, tier.String(), want)
		}
	}
}

func TestCheckDoesNotPanic(Te *testing.T) {
	c := cubicConf(Te, 4.0, 2)
	super := cubicConf(Te, 12.0, 54)
	p := &Params{MinLength: 10, MaxLength: 14, MinAtoms: 50, MaxAtoms: 200}
	Check([]*autoplex.Conf{c, super}, []string{"unit", "super"}, p, 0.1)
	Check(nil, nil, nil, 0)
}

func TestViolationsFallbackFloor(Te *testing.T) {
	//lengths between the fallback floor and MinLength are acceptable
	p := (&Params{MinLength: 18, MaxLength: 22, FallbackMinLength: 12, MinAtoms: 10, MaxAtoms: 200}).withDefaults()
	fallback := cubicConf(Te, 14.0, 54)
	if v := violations(fallback, p, 0.1); len(v) != 0 {
		Te.Errorf("fallback-sized supercell flagged: %v", v)
	}
	short := cubicConf(Te, 9.0, 54)
	if v := violations(short, p, 0.1); len(v) == 0 {
		Te.Error("supercell below the fallback floor not flagged")
	}
}

func TestAnisotropyPreference(Te *testing.T) {
	//of all feasible candidates for a cubic cell, the most cubic wins
	c := cubicConf(Te, 4.0, 2)
	p := &Params{MinLength: 10, MaxLength: 14, FallbackMinLength: 8, MinAtoms: 50, MaxAtoms: 200}
	t, _, err := FindMatrix(c, p)
	if err != nil {
		Te.Fatal(err)
	}
	super := autoplex.TransformLattice(t, c.Lattice)
	lens := autoplex.LatticeLengths(super)
	lo := math.Min(lens[0], math.Min(lens[1], lens[2]))
	hi := math.Max(lens[0], math.Max(lens[1], lens[2]))
	if hi/lo > 1+1e-9 {
		Te.Errorf("anisotropy %g for a cubic cell, expected 1", hi/lo)
	}
}
