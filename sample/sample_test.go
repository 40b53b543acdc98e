package sample

import (
	"math"
	"testing"

	autoplex "github.com/naik-aakash/automl-autoplex"
	"github.com/naik-aakash/automl-autoplex/descriptor"
	v3 "github.com/naik-aakash/automl-autoplex/v3"
	"golang.org/x/exp/rand"
)

// poolConf builds a cubic Si cell with the lattice parameter nudged by
// shift, so every pool member has a distinct geometry and energy.
func poolConf(Te *testing.T, shift, energy float64) *autoplex.Conf {
	a := 3.0 + shift
	lattice, err := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, a / 2, a / 2, a / 2})
	if err != nil {
		Te.Fatal(err)
	}
	c, err := autoplex.NewConf(lattice, coords, []string{"Si", "Si"})
	if err != nil {
		Te.Fatal(err)
	}
	if err := c.SetEnergyLabel(autoplex.LabelEnergy, energy); err != nil {
		Te.Fatal(err)
	}
	p := 0.0
	c.Info.Pressure = &p
	return c
}

func testPool(Te *testing.T, n int) []*autoplex.Conf {
	pool := make([]*autoplex.Conf, n)
	for i := range pool {
		pool[i] = poolConf(Te, 0.05*float64(i), -10.0+0.3*float64(i))
	}
	return pool
}

func testComputer(Te *testing.T) descriptor.Computer {
	comp, err := descriptor.NewRadial([]string{"Si"}, 5.0, 10, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	return comp
}

func TestFlatten(Te *testing.T) {
	a := testPool(Te, 2)
	b := testPool(Te, 3)
	flat := Flatten(a, b, nil)
	if len(flat) != 5 {
		Te.Fatalf("expected 5 configurations, got %d", len(flat))
	}
	if flat[0] != a[0] || flat[2] != b[0] {
		Te.Error("flattening broke the pool order")
	}
}

func TestArenaWithoutReplacement(Te *testing.T) {
	weights := []float64{1, 2, 3, 4, 5}
	a := newArena(weights)
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for a.len() > 0 {
		ix := a.draw(rng)
		if seen[ix] {
			Te.Fatalf("index %d drawn twice", ix)
		}
		seen[ix] = true
	}
	if len(seen) != len(weights) {
		Te.Fatalf("expected %d draws, got %d", len(weights), len(seen))
	}
}

func TestArenaZeroWeights(Te *testing.T) {
	a := newArena([]float64{0, 0, 0})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 3; i++ {
		a.draw(rng)
	}
	if a.len() != 0 {
		Te.Error("zero-weight arena did not drain")
	}
}

func TestCURBounds(Te *testing.T) {
	pool := testPool(Te, 8)
	comp := testComputer(Te)
	for _, stochastic := range []bool{false, true} {
		out, err := CUR(pool, &CUROptions{Computer: comp, N: 3, Stochastic: stochastic, Seed: 5})
		if err != nil {
			Te.Fatal(err)
		}
		if len(out) != 3 {
			Te.Fatalf("stochastic=%v: expected 3, got %d", stochastic, len(out))
		}
		seen := make(map[*autoplex.Conf]bool)
		for _, c := range out {
			if seen[c] {
				Te.Fatalf("stochastic=%v: configuration selected twice", stochastic)
			}
			seen[c] = true
		}
	}
}

func TestCUROversizedRequest(Te *testing.T) {
	pool := testPool(Te, 3)
	out, err := CUR(pool, &CUROptions{Computer: testComputer(Te), N: 10})
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != len(pool) {
		Te.Fatalf("expected the whole pool back, got %d of %d", len(out), len(pool))
	}
}

func TestCUREmptyPool(Te *testing.T) {
	out, err := CUR(nil, &CUROptions{Computer: testComputer(Te), N: 3})
	if err != nil {
		Te.Fatal(err)
	}
	if out != nil {
		Te.Error("empty pool must select nothing")
	}
}

func TestCURKernel(Te *testing.T) {
	//kernelized and raw decompositions must both give usable scores
	pool := testPool(Te, 6)
	comp := testComputer(Te)
	for _, kexp := range []int{0, 1, 2} {
		scores, err := LeverageScores(pool, comp, kexp, 4, 1)
		if err != nil {
			Te.Fatalf("kernel exponent %d: %v", kexp, err)
		}
		if len(scores) != len(pool) {
			Te.Fatalf("kernel exponent %d: %d scores for %d configurations", kexp, len(scores), len(pool))
		}
		for i, s := range scores {
			if s < 0 || math.IsNaN(s) {
				Te.Errorf("kernel exponent %d: bad score %g at %d", kexp, s, i)
			}
		}
	}
}

func TestBoltzmannHistBounds(Te *testing.T) {
	pool := testPool(Te, 20)
	isol := map[string]float64{"Si": -0.8}
	out, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: isol,
		KT:               0.1,
		Frac:             0.5,
		MaxNum:           6,
		Seed:             3,
	})
	if err != nil {
		Te.Fatal(err)
	}
	//min(round(0.5*20), 6) = 6
	if len(out) != 6 {
		Te.Fatalf("expected 6 configurations, got %d", len(out))
	}
	seen := make(map[*autoplex.Conf]bool)
	for _, c := range out {
		if seen[c] {
			Te.Fatal("configuration selected twice")
		}
		seen[c] = true
	}
}

func TestBoltzmannHistZeroTarget(Te *testing.T) {
	//round(0.1*4) = 0: a fraction that rounds to zero selects nothing
	pool := testPool(Te, 4)
	out, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             0.1,
		Seed:             11,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != 0 {
		Te.Fatalf("expected an empty selection, got %d configurations", len(out))
	}
}

func TestBoltzmannHistNoPressure(Te *testing.T) {
	pool := testPool(Te, 4)
	pool[2].Info.Pressure = nil
	_, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             0.5,
	})
	if err == nil {
		Te.Fatal("expected error for missing pressure")
	}
}

func TestBoltzmannHistExplicitPressures(Te *testing.T) {
	pool := testPool(Te, 4)
	for _, c := range pool {
		c.Info.Pressure = nil
	}
	pressures := []float64{0, 1, 2, 3}
	out, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             0.5,
		Pressures:        pressures,
		Seed:             9,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != 2 {
		Te.Fatalf("expected 2 configurations, got %d", len(out))
	}
}

func TestBoltzmannHistMissingLabel(Te *testing.T) {
	pool := testPool(Te, 3)
	pool[1].Info.Energy = nil
	_, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             1.0,
	})
	if err == nil {
		Te.Fatal("expected error for missing energy label")
	}
}

func TestBoltzmannHistCURPrune(Te *testing.T) {
	pool := testPool(Te, 20)
	out, err := BoltzmannHist(pool, &BoltzOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             0.8,
		CURNum:           4,
		Computer:         testComputer(Te),
		Seed:             17,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != 4 {
		Te.Fatalf("expected 4 configurations after CUR pruning, got %d", len(out))
	}
}

func TestHullBoltzmann(Te *testing.T) {
	pool := testPool(Te, 15)
	for i, c := range pool {
		if err := c.SetEnergyLabel(autoplex.LabelRefEnergy, -10.0+0.3*float64(i)); err != nil {
			Te.Fatal(err)
		}
	}
	out, err := HullBoltzmann(pool, &HullOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Frac:             0.4,
		Seed:             2,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != 6 {
		Te.Fatalf("expected 6 configurations, got %d", len(out))
	}
}

func TestHullBoltzmannRejects(Te *testing.T) {
	pool := testPool(Te, 4)
	if _, err := HullBoltzmann(pool, &HullOptions{}); err == nil {
		Te.Error("expected error for missing isolated-atom energies")
	}
	if _, err := HullBoltzmann(pool, &HullOptions{
		IsolatedEnergies: map[string]float64{"Si": -0.8},
		Scheme:           "banana-hull",
	}); err == nil {
		Te.Error("expected error for an unknown scheme")
	}
}
