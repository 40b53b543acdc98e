package hull

import (
	"math"
	"testing"

	autoplex "github.com/naik-aakash/automl-autoplex"
	v3 "github.com/naik-aakash/automl-autoplex/v3"
)

func TestLowerChain(Te *testing.T) {
	points := []Point{
		{V: 10, E: -1.0},
		{V: 12, E: -1.5},
		{V: 14, E: -1.2},
		{V: 12, E: -0.5}, //above the hull at the same volume as the minimum
		{V: 16, E: -0.3},
	}
	lower, err := Lower(points)
	if err != nil {
		Te.Fatal(err)
	}
	//the lower envelope of this set is {10,-1.0} {12,-1.5} {16,-0.3}:
	//{14,-1.2} sits above the {12,-1.5}-{16,-0.3} segment
	if len(lower) != 3 {
		Te.Fatalf("expected 3 hull points, got %d: %v", len(lower), lower)
	}
	if lower[1].V != 12 || lower[1].E != -1.5 {
		Te.Errorf("unexpected hull vertex %v", lower[1])
	}
}

func TestDistanceNonNegative(Te *testing.T) {
	points := []Point{
		{V: 10, E: -1.0},
		{V: 11, E: -1.3},
		{V: 12, E: -1.5},
		{V: 13, E: -1.1},
		{V: 14, E: -1.2},
		{V: 15, E: -0.6},
		{V: 16, E: -0.3},
	}
	lower, err := Lower(points)
	if err != nil {
		Te.Fatal(err)
	}
	const eps = 1e-10
	for i, p := range points {
		if d := DistanceToLower(lower, p); d < -eps {
			Te.Errorf("point %d is %g below its own hull", i, d)
		}
	}
	//hull vertices sit exactly on the hull
	for _, p := range lower {
		if d := DistanceToLower(lower, p); math.Abs(d) > eps {
			Te.Errorf("hull vertex %v at distance %g from the hull", p, d)
		}
	}
}

func TestInterpClamps(Te *testing.T) {
	lower := []Point{{V: 10, E: -1}, {V: 20, E: -2}}
	if Interp(lower, 5) != -1 {
		Te.Error("left clamp failed")
	}
	if Interp(lower, 25) != -2 {
		Te.Error("right clamp failed")
	}
	if math.Abs(Interp(lower, 15)+1.5) > 1e-12 {
		Te.Error("midpoint interpolation failed")
	}
}

func makeConf(Te *testing.T, a float64, symbols []string, energy float64) *autoplex.Conf {
	lattice, err := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	if err != nil {
		Te.Fatal(err)
	}
	coords := v3.Zeros(len(symbols))
	for i := range symbols {
		coords.Set(i, 0, float64(i)*a/float64(len(symbols)))
	}
	c, err := autoplex.NewConf(lattice, coords, symbols)
	if err != nil {
		Te.Fatal(err)
	}
	if err := c.SetEnergyLabel(autoplex.LabelRefEnergy, energy); err != nil {
		Te.Fatal(err)
	}
	return c
}

func TestPointsEV(Te *testing.T) {
	isol := map[string]float64{"Si": -0.8}
	confs := []*autoplex.Conf{
		makeConf(Te, 4.0, []string{"Si", "Si"}, -10.0),
		makeConf(Te, 4.2, []string{"Si", "Si"}, -9.5),
	}
	iso := makeConf(Te, 10.0, []string{"Si"}, -0.8)
	iso.Info.ConfigType = "isolated_atom"
	confs = append(confs, iso)
	points, idx, err := PointsEV(confs, isol, autoplex.LabelRefEnergy)
	if err != nil {
		Te.Fatal(err)
	}
	if len(points) != 2 {
		Te.Fatalf("expected the isolated atom to be skipped, got %d points", len(points))
	}
	if idx[0] != 0 || idx[1] != 1 {
		Te.Errorf("index mapping wrong: %v", idx)
	}
	//(E - 2*isol)/2 for the first configuration
	want := (-10.0 + 2*0.8) / 2
	if math.Abs(points[0].E-want) > 1e-12 {
		Te.Errorf("formation energy %g, want %g", points[0].E, want)
	}
	if math.Abs(points[0].V-32.0) > 1e-9 {
		Te.Errorf("volume per atom %g, want 32", points[0].V)
	}
}

func TestPointsEVRequiresIsol(Te *testing.T) {
	confs := []*autoplex.Conf{makeConf(Te, 4.0, []string{"Si"}, -5)}
	if _, _, err := PointsEV(confs, nil, autoplex.LabelRefEnergy); err == nil {
		Te.Error("expected error for missing isolated-atom energies")
	}
	if _, _, err := PointsEV(confs, map[string]float64{"O": -1}, autoplex.LabelRefEnergy); err == nil {
		Te.Error("expected error for species without a reference energy")
	}
}

func TestHull3D(Te *testing.T) {
	//a unit tetrahedron plus one interior point and one point above
	points := []Point3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0.3, 0.3, -1},
		{0.25, 0.25, -0.1}, //inside
		{0.3, 0.3, 2},      //above, becomes a hull vertex on the upper side
	}
	facets, err := Hull3D(points)
	if err != nil {
		Te.Fatal(err)
	}
	lower := LowerFacets(points, facets)
	if len(lower) == 0 {
		Te.Fatal("no lower facets")
	}
	for _, f := range lower {
		for _, ix := range f {
			if ix == 4 || ix == 5 {
				Te.Errorf("point %d must not be a lower-hull vertex", ix)
			}
		}
	}
	const eps = 1e-9
	for i, p := range points {
		d, err := DistanceToHull3D(points, lower, p)
		if err != nil {
			Te.Fatalf("point %d: %v", i, err)
		}
		if d < -eps {
			Te.Errorf("point %d is %g below the lower hull", i, d)
		}
	}
	//the interior point's gap to the lower surface is strictly positive
	d, err := DistanceToHull3D(points, lower, points[4])
	if err != nil {
		Te.Fatal(err)
	}
	if d <= 0 {
		Te.Errorf("interior point should be above the lower hull, got %g", d)
	}
}

func TestHull3DDegenerate(Te *testing.T) {
	flat := []Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	if _, err := Hull3D(flat); err == nil {
		Te.Error("expected error for a coplanar point set")
	}
}

func TestPointsXVE(Te *testing.T) {
	isol := map[string]float64{"Si": -0.8, "O": -0.4}
	confs := []*autoplex.Conf{
		makeConf(Te, 4.0, []string{"Si", "O", "O"}, -15.0),
	}
	points, _, err := PointsXVE(confs, isol, autoplex.LabelRefEnergy, []string{"Si", "O"})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(points[0].X-2.0/3.0) > 1e-12 {
		Te.Errorf("mole fraction %g, want 2/3", points[0].X)
	}
	//unknown species must be rejected
	bad := []*autoplex.Conf{makeConf(Te, 4.0, []string{"Fe"}, -5)}
	if _, _, err := PointsXVE(bad, map[string]float64{"Fe": -1}, autoplex.LabelRefEnergy, []string{"Si", "O"}); err == nil {
		Te.Error("expected error for species outside the element order")
	}
}
