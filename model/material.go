package model

// Material is a single homogeneous layer in a Construction.
type Material struct {
	ID            string
	Name          string
	Conductivity  float64 // W/m-K
	Density       float64 // kg/m3
	SpecificHeat  float64 // J/kg-K
	Thickness     float64 // m
	Roughness     string
}

// Resistance is the conductive resistance of this layer, m2-K/W. A
// conductivity of zero (e.g. an air-gap placeholder layer) yields zero
// resistance rather than dividing by zero.
func (m Material) Resistance() float64 {
	if m.Conductivity > 0 {
		return m.Thickness / m.Conductivity
	}
	return 0
}

// ThermalMass is the areal heat capacity of this layer, J/m2-K.
func (m Material) ThermalMass() float64 {
	return m.Density * m.SpecificHeat * m.Thickness
}

// Construction is an ordered stack of Materials plus surface air films.
type Construction struct {
	ID                    string
	Name                  string
	Layers                []Material
	InsideFilmResistance  float64
	OutsideFilmResistance float64
}

// NewConstruction applies the original model's film-resistance defaults
// (inside 0.12, outside 0.03 m2-K/W).
func NewConstruction(id, name string, layers []Material) *Construction {
	return &Construction{
		ID:                    id,
		Name:                  name,
		Layers:                layers,
		InsideFilmResistance:  0.12,
		OutsideFilmResistance: 0.03,
	}
}

// TotalResistance sums the film resistances and every layer's conductive
// resistance, m2-K/W.
func (c Construction) TotalResistance() float64 {
	r := c.InsideFilmResistance + c.OutsideFilmResistance
	for _, l := range c.Layers {
		r += l.Resistance()
	}
	return r
}

// UValue is 1/TotalResistance, W/m2-K, or zero if TotalResistance is
// non-positive (an ill-formed construction) — the calculator never divides
// by a zero total resistance because of this guard.
func (c Construction) UValue() float64 {
	r := c.TotalResistance()
	if r > 0 {
		return 1 / r
	}
	return 0
}

// TotalThickness sums the layer thicknesses, m.
func (c Construction) TotalThickness() float64 {
	t := 0.0
	for _, l := range c.Layers {
		t += l.Thickness
	}
	return t
}
