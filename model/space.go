package model

// Space is the smallest load-calculation unit: a single thermal zone of
// occupancy, typically one room.
type Space struct {
	ID             string
	Name           string
	Type           SpaceType
	FloorArea      float64 // m2
	Volume         float64 // m3
	Height         float64 // m, default 3.0
	X, Y, Z        float64 // origin, m

	Surfaces      []Surface
	Fenestrations []Fenestration

	InternalLoad *InternalLoad // nil means "use space-type defaults"
	Infiltration *Infiltration // nil means "use method default (0.3 ACH)"
	Ventilation  *Ventilation  // nil: outdoor airflow and heating loss use ASHRAE 62.1 default rates; hourly cooling has no ventilation component

	CoolingSetpoint  float64 // degC, default 24
	HeatingSetpoint  float64 // degC, default 21
	HumiditySetpoint float64 // %RH, default 50
	Multiplier       int     // default 1

	ZoneID string
}

// NewSpace applies the original model's defaults: height=3.0,
// cooling_setpoint=24, heating_setpoint=21, humidity_setpoint=50, multiplier=1.
func NewSpace(id, name string, typ SpaceType) *Space {
	return &Space{
		ID: id, Name: name, Type: typ, Height: 3.0,
		CoolingSetpoint: 24, HeatingSetpoint: 21, HumiditySetpoint: 50, Multiplier: 1,
	}
}

// ExteriorWallArea sums the area of ExteriorWall surfaces.
func (s *Space) ExteriorWallArea() float64 {
	total := 0.0
	for _, srf := range s.Surfaces {
		if srf.Type == ExteriorWall {
			total += srf.Area
		}
	}
	return total
}

// RoofArea sums the area of Roof surfaces.
func (s *Space) RoofArea() float64 {
	total := 0.0
	for _, srf := range s.Surfaces {
		if srf.Type == Roof {
			total += srf.Area
		}
	}
	return total
}

// WindowArea sums fenestration area hosted on any surface of this space.
func (s *Space) WindowArea() float64 {
	total := 0.0
	for _, f := range s.Fenestrations {
		total += f.Area
	}
	return total
}
