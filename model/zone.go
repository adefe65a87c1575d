package model

// Zone groups Spaces that share a single thermostat / VAV box, rolling
// their loads into a single sizing requirement.
type Zone struct {
	ID       string
	Name     string
	SpaceIDs []string

	CoolingSetpoint  float64 // override, degC; zero means "use member space setpoints"
	HeatingSetpoint  float64
	HumiditySetpoint float64

	CoolingSizingFactor float64 // default 1.15
	HeatingSizingFactor float64 // default 1.25

	SystemID string
}

// NewZone applies the original model's sizing-factor defaults: cooling
// 1.15, heating 1.25 — used both for an explicit Zone and for the
// synthetic zone calc creates when a Building has no explicit zones.
func NewZone(id, name string) *Zone {
	return &Zone{ID: id, Name: name, CoolingSizingFactor: 1.15, HeatingSizingFactor: 1.25}
}

// System groups Zones served by one air-handling unit.
type System struct {
	ID       string
	Name     string
	ZoneIDs  []string
	Type     string // e.g. "vav", "cav"; lower-cased comparison in calc

	CoolingSupplyAirTemp float64 // degC, default 13.0
	HeatingSupplyAirTemp float64 // degC, default 35.0
	SupplyAirHumidity    float64 // %RH, default 90

	FanEfficiency        float64 // default 0.7
	FanPressureRise      float64 // Pa, default 1000
	FanMotorEfficiency   float64 // default 0.9
	FanMotorInAirstream  bool    // default true

	SizingMethod         string  // "coincident" (default) or "non_coincident"
	CoolingSizingFactor  float64 // default 1.1
	HeatingSizingFactor  float64 // default 1.1

	PlantLoopID string
}

// NewSystem applies the original model's defaults verbatim.
func NewSystem(id, name string) *System {
	return &System{
		ID: id, Name: name, Type: "vav",
		CoolingSupplyAirTemp: 13.0, HeatingSupplyAirTemp: 35.0, SupplyAirHumidity: 90,
		FanEfficiency: 0.7, FanPressureRise: 1000, FanMotorEfficiency: 0.9, FanMotorInAirstream: true,
		SizingMethod: "coincident", CoolingSizingFactor: 1.1, HeatingSizingFactor: 1.1,
	}
}
