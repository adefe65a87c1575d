package model

// Building is the physical asset: its spaces rolled up through zones,
// systems and plants, plus the shared library of constructions, glazings
// and schedules those entities reference by ID.
type Building struct {
	ID   string
	Name string

	Spaces  []Space
	Zones   []Zone
	Systems []System
	Plants  []Plant

	Constructions map[string]*Construction
	Glazings      map[string]*Glazing
	Schedules     map[string]*Schedule

	Weather *WeatherData

	Orientation float64 // degrees, rotation of true north from model +Y axis
}

// NewBuilding returns a Building with initialized library maps.
func NewBuilding(id, name string) *Building {
	return &Building{
		ID: id, Name: name,
		Constructions: map[string]*Construction{},
		Glazings:      map[string]*Glazing{},
		Schedules:     map[string]*Schedule{},
	}
}

// TotalFloorArea sums each space's floor area times its multiplier.
func (b *Building) TotalFloorArea() float64 {
	total := 0.0
	for _, s := range b.Spaces {
		m := s.Multiplier
		if m == 0 {
			m = 1
		}
		total += s.FloorArea * float64(m)
	}
	return total
}

// TotalVolume sums each space's volume times its multiplier.
func (b *Building) TotalVolume() float64 {
	total := 0.0
	for _, s := range b.Spaces {
		m := s.Multiplier
		if m == 0 {
			m = 1
		}
		total += s.Volume * float64(m)
	}
	return total
}

// SpaceByID does a linear scan; building entity collections are sized for
// a single design (tens to low hundreds of spaces), not indexed at rest.
func (b *Building) SpaceByID(id string) *Space {
	for i := range b.Spaces {
		if b.Spaces[i].ID == id {
			return &b.Spaces[i]
		}
	}
	return nil
}

func (b *Building) ZoneByID(id string) *Zone {
	for i := range b.Zones {
		if b.Zones[i].ID == id {
			return &b.Zones[i]
		}
	}
	return nil
}

func (b *Building) SystemByID(id string) *System {
	for i := range b.Systems {
		if b.Systems[i].ID == id {
			return &b.Systems[i]
		}
	}
	return nil
}

func (b *Building) PlantByID(id string) *Plant {
	for i := range b.Plants {
		if b.Plants[i].ID == id {
			return &b.Plants[i]
		}
	}
	return nil
}

// CalculationSettings tunes the load calculation independently of the
// building's own data, matching the original's CalculationSettings dataclass.
type CalculationSettings struct {
	TimestepMinutes int

	IncludeThermalMass  bool
	IncludeSolarGains   bool
	IncludeInfiltration bool
	IncludeVentilation  bool

	CoolingSafetyFactor float64
	HeatingSafetyFactor float64

	CoolingSupplyAirTemp float64
	HeatingSupplyAirTemp float64
	IndoorCoolingTemp    float64
	IndoorHeatingTemp    float64
	IndoorHumidity       float64
}

// DefaultCalculationSettings matches the original's field defaults.
func DefaultCalculationSettings() CalculationSettings {
	return CalculationSettings{
		TimestepMinutes:      60,
		IncludeThermalMass:   true,
		IncludeSolarGains:    true,
		IncludeInfiltration:  true,
		IncludeVentilation:   true,
		CoolingSafetyFactor:  1.1,
		HeatingSafetyFactor:  1.1,
		CoolingSupplyAirTemp: 13.0,
		HeatingSupplyAirTemp: 35.0,
		IndoorCoolingTemp:    24.0,
		IndoorHeatingTemp:    21.0,
		IndoorHumidity:       50.0,
	}
}

// Project is the top-level unit of work: one Building plus the calculation
// method and unit-system knobs that apply project-wide.
type Project struct {
	ID   string
	Name string

	Building *Building

	CalculationMethod string // default "heat_balance"
	TimestepMinutes   int    // default 60
	UnitSystem        string // default "SI"

	CoolingSafetyFactor float64 // default 1.1
	HeatingSafetyFactor float64 // default 1.1
}

// NewProject applies the original model's project-level defaults.
func NewProject(id, name string, building *Building) *Project {
	return &Project{
		ID: id, Name: name, Building: building,
		CalculationMethod: "heat_balance", TimestepMinutes: 60, UnitSystem: "SI",
		CoolingSafetyFactor: 1.1, HeatingSafetyFactor: 1.1,
	}
}
