package model

// InternalLoad aggregates the occupant, lighting and equipment heat gains
// of a Space. A zero PeopleCount/PeoplePerArea pair means zero occupants;
// the calculator uses the space-type default table
// (LookupInternalLoadDefaults) only when a Space has no InternalLoad at all.
type InternalLoad struct {
	PeopleCount         float64
	PeoplePerArea       float64 // people/m2, used when PeopleCount is zero
	ActivityLevel       float64 // W/person, default 120
	SensibleFraction    float64 // default 0.6
	RadiantFraction     float64 // default 0.3
	PeopleScheduleID    string

	LightingPowerDensity    float64 // W/m2, default 10
	LightingRadiantFraction float64 // default 0.37
	LightingVisibleFraction float64 // default 0.18
	LightingScheduleID      string

	EquipmentPowerDensity    float64 // W/m2, default 10
	EquipmentRadiantFraction float64 // default 0.3
	EquipmentLatentFraction  float64 // default 0.0
	EquipmentScheduleID      string
}

// NewInternalLoad applies the original model's numeric defaults.
func NewInternalLoad() *InternalLoad {
	return &InternalLoad{
		ActivityLevel: 120, SensibleFraction: 0.6, RadiantFraction: 0.3,
		LightingPowerDensity: 10, LightingRadiantFraction: 0.37, LightingVisibleFraction: 0.18,
		EquipmentPowerDensity: 10, EquipmentRadiantFraction: 0.3, EquipmentLatentFraction: 0,
	}
}

// Infiltration describes uncontrolled outdoor-air leakage into a Space.
type Infiltration struct {
	Method               InfiltrationMethod
	AirChangesPerHour    float64 // default 0.3, used when Method is AirChangesPerHour
	FlowPerExteriorArea  float64 // m3/s per m2, default 0.0003
	FlowPerZone          float64 // m3/s, used when Method is FlowPerZone
	ScheduleID           string
}

// NewInfiltration applies the original model's defaults: method
// "air_changes", 0.3 ACH, 0.0003 m3/s-m2.
func NewInfiltration() *Infiltration {
	return &Infiltration{Method: AirChangesPerHour, AirChangesPerHour: 0.3, FlowPerExteriorArea: 0.0003}
}

// Ventilation describes deliberate outdoor-air intake for indoor air
// quality, independent of the mechanical cooling/heating supply airflow.
type Ventilation struct {
	OutdoorAirPerPerson      float64 // m3/s-person, default 0.0025
	OutdoorAirPerArea        float64 // m3/s-m2, default 0.0003
	TotalOutdoorAir          float64 // m3/s, overrides the per-person/per-area sum when > 0
	ScheduleID               string
	HeatRecoveryEffectiveness float64
	SensibleEffectiveness     float64
	LatentEffectiveness       float64
}

// NewVentilation applies the ASHRAE 62.1-style defaults the original model
// carries: 0.0025 m3/s-person, 0.0003 m3/s-m2.
func NewVentilation() *Ventilation {
	return &Ventilation{OutdoorAirPerPerson: 0.0025, OutdoorAirPerArea: 0.0003}
}
