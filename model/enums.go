package model

// Kind of opaque surface
type SurfaceType int

const (
	ExteriorWall SurfaceType = iota
	InteriorWall
	Roof
	Ceiling
	Floor
	SlabOnGrade
	UndergroundWall
)

func (t SurfaceType) String() string {
	return [...]string{
		"exterior_wall", "interior_wall", "roof", "ceiling", "floor",
		"slab_on_grade", "underground_wall",
	}[t]
}

var surfaceTypeFromString = map[string]SurfaceType{
	"exterior_wall":    ExteriorWall,
	"interior_wall":    InteriorWall,
	"roof":             Roof,
	"ceiling":          Ceiling,
	"floor":            Floor,
	"slab_on_grade":    SlabOnGrade,
	"underground_wall": UndergroundWall,
}

func SurfaceTypeFromString(s string) SurfaceType {
	return surfaceTypeFromString[s]
}

//---------------------------------------------------------------------------------------------------//

// Kind of glazed assembly
type GlazingType int

const (
	SingleGlazing GlazingType = iota
	DoubleGlazing
	TripleGlazing
	LowEGlazing
)

func (t GlazingType) String() string {
	return [...]string{"single", "double", "triple", "low_e"}[t]
}

var glazingTypeFromString = map[string]GlazingType{
	"single": SingleGlazing,
	"double": DoubleGlazing,
	"triple": TripleGlazing,
	"low_e":  LowEGlazing,
}

func GlazingTypeFromString(s string) GlazingType {
	return glazingTypeFromString[s]
}

//---------------------------------------------------------------------------------------------------//

// Occupancy-driven load archetype for a space. Carries more members than
// spec.md's explicit default table (office_enclosed..data_center) since the
// original model enumerates a broader catalog; spaces tagged with the extra
// kinds fall back to OfficeEnclosed defaults in calc, same as an unknown tag.
type SpaceType int

const (
	OfficeEnclosed SpaceType = iota
	OfficeOpenPlan
	ConferenceRoom
	Lobby
	Corridor
	Restroom
	Storage
	Classroom
	Retail
	Restaurant
	DataCenter
	Mechanical
	Auditorium
	Kitchen
	Laboratory
	HospitalPatient
	HospitalExam
	Residential
	Warehouse
	Manufacturing
	CustomSpaceType
)

func (t SpaceType) String() string {
	return [...]string{
		"office_enclosed", "office_open_plan", "conference_room", "lobby",
		"corridor", "restroom", "storage", "classroom", "retail",
		"restaurant", "data_center", "mechanical", "auditorium", "kitchen",
		"laboratory", "hospital_patient", "hospital_exam", "residential",
		"warehouse", "manufacturing", "custom",
	}[t]
}

var spaceTypeFromString = map[string]SpaceType{
	"office_enclosed": OfficeEnclosed, "office_open_plan": OfficeOpenPlan,
	"conference_room": ConferenceRoom, "lobby": Lobby, "corridor": Corridor,
	"restroom": Restroom, "storage": Storage, "classroom": Classroom,
	"retail": Retail, "restaurant": Restaurant, "data_center": DataCenter,
	"mechanical": Mechanical, "auditorium": Auditorium, "kitchen": Kitchen,
	"laboratory": Laboratory, "hospital_patient": HospitalPatient,
	"hospital_exam": HospitalExam, "residential": Residential,
	"warehouse": Warehouse, "manufacturing": Manufacturing,
	"custom": CustomSpaceType,
}

// SpaceTypeFromString defaults to OfficeEnclosed for an unrecognized tag,
// matching the original model's dict.get(..., office_enclosed) fallback.
func SpaceTypeFromString(s string) SpaceType {
	if t, ok := spaceTypeFromString[s]; ok {
		return t
	}
	return OfficeEnclosed
}

//---------------------------------------------------------------------------------------------------//

type InfiltrationMethod int

const (
	AirChangesPerHour InfiltrationMethod = iota
	FlowPerExteriorArea
	FlowPerZone
)

func (m InfiltrationMethod) String() string {
	return [...]string{"air_changes", "flow_per_exterior_area", "flow_per_zone"}[m]
}

var infiltrationMethodFromString = map[string]InfiltrationMethod{
	"air_changes":            AirChangesPerHour,
	"flow_per_exterior_area": FlowPerExteriorArea,
	"flow_per_zone":          FlowPerZone,
}

func InfiltrationMethodFromString(s string) InfiltrationMethod {
	if m, ok := infiltrationMethodFromString[s]; ok {
		return m
	}
	return AirChangesPerHour
}

//---------------------------------------------------------------------------------------------------//

type AdjacentCondition int

const (
	Outdoor AdjacentCondition = iota
	Ground
	AdjacentSpace
)

func (c AdjacentCondition) String() string {
	return [...]string{"outdoor", "ground", "space"}[c]
}

var adjacentConditionFromString = map[string]AdjacentCondition{
	"outdoor": Outdoor, "ground": Ground, "space": AdjacentSpace,
}

func AdjacentConditionFromString(s string) AdjacentCondition {
	if c, ok := adjacentConditionFromString[s]; ok {
		return c
	}
	return Outdoor
}

//---------------------------------------------------------------------------------------------------//

// DayType selects which of a Schedule's three 24-hour arrays to read.
type DayType int

const (
	Weekday DayType = iota
	Weekend
	Holiday
)

func (d DayType) String() string {
	return [...]string{"weekday", "weekend", "holiday"}[d]
}
