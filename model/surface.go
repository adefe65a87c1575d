package model

// Point3 is a model-space coordinate, metres.
type Point3 struct {
	X, Y, Z float64
}

// Surface is a single opaque or glazed-hosting envelope element bounding a
// Space: a wall, roof, floor or slab panel.
type Surface struct {
	ID                string
	Name              string
	Type              SurfaceType
	Area              float64 // m2
	Azimuth           float64 // degrees, 0=north, clockwise
	Tilt              float64 // degrees from horizontal, 90=vertical wall
	ConstructionID    string
	AdjacentSpaceID   string
	AdjacentCondition AdjacentCondition
	Vertices          []Point3 // optional; populated when built from extracted geometry
}

// NewSurface applies the original model's tilt default of 90 degrees
// (vertical) for any surface the caller does not specify a tilt for.
func NewSurface(id string, typ SurfaceType, area float64) *Surface {
	return &Surface{ID: id, Type: typ, Area: area, Tilt: 90, AdjacentCondition: Outdoor}
}

// Fenestration is a window or door punched into a host Surface.
type Fenestration struct {
	ID               string
	Name             string
	ParentSurfaceID  string
	GlazingID        string
	Area             float64 // m2
	Height           float64
	Width            float64
	SillHeight       float64
	OverhangDepth    float64
	OverhangOffset   float64
	LeftFinDepth     float64
	RightFinDepth    float64
}

// NewFenestration applies the original model's defaults: height=1.5,
// width=1.2, sill_height=0.9; overhang/fin dims default to zero (none).
func NewFenestration(id, parentSurfaceID, glazingID string, area float64) *Fenestration {
	return &Fenestration{
		ID: id, ParentSurfaceID: parentSurfaceID, GlazingID: glazingID, Area: area,
		Height: 1.5, Width: 1.2, SillHeight: 0.9,
	}
}
