package model

// SurfacesForBox generates the six bounding surfaces (floor, roof/ceiling,
// and four compass walls) for a rectangular room footprint, grounded on
// gem_ai/gbxml_writer.py's _generate_surfaces_for_space vertex layout: walls
// are wound counter-clockwise as seen from outside the space, floor tilt is
// 180 degrees, roof/ceiling tilt is 0, walls are tilt 90 at azimuth
// South=180, North=0, East=90, West=270.
func SurfacesForBox(spaceID string, x, y, z, width, depth, height float64) []Surface {
	floorType := SlabOnGrade
	if z != 0 {
		floorType = Floor
	}
	floor := Surface{
		ID: spaceID + "-floor", Type: floorType, Area: width * depth, Tilt: 180,
		AdjacentCondition: Ground,
		Vertices: []Point3{
			{X: x, Y: y, Z: z}, {X: x + width, Y: y, Z: z},
			{X: x + width, Y: y + depth, Z: z}, {X: x, Y: y + depth, Z: z},
		},
	}
	roof := Surface{
		ID: spaceID + "-roof", Type: Roof, Area: width * depth, Tilt: 0,
		AdjacentCondition: Outdoor,
		Vertices: []Point3{
			{X: x, Y: y, Z: z + height}, {X: x, Y: y + depth, Z: z + height},
			{X: x + width, Y: y + depth, Z: z + height}, {X: x + width, Y: y, Z: z + height},
		},
	}
	south := Surface{
		ID: spaceID + "-south", Type: ExteriorWall, Area: width * height, Tilt: 90, Azimuth: 180,
		AdjacentCondition: Outdoor,
		Vertices: []Point3{
			{X: x, Y: y, Z: z}, {X: x + width, Y: y, Z: z},
			{X: x + width, Y: y, Z: z + height}, {X: x, Y: y, Z: z + height},
		},
	}
	north := Surface{
		ID: spaceID + "-north", Type: ExteriorWall, Area: width * height, Tilt: 90, Azimuth: 0,
		AdjacentCondition: Outdoor,
		Vertices: []Point3{
			{X: x + width, Y: y + depth, Z: z}, {X: x, Y: y + depth, Z: z},
			{X: x, Y: y + depth, Z: z + height}, {X: x + width, Y: y + depth, Z: z + height},
		},
	}
	east := Surface{
		ID: spaceID + "-east", Type: ExteriorWall, Area: depth * height, Tilt: 90, Azimuth: 90,
		AdjacentCondition: Outdoor,
		Vertices: []Point3{
			{X: x + width, Y: y, Z: z}, {X: x + width, Y: y + depth, Z: z},
			{X: x + width, Y: y + depth, Z: z + height}, {X: x + width, Y: y, Z: z + height},
		},
	}
	west := Surface{
		ID: spaceID + "-west", Type: ExteriorWall, Area: depth * height, Tilt: 90, Azimuth: 270,
		AdjacentCondition: Outdoor,
		Vertices: []Point3{
			{X: x, Y: y + depth, Z: z}, {X: x, Y: y, Z: z},
			{X: x, Y: y, Z: z + height}, {X: x, Y: y + depth, Z: z + height},
		},
	}
	return []Surface{floor, roof, south, north, east, west}
}
