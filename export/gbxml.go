// Package export renders extracted or modeled building geometry into
// interchange formats: a gbXML-style building-energy-model document and
// a Wavefront-style mesh for 3D preview. Grounded on
// satoh-er-heat_load_calc_go's direct string/struct construction idiom;
// uses strings.Builder instead of encoding/xml because the document is
// an ordered, repeated-sibling-element structure (PolyLoop vertex
// order, Space-then-Surface document order) that a generic marshaler
// would have to fight rather than express naturally.
package export

import (
	"fmt"
	"math"
	"strings"

	"ashraeload/geometry"
)

const (
	gbXMLVersion = "6.01"
	sharedWallAzimuthToleranceDeg = 0.01
	sharedWallCoordToleranceM     = 0.1
)

// BuildingInfo carries the campus/building-level metadata a gbXML
// document needs beyond what ExtractedGeometry itself has.
type BuildingInfo struct {
	CampusName, BuildingName, BuildingType string
	City, State, Country                   string
	Longitude, Latitude, ElevationM         float64
}

// wallFace is one of the four vertical faces a room box contributes,
// used only for the shared-wall detection pass.
type wallFace struct {
	roomIdx     int
	azimuthDeg  float64
	fixedCoordM float64
	isEastWest  bool
}

// WriteGbXML renders geometry as a gbXML document string. Rooms become
// Space elements with a six-PolyLoop ClosedShell; walls, floors, roofs
// become document-level Surface records. Grounded on spec.md section
// 4.2's gbXML writer contract.
func WriteGbXML(geo *geometry.ExtractedGeometry, info BuildingInfo) string {
	var b strings.Builder

	walls := collectWallFaces(geo)
	sharedPairs := detectSharedWalls(walls)

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<gbXML xmlns="http://www.gbxml.org/schema" temperatureUnit="C" lengthUnit="Meters" areaUnit="SquareMeters" volumeUnit="CubicMeters" useSIUnitsForResults="true" version=%q>`+"\n", gbXMLVersion)

	b.WriteString("  <Campus>\n")
	fmt.Fprintf(&b, "    <Location>\n      <Longitude>%g</Longitude>\n      <Latitude>%g</Latitude>\n      <Elevation>%g</Elevation>\n      <CityName>%s</CityName>\n      <State>%s</State>\n      <Country>%s</Country>\n    </Location>\n",
		info.Longitude, info.Latitude, info.ElevationM, xmlEscape(info.City), xmlEscape(info.State), xmlEscape(info.Country))

	fmt.Fprintf(&b, "    <Building id=%q buildingType=%q>\n", "building-1", xmlEscape(info.BuildingType))
	fmt.Fprintf(&b, "      <Name>%s</Name>\n", xmlEscape(info.BuildingName))
	b.WriteString("      <BuildingStorey id=\"storey-1\">\n        <Name>Ground Floor</Name>\n      </BuildingStorey>\n")

	for i, room := range geo.Rooms {
		writeSpace(&b, i, room, geo.FloorHeightM)
	}
	b.WriteString("    </Building>\n  </Campus>\n")

	for i, room := range geo.Rooms {
		writeRoomSurfaces(&b, i, room, geo.FloorHeightM, sharedPairs)
	}

	b.WriteString("</gbXML>\n")
	return b.String()
}

func writeSpace(b *strings.Builder, idx int, room geometry.DetectedRoom, floorHeight float64) {
	fmt.Fprintf(b, "      <Space id=%q>\n", spaceID(idx))
	fmt.Fprintf(b, "        <Name>%s</Name>\n", xmlEscape(room.Name))
	fmt.Fprintf(b, "        <Area>%g</Area>\n", room.AreaM2)
	fmt.Fprintf(b, "        <Volume>%g</Volume>\n", room.VolumeM3)
	b.WriteString("        <ClosedShell>\n")
	for _, loop := range roomPolyLoops(room, floorHeight) {
		writePolyLoop(b, "          ", loop)
	}
	b.WriteString("        </ClosedShell>\n")
	b.WriteString("      </Space>\n")
}

func spaceID(idx int) string { return fmt.Sprintf("space-%03d", idx+1) }

// roomPolyLoops returns the six faces of a room's box, in the fixed
// order floor, ceiling, south, north, east, west — each a closed vertex
// loop.
func roomPolyLoops(room geometry.DetectedRoom, floorHeight float64) [][]Vertex3 {
	x0, y0 := room.XM, room.YM
	x1, y1 := room.XM+room.WidthM, room.YM+room.HeightM
	z0, z1 := 0.0, floorHeight

	floor := []Vertex3{{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0}}
	ceiling := []Vertex3{{x0, y0, z1}, {x0, y1, z1}, {x1, y1, z1}, {x1, y0, z1}}
	south := []Vertex3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}
	north := []Vertex3{{x1, y1, z0}, {x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}}
	east := []Vertex3{{x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}, {x1, y0, z1}}
	west := []Vertex3{{x0, y1, z0}, {x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}}

	return [][]Vertex3{floor, ceiling, south, north, east, west}
}

func writePolyLoop(b *strings.Builder, indent string, loop []Vertex3) {
	fmt.Fprintf(b, "%s<PolyLoop>\n", indent)
	for _, v := range loop {
		fmt.Fprintf(b, "%s  <CartesianPoint><Coordinate>%g</Coordinate><Coordinate>%g</Coordinate><Coordinate>%g</Coordinate></CartesianPoint>\n", indent, v.X, v.Y, v.Z)
	}
	fmt.Fprintf(b, "%s</PolyLoop>\n", indent)
}

func writeRoomSurfaces(b *strings.Builder, idx int, room geometry.DetectedRoom, floorHeight float64, shared map[wallKey]sharedWall) {
	loops := roomPolyLoops(room, floorHeight)
	faces := []struct {
		surfaceType string
		azimuth     float64
		loop        []Vertex3
	}{
		{"SlabOnGrade", 0, loops[0]},
		{"Roof", 0, loops[1]},
		{"ExteriorWall", 180, loops[2]},
		{"ExteriorWall", 0, loops[3]},
		{"ExteriorWall", 90, loops[4]},
		{"ExteriorWall", 270, loops[5]},
	}

	for faceIdx, f := range faces {
		surfaceType := f.surfaceType
		exposedToSun := surfaceType == "ExteriorWall" || surfaceType == "Roof"
		adjacentSpaces := []int{idx}

		if surfaceType == "ExteriorWall" {
			if sw, ok := shared[wallKey{idx, faceIdx}]; ok {
				surfaceType = "InteriorWall"
				exposedToSun = false
				adjacentSpaces = append(adjacentSpaces, sw.otherRoomIdx)
			}
		}

		fmt.Fprintf(b, "  <Surface id=%q surfaceType=%q exposedToSun=%q>\n",
			fmt.Sprintf("surface-%03d-%d", idx+1, faceIdx), surfaceType, boolStr(exposedToSun))
		for _, sp := range adjacentSpaces {
			fmt.Fprintf(b, "    <AdjacentSpaceId spaceIdRef=%q/>\n", spaceID(sp))
		}
		b.WriteString("    <PlanarGeometry>\n")
		writePolyLoop(b, "      ", f.loop)
		b.WriteString("    </PlanarGeometry>\n")
		b.WriteString("  </Surface>\n")
	}
}

type wallKey struct {
	roomIdx, faceIdx int
}

type sharedWall struct {
	otherRoomIdx int
}

// collectWallFaces extracts each room's four vertical wall faces as
// azimuth/fixed-coordinate pairs, for pairing by detectSharedWalls.
// South/north walls (azimuth 180/0) carry the room's fixed y edge; east/
// west (90/270) carry the fixed x edge.
func collectWallFaces(geo *geometry.ExtractedGeometry) map[wallKey]wallFace {
	faces := make(map[wallKey]wallFace)
	for i, room := range geo.Rooms {
		faces[wallKey{i, 2}] = wallFace{roomIdx: i, azimuthDeg: 180, fixedCoordM: room.YM, isEastWest: false}
		faces[wallKey{i, 3}] = wallFace{roomIdx: i, azimuthDeg: 0, fixedCoordM: room.YM + room.HeightM, isEastWest: false}
		faces[wallKey{i, 4}] = wallFace{roomIdx: i, azimuthDeg: 90, fixedCoordM: room.XM + room.WidthM, isEastWest: true}
		faces[wallKey{i, 5}] = wallFace{roomIdx: i, azimuthDeg: 270, fixedCoordM: room.XM, isEastWest: true}
	}
	return faces
}

// detectSharedWalls pairs every two wall faces whose azimuths differ by
// exactly 180 degrees and whose fixed coordinate matches within
// sharedWallCoordToleranceM. Grounded on spec.md section 4.2's
// shared-wall detection rule.
func detectSharedWalls(faces map[wallKey]wallFace) map[wallKey]sharedWall {
	result := make(map[wallKey]sharedWall)
	keys := make([]wallKey, 0, len(faces))
	for k := range faces {
		keys = append(keys, k)
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := faces[keys[i]], faces[keys[j]]
			if a.roomIdx == b.roomIdx {
				continue
			}
			if a.isEastWest != b.isEastWest {
				continue
			}
			diff := math.Mod(math.Abs(a.azimuthDeg-b.azimuthDeg), 360)
			if math.Abs(diff-180) > sharedWallAzimuthToleranceDeg {
				continue
			}
			if math.Abs(a.fixedCoordM-b.fixedCoordM) > sharedWallCoordToleranceM {
				continue
			}
			result[keys[i]] = sharedWall{otherRoomIdx: b.roomIdx}
			result[keys[j]] = sharedWall{otherRoomIdx: a.roomIdx}
		}
	}
	return result
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
