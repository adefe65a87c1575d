package export

import (
	"fmt"
	"strings"

	"ashraeload/geometry"
)

// Vertex3 is a point in metric building space.
type Vertex3 struct {
	X, Y, Z float64
}

// WriteMesh renders geometry as a Wavefront-style textual mesh: one
// vertex per unique room corner, face records for floor/ceiling/walls.
// For 3D preview only, not a simulation input. Grounded on spec.md
// section 4.2's mesh writer contract.
func WriteMesh(geo *geometry.ExtractedGeometry) string {
	var b strings.Builder
	b.WriteString("# generated mesh, preview only\n")

	vertexIndex := map[Vertex3]int{}
	var vertices []Vertex3
	indexOf := func(v Vertex3) int {
		if idx, ok := vertexIndex[v]; ok {
			return idx
		}
		vertices = append(vertices, v)
		idx := len(vertices)
		vertexIndex[v] = idx
		return idx
	}

	var faceLines []string
	for roomIdx, room := range geo.Rooms {
		loops := roomPolyLoops(room, geo.FloorHeightM)
		for _, loop := range loops {
			indices := make([]int, 0, len(loop))
			for _, v := range loop {
				indices = append(indices, indexOf(v))
			}
			faceLines = append(faceLines, faceLine(roomIdx, indices))
		}
	}

	for _, v := range vertices {
		fmt.Fprintf(&b, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	b.WriteString("\n")
	for _, line := range faceLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func faceLine(roomIdx int, indices []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# room %d\nf", roomIdx+1)
	for _, idx := range indices {
		fmt.Fprintf(&b, " %d", idx)
	}
	return b.String()
}
