// Package geometry extracts room and opening rectangles from a raster
// floorplan image and converts the detected layout into metric-space
// ExtractedGeometry. Grounded on satoh-er-heat_load_calc_go's numeric
// array idiom, adapted here to gocv.io/x/gocv's Mat pipeline since no
// example in the pack ships an image-processing stack of its own.
package geometry

// ExtractionParams tunes every threshold and filter in the extraction
// pipeline. Defaults below reproduce a typical architectural floorplan
// scanned at a few dozen pixels per metre.
type ExtractionParams struct {
	PixelsPerMetre float64
	FloorHeightM   float64
	FloorZM        float64

	MinRectAreaPx    float64
	MinRectWidthPx   int
	MinRectHeightPx  int
	RectangularityMin float64
	MaxAspectRatio   float64

	BinaryThreshold   float64
	AdaptiveBlockSize int
	AdaptiveC         float64

	BorderMarginPx int

	GapThresholdM     float64
	OverlapThresholdM float64

	DetectOpenings bool
}

// DefaultExtractionParams returns the tuning spec.md's geometry extractor
// ships with out of the box.
func DefaultExtractionParams() ExtractionParams {
	return ExtractionParams{
		PixelsPerMetre:    50.0,
		FloorHeightM:      3.0,
		FloorZM:           0.0,
		MinRectAreaPx:     500,
		MinRectWidthPx:    20,
		MinRectHeightPx:   20,
		RectangularityMin: 0.55,
		MaxAspectRatio:    10.0,
		BinaryThreshold:   200,
		AdaptiveBlockSize: 51,
		AdaptiveC:         10,
		BorderMarginPx:    30,
		GapThresholdM:     0.5,
		OverlapThresholdM: 0.5,
		DetectOpenings:    true,
	}
}
