package geometry

import (
	"fmt"
	"image"
	"math"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// supportedImageExt is the set of raster formats ExtractFromFile will
// hand to gocv. Anything else (PDF, DWG, ...) fails with
// UnsupportedFormat — this extractor never rasterizes a document itself.
var supportedImageExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// ExtractFromFile loads a floorplan image from disk and runs the
// extraction pipeline over it.
func ExtractFromFile(path string, params ExtractionParams) (*ExtractedGeometry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedImageExt[ext] {
		return nil, errUnsupportedDocument(path)
	}
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return nil, errDecodeFailed(path)
	}
	defer img.Close()
	return Extract(img, params)
}

// Extract runs the deterministic, single-threaded room/opening detection
// pipeline over an already-decoded image. Grounded on spec.md section
// 4.1's eleven numbered steps; gocv.io/x/gocv supplies every
// thresholding, morphology and contour primitive the pipeline needs.
func Extract(img gocv.Mat, params ExtractionParams) (*ExtractedGeometry, error) {
	debug := map[string][]byte{}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	debug["gray"] = encodePNG(gray)

	fixedMask := gocv.NewMat()
	defer fixedMask.Close()
	gocv.Threshold(gray, &fixedMask, float32(params.BinaryThreshold), 255, gocv.ThresholdBinaryInv)

	adaptiveMask := gocv.NewMat()
	defer adaptiveMask.Close()
	blockSize := params.AdaptiveBlockSize
	if blockSize%2 == 0 {
		blockSize++
	}
	gocv.AdaptiveThreshold(gray, &adaptiveMask, 255, gocv.AdaptiveThresholdMean, gocv.ThresholdBinaryInv, blockSize, float32(params.AdaptiveC))

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.BitwiseOr(fixedMask, adaptiveMask, &mask)
	debug["mask_union"] = encodePNG(mask)

	zeroBorder(&mask, params.BorderMarginPx)
	debug["mask_bordered"] = encodePNG(mask)

	closed := gocv.NewMat()
	defer closed.Close()
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()
	gocv.MorphologyEx(mask, &closed, gocv.MorphClose, kernel)
	debug["mask_closed"] = encodePNG(closed)

	contours := gocv.FindContours(closed, gocv.RetrievalCComp, gocv.ChainApproxSimple)
	defer contours.Close()

	rooms := make([]DetectedRoom, 0)
	h, w := img.Rows(), img.Cols()
	ppm := params.PixelsPerMetre

	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if !hasParent(contours, i) {
			continue
		}
		accepted, room := evaluateContour(c, params, h, roomNum(len(rooms)+1))
		if accepted {
			rooms = append(rooms, room)
		}
	}

	adjacencies := findAdjacentPairs(rooms, params.GapThresholdM, params.OverlapThresholdM)
	eliminateGaps(rooms, adjacencies, params.GapThresholdM)
	for i := range rooms {
		rooms[i].AreaM2 = rooms[i].WidthM * rooms[i].HeightM
		rooms[i].VolumeM3 = rooms[i].AreaM2 * params.FloorHeightM
	}

	result := &ExtractedGeometry{
		Rooms:          rooms,
		Adjacencies:    adjacencies,
		ImageWidthPx:   w,
		ImageHeightPx:  h,
		PixelsPerMetre: ppm,
		FloorHeightM:   params.FloorHeightM,
		DebugRasters:   debug,
	}
	for _, r := range rooms {
		result.TotalAreaM2 += r.AreaM2
		result.TotalVolumeM3 += r.VolumeM3
	}

	if params.DetectOpenings {
		openings, err := detectOpenings(closed, img, params)
		if err != nil {
			return nil, err
		}
		result.Openings = openings
	}

	return result, nil
}

func roomNum(n int) int { return n }

func hasParent(c gocv.Contours2, idx int) bool {
	// gocv's hierarchy-aware contour API exposes parent linkage through
	// Contours2's per-contour hierarchy row; index 3 is the parent index
	// in the standard OpenCV [next, prev, firstChild, parent] layout.
	h := c.GetHierarchy(idx)
	return h[3] >= 0
}

func evaluateContour(c gocv.PointVector, params ExtractionParams, imgH int, roomNumber int) (bool, DetectedRoom) {
	areaPx := gocv.ContourArea(c)
	rect := gocv.BoundingRect(c)
	bw, bh := rect.Dx(), rect.Dy()
	if bw <= 0 || bh <= 0 {
		return false, DetectedRoom{}
	}
	bboxArea := float64(bw * bh)
	rectangularity := 0.0
	if bboxArea > 0 {
		rectangularity = areaPx / bboxArea
	}
	maxDim, minDim := math.Max(float64(bw), float64(bh)), math.Min(float64(bw), float64(bh))
	if minDim < 1 {
		minDim = 1
	}
	aspectRatio := maxDim / minDim

	perimeter := gocv.ArcLength(c, true)
	approx := gocv.ApproxPolyDP(c, 0.02*perimeter, true)
	defer approx.Close()
	vertexCount := approx.Size()

	accept := areaPx >= params.MinRectAreaPx &&
		bw >= params.MinRectWidthPx && bh >= params.MinRectHeightPx &&
		aspectRatio <= params.MaxAspectRatio &&
		rectangularity >= params.RectangularityMin &&
		vertexCount >= 3 && vertexCount <= 12

	if !accept {
		return false, DetectedRoom{}
	}

	xM, yM, wM, hM := pixelRectToMetres(rect.Min.X, rect.Min.Y, bw, bh, imgH, params.PixelsPerMetre)

	return true, DetectedRoom{
		ID:   fmt.Sprintf("room-%03d", roomNumber),
		Name: fmt.Sprintf("Room_%03d", roomNumber),
		XPx:  rect.Min.X, YPx: rect.Min.Y, WidthPx: bw, HeightPx: bh,
		AreaPx:         areaPx,
		Rectangularity: rectangularity,
		AspectRatio:    aspectRatio,
		VertexCount:    vertexCount,
		XM:             xM, YM: yM, WidthM: wM, HeightM: hM,
	}
}

// pixelRectToMetres converts a pixel-space rectangle to metre-space,
// flipping Y so the image's top edge maps to increasing Y in a
// right-handed ground plane: y_m = (H - y_px - h_px) / ppm.
func pixelRectToMetres(xPx, yPx, wPx, hPx, imgH int, ppm float64) (x, y, w, h float64) {
	x = float64(xPx) / ppm
	w = float64(wPx) / ppm
	h = float64(hPx) / ppm
	y = float64(imgH-yPx-hPx) / ppm
	return
}

// zeroBorder blackens a margin band around the mask's edges to suppress
// page frames from being picked up as rooms.
func zeroBorder(mask *gocv.Mat, marginPx int) {
	if marginPx <= 0 {
		return
	}
	w, h := mask.Cols(), mask.Rows()
	if marginPx*2 >= w || marginPx*2 >= h {
		return
	}
	zero := func(rect image.Rectangle) {
		region := mask.Region(rect)
		defer region.Close()
		region.SetTo(gocv.NewScalar(0, 0, 0, 0))
	}
	zero(image.Rect(0, 0, w, marginPx))
	zero(image.Rect(0, h-marginPx, w, h))
	zero(image.Rect(0, 0, marginPx, h))
	zero(image.Rect(w-marginPx, 0, w, h))
}

func encodePNG(m gocv.Mat) []byte {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, m)
	if err != nil {
		return nil
	}
	defer buf.Close()
	return buf.GetBytes()
}
