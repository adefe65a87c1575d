package geometry

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

const (
	nearExteriorBandPx = 12
	openingMinAreaPx   = 80.0
	openingAspectRatioWindow = 2.8
	openingDensityThreshold  = 0.35
)

// detectOpenings finds door/window candidates by building the outer
// silhouette of the floorplan, taking a band just inside its exterior
// edge, and thresholding ink density within that band. Grounded on
// spec.md section 4.1 step 11.
func detectOpenings(closedMask gocv.Mat, img gocv.Mat, params ExtractionParams) ([]DetectedOpening, error) {
	strongClose := gocv.NewMat()
	defer strongClose.Close()
	bigKernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 9, Y: 9})
	defer bigKernel.Close()
	gocv.MorphologyEx(closedMask, &strongClose, gocv.MorphClose, bigKernel)

	silhouetteContours := gocv.FindContours(strongClose, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer silhouetteContours.Close()
	if silhouetteContours.Size() == 0 {
		return nil, nil
	}

	largest := largestContour(silhouetteContours)
	silhouette := gocv.NewMatWithSize(strongClose.Rows(), strongClose.Cols(), gocv.MatTypeCV8U)
	defer silhouette.Close()
	contoursToFill := gocv.NewPointsVectorFromPoints([][]image.Point{largest})
	defer contoursToFill.Close()
	gocv.DrawContours(&silhouette, contoursToFill, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)

	eroded := gocv.NewMat()
	defer eroded.Close()
	bandKernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: nearExteriorBandPx, Y: nearExteriorBandPx})
	defer bandKernel.Close()
	gocv.Erode(silhouette, &eroded, bandKernel)

	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(silhouette, &dilated, bandKernel)

	ring := gocv.NewMat()
	defer ring.Close()
	gocv.Subtract(dilated, eroded, &ring)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	density := gocv.NewMat()
	defer density.Close()
	gocv.GaussianBlur(gray, &density, image.Point{X: 9, Y: 9}, 0, 0, gocv.BorderDefault)

	inkMask := gocv.NewMat()
	defer inkMask.Close()
	gocv.Threshold(density, &inkMask, float32(params.BinaryThreshold), 255, gocv.ThresholdBinaryInv)

	restricted := gocv.NewMat()
	defer restricted.Close()
	gocv.BitwiseAnd(inkMask, ring, &restricted)

	densityThresholded := gocv.NewMat()
	defer densityThresholded.Close()
	gocv.Threshold(restricted, &densityThresholded, float32(255*openingDensityThreshold), 255, gocv.ThresholdBinary)

	smallKernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer smallKernel.Close()
	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(densityThresholded, &opened, gocv.MorphOpen, smallKernel)
	cleaned := gocv.NewMat()
	defer cleaned.Close()
	gocv.MorphologyEx(opened, &cleaned, gocv.MorphClose, smallKernel)

	candidateContours := gocv.FindContours(cleaned, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer candidateContours.Close()

	imgArea := float64(img.Rows() * img.Cols())
	maxArea := imgArea * 0.02
	ppm := params.PixelsPerMetre
	h := img.Rows()

	var openings []DetectedOpening
	for i := 0; i < candidateContours.Size(); i++ {
		c := candidateContours.At(i)
		area := gocv.ContourArea(c)
		if area < openingMinAreaPx || area > maxArea {
			continue
		}
		rect := gocv.BoundingRect(c)
		bw, bh := rect.Dx(), rect.Dy()
		if bw <= 0 || bh <= 0 {
			continue
		}
		maxDim, minDim := float64(bw), float64(bh)
		if minDim > maxDim {
			maxDim, minDim = minDim, maxDim
		}
		if minDim < 1 {
			minDim = 1
		}
		aspect := maxDim / minDim

		kind := OpeningDoor
		confidence := 0.35
		if aspect >= openingAspectRatioWindow {
			kind = OpeningWindow
			confidence = 0.55
		}

		xM, yM, wM, hM := pixelRectToMetres(rect.Min.X, rect.Min.Y, bw, bh, h, ppm)
		openings = append(openings, DetectedOpening{
			Kind: kind, Confidence: confidence,
			XPx: rect.Min.X, YPx: rect.Min.Y, WidthPx: bw, HeightPx: bh,
			XM: xM, YM: yM, WidthM: wM, HeightM: hM,
		})
	}
	return openings, nil
}

func largestContour(contours gocv.Contours2) []image.Point {
	best := -1.0
	var bestPts []image.Point
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area > best {
			best = area
			bestPts = c.ToPoints()
		}
	}
	return bestPts
}
