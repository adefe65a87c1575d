// Command gemai extracts room and opening geometry from a floorplan
// image and writes it out as gbXML, a preview mesh, and a JSON summary.
// Grounded on heat_load_calc.go's flag/log CLI idiom.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"

	"ashraeload/export"
	"ashraeload/geometry"
)

func run(inputPath, outputDir string, params geometry.ExtractionParams, info export.BuildingInfo) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
	}

	log.Printf("extracting geometry from %s", inputPath)
	geo, err := geometry.ExtractFromFile(inputPath, params)
	if err != nil {
		return err
	}
	log.Printf("detected %d rooms, %d openings, %d adjacencies", len(geo.Rooms), len(geo.Openings), len(geo.Adjacencies))

	gbxmlPath := filepath.Join(outputDir, "building.xml")
	log.Printf("writing gbXML to %s", gbxmlPath)
	if err := ioutil.WriteFile(gbxmlPath, []byte(export.WriteGbXML(geo, info)), 0644); err != nil {
		return err
	}

	meshPath := filepath.Join(outputDir, "preview.obj")
	log.Printf("writing mesh to %s", meshPath)
	if err := ioutil.WriteFile(meshPath, []byte(export.WriteMesh(geo)), 0644); err != nil {
		return err
	}

	summaryPath := filepath.Join(outputDir, "geometry.json")
	summary := map[string]interface{}{
		"rooms":            geo.Rooms,
		"openings":         geo.Openings,
		"adjacencies":      geo.Adjacencies,
		"total_area_m2":    geo.TotalAreaM2,
		"total_volume_m3":  geo.TotalVolumeM3,
		"image_width_px":   geo.ImageWidthPx,
		"image_height_px":  geo.ImageHeightPx,
		"pixels_per_metre": geo.PixelsPerMetre,
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(summaryPath, data, 0644)
}

func main() {
	var inputPath string
	flag.StringVar(&inputPath, "input", "", "floorplan raster image to extract geometry from")

	var outputDir string
	flag.StringVar(&outputDir, "o", ".", "output directory for results")

	var ppm float64
	flag.Float64Var(&ppm, "ppm", 50.0, "pixels per metre in the source image")

	var floorHeight float64
	flag.Float64Var(&floorHeight, "floor_height", 3.0, "floor-to-floor height in metres")

	var detectOpenings bool
	flag.BoolVar(&detectOpenings, "openings", true, "detect door/window openings")

	var buildingName string
	flag.StringVar(&buildingName, "building_name", "Extracted Building", "building name recorded in the gbXML output")

	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}

	params := geometry.DefaultExtractionParams()
	params.PixelsPerMetre = ppm
	params.FloorHeightM = floorHeight
	params.DetectOpenings = detectOpenings

	info := export.BuildingInfo{
		CampusName: "Campus", BuildingName: buildingName, BuildingType: "Office",
	}

	start := time.Now()
	if err := run(inputPath, outputDir, params, info); err != nil {
		log.Fatal(err)
	}
	log.Printf("elapsed_time: %v", time.Since(start))
}
