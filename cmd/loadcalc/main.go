// Command loadcalc runs the ASHRAE heat-balance load calculation over a
// building-model JSON file and writes a summary JSON to an output
// directory, plus, with -hourly_csv, one hourly CSV profile per space
// (zone and system profiles are not written as CSV). Grounded on
// heat_load_calc.go's flag/log/encoding-json CLI idiom.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ashraeload/calc"
	"ashraeload/model"
	"ashraeload/results"
)

func run(inputPath, outputDir string, saveHourlyCSV bool) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
	}

	log.Printf("reading building model from %s", inputPath)
	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	project, err := model.FromJSON(data)
	if err != nil {
		return err
	}

	log.Printf("running load calculation for project %q", project.Name)
	settings := model.DefaultCalculationSettings()
	result, err := calc.CalculateProject(project, settings)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}

	summaryPath := filepath.Join(outputDir, "summary.json")
	log.Printf("writing summary to %s", summaryPath)
	if err := writeJSON(summaryPath, result.ToDict()); err != nil {
		return err
	}

	if saveHourlyCSV {
		log.Printf("writing per-space hourly profiles to %s", outputDir)
		if err := results.SaveProjectHourlyProfilesCSV(outputDir, result); err != nil {
			return err
		}
	}

	log.Printf("total cooling load: %.0f W, total heating load: %.0f W", result.TotalCoolingLoad, result.TotalHeatingLoad)
	return nil
}

func readInput(path string) ([]byte, error) {
	if len(path) >= 4 && path[0:4] == "http" {
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		return ioutil.ReadAll(resp.Body)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ioutil.ReadAll(file)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

func main() {
	var inputPath string
	flag.StringVar(&inputPath, "input", "", "building model JSON file to load")

	var outputDir string
	flag.StringVar(&outputDir, "o", ".", "output directory for results")

	var saveHourlyCSV bool
	flag.BoolVar(&saveHourlyCSV, "hourly_csv", false, "write per-space hourly load profiles as CSV")

	var logLevel string
	flag.StringVar(&logLevel, "log", "INFO", "log level (unused placeholder, matches upstream CLI shape)")

	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()
	if err := run(inputPath, outputDir, saveHourlyCSV); err != nil {
		log.Fatal(err)
	}
	log.Printf("elapsed_time: %v", time.Since(start))
}
