package results

import (
	"os"

	"github.com/gocarina/gocsv"
)

// hourlyProfileRow is one hour of a space's design-day profile, the gocsv
// row shape grounded on the teacher's WeatherDataRow struct-tag pattern
// (heat_load_calc/weather.go) and its Recorder's per-timestep field layout
// (recorder.go) — one row per hour rather than one column per quantity.
type hourlyProfileRow struct {
	Hour            int     `csv:"hour"`
	SensibleCoolingW float64 `csv:"sensible_cooling_w"`
	LatentCoolingW   float64 `csv:"latent_cooling_w"`
	TotalCoolingW    float64 `csv:"total_cooling_w"`
	SensibleHeatingW float64 `csv:"sensible_heating_w"`
	OutdoorTempC     float64 `csv:"outdoor_temp_c"`
}

// SaveHourlyProfileCSV writes a single space/zone/system's 24-hour profile
// to a CSV file, one row per hour.
func SaveHourlyProfileCSV(path string, p *HourlyLoadProfile) error {
	rows := make([]*hourlyProfileRow, 24)
	for h := 0; h < 24; h++ {
		rows[h] = &hourlyProfileRow{
			Hour: p.Hours[h], SensibleCoolingW: p.Sensible[h], LatentCoolingW: p.Latent[h],
			TotalCoolingW: p.TotalCooling[h], SensibleHeatingW: p.SensibleHeating[h],
			OutdoorTempC: p.OutdoorTemp[h],
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(rows, file)
}

// SaveProjectHourlyProfilesCSV writes one CSV file per space into dir,
// named "<space_id>_hourly.csv", following the teacher's convention of one
// output file per dimension (heat_load_calc.go writes
// weather_for_method_file.csv separately from the schedule files).
func SaveProjectHourlyProfilesCSV(dir string, result *ProjectLoadResult) error {
	for _, sr := range result.SpaceResults {
		if err := SaveHourlyProfileCSV(dir+"/"+sr.SpaceID+"_hourly.csv", &sr.CoolingDesignDayProfile); err != nil {
			return err
		}
	}
	return nil
}
