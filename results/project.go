package results

// ProjectLoadResult is the top-level calculation output for one Project:
// building totals plus every Space/Zone/System/Plant result, and any
// warnings/notes accumulated along the way (spec.md's non-error path).
type ProjectLoadResult struct {
	ProjectID, Name string
	CalculatedAt    string // RFC3339, stamped by the caller
	CalculationMethod string
	BuildingName    string

	TotalFloorArea, TotalVolume float64
	NumSpaces, NumZones, NumSystems int

	Location string
	Latitude, Longitude float64

	CoolingDesignTemp, HeatingDesignTemp float64

	// TotalCoolingLoad/TotalHeatingLoad are the SUM OF SPACE PEAKS, not the
	// coincident system block total — spec.md's design notes call out that
	// these two totals legitimately differ and both are reported; see
	// SystemLoadResult.BlockCoolingTotal for the coincident figure.
	TotalCoolingLoad, TotalHeatingLoad float64
	CoolingWPerM2, HeatingWPerM2       float64

	SpaceResults  []*SpaceLoadResult
	ZoneResults   []*ZoneLoadResult
	SystemResults []*SystemLoadResult
	PlantResults  []*PlantLoadResult

	Warnings []string
	Notes    []string
}

func (r *ProjectLoadResult) ToDict() map[string]interface{} {
	spaces := make([]map[string]interface{}, len(r.SpaceResults))
	for i, sr := range r.SpaceResults {
		spaces[i] = sr.ToDict()
	}
	zones := make([]map[string]interface{}, len(r.ZoneResults))
	for i, zr := range r.ZoneResults {
		zones[i] = zr.ToDict()
	}
	systems := make([]map[string]interface{}, len(r.SystemResults))
	for i, sr := range r.SystemResults {
		systems[i] = sr.ToDict()
	}
	plants := make([]map[string]interface{}, len(r.PlantResults))
	for i, pr := range r.PlantResults {
		plants[i] = pr.ToDict()
	}

	return map[string]interface{}{
		"summary": map[string]interface{}{
			"project_id":         r.ProjectID,
			"name":               r.Name,
			"calculated_at":      r.CalculatedAt,
			"calculation_method": r.CalculationMethod,
			"building_name":      r.BuildingName,
			"num_spaces":         r.NumSpaces,
			"num_zones":          r.NumZones,
			"num_systems":        r.NumSystems,
		},
		"design_conditions": map[string]interface{}{
			"location":           r.Location,
			"latitude":            r.Latitude,
			"longitude":           r.Longitude,
			"cooling_design_temp_c": r.CoolingDesignTemp,
			"heating_design_temp_c": r.HeatingDesignTemp,
		},
		"building_loads": map[string]interface{}{
			"total_floor_area_m2": r.TotalFloorArea,
			"total_volume_m3":     r.TotalVolume,
			"total_cooling_w":     r.TotalCoolingLoad,
			"total_cooling_tons":  r.TotalCoolingLoad * tonsPerW,
			"total_heating_w":     r.TotalHeatingLoad,
			"total_heating_kw":    r.TotalHeatingLoad / 1000,
			"cooling_w_per_m2":    r.CoolingWPerM2,
			"heating_w_per_m2":    r.HeatingWPerM2,
		},
		"spaces":   spaces,
		"zones":    zones,
		"systems":  systems,
		"plants":   plants,
		"warnings": r.Warnings,
		"notes":    r.Notes,
	}
}
