package results

// ZoneLoadResult rolls up the member Space results sharing a thermostat.
type ZoneLoadResult struct {
	ZoneID, Name string
	SpaceIDs     []string
	SpaceResults []*SpaceLoadResult

	TotalFloorArea, TotalVolume float64

	PeakSummary PeakLoadSummary

	// Present for structural symmetry with SystemLoadResult/PlantLoadResult;
	// the roll-up never computes a coincident block at the zone level (the
	// zone IS the block, by definition), so these stay at their default 1.0.
	CoolingDiversityFactor float64
	HeatingDiversityFactor float64

	CoolingSizingFactor float64
	HeatingSizingFactor float64

	SizedCoolingLoad float64
	SizedHeatingLoad float64

	ZoneSupplyAirflow  float64
	ZoneOutdoorAirflow float64

	HourlyProfile HourlyLoadProfile
}

// NewZoneLoadResult applies the original's diversity-factor defaults of 1.0.
func NewZoneLoadResult() *ZoneLoadResult {
	return &ZoneLoadResult{CoolingDiversityFactor: 1.0, HeatingDiversityFactor: 1.0}
}

func (r *ZoneLoadResult) ToDict() map[string]interface{} {
	spaceIDs := make([]string, len(r.SpaceResults))
	for i, sr := range r.SpaceResults {
		spaceIDs[i] = sr.SpaceID
	}
	return map[string]interface{}{
		"zone_id":    r.ZoneID,
		"name":       r.Name,
		"space_ids":  spaceIDs,
		"floor_area_m2": r.TotalFloorArea,
		"volume_m3":     r.TotalVolume,
		"peak_cooling_w": r.PeakSummary.PeakTotalCooling,
		"peak_heating_w": r.PeakSummary.PeakSensibleHeating,
		"sized_cooling_load_w": r.SizedCoolingLoad,
		"sized_heating_load_w": r.SizedHeatingLoad,
		"cooling_sizing_factor": r.CoolingSizingFactor,
		"heating_sizing_factor": r.HeatingSizingFactor,
		"supply_airflow_m3s":  r.ZoneSupplyAirflow,
		"outdoor_airflow_m3s": r.ZoneOutdoorAirflow,
	}
}
