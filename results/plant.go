package results

// PlantLoadResult rolls up the member System results served by one set of
// central chillers/boilers/towers: capacity, equipment count, flow and
// pumping power.
type PlantLoadResult struct {
	PlantID, Name, Type string
	SystemIDs           []string
	SystemResults        []*SystemLoadResult

	TotalFloorArea float64

	TotalChillerLoad, TotalBoilerLoad, TotalCoolingTowerLoad float64

	// Never computed: nothing in this calculator models plant-level load
	// diversity separate from the system-level coincident blocks already
	// summed into TotalChillerLoad/TotalBoilerLoad. Kept for result-shape
	// parity with Zone/SystemLoadResult.
	CoolingDiversityFactor float64
	HeatingDiversityFactor float64

	CoolingSizingFactor float64
	HeatingSizingFactor float64

	ChillerCapacity, BoilerCapacity, CoolingTowerCapacity float64

	CHWPumpPower, HWPumpPower, CWPumpPower float64
	CHWFlowRate, HWFlowRate, CWFlowRate    float64 // L/s

	ChillerEnergyInput, BoilerEnergyInput float64

	CoolingTowerFanPower float64

	NumChillersRecommended, NumBoilersRecommended int
	ChillerSizeEach, BoilerSizeEach               float64 // W

	HourlyProfile HourlyLoadProfile
}

func NewPlantLoadResult() *PlantLoadResult {
	return &PlantLoadResult{
		CoolingDiversityFactor: 1.0, HeatingDiversityFactor: 1.0,
		NumChillersRecommended: 1, NumBoilersRecommended: 1,
	}
}

func (r *PlantLoadResult) ToDict() map[string]interface{} {
	systemIDs := make([]string, len(r.SystemResults))
	for i, sr := range r.SystemResults {
		systemIDs[i] = sr.SystemID
	}
	return map[string]interface{}{
		"plant_id":   r.PlantID,
		"name":       r.Name,
		"plant_type": r.Type,
		"system_ids": systemIDs,
		"chiller": map[string]interface{}{
			"load_w":      r.TotalChillerLoad,
			"capacity_w":  r.ChillerCapacity,
			"capacity_tons": r.ChillerCapacity * tonsPerW,
			"num_recommended": r.NumChillersRecommended,
			"size_each_w":     r.ChillerSizeEach,
			"size_each_tons":  r.ChillerSizeEach * tonsPerW,
			"energy_input_w":  r.ChillerEnergyInput,
			"chw_flow_ls":      r.CHWFlowRate,
			"chw_pump_power_w": r.CHWPumpPower,
		},
		"boiler": map[string]interface{}{
			"load_w":      r.TotalBoilerLoad,
			"capacity_w":  r.BoilerCapacity,
			"capacity_kw": r.BoilerCapacity / 1000,
			"num_recommended": r.NumBoilersRecommended,
			"size_each_w":     r.BoilerSizeEach,
			"size_each_kw":    r.BoilerSizeEach / 1000,
			"energy_input_w":  r.BoilerEnergyInput,
			"hw_flow_ls":      r.HWFlowRate,
			"hw_pump_power_w": r.HWPumpPower,
		},
		"cooling_tower": map[string]interface{}{
			"load_w":      r.TotalCoolingTowerLoad,
			"capacity_w":  r.CoolingTowerCapacity,
			"fan_power_w": r.CoolingTowerFanPower,
			"cw_flow_ls":      r.CWFlowRate,
			"cw_pump_power_w": r.CWPumpPower,
		},
	}
}
