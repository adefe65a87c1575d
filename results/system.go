package results

const tonsPerW = 1.0 / wPerTon

// SystemLoadResult rolls up the member Zone results served by one
// air-handling unit: the coincident block load, coil sizing and fan power.
type SystemLoadResult struct {
	SystemID, Name, Type string
	ZoneIDs              []string
	ZoneResults           []*ZoneLoadResult

	TotalFloorArea float64

	BlockCoolingSensible, BlockCoolingLatent, BlockCoolingTotal float64
	BlockHeating                                                float64

	SumZoneCooling, SumZoneHeating float64

	CoolingDiversityFactor float64
	HeatingDiversityFactor float64

	CoolingSizingFactor float64
	HeatingSizingFactor float64

	SizedCoolingCapacity float64
	SizedHeatingCapacity float64

	TotalSupplyAirflow, TotalOutdoorAirflow, TotalReturnAirflow float64

	CoolingCoilTotal, CoolingCoilSensible, CoolingCoilLatent float64
	HeatingCoilLoad float64

	// PreheatCoilLoad is never set by this calculator — no ashrae_engine
	// logic populates it either, since a preheat coil is only exercised
	// below a freeze-protection setpoint this model does not simulate.
	// Kept for result-shape parity with a full BAS point list.
	PreheatCoilLoad float64
	ReheatCoilLoad  float64

	SupplyFanPower float64
	// ReturnFanPower is likewise never computed: no system in scope here
	// models a return fan separate from the supply fan.
	ReturnFanPower float64

	MixedAirTemp float64
	SupplyAirTemp float64

	HourlyProfile HourlyLoadProfile
}

func NewSystemLoadResult() *SystemLoadResult {
	return &SystemLoadResult{CoolingDiversityFactor: 1.0, HeatingDiversityFactor: 1.0, SupplyAirTemp: 13.0}
}

func (r *SystemLoadResult) ToDict() map[string]interface{} {
	zoneIDs := make([]string, len(r.ZoneResults))
	for i, zr := range r.ZoneResults {
		zoneIDs[i] = zr.ZoneID
	}
	return map[string]interface{}{
		"system_id":   r.SystemID,
		"name":        r.Name,
		"system_type": r.Type,
		"zone_ids":    zoneIDs,
		"block_cooling_w":    r.BlockCoolingTotal,
		"block_cooling_tons": r.BlockCoolingTotal * tonsPerW,
		"block_heating_w":    r.BlockHeating,
		"diversity_factor_cooling": r.CoolingDiversityFactor,
		"diversity_factor_heating": r.HeatingDiversityFactor,
		"sized_cooling_capacity_w": r.SizedCoolingCapacity,
		"sized_heating_capacity_w": r.SizedHeatingCapacity,
		"airflow": map[string]interface{}{
			"supply_m3s": r.TotalSupplyAirflow,
			"supply_cfm": r.TotalSupplyAirflow / m3sPerCfm,
			"outdoor_m3s": r.TotalOutdoorAirflow,
			"return_m3s": r.TotalReturnAirflow,
		},
		"cooling_coil": map[string]interface{}{
			"sensible_w": r.CoolingCoilSensible,
			"latent_w":   r.CoolingCoilLatent,
			"total_w":    r.CoolingCoilTotal,
			"total_tons": r.CoolingCoilTotal * tonsPerW,
		},
		"heating_coil_w": r.HeatingCoilLoad,
		"reheat_coil_w":  r.ReheatCoilLoad,
		"preheat_coil_w": r.PreheatCoilLoad,
		"mixed_air_temp_c": r.MixedAirTemp,
		"supply_air_temp_c": r.SupplyAirTemp,
		"supply_fan_power_w": r.SupplyFanPower,
		"return_fan_power_w": r.ReturnFanPower,
	}
}
