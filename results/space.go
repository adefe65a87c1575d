package results

// SpaceLoadResult is the full per-space calculation output: geometry
// summary, peak cooling/heating, the 24-hour design-day profiles, the
// component breakdown at the cooling peak hour, and sizing airflows.
type SpaceLoadResult struct {
	SpaceID, Name string

	FloorArea, Volume             float64
	ExteriorWallArea, RoofArea    float64
	WindowArea                    float64

	PeakSummary PeakLoadSummary
	Components  map[string]LoadComponent

	CoolingDesignDayProfile HourlyLoadProfile
	HeatingDesignDayProfile HourlyLoadProfile

	SupplyAirflowCooling float64 // m3/s
	SupplyAirflowHeating float64 // m3/s
	OutdoorAirflow       float64 // m3/s
	ExhaustAirflow       float64 // m3/s

	RoomSensibleHeatRatio float64
	ApparatusDewPoint     float64 // degC
	BypassFactor          float64
}

const (
	wPerTon = 3517.0
	m3sPerCfm = 0.000471947
)

// ToDict projects the result into the unit-suffixed nested-map shape
// spec.md's external interface requires, mirroring
// ashrae_engine/results.py's SpaceLoadResult.to_dict().
func (r *SpaceLoadResult) ToDict() map[string]interface{} {
	components := map[string]interface{}{}
	for name, c := range r.Components {
		components[name] = map[string]interface{}{
			"sensible_cooling_w": c.Sensible,
			"latent_cooling_w":   c.Latent,
			"total_cooling_w":    c.TotalCooling,
			"sensible_heating_w": c.SensibleHeating,
		}
	}
	return map[string]interface{}{
		"space_id": r.SpaceID,
		"name":     r.Name,
		"geometry": map[string]interface{}{
			"floor_area_m2":         r.FloorArea,
			"volume_m3":             r.Volume,
			"exterior_wall_area_m2": r.ExteriorWallArea,
			"roof_area_m2":          r.RoofArea,
			"window_area_m2":        r.WindowArea,
		},
		"peak_cooling": map[string]interface{}{
			"sensible_w":      r.PeakSummary.PeakSensible,
			"latent_w":        r.PeakSummary.PeakLatent,
			"total_w":         r.PeakSummary.PeakTotalCooling,
			"total_tons":      r.PeakSummary.PeakTotalCooling / wPerTon,
			"hour":            r.PeakSummary.PeakCoolingHour,
			"w_per_m2":        r.PeakSummary.CoolingWPerM2,
			"outdoor_temp_c":  r.PeakSummary.OutdoorTempAtCoolingPeak,
		},
		"peak_heating": map[string]interface{}{
			"sensible_w":     r.PeakSummary.PeakSensibleHeating,
			"hour":           r.PeakSummary.PeakHeatingHour,
			"w_per_m2":       r.PeakSummary.HeatingWPerM2,
			"outdoor_temp_c": r.PeakSummary.OutdoorTempAtHeatingPeak,
		},
		"components": components,
		"airflow": map[string]interface{}{
			"supply_cooling_m3s": r.SupplyAirflowCooling,
			"supply_cooling_cfm": r.SupplyAirflowCooling / m3sPerCfm,
			"supply_heating_m3s": r.SupplyAirflowHeating,
			"supply_heating_cfm": r.SupplyAirflowHeating / m3sPerCfm,
			"outdoor_m3s":        r.OutdoorAirflow,
			"exhaust_m3s":        r.ExhaustAirflow,
		},
		"room_sensible_heat_ratio": r.RoomSensibleHeatRatio,
		"apparatus_dew_point_c":    r.ApparatusDewPoint,
		"bypass_factor":            r.BypassFactor,
	}
}
