package calc

import (
	"math"

	"ashraeload/model"
	"ashraeload/results"
)

// CalculateSpaceLoads builds the full per-space result: 24-hour cooling and
// heating design-day profiles, the peak-hour component breakdown, airflow
// sizing and the room sensible heat ratio. Grounded on
// ashrae_engine/calculator.py's _calculate_space_loads.
func CalculateSpaceLoads(space *model.Space, b *model.Building, settings model.CalculationSettings) *results.SpaceLoadResult {
	coolingDay := pickDesignDay(b.Weather, true)
	heatingDay := pickDesignDay(b.Weather, false)

	coolingProfile := results.NewHourlyLoadProfile()
	var peakComponents map[string]results.LoadComponent
	peakHour := -1
	peakTotal := -math.MaxFloat64

	for h := 0; h < 24; h++ {
		outdoorTemp := model.DesignDayDryBulb(coolingDay.DryBulbMax, coolingDay.DailyRange, h)
		coolingProfile.OutdoorTemp[h] = outdoorTemp
		components := hourlyLoadComponents(space, b, settings, coolingDay, h, outdoorTemp)

		var sensible, latent float64
		for _, c := range components {
			sensible += c.Sensible
			latent += c.Latent
		}
		coolingProfile.Sensible[h] = sensible
		coolingProfile.Latent[h] = latent
		coolingProfile.TotalCooling[h] = sensible + latent

		if coolingProfile.TotalCooling[h] > peakTotal {
			peakTotal = coolingProfile.TotalCooling[h]
			peakHour = h
			peakComponents = components
		}
	}

	heatingProfile := results.NewHourlyLoadProfile()
	for h := 0; h < 24; h++ {
		outdoorTemp := model.DesignDayDryBulb(heatingDay.DryBulbMax, heatingDay.DailyRange, h)
		heatingProfile.OutdoorTemp[h] = outdoorTemp
		heatingProfile.SensibleHeating[h] = heatingLoad(space, b, settings, outdoorTemp)
	}

	peakSummary := results.NewPeakLoadSummary()
	peakSummary.PeakSensible = coolingProfile.Sensible[peakHour]
	peakSummary.PeakLatent = coolingProfile.Latent[peakHour]
	peakSummary.PeakTotalCooling = coolingProfile.TotalCooling[peakHour]
	peakSummary.PeakCoolingHour = peakHour
	peakSummary.PeakCoolingMonth = coolingDay.Month
	peakSummary.PeakCoolingDay = coolingDay.Day
	peakSummary.OutdoorTempAtCoolingPeak = coolingProfile.OutdoorTemp[peakHour]

	peakHeatingHour := heatingProfile.PeakHeatingHour()
	peakSummary.PeakSensibleHeating = heatingProfile.SensibleHeating[peakHeatingHour]
	peakSummary.PeakHeatingHour = peakHeatingHour
	peakSummary.PeakHeatingMonth = heatingDay.Month
	peakSummary.PeakHeatingDay = heatingDay.Day
	peakSummary.OutdoorTempAtHeatingPeak = heatingProfile.OutdoorTemp[peakHeatingHour]

	if space.FloorArea > 0 {
		peakSummary.CoolingWPerM2 = peakSummary.PeakTotalCooling / space.FloorArea
		peakSummary.HeatingWPerM2 = peakSummary.PeakSensibleHeating / space.FloorArea
	}

	supplyCooling := SupplyAirflow(peakSummary.PeakSensible, settings.IndoorCoolingTemp, settings.CoolingSupplyAirTemp)
	supplyHeating := SupplyAirflow(peakSummary.PeakSensibleHeating, settings.IndoorHeatingTemp, settings.HeatingSupplyAirTemp)
	outdoorAirflow := OutdoorAirflow(space)

	rshr := 0.0
	if peakSummary.PeakTotalCooling > 0 {
		rshr = peakSummary.PeakSensible / peakSummary.PeakTotalCooling
	}

	return &results.SpaceLoadResult{
		SpaceID: space.ID, Name: space.Name,
		FloorArea: space.FloorArea, Volume: space.Volume,
		ExteriorWallArea: space.ExteriorWallArea(), RoofArea: space.RoofArea(), WindowArea: space.WindowArea(),
		PeakSummary: peakSummary, Components: peakComponents,
		CoolingDesignDayProfile: coolingProfile, HeatingDesignDayProfile: heatingProfile,
		SupplyAirflowCooling: supplyCooling, SupplyAirflowHeating: supplyHeating,
		OutdoorAirflow: outdoorAirflow, ExhaustAirflow: exhaustAirflow(space, outdoorAirflow),
		RoomSensibleHeatRatio: rshr,
		ApparatusDewPoint:     apparatusDewPoint(space, rshr),
	}
}

func pickDesignDay(w *model.WeatherData, cooling bool) model.DesignDay {
	if w == nil {
		if cooling {
			return model.DefaultCoolingDesignDay()
		}
		return model.DefaultHeatingDesignDay()
	}
	if cooling {
		if len(w.CoolingDesignDays) > 0 {
			return w.CoolingDesignDays[0]
		}
		return model.DefaultCoolingDesignDay()
	}
	if len(w.HeatingDesignDays) > 0 {
		return w.HeatingDesignDays[0]
	}
	return model.DefaultHeatingDesignDay()
}

// hourlyLoadComponents computes every named cooling-load contributor at
// hour h, grounded on calculator.py's _calculate_hourly_loads.
func hourlyLoadComponents(space *model.Space, b *model.Building, settings model.CalculationSettings, day model.DesignDay, h int, outdoorTemp float64) map[string]results.LoadComponent {
	indoorTemp := effectiveCoolingSetpoint(space, settings)
	components := map[string]results.LoadComponent{}

	envelopeSensible := 0.0
	roofSensible := 0.0
	windowSolar := 0.0
	windowConduction := 0.0

	for _, srf := range space.Surfaces {
		if srf.Type != model.ExteriorWall && srf.Type != model.Roof {
			continue
		}
		u := surfaceUValue(b, srf.ConstructionID)
		azimuth := effectiveAzimuth(b, srf.Azimuth)
		solAir := outdoorTemp
		if settings.IncludeSolarGains {
			solar := SolarOnSurface(h, srf.Tilt, azimuth, day.Clearness)
			solAir = SolAirTemp(outdoorTemp, solar, srf.Type == model.Roof, srf.Tilt)
		}
		gain := u * srf.Area * (solAir - indoorTemp)
		if gain < 0 {
			gain = 0
		}
		if srf.Type == model.Roof {
			roofSensible += gain
		} else {
			envelopeSensible += gain
		}
	}
	components["envelope_conduction"] = results.NewLoadComponent("envelope_conduction", envelopeSensible+roofSensible, 0)

	for _, f := range space.Fenestrations {
		g := b.Glazings[f.GlazingID]
		if g == nil {
			continue
		}
		parent := findSurface(space, f.ParentSurfaceID)
		azimuth := effectiveAzimuth(b, parent.Azimuth)
		_ = azimuth
		intensity := 0.0
		if settings.IncludeSolarGains {
			intensity = SolarIntensity(h, day.Clearness)
		}
		windowSolar += g.SHGC * f.Area * intensity * 0.5 * g.ShadeMultiplier()
		windowConduction += g.AssemblyUValue() * f.Area * (outdoorTemp - indoorTemp)
	}
	components["window_solar"] = results.NewLoadComponent("window_solar", windowSolar, 0)
	components["window_conduction"] = results.NewLoadComponent("window_conduction", math.Max(windowConduction, 0), 0)

	peopleS, peopleL, lighting, equipment := internalGains(space, b, h)
	components["people"] = results.LoadComponent{Name: "people", Sensible: peopleS, Latent: peopleL, TotalCooling: peopleS + peopleL}
	components["lighting"] = results.NewLoadComponent("lighting", lighting, 0)
	components["equipment"] = results.NewLoadComponent("equipment", equipment, 0)

	if settings.IncludeInfiltration {
		infS, infL := infiltrationLoad(space, outdoorTemp, indoorTemp, h)
		infS, infL = math.Max(infS, 0), math.Max(infL, 0)
		components["infiltration"] = results.LoadComponent{Name: "infiltration", Sensible: infS, Latent: infL, TotalCooling: infS + infL}
	}
	if settings.IncludeVentilation && space.Ventilation != nil {
		venS, venL := ventilationLoad(space, outdoorTemp, indoorTemp, h)
		venS, venL = math.Max(venS, 0), math.Max(venL, 0)
		components["ventilation"] = results.LoadComponent{Name: "ventilation", Sensible: venS, Latent: venL, TotalCooling: venS + venL}
	}

	return components
}

// heatingLoad is the steady-state heating loss at outdoorTemp, grounded on
// calculator.py's _calculate_heating_load. It returns a single total, not a
// component breakdown, matching the original.
func heatingLoad(space *model.Space, b *model.Building, settings model.CalculationSettings, outdoorTemp float64) float64 {
	indoorTemp := effectiveHeatingSetpoint(space, settings)
	total := 0.0

	for _, srf := range space.Surfaces {
		u := surfaceUValue(b, srf.ConstructionID)
		switch srf.Type {
		case model.ExteriorWall, model.Roof:
			loss := u * srf.Area * (indoorTemp - outdoorTemp)
			total += math.Max(loss, 0)
		case model.SlabOnGrade:
			groundTemp := b.Weather.GroundTemp(1)
			loss := u * srf.Area * (indoorTemp - groundTemp)
			total += math.Max(loss, 0)
		}
	}

	for _, f := range space.Fenestrations {
		g := b.Glazings[f.GlazingID]
		if g == nil {
			continue
		}
		loss := g.AssemblyUValue() * f.Area * (indoorTemp - outdoorTemp)
		total += math.Max(loss, 0)
	}

	// infiltrationLoad/ventilationLoad return the outdoor-minus-indoor gain,
	// so the heating loss is its negation.
	if settings.IncludeInfiltration {
		infS, _ := infiltrationLoad(space, outdoorTemp, indoorTemp, -1)
		total += math.Max(-infS, 0)
	}
	if settings.IncludeVentilation {
		venS, _ := ventilationLoad(space, outdoorTemp, indoorTemp, -1)
		total += math.Max(-venS, 0)
	}

	return total
}

func findSurface(space *model.Space, id string) model.Surface {
	for _, s := range space.Surfaces {
		if s.ID == id {
			return s
		}
	}
	return model.Surface{Tilt: 90}
}

func surfaceUValue(b *model.Building, constructionID string) float64 {
	c := b.Constructions[constructionID]
	if c == nil {
		return 0
	}
	return c.UValue()
}

// effectiveAzimuth rotates a surface azimuth by the building's true-north
// orientation offset before any solar lookup, the one piece of behavior
// this module adds beyond the original (which assumes model-space azimuth
// is already true azimuth).
func effectiveAzimuth(b *model.Building, azimuth float64) float64 {
	a := azimuth + b.Orientation
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	return a
}

func effectiveCoolingSetpoint(space *model.Space, settings model.CalculationSettings) float64 {
	if space.CoolingSetpoint != 0 {
		return space.CoolingSetpoint
	}
	return settings.IndoorCoolingTemp
}

func effectiveHeatingSetpoint(space *model.Space, settings model.CalculationSettings) float64 {
	if space.HeatingSetpoint != 0 {
		return space.HeatingSetpoint
	}
	return settings.IndoorHeatingTemp
}

// exhaustAirflow is a supplement not present in the original: restroom and
// kitchen space types exhaust a fraction of their outdoor airflow rather
// than leaving ExhaustAirflow permanently at zero.
func exhaustAirflow(space *model.Space, outdoorAirflow float64) float64 {
	switch space.Type {
	case model.Restroom:
		return outdoorAirflow * 1.0
	case model.Kitchen:
		return outdoorAirflow * 1.5
	default:
		return 0
	}
}

// apparatusDewPoint approximates ADP by walking the room condition down
// the sensible heat ratio line toward saturation: construct the room's
// humidity ratio at its setpoint and a nominal 50% RH, scale it down by
// the room's sensible fraction as a proxy for the coil leaving condition,
// then invert the saturation curve to find the corresponding dew point.
// A supplement: the original leaves this field at its zero default.
func apparatusDewPoint(space *model.Space, shr float64) float64 {
	roomTemp := space.CoolingSetpoint
	if roomTemp == 0 {
		roomTemp = 24
	}
	roomVaporPressure := saturationVaporPressure(roomTemp) * 0.5
	roomHumidityRatio := humidityRatioFromVaporPressure(roomVaporPressure)

	coilLeavingHumidityRatio := roomHumidityRatio * shr
	if coilLeavingHumidityRatio < 0 {
		coilLeavingHumidityRatio = 0
	}
	return dewPointFromHumidityRatio(coilLeavingHumidityRatio)
}
