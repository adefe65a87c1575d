package model

import "encoding/json"

// FromJSON decodes a project description into a *Project. It follows the
// teacher's two-stage decode: first into a loosely-typed map (stdlib
// encoding/json, as heat_load_calc.go's `run` does for its house-data
// JSON), then into typed model structs via CreateProject. A malformed
// top-level document is an InvalidInput error; missing keys inside a
// well-formed document take their defaults, while a nested record of the
// wrong JSON type (e.g. a list entry that is not an object) panics on its
// type assertion.
func FromJSON(data []byte) (*Project, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewError(KindInvalidInput, "project JSON: %v", err)
	}
	return CreateProject(raw)
}

func str(m map[string]interface{}, key, def string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func num(m map[string]interface{}, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

func boolField(m map[string]interface{}, key string, def bool) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func list(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if l, ok := v.([]interface{}); ok {
			return l
		}
	}
	return nil
}

func strList(m map[string]interface{}, key string) []string {
	var out []string
	for _, v := range list(m, key) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// CreateProject builds a *Project from a loosely-typed document, the same
// shape CreateBuilding(d map[string]interface{}) consumes in
// heat_load_calc/building.go, generalized from "one building record" to
// "one full project graph".
func CreateProject(d map[string]interface{}) (*Project, error) {
	bd, ok := d["building"].(map[string]interface{})
	if !ok {
		return nil, NewError(KindInvalidInput, "project JSON missing \"building\" object")
	}
	b, err := createBuilding(bd)
	if err != nil {
		return nil, err
	}
	p := NewProject(str(d, "id", "project-1"), str(d, "name", b.Name), b)
	p.CalculationMethod = str(d, "calculation_method", p.CalculationMethod)
	p.TimestepMinutes = int(num(d, "timestep_minutes", float64(p.TimestepMinutes)))
	p.UnitSystem = str(d, "unit_system", p.UnitSystem)
	p.CoolingSafetyFactor = num(d, "cooling_safety_factor", p.CoolingSafetyFactor)
	p.HeatingSafetyFactor = num(d, "heating_safety_factor", p.HeatingSafetyFactor)
	return p, nil
}

func createBuilding(d map[string]interface{}) (*Building, error) {
	b := NewBuilding(str(d, "id", "building-1"), str(d, "name", "building"))

	for _, cv := range list(d, "constructions") {
		cd := cv.(map[string]interface{})
		var layers []Material
		for _, lv := range list(cd, "layers") {
			ld := lv.(map[string]interface{})
			layers = append(layers, Material{
				ID: str(ld, "id", ""), Name: str(ld, "name", ""),
				Conductivity: num(ld, "conductivity", 0), Density: num(ld, "density", 0),
				SpecificHeat: num(ld, "specific_heat", 0), Thickness: num(ld, "thickness", 0),
				Roughness: str(ld, "roughness", ""),
			})
		}
		c := NewConstruction(str(cd, "id", ""), str(cd, "name", ""), layers)
		if v, ok := cd["inside_film_resistance"]; ok {
			c.InsideFilmResistance = v.(float64)
		}
		if v, ok := cd["outside_film_resistance"]; ok {
			c.OutsideFilmResistance = v.(float64)
		}
		b.Constructions[c.ID] = c
	}

	for _, gv := range list(d, "glazings") {
		gd := gv.(map[string]interface{})
		g := NewGlazing(str(gd, "id", ""), str(gd, "name", ""), GlazingTypeFromString(str(gd, "type", "double")))
		g.UValue = num(gd, "u_value", g.UValue)
		g.SHGC = num(gd, "shgc", g.SHGC)
		g.VT = num(gd, "vt", g.VT)
		g.FrameUValue = num(gd, "frame_u_value", g.FrameUValue)
		g.FrameFraction = num(gd, "frame_fraction", g.FrameFraction)
		g.InteriorShadeMultiplier = num(gd, "interior_shade_multiplier", g.InteriorShadeMultiplier)
		g.ExteriorShadeMultiplier = num(gd, "exterior_shade_multiplier", g.ExteriorShadeMultiplier)
		b.Glazings[g.ID] = g
	}

	for _, sv := range list(d, "schedules") {
		sd := sv.(map[string]interface{})
		sch := &Schedule{ID: str(sd, "id", ""), Name: str(sd, "name", "")}
		fillArray(&sch.WeekdayValues, list(sd, "weekday_values"))
		fillArray(&sch.WeekendValues, list(sd, "weekend_values"))
		fillArray(&sch.HolidayValues, list(sd, "holiday_values"))
		b.Schedules[sch.ID] = sch
	}

	for _, sv := range list(d, "spaces") {
		sd := sv.(map[string]interface{})
		sp := NewSpace(str(sd, "id", ""), str(sd, "name", ""), SpaceTypeFromString(str(sd, "type", "office_enclosed")))
		sp.FloorArea = num(sd, "floor_area", 0)
		sp.Volume = num(sd, "volume", 0)
		sp.Height = num(sd, "height", sp.Height)
		sp.X, sp.Y, sp.Z = num(sd, "x", 0), num(sd, "y", 0), num(sd, "z", 0)
		sp.CoolingSetpoint = num(sd, "cooling_setpoint", sp.CoolingSetpoint)
		sp.HeatingSetpoint = num(sd, "heating_setpoint", sp.HeatingSetpoint)
		sp.HumiditySetpoint = num(sd, "humidity_setpoint", sp.HumiditySetpoint)
		sp.Multiplier = int(num(sd, "multiplier", 1))
		sp.ZoneID = str(sd, "zone_id", "")

		for _, srfv := range list(sd, "surfaces") {
			srfd := srfv.(map[string]interface{})
			srf := Surface{
				ID: str(srfd, "id", ""), Name: str(srfd, "name", ""),
				Type: SurfaceTypeFromString(str(srfd, "surface_type", "exterior_wall")),
				Area: num(srfd, "area", 0), Azimuth: num(srfd, "azimuth", 0),
				Tilt: num(srfd, "tilt", 90), ConstructionID: str(srfd, "construction_id", ""),
				AdjacentSpaceID: str(srfd, "adjacent_space_id", ""),
				AdjacentCondition: AdjacentConditionFromString(str(srfd, "adjacent_condition", "outdoor")),
			}
			sp.Surfaces = append(sp.Surfaces, srf)
		}
		for _, fv := range list(sd, "fenestrations") {
			fd := fv.(map[string]interface{})
			f := Fenestration{
				ID: str(fd, "id", ""), Name: str(fd, "name", ""),
				ParentSurfaceID: str(fd, "parent_surface_id", ""), GlazingID: str(fd, "glazing_id", ""),
				Area: num(fd, "area", 0), Height: num(fd, "height", 1.5), Width: num(fd, "width", 1.2),
				SillHeight: num(fd, "sill_height", 0.9),
				OverhangDepth: num(fd, "overhang_depth", 0), OverhangOffset: num(fd, "overhang_offset", 0),
				LeftFinDepth: num(fd, "left_fin_depth", 0), RightFinDepth: num(fd, "right_fin_depth", 0),
			}
			sp.Fenestrations = append(sp.Fenestrations, f)
		}
		if ild, ok := sd["internal_load"].(map[string]interface{}); ok {
			il := NewInternalLoad()
			il.PeopleCount = num(ild, "people_count", 0)
			il.PeoplePerArea = num(ild, "people_per_area", 0)
			il.ActivityLevel = num(ild, "activity_level", il.ActivityLevel)
			il.SensibleFraction = num(ild, "sensible_fraction", il.SensibleFraction)
			il.RadiantFraction = num(ild, "radiant_fraction", il.RadiantFraction)
			il.PeopleScheduleID = str(ild, "people_schedule_id", "")
			il.LightingPowerDensity = num(ild, "lighting_power_density", il.LightingPowerDensity)
			il.LightingRadiantFraction = num(ild, "lighting_radiant_fraction", il.LightingRadiantFraction)
			il.LightingVisibleFraction = num(ild, "lighting_visible_fraction", il.LightingVisibleFraction)
			il.LightingScheduleID = str(ild, "lighting_schedule_id", "")
			il.EquipmentPowerDensity = num(ild, "equipment_power_density", il.EquipmentPowerDensity)
			il.EquipmentRadiantFraction = num(ild, "equipment_radiant_fraction", il.EquipmentRadiantFraction)
			il.EquipmentLatentFraction = num(ild, "equipment_latent_fraction", il.EquipmentLatentFraction)
			il.EquipmentScheduleID = str(ild, "equipment_schedule_id", "")
			sp.InternalLoad = il
		}
		if ifd, ok := sd["infiltration"].(map[string]interface{}); ok {
			inf := NewInfiltration()
			inf.Method = InfiltrationMethodFromString(str(ifd, "method", "air_changes"))
			inf.AirChangesPerHour = num(ifd, "air_changes_per_hour", inf.AirChangesPerHour)
			inf.FlowPerExteriorArea = num(ifd, "flow_per_exterior_area", inf.FlowPerExteriorArea)
			inf.FlowPerZone = num(ifd, "flow_per_zone", inf.FlowPerZone)
			inf.ScheduleID = str(ifd, "schedule_id", "")
			sp.Infiltration = inf
		}
		if vd, ok := sd["ventilation"].(map[string]interface{}); ok {
			v := NewVentilation()
			v.OutdoorAirPerPerson = num(vd, "outdoor_air_per_person", v.OutdoorAirPerPerson)
			v.OutdoorAirPerArea = num(vd, "outdoor_air_per_area", v.OutdoorAirPerArea)
			v.TotalOutdoorAir = num(vd, "total_outdoor_air", 0)
			v.ScheduleID = str(vd, "schedule_id", "")
			v.HeatRecoveryEffectiveness = num(vd, "heat_recovery_effectiveness", 0)
			v.SensibleEffectiveness = num(vd, "sensible_effectiveness", 0)
			v.LatentEffectiveness = num(vd, "latent_effectiveness", 0)
			sp.Ventilation = v
		}
		b.Spaces = append(b.Spaces, *sp)
	}

	for _, zv := range list(d, "zones") {
		zd := zv.(map[string]interface{})
		z := NewZone(str(zd, "id", ""), str(zd, "name", ""))
		z.SpaceIDs = strList(zd, "space_ids")
		z.CoolingSetpoint = num(zd, "cooling_setpoint", 0)
		z.HeatingSetpoint = num(zd, "heating_setpoint", 0)
		z.HumiditySetpoint = num(zd, "humidity_setpoint", 0)
		z.CoolingSizingFactor = num(zd, "cooling_sizing_factor", z.CoolingSizingFactor)
		z.HeatingSizingFactor = num(zd, "heating_sizing_factor", z.HeatingSizingFactor)
		z.SystemID = str(zd, "system_id", "")
		b.Zones = append(b.Zones, *z)
	}

	for _, sv := range list(d, "systems") {
		sysd := sv.(map[string]interface{})
		sys := NewSystem(str(sysd, "id", ""), str(sysd, "name", ""))
		sys.ZoneIDs = strList(sysd, "zone_ids")
		sys.Type = str(sysd, "system_type", sys.Type)
		sys.CoolingSupplyAirTemp = num(sysd, "cooling_supply_air_temp", sys.CoolingSupplyAirTemp)
		sys.HeatingSupplyAirTemp = num(sysd, "heating_supply_air_temp", sys.HeatingSupplyAirTemp)
		sys.SupplyAirHumidity = num(sysd, "supply_air_humidity", sys.SupplyAirHumidity)
		sys.FanEfficiency = num(sysd, "fan_efficiency", sys.FanEfficiency)
		sys.FanPressureRise = num(sysd, "fan_pressure_rise", sys.FanPressureRise)
		sys.FanMotorEfficiency = num(sysd, "fan_motor_efficiency", sys.FanMotorEfficiency)
		sys.FanMotorInAirstream = boolField(sysd, "fan_motor_in_airstream", sys.FanMotorInAirstream)
		sys.SizingMethod = str(sysd, "sizing_method", sys.SizingMethod)
		sys.CoolingSizingFactor = num(sysd, "cooling_sizing_factor", sys.CoolingSizingFactor)
		sys.HeatingSizingFactor = num(sysd, "heating_sizing_factor", sys.HeatingSizingFactor)
		sys.PlantLoopID = str(sysd, "plant_loop_id", "")
		b.Systems = append(b.Systems, *sys)
	}

	for _, pv := range list(d, "plants") {
		pd := pv.(map[string]interface{})
		pl := NewPlant(str(pd, "id", ""), str(pd, "name", ""))
		pl.SystemIDs = strList(pd, "system_ids")
		pl.ChillerType = str(pd, "chiller_type", "")
		pl.ChillerCOP = num(pd, "chiller_cop", pl.ChillerCOP)
		pl.ChilledWaterTemp = num(pd, "chilled_water_temp", pl.ChilledWaterTemp)
		pl.BoilerType = str(pd, "boiler_type", "")
		pl.BoilerEfficiency = num(pd, "boiler_efficiency", pl.BoilerEfficiency)
		pl.HotWaterTemp = num(pd, "hot_water_temp", pl.HotWaterTemp)
		pl.TowerType = str(pd, "tower_type", "")
		pl.TowerApproach = num(pd, "tower_approach", pl.TowerApproach)
		pl.CHWPumpHead = num(pd, "chw_pump_head", pl.CHWPumpHead)
		pl.HWPumpHead = num(pd, "hw_pump_head", pl.HWPumpHead)
		pl.CWPumpHead = num(pd, "cw_pump_head", pl.CWPumpHead)
		pl.PumpEfficiency = num(pd, "pump_efficiency", pl.PumpEfficiency)
		pl.CoolingSizingFactor = num(pd, "cooling_sizing_factor", pl.CoolingSizingFactor)
		pl.HeatingSizingFactor = num(pd, "heating_sizing_factor", pl.HeatingSizingFactor)
		b.Plants = append(b.Plants, *pl)
	}

	if wd, ok := d["weather"].(map[string]interface{}); ok {
		b.Weather = createWeather(wd)
	}
	b.Orientation = num(d, "orientation", 0)

	return b, nil
}

func createWeather(wd map[string]interface{}) *WeatherData {
	w := DefaultWeather()
	w.City = str(wd, "city", "")
	w.State = str(wd, "state", "")
	w.Country = str(wd, "country", "")
	w.Latitude = num(wd, "latitude", 0)
	w.Longitude = num(wd, "longitude", 0)
	w.Elevation = num(wd, "elevation", 0)
	w.Timezone = num(wd, "timezone", 0)
	w.CoolingDB004 = num(wd, "cooling_db_004", w.CoolingDB004)
	w.CoolingWB004 = num(wd, "cooling_wb_004", w.CoolingWB004)
	w.CoolingDP004 = num(wd, "cooling_dp_004", w.CoolingDP004)
	w.HeatingDB996 = num(wd, "heating_db_996", w.HeatingDB996)
	w.HeatingWind996 = num(wd, "heating_wind_996", w.HeatingWind996)

	if days := list(wd, "cooling_design_days"); len(days) > 0 {
		w.CoolingDesignDays = nil
		for _, dv := range days {
			w.CoolingDesignDays = append(w.CoolingDesignDays, createDesignDay(dv.(map[string]interface{}), DefaultCoolingDesignDay()))
		}
	}
	if days := list(wd, "heating_design_days"); len(days) > 0 {
		w.HeatingDesignDays = nil
		for _, dv := range days {
			w.HeatingDesignDays = append(w.HeatingDesignDays, createDesignDay(dv.(map[string]interface{}), DefaultHeatingDesignDay()))
		}
	}
	return w
}

func createDesignDay(dd map[string]interface{}, def DesignDay) DesignDay {
	def.DayType = str(dd, "day_type", def.DayType)
	def.Month = int(num(dd, "month", float64(def.Month)))
	def.Day = int(num(dd, "day", float64(def.Day)))
	def.DryBulbMax = num(dd, "dry_bulb_max", def.DryBulbMax)
	def.DryBulbMin = num(dd, "dry_bulb_min", def.DryBulbMin)
	def.DailyRange = num(dd, "daily_range", def.DailyRange)
	def.DryBulbRangeModifier = str(dd, "dry_bulb_range_modifier", def.DryBulbRangeModifier)
	def.WetBulbCoincident = num(dd, "wet_bulb_coincident", def.WetBulbCoincident)
	def.HumidityType = str(dd, "humidity_type", def.HumidityType)
	def.HumidityValue = num(dd, "humidity_value", def.HumidityValue)
	def.Clearness = num(dd, "clearness", def.Clearness)
	def.SolarModel = str(dd, "solar_model", def.SolarModel)
	def.WindSpeed = num(dd, "wind_speed", def.WindSpeed)
	def.WindDirection = num(dd, "wind_direction", def.WindDirection)
	def.BarometricPressure = num(dd, "barometric_pressure", def.BarometricPressure)
	return def
}

func fillArray(dst *[24]float64, src []interface{}) {
	if len(src) != 24 {
		return
	}
	for i, v := range src {
		if f, ok := v.(float64); ok {
			dst[i] = f
		}
	}
}
