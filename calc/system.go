package calc

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"ashraeload/model"
	"ashraeload/results"
)

// CalculateSystemLoads rolls up member zone results into the coincident
// block load an air-handling unit is sized against, plus its coil, fan and
// mixed-air-temperature sizing. Grounded on
// ashrae_engine/calculator.py's _calculate_system_loads.
func CalculateSystemLoads(system *model.System, zoneResults []*results.ZoneLoadResult, designOutdoorTemp float64, settings model.CalculationSettings) *results.SystemLoadResult {
	r := results.NewSystemLoadResult()
	r.SystemID, r.Name, r.Type = system.ID, system.Name, system.Type
	r.ZoneResults = zoneResults
	r.SupplyAirTemp = system.CoolingSupplyAirTemp

	hourlyTotalsCooling := [24]float64{}
	hourlyTotalsHeating := [24]float64{}
	var sumZoneSensible, sumZoneLatent float64

	for _, zr := range zoneResults {
		r.TotalFloorArea += zr.TotalFloorArea
		r.SumZoneCooling += zr.SizedCoolingLoad
		r.SumZoneHeating += zr.SizedHeatingLoad
		r.TotalSupplyAirflow += zr.ZoneSupplyAirflow
		r.TotalOutdoorAirflow += zr.ZoneOutdoorAirflow
		sumZoneSensible += zr.PeakSummary.PeakSensible
		sumZoneLatent += zr.PeakSummary.PeakLatent
		floats.Add(hourlyTotalsCooling[:], zr.HourlyProfile.TotalCooling[:])
		floats.Add(hourlyTotalsHeating[:], zr.HourlyProfile.SensibleHeating[:])
	}
	r.TotalReturnAirflow = r.TotalSupplyAirflow - r.TotalOutdoorAirflow
	if r.TotalReturnAirflow < 0 {
		r.TotalReturnAirflow = 0
	}

	r.BlockCoolingTotal = floats.Max(hourlyTotalsCooling[:])
	r.BlockHeating = floats.Max(hourlyTotalsHeating[:])

	sensibleRatio := 0.5
	if sumZoneSensible+sumZoneLatent > 0 {
		sensibleRatio = sumZoneSensible / (sumZoneSensible + sumZoneLatent)
	}
	r.BlockCoolingSensible = r.BlockCoolingTotal * sensibleRatio
	r.BlockCoolingLatent = r.BlockCoolingTotal * (1 - sensibleRatio)

	if r.SumZoneCooling > 0 {
		r.CoolingDiversityFactor = r.BlockCoolingTotal / r.SumZoneCooling
	}
	if r.SumZoneHeating > 0 {
		r.HeatingDiversityFactor = r.BlockHeating / r.SumZoneHeating
	}

	r.SizedCoolingCapacity = r.BlockCoolingTotal * system.CoolingSizingFactor
	r.SizedHeatingCapacity = r.BlockHeating * system.HeatingSizingFactor

	returnAirTemp := settings.IndoorCoolingTemp
	r.MixedAirTemp = MixedAirTemp(designOutdoorTemp, returnAirTemp, r.TotalOutdoorAirflow, r.TotalSupplyAirflow)
	r.CoolingCoilSensible = r.TotalSupplyAirflow * model.RhoAir * model.CpAir * (r.MixedAirTemp - system.CoolingSupplyAirTemp)
	r.CoolingCoilLatent = r.BlockCoolingLatent * 1.2
	r.CoolingCoilTotal = r.CoolingCoilSensible + r.CoolingCoilLatent

	// 1.1 here is a fixed ventilation surcharge on the heating coil, distinct
	// from system.HeatingSizingFactor (applied above to SizedHeatingCapacity).
	r.HeatingCoilLoad = r.BlockHeating * 1.1

	if strings.ToLower(system.Type) == "vav" {
		r.ReheatCoilLoad = r.BlockCoolingSensible * 0.2
	}

	r.SupplyFanPower = FanPower(r.TotalSupplyAirflow, system.FanPressureRise, system.FanEfficiency, system.FanMotorEfficiency)

	return r
}
