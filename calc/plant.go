package calc

import (
	"math"

	"ashraeload/model"
	"ashraeload/results"
)

const (
	chwDeltaT = 5.5
	hwDeltaT  = 11.0
	cwDeltaT  = 5.5

	maxChillerSizeW = 500 * 3517.0
	stepChillerSizeW = 200 * 3517.0
	maxBoilerSizeW = 3000000.0
	stepBoilerSizeW = 500000.0
)

// CalculatePlantLoads rolls up member system results into central-plant
// sizing: chiller/boiler/tower load and capacity, equipment count, flow
// rates and pump power. Grounded on
// ashrae_engine/calculator.py's _calculate_plant_loads.
func CalculatePlantLoads(plant *model.Plant, systemResults []*results.SystemLoadResult) *results.PlantLoadResult {
	r := results.NewPlantLoadResult()
	r.PlantID, r.Name = plant.ID, plant.Name
	r.SystemResults = systemResults

	var coolingCoilTotal, heatingAndReheat float64
	for _, sr := range systemResults {
		r.TotalFloorArea += sr.TotalFloorArea
		coolingCoilTotal += sr.CoolingCoilTotal
		heatingAndReheat += sr.HeatingCoilLoad + sr.ReheatCoilLoad
	}

	r.TotalChillerLoad = coolingCoilTotal * 1.05
	r.TotalBoilerLoad = heatingAndReheat * 1.05

	compressorHeat := 0.0
	if plant.ChillerCOP > 0 {
		compressorHeat = r.TotalChillerLoad / plant.ChillerCOP
	}
	r.TotalCoolingTowerLoad = r.TotalChillerLoad + compressorHeat

	r.ChillerCapacity = r.TotalChillerLoad * plant.CoolingSizingFactor
	r.BoilerCapacity = r.TotalBoilerLoad * plant.HeatingSizingFactor
	r.CoolingTowerCapacity = r.TotalCoolingTowerLoad * plant.CoolingSizingFactor

	r.NumChillersRecommended, r.ChillerSizeEach = sizeEquipment(r.ChillerCapacity, maxChillerSizeW, stepChillerSizeW)
	r.NumBoilersRecommended, r.BoilerSizeEach = sizeEquipment(r.BoilerCapacity, maxBoilerSizeW, stepBoilerSizeW)

	r.CHWFlowRate = waterFlowLs(r.TotalChillerLoad, chwDeltaT)
	r.HWFlowRate = waterFlowLs(r.TotalBoilerLoad, hwDeltaT)
	r.CWFlowRate = waterFlowLs(r.TotalCoolingTowerLoad, cwDeltaT)

	r.CHWPumpPower = PumpPower(r.CHWFlowRate, plant.CHWPumpHead, plant.PumpEfficiency)
	r.HWPumpPower = PumpPower(r.HWFlowRate, plant.HWPumpHead, plant.PumpEfficiency)
	r.CWPumpPower = PumpPower(r.CWFlowRate, plant.CWPumpHead, plant.PumpEfficiency)

	if plant.ChillerCOP > 0 {
		r.ChillerEnergyInput = r.TotalChillerLoad / plant.ChillerCOP
	}
	if plant.BoilerEfficiency > 0 {
		r.BoilerEnergyInput = r.TotalBoilerLoad / plant.BoilerEfficiency
	}

	// Supplement: the original leaves cooling-tower fan power at zero;
	// this uses a typical 1.5% of tower load specific fan power instead.
	r.CoolingTowerFanPower = r.TotalCoolingTowerLoad * 0.015

	return r
}

// sizeEquipment picks a chiller/boiler count and per-unit size: above
// maxSize, one unit per maxSize increment; at or below, at least one unit
// sized by stepSize increments. Grounded on calculator.py's chiller/boiler
// count logic (500-ton / 200-ton and 3000-kW / 500-kW thresholds).
func sizeEquipment(capacity, maxSize, stepSize float64) (count int, sizeEach float64) {
	if capacity <= 0 {
		return 1, 0
	}
	if capacity > maxSize {
		count = int(math.Ceil(capacity / maxSize))
	} else {
		count = int(math.Ceil(capacity / stepSize))
		if count < 1 {
			count = 1
		}
	}
	return count, capacity / float64(count)
}

// waterFlowLs is the chilled/hot/condenser water flow rate needed to carry
// loadW across deltaT (K), in L/s.
func waterFlowLs(loadW, deltaT float64) float64 {
	return loadW / (model.RhoWater * model.CpWater * deltaT) * 1000
}
