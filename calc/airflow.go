package calc

import (
	"math"

	"ashraeload/model"
)

// SupplyAirflow sizes the volumetric flow needed to carry sensibleLoad
// across the gap between room and supply temperature, clamping the
// temperature difference to at least 1 K so a room-equals-supply
// configuration never divides by zero. Grounded on calculator.py's
// _calculate_supply_airflow: mass_flow = sensibleLoad/(cp*deltaT), then
// volume_flow = mass_flow/RHO_AIR. spec.md's own worked scenario 1 states
// V = Q/(cp*|deltaT|) with no density term, which would put this off by a
// factor of RhoAir from that worked example; the original's formula is
// followed here as the ground truth since calculator.py is the
// implementation spec.md itself was distilled from.
func SupplyAirflow(sensibleLoad, roomTemp, supplyTemp float64) float64 {
	deltaT := math.Max(math.Abs(roomTemp-supplyTemp), 1)
	massFlow := sensibleLoad / (model.CpAir * deltaT)
	return massFlow / model.RhoAir
}

// OutdoorAirflow is the ASHRAE 62.1-style ventilation rate for a space:
// an explicit Ventilation.TotalOutdoorAir override if set, otherwise
// rate-per-person times occupancy plus rate-per-area times floor area.
// People defaults to floor_area/10 when the space has no InternalLoad,
// matching calculator.py's _calculate_outdoor_air.
func OutdoorAirflow(space *model.Space) float64 {
	if space.Ventilation != nil && space.Ventilation.TotalOutdoorAir > 0 {
		return space.Ventilation.TotalOutdoorAir
	}

	var people float64
	if space.InternalLoad != nil {
		if space.InternalLoad.PeopleCount > 0 {
			people = space.InternalLoad.PeopleCount
		} else {
			people = space.InternalLoad.PeoplePerArea * space.FloorArea
		}
	} else {
		people = space.FloorArea / 10
	}

	ratePerPerson, ratePerArea := 0.0025, 0.0003
	if space.Ventilation != nil {
		ratePerPerson, ratePerArea = space.Ventilation.OutdoorAirPerPerson, space.Ventilation.OutdoorAirPerArea
	}
	return ratePerPerson*people + ratePerArea*space.FloorArea
}

// MixedAirTemp blends outdoor and return air by outdoor-air fraction,
// clamped to [0,1] and returning the return temperature outright when
// totalFlow is non-positive (guards the division, matches
// calculator.py's _calculate_mixed_air_temp).
func MixedAirTemp(outdoorTemp, returnTemp, outdoorFlow, totalFlow float64) float64 {
	if totalFlow <= 0 {
		return returnTemp
	}
	frac := outdoorFlow / totalFlow
	frac = math.Max(0, math.Min(1, frac))
	return frac*outdoorTemp + (1-frac)*returnTemp
}

// FanPower is the shaft power to move flow (m3/s) across pressureRise
// (Pa) at the given fan and motor efficiencies, zero if either efficiency
// is non-positive (guards the division).
func FanPower(flow, pressureRise, fanEfficiency, motorEfficiency float64) float64 {
	if fanEfficiency <= 0 || motorEfficiency <= 0 {
		return 0
	}
	return flow * pressureRise / (fanEfficiency * motorEfficiency)
}

// PumpPower is the shaft power to move flow (L/s) against headKPa at the
// given pump efficiency, zero if efficiency is non-positive.
func PumpPower(flowLs, headKPa, efficiency float64) float64 {
	if efficiency <= 0 {
		return 0
	}
	flowM3s := flowLs / 1000
	headM := headKPa / model.Gravity
	return model.RhoWater * model.Gravity * flowM3s * headM / efficiency
}
