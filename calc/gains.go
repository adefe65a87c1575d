package calc

import "ashraeload/model"

// internalGains returns people-sensible, people-latent, lighting and
// equipment heat gain at hour h, grounded on calculator.py's
// _calculate_hourly_loads internal-load branch plus its
// _get_default_internal_loads fallback table.
func internalGains(space *model.Space, b *model.Building, h int) (peopleSensible, peopleLatent, lighting, equipment float64) {
	il := space.InternalLoad
	if il == nil {
		d := model.LookupInternalLoadDefaults(space.Type)
		sched := model.TypicalScheduleValue(h)
		return d.PeopleSensible * space.FloorArea * sched,
			d.PeopleLatent * space.FloorArea * sched,
			d.Lighting * space.FloorArea * sched,
			d.Equipment * space.FloorArea * sched
	}

	people := il.PeopleCount
	if people == 0 {
		people = il.PeoplePerArea * space.FloorArea
	}
	peopleSched := scheduleValue(b, il.PeopleScheduleID, h)
	peopleTotal := people * il.ActivityLevel * peopleSched
	peopleSensible = peopleTotal * il.SensibleFraction
	peopleLatent = peopleTotal * (1 - il.SensibleFraction)

	lightSched := scheduleValue(b, il.LightingScheduleID, h)
	lighting = il.LightingPowerDensity * space.FloorArea * lightSched

	equipSched := scheduleValue(b, il.EquipmentScheduleID, h)
	equipment = il.EquipmentPowerDensity * space.FloorArea * equipSched * (1 - il.EquipmentLatentFraction)

	return
}

// scheduleValue looks up scheduleID in the building's schedule library,
// falling back to the typical-office profile when the space has no
// explicit schedule assigned — the same fallback internalGains uses for a
// space with no InternalLoad at all.
func scheduleValue(b *model.Building, scheduleID string, h int) float64 {
	if scheduleID == "" {
		return model.TypicalScheduleValue(h)
	}
	sch, ok := b.Schedules[scheduleID]
	if !ok {
		return model.TypicalScheduleValue(h)
	}
	return sch.GetValue(h, model.Weekday)
}

// infiltrationLoad returns sensible and latent infiltration gain/loss at
// the given indoor/outdoor condition. Grounded on calculator.py's
// infiltration branch: the latent term always uses the fixed 2500 kJ/kg-style placeholder humidity-ratio
// difference (0.005) spec.md documents as an intentionally unresolved
// simplification; the hour parameter is accepted but unused (infiltration
// flow has no schedule of its own in the steady air-changes model) except
// to keep the call shape uniform with ventilationLoad.
func infiltrationLoad(space *model.Space, outdoorTemp, indoorTemp float64, _ int) (sensible, latent float64) {
	flow := infiltrationFlow(space)
	sensible = flow * model.RhoAir * model.CpAir * (outdoorTemp - indoorTemp)
	latent = flow * model.RhoAir * 2500 * 0.005
	return
}

func infiltrationFlow(space *model.Space) float64 {
	inf := space.Infiltration
	if inf == nil {
		return 0.3 * space.Volume / 3600
	}
	switch inf.Method {
	case model.FlowPerZone:
		return inf.FlowPerZone
	case model.FlowPerExteriorArea:
		return inf.FlowPerExteriorArea * space.ExteriorWallArea()
	default:
		return inf.AirChangesPerHour * space.Volume / 3600
	}
}

// ventilationLoad returns sensible and latent load from deliberate outdoor
// air intake, the same shape as infiltrationLoad. Grounded on
// calculator.py's ventilation branch.
func ventilationLoad(space *model.Space, outdoorTemp, indoorTemp float64, _ int) (sensible, latent float64) {
	flow := OutdoorAirflow(space)
	sensible = flow * model.RhoAir * model.CpAir * (outdoorTemp - indoorTemp)
	latent = flow * model.RhoAir * 2500 * 0.005
	return
}
