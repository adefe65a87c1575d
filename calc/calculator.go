package calc

import (
	"ashraeload/model"
	"ashraeload/results"
)

// CalculateProject is the single pure-function entry point: Space -> Zone
// -> System -> Plant, sequential and synchronous, producing one
// ProjectLoadResult. Grounded on ashrae_engine/calculator.py's
// calculate_project. An empty building (zero spaces) is the one condition
// this returns as an error rather than a warning-laden result, per
// spec.md's EmptyModel contract.
func CalculateProject(p *model.Project, settings model.CalculationSettings) (*results.ProjectLoadResult, error) {
	errs := model.Validate(p)
	for _, e := range errs {
		if model.IsKind(e, model.KindEmptyModel) {
			return nil, e
		}
	}

	b := p.Building
	var warnings []string
	for _, e := range errs {
		warnings = append(warnings, e.Error())
	}

	spaceResults := make(map[string]*results.SpaceLoadResult, len(b.Spaces))
	orderedSpaceResults := make([]*results.SpaceLoadResult, 0, len(b.Spaces))
	for i := range b.Spaces {
		sr := CalculateSpaceLoads(&b.Spaces[i], b, settings)
		spaceResults[sr.SpaceID] = sr
		orderedSpaceResults = append(orderedSpaceResults, sr)
	}

	zones := effectiveZones(b)
	zoneResults := make(map[string]*results.ZoneLoadResult, len(zones))
	orderedZoneResults := make([]*results.ZoneLoadResult, 0, len(zones))
	for _, z := range zones {
		members := make([]*results.SpaceLoadResult, 0, len(z.SpaceIDs))
		for _, sid := range z.SpaceIDs {
			if sr, ok := spaceResults[sid]; ok {
				members = append(members, sr)
			}
		}
		zr := CalculateZoneLoads(&z, members)
		zoneResults[zr.ZoneID] = zr
		orderedZoneResults = append(orderedZoneResults, zr)
	}

	systems := effectiveSystems(b, zones)
	systemResults := make(map[string]*results.SystemLoadResult, len(systems))
	orderedSystemResults := make([]*results.SystemLoadResult, 0, len(systems))
	designOutdoorTemp := pickDesignDay(b.Weather, true).DryBulbMax
	for _, sys := range systems {
		members := make([]*results.ZoneLoadResult, 0, len(sys.ZoneIDs))
		for _, zid := range sys.ZoneIDs {
			if zr, ok := zoneResults[zid]; ok {
				members = append(members, zr)
			}
		}
		sr := CalculateSystemLoads(&sys, members, designOutdoorTemp, settings)
		systemResults[sr.SystemID] = sr
		orderedSystemResults = append(orderedSystemResults, sr)
	}

	plants := effectivePlants(b, systems)
	orderedPlantResults := make([]*results.PlantLoadResult, 0, len(plants))
	for _, pl := range plants {
		members := make([]*results.SystemLoadResult, 0, len(pl.SystemIDs))
		for _, sid := range pl.SystemIDs {
			if sr, ok := systemResults[sid]; ok {
				members = append(members, sr)
			}
		}
		pr := CalculatePlantLoads(&pl, members)
		orderedPlantResults = append(orderedPlantResults, pr)
	}

	var totalCooling, totalHeating float64
	for _, sr := range orderedSpaceResults {
		totalCooling += sr.PeakSummary.PeakTotalCooling
		totalHeating += sr.PeakSummary.PeakSensibleHeating
	}
	totalFloorArea := b.TotalFloorArea()
	result := &results.ProjectLoadResult{
		ProjectID: p.ID, Name: p.Name, CalculationMethod: p.CalculationMethod,
		BuildingName:   b.Name,
		TotalFloorArea: totalFloorArea, TotalVolume: b.TotalVolume(),
		NumSpaces: len(b.Spaces), NumZones: len(zones), NumSystems: len(systems),
		TotalCoolingLoad: totalCooling, TotalHeatingLoad: totalHeating,
		SpaceResults: orderedSpaceResults, ZoneResults: orderedZoneResults,
		SystemResults: orderedSystemResults, PlantResults: orderedPlantResults,
		Warnings: warnings,
	}
	if b.Weather != nil {
		result.Location = b.Weather.City
		result.Latitude, result.Longitude = b.Weather.Latitude, b.Weather.Longitude
	}
	cd := pickDesignDay(b.Weather, true)
	hd := pickDesignDay(b.Weather, false)
	result.CoolingDesignTemp, result.HeatingDesignTemp = cd.DryBulbMax, hd.DryBulbMax
	if totalFloorArea > 0 {
		result.CoolingWPerM2 = totalCooling / totalFloorArea
		result.HeatingWPerM2 = totalHeating / totalFloorArea
	}
	result.Notes = append(result.Notes,
		"total_cooling_load and total_heating_load are the sum of space peaks, "+
			"not the coincident system block; see each system result's block_cooling_w/block_heating_w for that figure.")

	return result, nil
}

// effectiveZones returns the building's explicit zones plus one synthetic
// single-space zone for every space not claimed by any explicit zone.
// When a Building has no zones at all, every space gets its own synthetic
// zone — the "no collections" path spec.md's orchestration section
// describes, generalized to a per-space basis so partially-zoned buildings
// degrade gracefully instead of losing their unzoned spaces.
func effectiveZones(b *model.Building) []model.Zone {
	claimed := map[string]bool{}
	for _, z := range b.Zones {
		for _, sid := range z.SpaceIDs {
			claimed[sid] = true
		}
	}
	zones := append([]model.Zone{}, b.Zones...)
	for _, s := range b.Spaces {
		if claimed[s.ID] {
			continue
		}
		z := model.NewZone("zone-synthetic-"+s.ID, s.Name+" (synthetic zone)")
		z.SpaceIDs = []string{s.ID}
		zones = append(zones, *z)
	}
	return zones
}

// effectiveSystems mirrors effectiveZones one level up: explicit systems
// plus a synthetic single-zone system for every zone no explicit system
// claims.
func effectiveSystems(b *model.Building, zones []model.Zone) []model.System {
	claimed := map[string]bool{}
	for _, sys := range b.Systems {
		for _, zid := range sys.ZoneIDs {
			claimed[zid] = true
		}
	}
	systems := append([]model.System{}, b.Systems...)
	for _, z := range zones {
		if claimed[z.ID] {
			continue
		}
		sys := model.NewSystem("system-synthetic-"+z.ID, z.Name+" (synthetic system)")
		sys.ZoneIDs = []string{z.ID}
		systems = append(systems, *sys)
	}
	return systems
}

// effectivePlants mirrors effectiveZones/effectiveSystems at the top of
// the stack: explicit plants plus a synthetic single-system plant for
// every system no explicit plant claims.
func effectivePlants(b *model.Building, systems []model.System) []model.Plant {
	claimed := map[string]bool{}
	for _, pl := range b.Plants {
		for _, sid := range pl.SystemIDs {
			claimed[sid] = true
		}
	}
	plants := append([]model.Plant{}, b.Plants...)
	for _, sys := range systems {
		if claimed[sys.ID] {
			continue
		}
		pl := model.NewPlant("plant-synthetic-"+sys.ID, sys.Name+" (synthetic plant)")
		pl.SystemIDs = []string{sys.ID}
		plants = append(plants, *pl)
	}
	return plants
}
