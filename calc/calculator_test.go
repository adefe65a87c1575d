package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashraeload/model"
	"ashraeload/results"
)

func officeBoxProject(t *testing.T) *model.Project {
	t.Helper()
	b := model.NewBuilding("b1", "Test Building")

	b.Constructions["wall-c1"] = model.NewConstruction("wall-c1", "insulated wall", []model.Material{
		{ID: "ins", Conductivity: 0.02, Thickness: 0.1, Density: 40, SpecificHeat: 1400},
	})

	sp := model.NewSpace("office-1", "Office 1", model.OfficeEnclosed)
	sp.FloorArea = 100
	sp.Volume = 300
	sp.Height = 3
	for _, srf := range model.SurfacesForBox("office-1", 0, 0, 0, 10, 10, 3) {
		srf.ConstructionID = "wall-c1"
		sp.Surfaces = append(sp.Surfaces, srf)
	}

	b.Spaces = append(b.Spaces, *sp)

	weather := model.DefaultWeather()
	cd := model.DefaultCoolingDesignDay()
	cd.DryBulbMax, cd.DailyRange = 35, 11
	hd := model.DefaultHeatingDesignDay()
	hd.DryBulbMax, hd.DailyRange = -15, 0
	weather.CoolingDesignDays = []model.DesignDay{cd}
	weather.HeatingDesignDays = []model.DesignDay{hd}
	b.Weather = weather

	return model.NewProject("p1", "Test Project", b)
}

func TestScenario1OfficeBoxLoadsWithinExpectedRange(t *testing.T) {
	p := officeBoxProject(t)
	settings := model.DefaultCalculationSettings()

	result, err := CalculateProject(p, settings)
	require.NoError(t, err)
	require.Len(t, result.SpaceResults, 1)

	sr := result.SpaceResults[0]
	peak := sr.PeakSummary

	assert.GreaterOrEqual(t, peak.PeakCoolingHour, 13)
	assert.LessOrEqual(t, peak.PeakCoolingHour, 17)
	assert.GreaterOrEqual(t, peak.PeakTotalCooling, 3000.0)
	assert.LessOrEqual(t, peak.PeakTotalCooling, 9000.0)
	assert.GreaterOrEqual(t, peak.PeakSensibleHeating, 2000.0)
	assert.LessOrEqual(t, peak.PeakSensibleHeating, 6000.0)
}

func TestSizeEquipmentChillerExactBoundary(t *testing.T) {
	capacityW := 600 * 3517.0
	count, each := sizeEquipment(capacityW, maxChillerSizeW, stepChillerSizeW)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 300*3517.0, each, 1e-6)
}

func TestSizeEquipmentBelowThresholdUsesStepSizing(t *testing.T) {
	// 150 tons stays below the 500-ton break point, so count comes from
	// the 200-ton step: ceil(150/200) = 1.
	count, each := sizeEquipment(150*3517.0, maxChillerSizeW, stepChillerSizeW)
	assert.Equal(t, 1, count)
	assert.InDelta(t, 150*3517.0, each, 1e-6)
}

func TestZoneRollupPeakIsMaxOfCombinedHourlyProfileNotSumOfSpacePeaks(t *testing.T) {
	z := model.NewZone("z1", "zone")
	z.SpaceIDs = []string{"a", "b"}

	spaceA := results.SpaceLoadResult{SpaceID: "a", CoolingDesignDayProfile: results.NewHourlyLoadProfile()}
	spaceB := results.SpaceLoadResult{SpaceID: "b", CoolingDesignDayProfile: results.NewHourlyLoadProfile()}
	spaceA.HeatingDesignDayProfile = results.NewHourlyLoadProfile()
	spaceB.HeatingDesignDayProfile = results.NewHourlyLoadProfile()

	// space a peaks at hour 10, space b peaks at hour 16; at neither hour
	// do both peak simultaneously, so the zone peak (max of the summed
	// profile) must be less than the naive sum of the two space peaks.
	spaceA.CoolingDesignDayProfile.TotalCooling[10] = 1000
	spaceB.CoolingDesignDayProfile.TotalCooling[16] = 1000
	spaceA.PeakSummary.PeakTotalCooling = 1000
	spaceB.PeakSummary.PeakTotalCooling = 1000

	zr := CalculateZoneLoads(z, []*results.SpaceLoadResult{&spaceA, &spaceB})

	assert.Less(t, zr.PeakSummary.PeakTotalCooling, 2000.0)
	assert.Equal(t, 1000.0, zr.PeakSummary.PeakTotalCooling)
}
