package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoadComponentSetsTotalCooling(t *testing.T) {
	c := NewLoadComponent("people", 100, 20)
	assert.Equal(t, 120.0, c.TotalCooling)
}

func TestHourlyLoadProfilePeakHour(t *testing.T) {
	p := NewHourlyLoadProfile()
	p.TotalCooling[14] = 5000
	p.TotalCooling[15] = 7200
	p.SensibleHeating[6] = 3000
	assert.Equal(t, 15, p.PeakCoolingHour())
	assert.Equal(t, 6, p.PeakHeatingHour())
}

func TestAddHourlyAccumulates(t *testing.T) {
	dst := NewHourlyLoadProfile()
	src := NewHourlyLoadProfile()
	src.Sensible[3] = 10
	dst.Sensible[3] = 5
	AddHourly(&dst, &src)
	assert.Equal(t, 15.0, dst.Sensible[3])
}

func TestSpaceLoadResultToDictHasUnitSuffixedFields(t *testing.T) {
	r := &SpaceLoadResult{
		SpaceID: "s1", Name: "Office",
		PeakSummary: NewPeakLoadSummary(),
		Components:  map[string]LoadComponent{"people": NewLoadComponent("people", 50, 10)},
	}
	r.PeakSummary.PeakTotalCooling = 3517
	d := r.ToDict()
	peak := d["peak_cooling"].(map[string]interface{})
	assert.InDelta(t, 1.0, peak["total_tons"].(float64), 1e-6)
}

func TestPlantLoadResultToDictConvertsTons(t *testing.T) {
	r := NewPlantLoadResult()
	r.ChillerCapacity = wPerTon * 600
	d := r.ToDict()
	chiller := d["chiller"].(map[string]interface{})
	assert.InDelta(t, 600.0, chiller["capacity_tons"].(float64), 1e-6)
}
