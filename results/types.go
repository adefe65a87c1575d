// Package results holds the nested result entities the calculator produces
// — one record per Space, Zone, System and Plant, rolled into a single
// ProjectLoadResult — plus their dictionary projection for JSON/report
// consumers, mirroring ashrae_engine/results.py's to_dict() methods.
package results

import "gonum.org/v1/gonum/floats"

// LoadComponent is one named contributor to a space's cooling load (e.g.
// "envelope_conduction", "people") at a single hour.
type LoadComponent struct {
	Name             string
	Sensible         float64
	Latent           float64
	TotalCooling     float64
	SensibleHeating  float64
	Description      string
}

// NewLoadComponent sets TotalCooling = Sensible + Latent when the caller
// does not supply it directly, matching the original's __post_init__.
func NewLoadComponent(name string, sensible, latent float64) LoadComponent {
	return LoadComponent{Name: name, Sensible: sensible, Latent: latent, TotalCooling: sensible + latent}
}

// HourlyLoadProfile is a space's (or roll-up's) 24-hour cooling/heating
// load curve.
type HourlyLoadProfile struct {
	Hours           [24]int
	Sensible        [24]float64
	Latent          [24]float64
	TotalCooling    [24]float64
	SensibleHeating [24]float64
	OutdoorTemp     [24]float64
}

// NewHourlyLoadProfile returns a profile with Hours preset 0..23 and
// OutdoorTemp defaulted to 20.0, matching the original dataclass default.
func NewHourlyLoadProfile() HourlyLoadProfile {
	var p HourlyLoadProfile
	for h := 0; h < 24; h++ {
		p.Hours[h] = h
		p.OutdoorTemp[h] = 20.0
	}
	return p
}

// PeakCoolingHour is the index (0-23) of the hour with maximum TotalCooling.
func (p *HourlyLoadProfile) PeakCoolingHour() int {
	return floats.MaxIdx(p.TotalCooling[:])
}

// PeakHeatingHour is the index (0-23) of the hour with maximum SensibleHeating.
func (p *HourlyLoadProfile) PeakHeatingHour() int {
	return floats.MaxIdx(p.SensibleHeating[:])
}

// PeakLoadSummary is the single-hour peak extracted from an
// HourlyLoadProfile, plus the coincident design-day bookkeeping a report
// needs (which month/day/hour the peak fell on, outdoor temp at that hour).
type PeakLoadSummary struct {
	PeakSensible         float64
	PeakLatent           float64
	PeakTotalCooling     float64
	PeakSensibleHeating  float64

	PeakCoolingMonth, PeakCoolingDay, PeakCoolingHour int
	PeakHeatingMonth, PeakHeatingDay, PeakHeatingHour int

	OutdoorTempAtCoolingPeak float64
	OutdoorTempAtHeatingPeak float64

	CoolingWPerM2 float64
	HeatingWPerM2 float64
}

// NewPeakLoadSummary applies the original's fixed defaults for the
// bookkeeping fields (cooling peak: month 7, day 21, hour 15; heating peak:
// month 1, day 21, hour 7; outdoor temps 35.0/-15.0) — these are
// overwritten with the design day's actual values once computed.
func NewPeakLoadSummary() PeakLoadSummary {
	return PeakLoadSummary{
		PeakCoolingMonth: 7, PeakCoolingDay: 21, PeakCoolingHour: 15,
		PeakHeatingMonth: 1, PeakHeatingDay: 21, PeakHeatingHour: 7,
		OutdoorTempAtCoolingPeak: 35.0, OutdoorTempAtHeatingPeak: -15.0,
	}
}

// AddHourly adds src's per-hour arrays into dst elementwise, the shared
// helper every roll-up level uses to build a combined hourly profile.
func AddHourly(dst *HourlyLoadProfile, src *HourlyLoadProfile) {
	floats.Add(dst.Sensible[:], src.Sensible[:])
	floats.Add(dst.Latent[:], src.Latent[:])
	floats.Add(dst.TotalCooling[:], src.TotalCooling[:])
	floats.Add(dst.SensibleHeating[:], src.SensibleHeating[:])
}
