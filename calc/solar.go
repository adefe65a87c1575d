// Package calc implements the ASHRAE heat-balance design-day load
// calculation: sol-air temperature, hourly cooling components, steady-state
// heating, and the Space -> Zone -> System -> Plant roll-up.
package calc

import "math"

// SolAirTemp is the sol-air temperature of an opaque exterior surface at a
// given outdoor dry-bulb temperature and incident solar intensity.
// alpha (solar absorptance) defaults differently for roofs (0.7) and walls
// (0.6); deltaR (longwave sky-radiation correction) is 4.0 for tilt < 45
// degrees and 0.0 otherwise — note tilt exactly 45 lands on the "otherwise"
// branch, matching the original's elif split.
func SolAirTemp(outdoorTemp, solarIntensity float64, isRoof bool, tilt float64) float64 {
	alpha := 0.6
	if isRoof {
		alpha = 0.7
	}
	const hOut = 22.7
	deltaR := 0.0
	if tilt < 45 {
		deltaR = 4.0
	}
	return outdoorTemp + alpha*solarIntensity/hOut - deltaR
}

// SolarOnSurface is the simplified clear-sky solar irradiance incident on
// an opaque surface of the given tilt/azimuth at the given hour, used to
// drive SolAirTemp. Zero outside hours 6-18. Grounded on
// calculator.py's _get_solar_on_surface.
func SolarOnSurface(hour int, tilt, azimuth, clearness float64) float64 {
	if hour < 6 || hour > 18 {
		return 0
	}
	hourAngle := math.Abs(float64(hour)-12) * 15
	solarAltitude := 90 - hourAngle*0.7
	if solarAltitude <= 0 {
		return 0
	}
	dni := 800 * math.Cos(deg2rad(hourAngle)) * clearness

	var factor float64
	switch {
	case tilt == 0:
		factor = math.Sin(deg2rad(solarAltitude))
	case tilt == 90:
		sunAzimuth := 180 + (float64(hour)-12)*15
		angleDiff := math.Abs(azimuth - sunAzimuth)
		if angleDiff > 180 {
			angleDiff = 360 - angleDiff
		}
		if angleDiff > 90 {
			factor = 0.1
		} else {
			factor = math.Cos(deg2rad(angleDiff)) * 0.7
		}
	default:
		factor = 0.5
	}

	result := dni * factor
	if result < 0 {
		return 0
	}
	return result
}

// SolarIntensity is the simplified global-horizontal clear-sky irradiance
// at the given hour, used only for window_solar gain — a distinct, simpler
// function from SolarOnSurface, grounded on calculator.py's
// _get_solar_intensity (note: it applies *15 inside the cosine, unlike
// SolarOnSurface's DNI term which applies *15 before the cosine call —
// both functions are preserved exactly as the original computes them).
func SolarIntensity(hour int, clearness float64) float64 {
	if hour < 6 || hour > 18 {
		return 0
	}
	hourAngle := math.Abs(float64(hour) - 12)
	intensity := 800 * math.Cos(deg2rad(hourAngle*15)) * clearness
	if intensity < 0 {
		return 0
	}
	return intensity
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
