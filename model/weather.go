package model

// DesignDay is a single ASHRAE design-day description: the extreme
// dry-bulb/wet-bulb/solar condition the calculator sizes equipment against.
type DesignDay struct {
	DayType              string // "cooling" or "heating"
	Month, Day           int    // default 7/21 for cooling, 1/21 for heating
	DryBulbMax           float64
	DryBulbMin           float64
	DailyRange           float64
	DryBulbRangeModifier string // "default" selects the ASHRAE clear-day profile
	WetBulbCoincident    float64
	HumidityType         string // e.g. "wetbulb", "dewpoint", "humidity_ratio"
	HumidityValue        float64
	Clearness            float64 // default 1.0
	SolarModel           string  // default "ashrae_clear_sky"
	WindSpeed            float64 // m/s, default 4.0
	WindDirection        float64 // degrees, default 270
	BarometricPressure   float64 // Pa, default 101325
}

// DefaultCoolingDesignDay matches calculator.py's _default_cooling_design_day.
func DefaultCoolingDesignDay() DesignDay {
	return DesignDay{
		DayType: "cooling", Month: 7, Day: 21,
		DryBulbMax: 35, DryBulbMin: 24, DailyRange: 11,
		DryBulbRangeModifier: "default", WetBulbCoincident: 24,
		HumidityType: "wetbulb", HumidityValue: 24,
		Clearness: 1.0, SolarModel: "ashrae_clear_sky",
		WindSpeed: 4.0, WindDirection: 270, BarometricPressure: 101325,
	}
}

// DefaultHeatingDesignDay matches calculator.py's _default_heating_design_day.
func DefaultHeatingDesignDay() DesignDay {
	return DesignDay{
		DayType: "heating", Month: 1, Day: 21,
		DryBulbMax: -15, DryBulbMin: -15, DailyRange: 0,
		DryBulbRangeModifier: "default", WetBulbCoincident: -16,
		HumidityType: "wetbulb", HumidityValue: -16,
		Clearness: 1.0, SolarModel: "ashrae_clear_sky",
		WindSpeed: 5.0, WindDirection: 270, BarometricPressure: 101325,
	}
}

// WeatherData is the site climate record a Building calculates against.
type WeatherData struct {
	City, State, Country string
	Latitude, Longitude  float64
	Elevation            float64 // m
	Timezone             float64 // UTC offset, hours

	CoolingDesignDays []DesignDay
	HeatingDesignDays []DesignDay

	MonthlyDryBulbMean []float64 // length 12, degC; default all 20.0
	MonthlyGroundTemp  []float64 // length 12, degC; default all 10.0

	CoolingDB004, CoolingWB004, CoolingDP004 float64 // 0.4% design conditions
	HeatingDB996, HeatingWind996              float64 // 99.6% design conditions
}

// DefaultWeather matches calculator.py's _default_weather: a single cooling
// and a single heating design day, flat monthly means.
func DefaultWeather() *WeatherData {
	monthly20 := make([]float64, 12)
	monthlyGround := make([]float64, 12)
	for i := range monthly20 {
		monthly20[i] = 20.0
		monthlyGround[i] = 10.0
	}
	return &WeatherData{
		CoolingDesignDays: []DesignDay{DefaultCoolingDesignDay()},
		HeatingDesignDays: []DesignDay{DefaultHeatingDesignDay()},
		MonthlyDryBulbMean: monthly20,
		MonthlyGroundTemp:  monthlyGround,
		CoolingDB004: 35, CoolingWB004: 24, CoolingDP004: 22,
		HeatingDB996: -15, HeatingWind996: 5,
	}
}

// GroundTemp returns the ground temperature used for slab-on-grade heating
// loss in the given 1-based month, falling back to the spec's fixed 10 degC
// default when no monthly ground-temperature record is present — this
// fallback is the only path spec.md §4.3.6 actually describes.
func (w *WeatherData) GroundTemp(month int) float64 {
	if w == nil || len(w.MonthlyGroundTemp) != 12 || month < 1 || month > 12 {
		return 10.0
	}
	return w.MonthlyGroundTemp[month-1]
}
