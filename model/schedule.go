package model

// Schedule holds the three 24-hour fractional-use profiles (weekday,
// weekend, holiday) shared by internal loads, infiltration and ventilation.
// Values are not restricted to [0,1]; callers apply them as multipliers.
type Schedule struct {
	ID             string
	Name           string
	WeekdayValues  [24]float64
	WeekendValues  [24]float64
	HolidayValues  [24]float64
}

// GetValue looks up the fractional value for hour (mod 24) and day type,
// falling back to the weekday profile for any day type it does not
// recognize — mirroring the original's get_value default branch.
func (s *Schedule) GetValue(hour int, day DayType) float64 {
	h := ((hour % 24) + 24) % 24
	switch day {
	case Weekend:
		return s.WeekendValues[h]
	case Holiday:
		return s.HolidayValues[h]
	default:
		return s.WeekdayValues[h]
	}
}

// ConstantSchedule builds a Schedule whose three profiles are all identical,
// useful for an always-on load or a quick test fixture.
func ConstantSchedule(id, name string, values [24]float64) *Schedule {
	return &Schedule{ID: id, Name: name, WeekdayValues: values, WeekendValues: values, HolidayValues: values}
}
