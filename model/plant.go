package model

// Plant groups Systems served by one set of central chillers/boilers/towers.
type Plant struct {
	ID        string
	Name      string
	SystemIDs []string

	ChillerType string
	ChillerCOP  float64 // default 6.0
	ChilledWaterTemp float64 // degC, default 7.0

	BoilerType       string
	BoilerEfficiency float64 // default 0.85
	HotWaterTemp     float64 // degC, default 82.0

	TowerType     string
	TowerApproach float64 // K, default 4.0

	CHWPumpHead float64 // kPa, default 150
	HWPumpHead  float64 // kPa, default 100
	CWPumpHead  float64 // kPa, default 200
	PumpEfficiency float64 // default 0.7

	CoolingSizingFactor float64 // default 1.1
	HeatingSizingFactor float64 // default 1.1
}

// NewPlant applies the original model's defaults verbatim.
func NewPlant(id, name string) *Plant {
	return &Plant{
		ID: id, Name: name,
		ChillerCOP: 6.0, ChilledWaterTemp: 7.0,
		BoilerEfficiency: 0.85, HotWaterTemp: 82.0,
		TowerApproach: 4.0,
		CHWPumpHead: 150, HWPumpHead: 100, CWPumpHead: 200, PumpEfficiency: 0.7,
		CoolingSizingFactor: 1.1, HeatingSizingFactor: 1.1,
	}
}
