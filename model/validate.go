package model

import "fmt"

// Validate checks the structural invariants spec.md's data model section
// requires before a Project is handed to the calculator. It does not
// mutate p; callers decide whether to abort or proceed with warnings.
func Validate(p *Project) []error {
	var errs []error
	if p == nil || p.Building == nil {
		return []error{NewError(KindInvalidInput, "project has no building")}
	}
	b := p.Building

	if len(b.Spaces) == 0 {
		errs = append(errs, NewError(KindEmptyModel, "building %q has no spaces", b.ID))
	}

	for _, s := range b.Spaces {
		if s.HeatingSetpoint > s.CoolingSetpoint {
			errs = append(errs, NewError(KindInvalidInput,
				"space %q: heating setpoint %.1f exceeds cooling setpoint %.1f", s.ID, s.HeatingSetpoint, s.CoolingSetpoint))
		}
		if s.FloorArea < 0 || s.Volume < 0 {
			errs = append(errs, NewError(KindInvalidInput, "space %q: negative floor area or volume", s.ID))
		}
		for _, srf := range s.Surfaces {
			if srf.ConstructionID == "" {
				continue
			}
			c, ok := b.Constructions[srf.ConstructionID]
			if !ok {
				errs = append(errs, NewError(KindInvalidInput, "surface %q: construction %q not found", srf.ID, srf.ConstructionID))
				continue
			}
			if c.TotalResistance() <= 0 {
				errs = append(errs, NewError(KindInvalidInput, "construction %q: total resistance must be positive", c.ID))
			}
		}
		for _, f := range s.Fenestrations {
			if f.GlazingID == "" {
				continue
			}
			if _, ok := b.Glazings[f.GlazingID]; !ok {
				errs = append(errs, NewError(KindInvalidInput, "fenestration %q: glazing %q not found", f.ID, f.GlazingID))
			}
		}
	}

	for id, sch := range b.Schedules {
		if len(sch.WeekdayValues) != 24 || len(sch.WeekendValues) != 24 || len(sch.HolidayValues) != 24 {
			errs = append(errs, NewError(KindInvalidInput, "schedule %q: profile arrays must have length 24", id))
		}
	}

	// Every ID referenced from a Zone/System/Plant must resolve, forming a
	// strict forest with no cycles (spec.md's cross-link invariant).
	for _, z := range b.Zones {
		for _, sid := range z.SpaceIDs {
			if b.SpaceByID(sid) == nil {
				errs = append(errs, NewError(KindInvalidInput, "zone %q references unknown space %q", z.ID, sid))
			}
		}
	}
	for _, sys := range b.Systems {
		for _, zid := range sys.ZoneIDs {
			if b.ZoneByID(zid) == nil {
				errs = append(errs, NewError(KindInvalidInput, "system %q references unknown zone %q", sys.ID, zid))
			}
		}
	}
	for _, pl := range b.Plants {
		for _, sid := range pl.SystemIDs {
			if b.SystemByID(sid) == nil {
				errs = append(errs, NewError(KindInvalidInput, "plant %q references unknown system %q", pl.ID, sid))
			}
		}
	}

	return errs
}

// ErrorsString joins Validate's output for a single-line log message.
func ErrorsString(errs []error) string {
	s := ""
	for i, e := range errs {
		if i > 0 {
			s += "; "
		}
		s += fmt.Sprint(e)
	}
	return s
}
