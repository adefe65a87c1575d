package model

// Glazing is a window/skylight glass-and-frame assembly spec, shared by any
// number of Fenestration instances.
type Glazing struct {
	ID                       string
	Name                     string
	Type                     GlazingType
	UValue                   float64 // center-of-glass, W/m2-K
	SHGC                     float64 // solar heat gain coefficient
	VT                       float64 // visible transmittance
	FrameUValue              float64 // W/m2-K
	FrameFraction            float64 // fraction of assembly area that is frame
	InteriorShadeMultiplier  float64
	ExteriorShadeMultiplier  float64
}

// NewGlazing applies the original model's defaults: u_value=2.8, shgc=0.7,
// vt=0.75, frame_u_value=3.5, frame_fraction=0.15, both shade multipliers=1.
func NewGlazing(id, name string, typ GlazingType) *Glazing {
	return &Glazing{
		ID: id, Name: name, Type: typ,
		UValue: 2.8, SHGC: 0.7, VT: 0.75,
		FrameUValue: 3.5, FrameFraction: 0.15,
		InteriorShadeMultiplier: 1.0, ExteriorShadeMultiplier: 1.0,
	}
}

// AssemblyUValue area-weights the glass and frame U-values by FrameFraction.
func (g Glazing) AssemblyUValue() float64 {
	return g.UValue*(1-g.FrameFraction) + g.FrameUValue*g.FrameFraction
}

// ShadeMultiplier is the combined interior*exterior shading attenuation
// applied to transmitted solar gain. Defaults of 1.0 on both leave solar
// gain unattenuated, preserving spec.md's window_solar formula exactly.
func (g Glazing) ShadeMultiplier() float64 {
	return g.InteriorShadeMultiplier * g.ExteriorShadeMultiplier
}
