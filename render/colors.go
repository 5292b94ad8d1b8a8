package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sling/charge"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(86, 95, 137)
	RgbBow        = tcell.NewRGBColor(224, 175, 104)
	RgbArrowFull  = tcell.NewRGBColor(255, 255, 255)
	RgbArrowFast  = tcell.NewRGBColor(180, 180, 180)
	RgbReticle    = tcell.NewRGBColor(255, 80, 80)
	RgbCommit     = tcell.NewRGBColor(255, 215, 0)
	RgbChargeBar  = tcell.NewRGBColor(125, 207, 255)
	RgbBarEmpty   = tcell.NewRGBColor(40, 42, 54)
	RgbSunlight   = tcell.NewRGBColor(255, 200, 60)

	// Status bar
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)
	RgbStatusHelp  = tcell.NewRGBColor(180, 180, 180)
	RgbPhaseIdle   = tcell.NewRGBColor(135, 206, 250)
	RgbPhaseCharge = tcell.NewRGBColor(144, 238, 144)
	RgbPhaseArmed  = tcell.NewRGBColor(255, 165, 0)
	RgbPhaseRest   = tcell.NewRGBColor(128, 128, 128)
	RgbPaused      = tcell.NewRGBColor(200, 50, 50)
)

// PhaseColor returns the status badge background for a phase
func PhaseColor(p charge.Phase) tcell.Color {
	switch p {
	case charge.PhasePendingTap, charge.PhaseCharging:
		return RgbPhaseCharge
	case charge.PhaseReadyWaitingCommit, charge.PhaseArmedToFire:
		return RgbPhaseArmed
	case charge.PhaseCommitWindow:
		return RgbCommit
	case charge.PhaseFiring, charge.PhaseFastFiring, charge.PhaseResting:
		return RgbPhaseRest
	default:
		return RgbPhaseIdle
	}
}

// EnergyColor grades the energy bar from red (empty) through yellow to green (full)
func EnergyColor(ratio float64) tcell.Color {
	if ratio <= 0 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0.5 {
		t := ratio / 0.5
		return tcell.NewRGBColor(220, int32(60+(200-60)*t), 60)
	}
	t := (ratio - 0.5) / 0.5
	return tcell.NewRGBColor(int32(220-(220-80)*t), 200, int32(60+(120-60)*t))
}

// fade scales a color toward the background by alpha in [0,1]
func fade(c tcell.Color, alpha float64) tcell.Color {
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bg int32) int32 {
		return bg + int32(float64(fg-bg)*alpha)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
