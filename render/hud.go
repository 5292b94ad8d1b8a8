// Package render draws the charge demo HUD on a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sling/charge"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/feedback"
	"github.com/lixenwraith/sling/projectile"
	"github.com/lixenwraith/sling/vmath"
)

// Frame is everything the HUD shows for one tick
type Frame struct {
	Phase          charge.Phase
	ChargeProgress float64
	CommitProgress float64

	Energy       float64
	EnergyMax    float64
	Regenerating bool

	Feedback feedback.Snapshot
	Arrows   []projectile.Arrow

	FiredFull int64
	FiredFast int64
	Cancelled int64
	Paused    bool
}

// ChargeProgress derives bar fill from the controller clocks
// charge is 0..1 across Charging and stays full once armed; commit fills during the window
func ChargeProgress(c *charge.Controller) (chargeFill, commitFill float64) {
	s := c.Session()
	if s == nil {
		return 0, 0
	}
	t := c.Timing()
	switch c.Phase() {
	case charge.PhaseCharging:
		return vmath.Progress(t.SincePhase(), s.Thresholds.ChargeDuration), 0
	case charge.PhaseReadyWaitingCommit:
		return 1, 0
	case charge.PhaseCommitWindow:
		return 1, vmath.Progress(t.SincePhase(), s.Thresholds.CommitWindowDuration)
	case charge.PhaseArmedToFire:
		return 1, 1
	}
	return 0, 0
}

// HUD draws frames onto a screen
type HUD struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewHUD creates a HUD for screen
func NewHUD(screen tcell.Screen) *HUD {
	return &HUD{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw renders f and shows the screen
func (h *HUD) Draw(f Frame) {
	w, ht := h.screen.Size()
	h.screen.Fill(' ', h.base)
	if w < 20 || ht < 8 {
		h.text(0, 0, "terminal too small", h.base.Foreground(RgbReticle))
		h.screen.Show()
		return
	}

	h.drawEnergy(w, f)

	field := Field{Left: 0, Top: 1, Width: w, Height: ht - 3, ScaleZ: 1, ScaleY: 0.5}
	h.drawField(field, f)
	h.drawReticle(w, field, f.Feedback)
	h.drawChargeBar(w, ht-2, f)
	h.drawStatusBar(w, ht-1, f)

	h.screen.Show()
}

func (h *HUD) drawEnergy(w int, f Frame) {
	const label = " ☀ "
	barWidth := w - 10
	ratio := 0.0
	if f.EnergyMax > 0 {
		ratio = f.Energy / f.EnergyMax
	}
	filled := int(math.Round(ratio * float64(barWidth)))

	for x := 0; x < barWidth; x++ {
		style := h.base.Foreground(RgbBarEmpty)
		if x < filled {
			style = h.base.Foreground(EnergyColor(float64(x+1) / float64(barWidth)))
		}
		h.screen.SetContent(x, 0, '█', nil, style)
	}

	sunStyle := h.base.Foreground(RgbBarEmpty)
	if f.Regenerating {
		sunStyle = h.base.Foreground(RgbSunlight)
	}
	h.text(barWidth, 0, label, sunStyle)
	h.text(barWidth+3, 0, fmt.Sprintf("%4.0f", f.Energy), h.base.Foreground(EnergyColor(ratio)))
}

func (h *HUD) drawField(field Field, f Frame) {
	groundStyle := h.base.Foreground(RgbGround)
	for x := field.Left; x < field.Left+field.Width; x++ {
		h.screen.SetContent(x, field.GroundRow(), '▁', nil, groundStyle)
	}

	// Bow draws back while aiming
	bow := ')'
	if f.Phase.Aiming() {
		bow = '}'
	}
	h.screen.SetContent(field.Left, field.BowRow(), bow, nil, h.base.Foreground(RgbBow))

	for _, a := range f.Arrows {
		col, row, ok := field.Project(a.Position.Z, a.Position.Y)
		if !ok {
			continue
		}
		color := RgbArrowFull
		if a.Kind == event.ShotFast {
			color = RgbArrowFast
		}
		h.screen.SetContent(col, row, ArrowGlyph(a), nil, h.base.Foreground(color))
	}
}

func (h *HUD) drawReticle(w int, field Field, fx feedback.Snapshot) {
	if fx.ReticleAlpha < 0.05 {
		return
	}
	cx := w/2 + int(math.Round(fx.ShakeX))
	cy := field.Top + field.Height/2 + int(math.Round(fx.ShakeY))
	style := h.base.Foreground(fade(RgbReticle, fx.ReticleAlpha))

	// Reticle tightens as the scale tween narrows
	arm := max(int(math.Round(fx.ReticleScale*4)), 1)
	h.screen.SetContent(cx, cy, '+', nil, style)
	h.screen.SetContent(cx-arm*2, cy, '─', nil, style)
	h.screen.SetContent(cx+arm*2, cy, '─', nil, style)
	h.screen.SetContent(cx, cy-arm, '│', nil, style)
	h.screen.SetContent(cx, cy+arm, '│', nil, style)
}

func (h *HUD) drawChargeBar(w, y int, f Frame) {
	label := fmt.Sprintf(" %-18s ", f.Phase)
	h.text(0, y, label, h.base.Foreground(RgbStatusText).Background(PhaseColor(f.Phase)))

	start := len(label) + 1
	barWidth := w - start - 1
	if barWidth <= 0 {
		return
	}
	chargeCells := int(math.Round(f.ChargeProgress * float64(barWidth)))
	commitCells := int(math.Round(f.CommitProgress * float64(barWidth)))
	for x := 0; x < barWidth; x++ {
		style := h.base.Foreground(RgbBarEmpty)
		switch {
		case x < commitCells:
			style = h.base.Foreground(RgbCommit)
		case x < chargeCells:
			style = h.base.Foreground(RgbChargeBar)
		}
		h.screen.SetContent(start+x, y, '▬', nil, style)
	}
}

func (h *HUD) drawStatusBar(w, y int, f Frame) {
	stats := fmt.Sprintf(" full %d  fast %d  cancel %d  fov %.0f ",
		f.FiredFull, f.FiredFast, f.Cancelled, f.Feedback.Fov)
	x := h.text(0, y, stats, h.base.Foreground(RgbStatusHelp))

	if f.Paused {
		x = h.text(x, y, " PAUSED ", h.base.Foreground(RgbStatusText).Background(RgbPaused))
	}

	const help = "hold mouse: charge  s: sun  d: drain  p: pause  q: quit "
	if hx := w - len([]rune(help)); hx > x {
		h.text(hx, y, help, h.base.Foreground(RgbStatusHelp))
	}
}

// text writes s at x,y and returns the column after it
func (h *HUD) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
