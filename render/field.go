package render

import (
	"math"

	"github.com/lixenwraith/sling/parameter"
	"github.com/lixenwraith/sling/projectile"
)

// Field maps world space to the side-view play area
// Forward (Z) runs left to right, height (Y) bottom to top, X is ignored
type Field struct {
	Left, Top     int
	Width, Height int
	// Units per cell
	ScaleZ, ScaleY float64
}

// GroundRow is the screen row of the ground plane
func (f Field) GroundRow() int {
	return f.Top + f.Height - 1
}

// BowRow is the screen row of the launch origin
func (f Field) BowRow() int {
	return f.GroundRow() - int(math.Round(-parameter.ProjectileGroundY/f.ScaleY))
}

// Project returns the cell for a world position and whether it is inside the field
func (f Field) Project(z, y float64) (int, int, bool) {
	col := f.Left + 1 + int(math.Round(z/f.ScaleZ))
	row := f.GroundRow() - int(math.Round((y-parameter.ProjectileGroundY)/f.ScaleY))
	if col < f.Left || col >= f.Left+f.Width || row < f.Top || row > f.GroundRow() {
		return col, row, false
	}
	return col, row, true
}

// ArrowGlyph picks a rune from the arrow's flight direction
func ArrowGlyph(a projectile.Arrow) rune {
	horiz := math.Hypot(a.Velocity.X, a.Velocity.Z)
	switch {
	case horiz == 0 && a.Velocity.Y < 0:
		return '↓'
	case a.Velocity.Y > horiz*0.4:
		return '↗'
	case a.Velocity.Y < -horiz*0.4:
		return '↘'
	default:
		return '→'
	}
}
