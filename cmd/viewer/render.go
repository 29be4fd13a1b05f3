package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/minkowski"
	"github.com/akmonengine/minkowski/actor"
	"github.com/akmonengine/minkowski/constraint"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// viewWidth is the narrowest world-space width mapped onto the
	// terminal.
	viewWidth = 8.0
	// fitMargin widens the view past the bounds of both shapes.
	fitMargin = 1.5
	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0
	hudLines   = 2
)

var (
	outerStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	centerStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	minkowskiStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hudStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// contactGlyphs are indexed by contact role.
var contactGlyphs = [constraint.MaxContacts]rune{'S', 'A', 'C', 'O'}

// viewport maps terminal cells to points of the z = 0 plane, centered on
// origin.
type viewport struct {
	width, height int
	cell          float64
	origin        mgl64.Vec3
}

// newViewport frames bounds: the view is centered on them and grows past
// viewWidth when they are wider.
func newViewport(width, height int, bounds actor.AABB) viewport {
	if width < 1 {
		width = 1
	}

	span := math.Max(viewWidth, fitMargin*bounds.Size().X())
	origin := bounds.Center()
	origin[2] = 0

	return viewport{width: width, height: height, cell: span / float64(width), origin: origin}
}

func (vp viewport) toWorld(col, row int) mgl64.Vec3 {
	return vp.origin.Add(mgl64.Vec3{
		(float64(col) - float64(vp.width)/2 + 0.5) * vp.cell,
		(float64(vp.height)/2 - float64(row) - 0.5) * vp.cell * cellAspect,
		0,
	})
}

func (vp viewport) toCell(p mgl64.Vec3) (int, int) {
	local := p.Sub(vp.origin)
	col := int(math.Floor(local.X()/vp.cell + float64(vp.width)/2))
	row := int(math.Floor(float64(vp.height)/2 - local.Y()/(vp.cell*cellAspect)))
	return col, row
}

// sample picks the glyph for the world point p. Shapes cover the Minkowski
// outline, the outer shape covers the center one.
func sample(w *minkowski.World, f minkowski.Frame, p mgl64.Vec3, cell float64) (rune, tcell.Style, bool) {
	if f.Outer.Bounds.ContainsPoint(p) && w.Outer.Distance(p).Penetrating() {
		return '█', outerStyle, true
	}
	if f.Center.Bounds.ContainsPoint(p) && w.Center.Distance(p).Penetrating() {
		return '█', centerStyle, true
	}

	sum := w.Center.Transform.Frame().ProbePoint(p, f.Minkowski.HalfExtents, f.Minkowski.Radius)
	if math.Abs(sum.Distance) < cell {
		return '·', minkowskiStyle, true
	}
	return ' ', tcell.StyleDefault, false
}

func (v *Viewer) draw() {
	v.screen.Clear()

	width, height := v.screen.Size()
	frame := v.world.Frame()
	vp := newViewport(width, height-hudLines, frame.Outer.Bounds.Union(frame.Center.Bounds))

	for row := 0; row < vp.height; row++ {
		for col := 0; col < vp.width; col++ {
			if r, style, ok := sample(v.world, frame, vp.toWorld(col, row), vp.cell); ok {
				v.screen.SetContent(col, row, r, nil, style)
			}
		}
	}

	contactStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if frame.Colliding {
		contactStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	for i, c := range frame.Contacts {
		col, row := vp.toCell(c)
		if col >= 0 && col < vp.width && row >= 0 && row < vp.height {
			v.screen.SetContent(col, row, contactGlyphs[i], nil, contactStyle)
		}
	}

	v.drawHUD(frame, height)
	v.screen.Show()
}

func (v *Viewer) drawHUD(frame minkowski.Frame, height int) {
	state := "apart"
	if frame.Colliding {
		state = "touching"
	}
	line := fmt.Sprintf("%s  d=%+.3f  %s  t=%.1fs", frame.Pair, frame.Distance, state, frame.Time)
	if v.status != "" {
		line += "  " + v.status
	}
	drawText(v.screen, 0, height-2, line, hudStyle)
	drawText(v.screen, 0, height-1, "arrows move  q/e turn center  space next pair  r reset  esc quit", hudStyle)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	if y < 0 {
		return
	}
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
