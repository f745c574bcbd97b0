package boxcoin

import (
	"math"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	CoinChar     = '●'
	CloudChar    = '░'
	BorderChar   = '│'
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 24
	MinScreenH = 12
)

// cellAspect is how many times taller a terminal cell is than wide.
const cellAspect = 2.0

// viewport maps world units onto a block of screen cells.
type viewport struct {
	x, y   int // top-left cell
	w, h   int // size in cells
	sx, sy float64
}

// newViewport fits the world into the area below the HUD row, keeping its
// proportions on cells that are twice as tall as wide.
func newViewport(screenW, screenH int, world core.Rect) viewport {
	availW, availH := screenW-2, screenH-1 // border columns, HUD row

	h := availH
	w := int(math.Round(float64(h) * world.W / world.H * cellAspect))
	if w > availW {
		w = availW
		h = int(math.Round(float64(w) * world.H / world.W / cellAspect))
	}
	w = core.Max(w, 1)
	h = core.Max(h, 1)

	return viewport{
		x:  (screenW - w) / 2,
		y:  1,
		w:  w,
		h:  h,
		sx: float64(w) / world.W,
		sy: float64(h) / world.H,
	}
}

// cell converts a world point to the screen cell containing it.
func (v viewport) cell(x, y float64) (int, int) {
	return v.x + int(math.Floor(x*v.sx)), v.y + int(math.Floor(y*v.sy))
}

// fill paints the cells touched by r, clipped to the viewport. Every
// visible rect covers at least one cell.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.cell(r.X, r.Y)
	x1 := v.x + int(math.Ceil(r.Right()*v.sx))
	y1 := v.y + int(math.Ceil(r.Bottom()*v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = core.Max(x0, v.x), core.Min(x1, v.x+v.w)
	y0, y1 = core.Max(y0, v.y), core.Min(y1, v.y+v.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// text writes s starting at a world point, clipped to the viewport.
func (v viewport) text(dst *core.Screen, wx, wy float64, s string, c core.Color) {
	x, y := v.cell(wx, wy)
	if y < v.y || y >= v.y+v.h {
		return
	}
	i := 0
	for _, r := range s {
		if cx := x + i; cx >= v.x && cx < v.x+v.w {
			dst.SetColored(cx, y, r, c)
		}
		i++
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws s onto a terminal cell grid.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	switch s.Phase {
	case core.PhaseStart:
		drawLines(dst, StartScreenLines(s))
		return
	case core.PhaseGameOver:
		drawPanel(dst, GameOverLines(s))
		return
	}

	v := newViewport(dst.Width(), dst.Height(), s.World)

	// Playfield edges
	for y := v.y; y < v.y+v.h; y++ {
		dst.SetColored(v.x-1, y, BorderChar, core.ColorGray)
		dst.SetColored(v.x+v.w, y, BorderChar, core.ColorGray)
	}

	for _, c := range s.Clouds {
		v.fill(dst, c, CloudChar, core.ColorGray)
	}
	for _, p := range s.Platforms {
		v.fill(dst, p.Rect, PlatformChar, core.ColorBrown)
	}
	for _, c := range s.Coins {
		v.fill(dst, c.Rect, CoinChar, c.Color)
	}
	v.fill(dst, s.Player, PlayerChar, core.ColorRed)

	for _, e := range s.Effects {
		color := e.Color
		if e.Alpha < 0.35 {
			color = core.ColorGray
		}
		v.text(dst, e.X, e.Y, e.Text, color)
	}

	dst.DrawTextColored(v.x, 0, HUDText(s), core.ColorBrightWhite)

	if s.Debug {
		drawDebug(dst, v, s)
	}
	if s.Paused {
		drawPanel(dst, []TextLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Press P to resume", core.ColorDefault},
		})
	}
}

// drawLines centers a block of lines on the screen.
func drawLines(dst *core.Screen, lines []TextLine) {
	top := core.Max((dst.Height()-len(lines))/2, 0)
	for i, l := range lines {
		dst.DrawTextCentered(top+i, l.Text, l.Color)
	}
}

// drawPanel draws lines inside a box in the center of the screen.
func drawPanel(dst *core.Screen, lines []TextLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.Text)))
	}

	boxW := core.Min(width+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l.Text, l.Color)
	}
}

// drawDebug lists the debug lines in the bottom-left corner of the
// playfield, as many as fit.
func drawDebug(dst *core.Screen, v viewport, s Snapshot) {
	lines := DebugLines(s)
	if len(lines) > v.h {
		lines = lines[:v.h]
	}
	top := v.y + v.h - len(lines)
	for i, l := range lines {
		dst.DrawTextColored(v.x, top+i, l, core.ColorBrightWhite)
	}
}
