package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/boxcoin/internal/core"
	"github.com/vovakirdan/boxcoin/internal/games/boxcoin"
)

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	cloudColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
	platformColor = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	playerColor   = color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}
	panelColor    = color.RGBA{A: 0xb4}
	overlayColor  = color.RGBA{A: 0x80}
)

const lineHeight = 16

// face is the bitmap font for all text.
var face = text.NewGoXFace(basicfont.Face7x13)

// rgba converts a palette color, scaling alpha by a in [0, 1].
func rgba(c core.Color, a float64) color.RGBA {
	r, g, b := c.RGB()
	if c == core.ColorDefault {
		r, g, b = 0xff, 0xff, 0xff
	}
	return color.RGBA{R: r, G: g, B: b, A: uint8(a * 0xff)}
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered centers s horizontally in a world of width w.
func drawTextCentered(dst *ebiten.Image, s string, w, y float64, clr color.Color) {
	tw, _ := text.Measure(s, face, lineHeight)
	drawText(dst, s, (w-tw)/2, y, clr)
}

// drawSnapshot renders one frame.
func drawSnapshot(dst *ebiten.Image, s boxcoin.Snapshot) {
	dst.Fill(skyColor)
	w, h := s.World.W, s.World.H

	switch s.Phase {
	case core.PhaseStart:
		drawLines(dst, boxcoin.StartScreenLines(s), w, h, false)
		return
	case core.PhaseGameOver:
		drawPlayfield(dst, s)
		fillRect(dst, s.World, overlayColor)
		drawLines(dst, boxcoin.GameOverLines(s), w, h, true)
		return
	}

	drawPlayfield(dst, s)
	drawText(dst, boxcoin.HUDText(s), 10, 10, color.Black)

	if s.Debug {
		for i, line := range boxcoin.DebugLines(s) {
			drawText(dst, line, 10, float64(30+i*lineHeight), color.Black)
		}
	}

	if s.Paused {
		fillRect(dst, s.World, overlayColor)
		drawTextCentered(dst, "PAUSED", w, h/2-lineHeight, color.White)
		drawTextCentered(dst, "P to resume", w, h/2+4, color.White)
	}
}

func drawPlayfield(dst *ebiten.Image, s boxcoin.Snapshot) {
	for _, c := range s.Clouds {
		fillRect(dst, c, cloudColor)
	}
	for _, p := range s.Platforms {
		fillRect(dst, p.Rect, platformColor)
	}
	for _, c := range s.Coins {
		cx, cy := c.Rect.Center()
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(c.Rect.W/2), rgba(c.Color, 1), true)
	}
	fillRect(dst, s.Player, playerColor)

	for _, e := range s.Effects {
		drawText(dst, e.Text, e.X, e.Y, rgba(e.Color, e.Alpha))
	}
}

// drawLines draws a centered block of text lines, optionally on a panel.
func drawLines(dst *ebiten.Image, lines []boxcoin.TextLine, w, h float64, panel bool) {
	top := (h - float64(len(lines)*lineHeight)) / 2
	if panel {
		fillRect(dst, core.NewRect(w/2-150, top-20, 300, float64(len(lines)*lineHeight)+40), panelColor)
	}
	for i, l := range lines {
		if l.Text == "" {
			continue
		}
		clr := rgba(l.Color, 1)
		if !panel && l.Color == core.ColorDefault {
			clr = color.RGBA{A: 0xff}
		}
		drawTextCentered(dst, l.Text, w, top+float64(i*lineHeight), clr)
	}
}
