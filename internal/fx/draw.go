package fx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(a))
	return c
}

// Draw renders the pool with its viewport's origin at (ox, oy) on dst.
func (p *Pool) Draw(dst *ebiten.Image, ox, oy float64) {
	if p.disposed {
		return
	}
	for _, c := range p.conns {
		a, b := p.entities[c.A].Pos, p.entities[c.B].Pos
		vector.StrokeLine(dst, float32(ox+a.X), float32(oy+a.Y), float32(ox+b.X), float32(oy+b.Y), 1, connectionColor, true)
	}
	for i := range p.entities {
		e := &p.entities[i]
		x, y := float32(ox+e.Pos.X), float32(oy+e.Pos.Y)
		r := float32(e.Size / 2)
		if p.kind != GraphNode {
			// glow
			vector.DrawFilledCircle(dst, x, y, r*3, withAlpha(e.Color, e.Opacity*0.25), true)
		}
		vector.DrawFilledCircle(dst, x, y, r, withAlpha(e.Color, e.Opacity), true)
	}
}

// Draw renders the rain columns with the viewport origin at (ox, oy).
func (r *Rain) Draw(dst *ebiten.Image, ox, oy float64, alpha float64) {
	if r.disposed {
		return
	}
	clr := withAlpha(rainColor, alpha)
	for i := range r.cols {
		c := &r.cols[i]
		top := oy + c.Head - c.height() + RainLineHeight
		text.Draw(dst, c.Text(), basicfont.Face7x13, int(ox+c.X), int(top), clr)
	}
}
