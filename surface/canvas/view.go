package canvassurface

import (
	"image/color"

	"github.com/ByLCY/linea/surface"
)

// View 是父画布上的一个平移子表面：多个标尺共享同一张画布时，
// 每个标尺通过各自的 View 在自己的偏移处绘制。
type View struct {
	parent *Surface
	dx, dy float64
}

var _ surface.Surface = (*View)(nil)

// View 返回以 (dx, dy) 为原点的子表面。
func (s *Surface) View(dx, dy float64) *View {
	return &View{parent: s, dx: dx, dy: dy}
}

func (v *View) Clear(x, y, w, h float64) { v.parent.Clear(x+v.dx, y+v.dy, w, h) }

func (v *View) BeginPath()          { v.parent.BeginPath() }
func (v *View) MoveTo(x, y float64) { v.parent.MoveTo(x+v.dx, y+v.dy) }
func (v *View) LineTo(x, y float64) { v.parent.LineTo(x+v.dx, y+v.dy) }
func (v *View) Stroke()             { v.parent.Stroke() }

func (v *View) FillText(text string, x, y float64) { v.parent.FillText(text, x+v.dx, y+v.dy) }

func (v *View) SetStrokeColor(c color.Color) { v.parent.SetStrokeColor(c) }

func (v *View) SetFillColor(c color.Color) { v.parent.SetFillColor(c) }
