package cellsurface

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ByLCY/linea/surface"
)

// Surface 将 surface.Surface 的像素绘制近似映射到终端单元格：
// 一个单元格等于一个像素。线段吸附到水平/垂直方向，超出区域的部分被裁剪。
// 用于 live 演示，让标尺直接叠加在终端区域上。
type Surface struct {
	screen tcell.Screen

	// 区域在屏幕上的原点与尺寸（单元格）。
	originX, originY int
	width, height    int

	stroke tcell.Color
	fill   tcell.Color

	segs    []segment
	cur     point
	hasCur  bool
	started bool
}

type point struct{ x, y float64 }

type segment struct{ a, b point }

var (
	_ surface.Surface = (*Surface)(nil)
	_ surface.Flusher = (*Surface)(nil)
	_ surface.Resizer = (*Surface)(nil)
)

// New 在屏幕的 (originX, originY) 处创建 width×height 单元格的表面。
func New(screen tcell.Screen, originX, originY, width, height int) (*Surface, error) {
	if screen == nil {
		return nil, fmt.Errorf("终端屏幕不可用")
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("表面尺寸非法: %dx%d", width, height)
	}
	return &Surface{
		screen:  screen,
		originX: originX,
		originY: originY,
		width:   width,
		height:  height,
		stroke:  tcell.ColorWhite,
		fill:    tcell.ColorWhite,
	}, nil
}

// Clear 将指定矩形内的单元格恢复为空白。
func (s *Surface) Clear(x, y, w, h float64) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.setContent(cx, cy, ' ', tcell.StyleDefault)
		}
	}
}

func (s *Surface) BeginPath() {
	s.segs = s.segs[:0]
	s.hasCur = false
	s.started = true
}

func (s *Surface) MoveTo(x, y float64) {
	s.cur = point{x, y}
	s.hasCur = true
}

func (s *Surface) LineTo(x, y float64) {
	if !s.hasCur {
		s.MoveTo(x, y)
		return
	}
	next := point{x, y}
	s.segs = append(s.segs, segment{a: s.cur, b: next})
	s.cur = next
}

// Stroke 以当前描边颜色绘制所有线段并清空路径。
func (s *Surface) Stroke() {
	style := tcell.StyleDefault.Foreground(s.stroke)
	for _, seg := range s.segs {
		s.strokeSegment(seg, style)
	}
	s.segs = s.segs[:0]
	s.hasCur = false
}

func (s *Surface) strokeSegment(seg segment, style tcell.Style) {
	x0, y0 := int(math.Round(seg.a.x)), int(math.Round(seg.a.y))
	x1, y1 := int(math.Round(seg.b.x)), int(math.Round(seg.b.y))
	switch {
	case x0 == x1: // 垂直线
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			s.setContent(x0, y, '│', style)
		}
	case y0 == y1: // 水平线
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.setContent(x, y0, '─', style)
		}
	default:
		// 标尺只产生轴对齐线段；斜线退化为两个端点。
		s.setContent(x0, y0, '+', style)
		s.setContent(x1, y1, '+', style)
	}
}

// FillText 从 (x, y) 起水平写出文本。
func (s *Surface) FillText(text string, x, y float64) {
	style := tcell.StyleDefault.Foreground(s.fill)
	cx := int(math.Round(x))
	cy := int(math.Round(y))
	for _, r := range text {
		s.setContent(cx, cy, r, style)
		cx++
	}
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = toTcell(c) }
func (s *Surface) SetFillColor(c color.Color)  { s.fill = toTcell(c) }

// Flush 提交一帧到终端。
func (s *Surface) Flush() { s.screen.Show() }

// Resize 在终端尺寸变化后调整表面区域。
func (s *Surface) Resize(w, h float64) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("表面尺寸非法: %gx%g", w, h)
	}
	s.width = int(math.Round(w))
	s.height = int(math.Round(h))
	return nil
}

// setContent 做区域裁剪后写入屏幕。
func (s *Surface) setContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.screen.SetContent(s.originX+x, s.originY+y, r, nil, style)
}

// toTcell 将 image/color 转换为 tcell.Color。
func toTcell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
