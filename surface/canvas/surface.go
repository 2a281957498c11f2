package canvassurface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/linea/surface"
)

const defaultStrokeWidth = 1.0

// Surface 基于 github.com/tdewolff/canvas 实现 surface.Surface。
// 一个画布单位等于一个像素，坐标系为左上角原点（CartesianIV）。
type Surface struct {
	c   *canvas.Canvas
	ctx *canvas.Context

	width, height float64
	background    color.Color

	stroke color.Color
	fill   color.Color
	path   *canvas.Path

	fontMu   sync.Mutex
	family   *canvas.FontFamily
	fontSize float64
}

var _ surface.Surface = (*Surface)(nil)

// Options 配置画布表面的视觉参数与字体来源。
type Options struct {
	// FontName 为系统字体族名称；FontPath 非空时优先从文件加载。
	FontName string
	FontPath string
	FontSize float64 // 标签字号（像素），<=0 时为 10
	// Background 为 Clear 使用的背景色，nil 时为白色。
	Background color.Color
}

// New 创建 width×height 像素的画布表面。字体不可用属于构造期致命错误。
func New(width, height float64, opts Options) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("画布尺寸非法: %gx%g", width, height)
	}
	family, err := loadFamily(opts)
	if err != nil {
		return nil, fmt.Errorf("加载标签字体失败: %w", err)
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 10
	}
	bg := opts.Background
	if bg == nil {
		bg = canvas.White
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与标尺保持左上角为原点

	s := &Surface{
		c:          c,
		ctx:        ctx,
		width:      width,
		height:     height,
		background: bg,
		stroke:     canvas.Black,
		fill:       canvas.Black,
		family:     family,
		fontSize:   fontSize,
	}
	s.Clear(0, 0, width, height)
	return s, nil
}

func loadFamily(opts Options) (*canvas.FontFamily, error) {
	name := opts.FontName
	if name == "" {
		name = "sans-serif"
	}
	family := canvas.NewFontFamily(name)
	if opts.FontPath != "" {
		if err := family.LoadFontFile(opts.FontPath, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("读取字体文件 %s 失败: %w", opts.FontPath, err)
		}
		return family, nil
	}
	if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载系统字体 %s 失败: %w", name, err)
	}
	return family, nil
}

// Clear 以背景色覆盖指定矩形。
func (s *Surface) Clear(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.SetFillColor(s.background)
	s.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (s *Surface) BeginPath() { s.path = &canvas.Path{} }

func (s *Surface) MoveTo(x, y float64) {
	if s.path == nil {
		s.path = &canvas.Path{}
	}
	s.path.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	if s.path == nil {
		s.path = &canvas.Path{}
	}
	s.path.LineTo(x, y)
}

// Stroke 描边当前路径并将其清空。
func (s *Surface) Stroke() {
	if s.path == nil || s.path.Empty() {
		s.path = nil
		return
	}
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(s.stroke)
	s.ctx.SetStrokeWidth(defaultStrokeWidth)
	s.ctx.DrawPath(0, 0, s.path)
	s.path = nil
}

// FillText 在 (x, y) 处绘制文本，y 为文本顶部；基线位置由字体上升部决定。
func (s *Surface) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	s.fontMu.Lock()
	face := s.family.Face(s.fontSize, s.fill, canvas.FontRegular, canvas.FontNormal)
	s.fontMu.Unlock()
	metrics := face.Metrics()
	s.ctx.DrawText(x, y+metrics.Ascent, canvas.NewTextLine(face, text, canvas.Left))
}

func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }

func (s *Surface) SetFillColor(c color.Color) { s.fill = c }

// Size 返回表面的像素尺寸。
func (s *Surface) Size() (w, h float64) { return s.width, s.height }

// WritePDF 将当前画布内容写出为 PDF。
func (s *Surface) WritePDF(w io.Writer) error {
	writer := pdf.New(w, s.width, s.height, nil)
	s.c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

// Image 以 1 像素/单位栅格化当前画布。
func (s *Surface) Image() *image.RGBA {
	return rasterizer.Draw(s.c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

// WritePNG 将当前画布内容栅格化并编码为 PNG。
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("写入 PNG 失败: %w", err)
	}
	return nil
}
