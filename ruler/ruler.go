package ruler

import (
	"fmt"
	"math"

	"github.com/ByLCY/linea/surface"
	"github.com/ByLCY/linea/unit"
)

// Container 是标尺所依附的宿主：提供当前尺寸、承载一个子绘图表面，
// 并支持指针移动/离开事件的订阅。订阅返回取消函数，由 Close 调用。
// 实现了 unit.Prober 的容器可提供实测的物理分辨率；否则使用 96 DPI 默认值。
type Container interface {
	// Size 返回容器当前的宽高（像素）。
	Size() (w, h float64)

	// CreateSurface 在容器内创建一个绘图表面，offsetX/offsetY 为表面原点
	// 相对容器原点的偏移（Outside 摆放时为负的厚度）。
	CreateSurface(w, h, offsetX, offsetY float64) (surface.Surface, error)

	OnPointerMove(fn func(x, y float64)) (cancel func())
	OnPointerLeave(fn func()) (cancel func())
}

// 光标坐标的哨兵值，表示指针不在容器内。
const cursorAbsent = -1

const (
	labelAxisGap  = 2  // 标签沿标尺轴越过刻度的偏移
	labelCrossGap = 12 // 标签沿横轴到刻度远端的间距（含文本高度）
	guideTextGap  = 4  // 光标标签到指示线的间距
)

// Ruler 在容器上叠加渲染一把度量标尺。
// 单实例单线程使用：所有方法都应在同一事件线程上调用。
type Ruler struct {
	c    Container
	s    surface.Surface
	opts Options

	// 渲染状态。
	length    int // 沿标尺轴的表面长度
	thickness int // 横轴厚度
	scale     float64
	cursorX   float64
	cursorY   float64

	cancelMove  func()
	cancelLeave func()
}

// New 将配置叠加到默认值之上，在容器上创建绘图表面并完成首次渲染，
// 随后注册指针移动与离开监听。表面不可用属于致命构造错误。
func New(c Container, opts *Options) (*Ruler, error) {
	if c == nil {
		return nil, fmt.Errorf("标尺容器不能为空")
	}
	merged := mergeOptions(opts)

	cw, ch := c.Size()
	length := extentFor(merged.Orientation, cw, ch)
	thickness := int(math.Round(merged.Thickness))

	sw, sh := surfaceDims(merged.Orientation, length, thickness)
	offX, offY := placementOffset(merged, thickness)
	s, err := c.CreateSurface(float64(sw), float64(sh), offX, offY)
	if err != nil {
		return nil, fmt.Errorf("创建标尺表面失败: %w", err)
	}

	r := &Ruler{
		c:         c,
		s:         s,
		opts:      merged,
		length:    length,
		thickness: thickness,
		scale:     unit.MetricFor(c).Resolve(merged.Unit),
		cursorX:   cursorAbsent,
		cursorY:   cursorAbsent,
	}
	r.render()

	r.cancelMove = c.OnPointerMove(r.pointerMove)
	r.cancelLeave = c.OnPointerLeave(r.pointerLeave)
	return r, nil
}

// extentFor 返回沿标尺方向的容器长度，取整且不为负。
func extentFor(o Orientation, w, h float64) int {
	extent := w
	if o == Vertical {
		extent = h
	}
	if extent < 0 {
		extent = 0
	}
	return int(math.Round(extent))
}

func surfaceDims(o Orientation, length, thickness int) (w, h int) {
	if o == Vertical {
		return thickness, length
	}
	return length, thickness
}

// placementOffset 计算表面原点偏移：Outside 时沿前缘偏出一个厚度。
func placementOffset(o Options, thickness int) (x, y float64) {
	if o.Placement != Outside {
		return 0, 0
	}
	if o.Orientation == Vertical {
		return -float64(thickness), 0
	}
	return 0, -float64(thickness)
}

// Refresh 重新测量容器沿标尺方向的长度（容器不可用时沿用旧值），
// 重新施加厚度并重算比例因子后整体重绘。可任意次调用。
func (r *Ruler) Refresh() {
	cw, ch := r.c.Size()
	if extent := extentFor(r.opts.Orientation, cw, ch); extent > 0 {
		r.length = extent
	}
	r.thickness = int(math.Round(r.opts.Thickness))
	r.scale = unit.MetricFor(r.c).Resolve(r.opts.Unit)

	if rs, ok := r.s.(surface.Resizer); ok {
		sw, sh := surfaceDims(r.opts.Orientation, r.length, r.thickness)
		// 调整失败时继续以旧尺寸渲染，不视为错误。
		_ = rs.Resize(float64(sw), float64(sh))
	}
	r.render()
}

// Close 注销两个指针监听。可重复调用。
func (r *Ruler) Close() {
	if r.cancelMove != nil {
		r.cancelMove()
		r.cancelMove = nil
	}
	if r.cancelLeave != nil {
		r.cancelLeave()
		r.cancelLeave = nil
	}
}

// Layout 返回当前渲染状态下的刻度布局。
func (r *Ruler) Layout() []Tick {
	return LayoutTicks(r.opts, float64(r.length), r.scale)
}

// Scale 返回当前比例因子（像素/单位），恒大于零。
func (r *Ruler) Scale() float64 { return r.scale }

// Extent 返回表面沿标尺轴的长度与横轴厚度。
func (r *Ruler) Extent() (length, thickness int) { return r.length, r.thickness }

// Surface 返回标尺的绘图表面（例如用于写出 PDF/PNG）。
func (r *Ruler) Surface() surface.Surface { return r.s }

func (r *Ruler) pointerMove(x, y float64) {
	r.cursorX = x
	r.cursorY = y
	if r.opts.showCursorPosition() {
		r.render()
	}
}

func (r *Ruler) pointerLeave() {
	r.cursorX = cursorAbsent
	r.cursorY = cursorAbsent
	r.render()
}

// render 同步重绘整个表面：清除、刻度、标签、光标指示。幂等。
func (r *Ruler) render() {
	length := float64(r.length)
	thickness := float64(r.thickness)
	sw, sh := surfaceDims(r.opts.Orientation, r.length, r.thickness)
	r.s.Clear(0, 0, float64(sw), float64(sh))

	ticks := LayoutTicks(r.opts, length, r.scale)
	r.drawTicks(ticks, thickness)
	r.drawLabels(ticks, thickness)
	r.drawCursor(length, thickness)

	if f, ok := r.s.(surface.Flusher); ok {
		f.Flush()
	}
}

// drawTicks 将所有刻度线合并进一条路径后一次描边。
// 刻度从基线边（贴近容器的一侧）向内延伸。
func (r *Ruler) drawTicks(ticks []Tick, thickness float64) {
	if len(ticks) == 0 {
		return
	}
	r.s.SetStrokeColor(r.opts.TickColor)
	r.s.BeginPath()
	for _, t := range ticks {
		pos := float64(t.Pos)
		if r.opts.Orientation == Vertical {
			r.s.MoveTo(thickness, pos)
			r.s.LineTo(thickness-t.Kind.Len(), pos)
		} else {
			r.s.MoveTo(pos, thickness)
			r.s.LineTo(pos, thickness-t.Kind.Len())
		}
	}
	r.s.Stroke()
}

// drawLabels 在主刻度旁绘制坐标文本：沿轴越过刻度 2px，
// 横轴位于刻度远端之外。
func (r *Ruler) drawLabels(ticks []Tick, thickness float64) {
	r.s.SetFillColor(r.opts.LabelColor)
	cross := thickness - MajorTickLen - labelCrossGap
	if cross < 0 {
		cross = 0
	}
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		pos := float64(t.Pos)
		if r.opts.Orientation == Vertical {
			r.s.FillText(t.Label, cross, pos+labelAxisGap)
		} else {
			r.s.FillText(t.Label, pos+labelAxisGap, cross)
		}
	}
}

// drawCursor 在被跟踪坐标处绘制贯穿整个厚度的半透明指示线与数值标签。
func (r *Ruler) drawCursor(length, thickness float64) {
	if !r.opts.showCursorPosition() {
		return
	}
	coord := r.cursorX
	axis := "x"
	if r.opts.Orientation == Vertical {
		coord = r.cursorY
		axis = "y"
	}
	if coord < 0 {
		return
	}

	r.s.SetStrokeColor(r.opts.GuideColor)
	r.s.BeginPath()
	if r.opts.Orientation == Vertical {
		r.s.MoveTo(0, coord)
		r.s.LineTo(thickness, coord)
	} else {
		r.s.MoveTo(coord, 0)
		r.s.LineTo(coord, thickness)
	}
	r.s.Stroke()

	value := int(math.Round(coord / r.scale))
	text := fmt.Sprintf("%s: %d%s", axis, value, unit.UnitToString(r.opts.Unit))
	r.s.SetFillColor(r.opts.GuideColor)
	if r.opts.Orientation == Vertical {
		r.s.FillText(text, labelAxisGap, coord+guideTextGap)
	} else {
		r.s.FillText(text, coord+guideTextGap, labelAxisGap)
	}
}
