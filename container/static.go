package container

import (
	"fmt"

	"github.com/ByLCY/linea/ruler"
	"github.com/ByLCY/linea/surface"
)

// SurfaceFactory 按请求的尺寸与偏移创建一个绘图表面。
type SurfaceFactory func(w, h, offsetX, offsetY float64) (surface.Surface, error)

// Static 是程序驱动的容器实现：尺寸由调用方设定，指针事件由调用方注入。
// 渲染到 PDF/PNG 的 render 命令与测试都使用它。
// 所有方法都应在同一事件线程上调用。
type Static struct {
	width, height    float64
	originX, originY float64 // 容器在屏幕上的原点
	pxPerMM          float64 // 实测物理分辨率，<=0 表示未知

	factory SurfaceFactory

	nextID    int
	moveSubs  map[int]func(x, y float64)
	leaveSubs map[int]func()

	// 最近一次 CreateSurface 的参数，便于检查摆放偏移。
	LastSurfaceW, LastSurfaceH float64
	LastOffsetX, LastOffsetY   float64
}

var _ ruler.Container = (*Static)(nil)

// NewStatic 创建 width×height 的容器，factory 负责实际的表面创建。
func NewStatic(width, height float64, factory SurfaceFactory) *Static {
	return &Static{
		width:     width,
		height:    height,
		factory:   factory,
		moveSubs:  map[int]func(x, y float64){},
		leaveSubs: map[int]func(){},
	}
}

// SetSize 更新容器尺寸；下一次 Refresh 时生效。
func (s *Static) SetSize(width, height float64) {
	s.width = width
	s.height = height
}

// SetOrigin 设定容器在屏幕坐标中的原点。
func (s *Static) SetOrigin(x, y float64) {
	s.originX = x
	s.originY = y
}

// SetPixelsPerMillimeter 注入实测的物理分辨率，作为活体探测策略的来源。
func (s *Static) SetPixelsPerMillimeter(ppmm float64) { s.pxPerMM = ppmm }

// PixelsPerMillimeter 实现 unit.Prober；未注入时返回 0，调用方回退到默认度量。
func (s *Static) PixelsPerMillimeter() float64 { return s.pxPerMM }

func (s *Static) Size() (w, h float64) { return s.width, s.height }

func (s *Static) CreateSurface(w, h, offsetX, offsetY float64) (surface.Surface, error) {
	if s.factory == nil {
		return nil, fmt.Errorf("容器缺少表面工厂")
	}
	s.LastSurfaceW, s.LastSurfaceH = w, h
	s.LastOffsetX, s.LastOffsetY = offsetX, offsetY
	return s.factory(w, h, offsetX, offsetY)
}

func (s *Static) OnPointerMove(fn func(x, y float64)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.moveSubs[id] = fn
	return func() { delete(s.moveSubs, id) }
}

func (s *Static) OnPointerLeave(fn func()) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.leaveSubs[id] = fn
	return func() { delete(s.leaveSubs, id) }
}

// PointerMove 注入一次屏幕坐标下的指针移动事件。
// 分发前减去容器原点，订阅方收到的是容器本地坐标。
func (s *Static) PointerMove(screenX, screenY float64) {
	for _, fn := range s.moveSubs {
		fn(screenX-s.originX, screenY-s.originY)
	}
}

// PointerLeave 注入一次指针离开事件。
func (s *Static) PointerLeave() {
	for _, fn := range s.leaveSubs {
		fn()
	}
}
