package ruler

import (
	"image/color"

	"github.com/ByLCY/linea/unit"
)

// Orientation 表示标尺沿哪个轴延伸。
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Placement 表示标尺表面相对容器的摆放方式：
// Outside 通过负偏移叠加在容器边界之外，Inside 置于容器正常布局之内。
type Placement int

const (
	Outside Placement = iota
	Inside
)

// Options 是标尺的构造配置，构造后不再变化。
// 数值字段为零表示省略并回退到默认值；刻度间隔为负数表示显式停用该档。
// 布尔字段用指针区分 "省略"（nil，取默认 true）与显式 false。
type Options struct {
	// Unit 为标尺刻度的度量单位，缺省为像素。
	Unit unit.Unit

	// 三档刻度间隔，单位为所选度量单位的像素等价空间。
	MajorInterval float64
	MinorInterval float64
	MicroInterval float64

	ShowLabel          *bool // 主刻度旁是否绘制数值标签
	ShowCursorPosition *bool // 是否绘制光标位置指示

	StartOffset float64
	Placement   Placement
	Orientation Orientation
	Thickness   float64 // 标尺横向厚度（像素）

	// 可选视觉配置，nil 时使用默认色。
	TickColor  color.Color
	LabelColor color.Color
	GuideColor color.Color
}

// 默认值与默认颜色。
const (
	defaultMajorInterval = 100.0
	defaultMinorInterval = 20.0
	defaultMicroInterval = 10.0
	defaultThickness     = 30.0
)

var (
	defaultTickColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	defaultLabelColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	// 光标指示线为半透明描边。
	defaultGuideColor = color.NRGBA{R: 0x1e, G: 0x66, B: 0xcc, A: 0x80}
)

// DefaultOptions 返回文档化的默认配置。
func DefaultOptions() Options {
	t := true
	return Options{
		Unit:               unit.UnitPX,
		MajorInterval:      defaultMajorInterval,
		MinorInterval:      defaultMinorInterval,
		MicroInterval:      defaultMicroInterval,
		ShowLabel:          &t,
		ShowCursorPosition: &t,
		StartOffset:        0,
		Placement:          Outside,
		Orientation:        Horizontal,
		Thickness:          defaultThickness,
		TickColor:          defaultTickColor,
		LabelColor:         defaultLabelColor,
		GuideColor:         defaultGuideColor,
	}
}

// ResolveOptions 返回叠加默认值之后的完整配置，供需要在构造前
// 预知实际厚度等字段的调用方使用。
func ResolveOptions(opts *Options) Options { return mergeOptions(opts) }

// mergeOptions 将调用方配置叠加在默认值之上，是一个纯函数。
// opts 为 nil 时直接返回默认配置。
func mergeOptions(opts *Options) Options {
	merged := DefaultOptions()
	if opts == nil {
		return merged
	}
	merged.Unit = opts.Unit
	merged.Orientation = opts.Orientation
	merged.Placement = opts.Placement
	merged.StartOffset = opts.StartOffset
	if opts.MajorInterval != 0 {
		merged.MajorInterval = opts.MajorInterval
	}
	if opts.MinorInterval != 0 {
		merged.MinorInterval = opts.MinorInterval
	}
	if opts.MicroInterval != 0 {
		merged.MicroInterval = opts.MicroInterval
	}
	if opts.ShowLabel != nil {
		merged.ShowLabel = opts.ShowLabel
	}
	if opts.ShowCursorPosition != nil {
		merged.ShowCursorPosition = opts.ShowCursorPosition
	}
	if opts.Thickness > 0 {
		merged.Thickness = opts.Thickness
	}
	if opts.TickColor != nil {
		merged.TickColor = opts.TickColor
	}
	if opts.LabelColor != nil {
		merged.LabelColor = opts.LabelColor
	}
	if opts.GuideColor != nil {
		merged.GuideColor = opts.GuideColor
	}
	return merged
}

func (o Options) showLabel() bool          { return o.ShowLabel == nil || *o.ShowLabel }
func (o Options) showCursorPosition() bool { return o.ShowCursorPosition == nil || *o.ShowCursorPosition }
