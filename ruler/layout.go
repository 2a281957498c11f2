package ruler

import (
	"math"
	"strconv"
)

// TickKind 是刻度的三个优先级档位。
type TickKind int

const (
	TickMajor TickKind = iota
	TickMinor
	TickMicro
)

// KindToString 返回刻度档位的短名称。
func KindToString(k TickKind) string {
	switch k {
	case TickMajor:
		return "major"
	case TickMinor:
		return "minor"
	case TickMicro:
		return "micro"
	default:
		return "unknown"
	}
}

// 各档刻度线沿横轴方向的长度（像素）。
const (
	MajorTickLen = 15
	MinorTickLen = 10
	MicroTickLen = 5
)

// Len 返回该档刻度线的长度。
func (k TickKind) Len() float64 {
	switch k {
	case TickMajor:
		return MajorTickLen
	case TickMinor:
		return MinorTickLen
	case TickMicro:
		return MicroTickLen
	default:
		return 0
	}
}

// Tick 是一条已定位的刻度线。Label 仅在主刻度且启用标签时非空，
// 内容为坐标的整数文本，不带单位后缀。
type Tick struct {
	Pos   int      `json:"pos"` // 沿标尺轴的整数像素位置
	Kind  TickKind `json:"kind"`
	Label string   `json:"label,omitempty"`
}

// LayoutTicks 计算一次完整的刻度布局：坐标 i 从 StartOffset 起以比例因子
// 为步长推进（每步一个度量单位），在每个整数像素位置上按 主>次>微 的优先级
// 判断整除关系，命中即生成对应档位的刻度，一条位置只取最高档。
// 间隔 <=0 的档位视为停用。scale 必须 > 0。
func LayoutTicks(o Options, length, scale float64) []Tick {
	if scale <= 0 || length <= 0 {
		return nil
	}
	showLabel := o.showLabel()

	var ticks []Tick
	for i := o.StartOffset; i < length; i += scale {
		pos := int(math.Round(i))
		if pos < 0 {
			continue
		}
		switch {
		case divides(pos, o.MajorInterval):
			t := Tick{Pos: pos, Kind: TickMajor}
			if showLabel {
				t.Label = strconv.Itoa(pos)
			}
			ticks = append(ticks, t)
		case divides(pos, o.MinorInterval):
			ticks = append(ticks, Tick{Pos: pos, Kind: TickMinor})
		case divides(pos, o.MicroInterval):
			ticks = append(ticks, Tick{Pos: pos, Kind: TickMicro})
		}
	}
	return ticks
}

// divides 报告 pos 是否被 interval 整除；非正间隔永不命中。
func divides(pos int, interval float64) bool {
	if interval <= 0 {
		return false
	}
	return math.Mod(float64(pos), interval) == 0
}
