package surface

import "image/color"

// Surface 是标尺绘制所需的二维绘图表面：支持清除矩形、路径搭建
// （Begin/MoveTo/LineTo）、描边、文本填充以及描边/填充颜色设置。
// 所有坐标均为表面本地像素坐标，原点在左上角。
type Surface interface {
	// Clear 清除指定矩形区域（即恢复为背景）。
	Clear(x, y, w, h float64)

	// BeginPath 开始一条新路径，丢弃尚未描边的路径段。
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke 以当前描边颜色绘制已构建的路径，并清空路径。
	Stroke()

	// FillText 以当前填充颜色在 (x, y) 处绘制文本，y 为文本顶部。
	FillText(text string, x, y float64)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
}

// Flusher 由需要显式提交一帧的表面实现（例如终端表面）。
// 标尺在每次完整重绘结束后会调用 Flush。
type Flusher interface {
	Flush()
}

// Resizer 由支持在容器尺寸变化后调整自身尺寸的表面实现。
// 标尺在 Refresh 时若表面实现了该接口则调整表面尺寸。
type Resizer interface {
	Resize(w, h float64) error
}
