package unit

import (
	"strings"
)

// This file defines the measurement units a ruler can be graduated in and the
// conversion from units to device pixels.

// Unit identifies the measurement unit of a ruler.
type Unit int

const (
	UnitPX Unit = iota // device pixels
	UnitMM             // millimeters
	UnitCM             // centimeters
	UnitIN             // inches
)

// Conversion constants between physical units and millimeters.
const (
	MmPerCM = 10.0
	MmPerIN = 25.4
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	default:
		return "px"
	}
}

// ParseUnit parses a unit name. Unrecognized names fall back to UnitPX so a
// malformed configuration degrades instead of failing.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimetre":
		return UnitMM
	case "cm", "centimeter", "centimetre":
		return UnitCM
	case "in", "inch":
		return UnitIN
	case "", "px", "pixel":
		return UnitPX
	default:
		return UnitPX
	}
}

// Metric converts physical units to device-dependent pixels. The zero value is
// not useful; use DefaultMetric or a value obtained from a Prober.
type Metric struct {
	// PxPerMM is the device-dependent pixels per millimeter.
	PxPerMM float64
}

// DefaultMetric assumes a nominal 96 DPI display: 96/25.4 px per millimeter.
// This is the deterministic strategy; containers that can measure their real
// physical resolution implement Prober instead.
func DefaultMetric() Metric {
	return Metric{PxPerMM: 96.0 / MmPerIN}
}

// Prober is implemented by containers that can measure the live physical
// resolution of their display. The probe is transient: it is queried at
// construction and refresh time and must leave no visible artifact behind.
type Prober interface {
	PixelsPerMillimeter() float64
}

// Resolve returns the scale factor (pixels per one unit) for u. The result is
// always > 0: a non-positive PxPerMM falls back to the 96 DPI default.
func (m Metric) Resolve(u Unit) float64 {
	ppmm := m.PxPerMM
	if ppmm <= 0 {
		ppmm = DefaultMetric().PxPerMM
	}
	switch u {
	case UnitMM:
		return ppmm
	case UnitCM:
		return ppmm * MmPerCM
	case UnitIN:
		return ppmm * MmPerIN
	case UnitPX:
		return 1.0
	default:
		return 1.0
	}
}

// MetricFor returns the metric to use for a container: the container's own
// probe when it provides one, the 96 DPI default otherwise.
func MetricFor(v any) Metric {
	if p, ok := v.(Prober); ok {
		if ppmm := p.PixelsPerMillimeter(); ppmm > 0 {
			return Metric{PxPerMM: ppmm}
		}
	}
	return DefaultMetric()
}
