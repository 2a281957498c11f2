package unit

import (
	"math"
	"testing"
)

// TestDefaultMetric 验证 96 DPI 默认度量：1mm = 96/25.4 px。
func TestDefaultMetric(t *testing.T) {
	m := DefaultMetric()
	want := 96.0 / 25.4
	if diff := math.Abs(m.PxPerMM - want); diff > 1e-9 {
		t.Fatalf("默认 PxPerMM 期望 %g，实际 %g", want, m.PxPerMM)
	}
}

// TestResolve 覆盖四种单位的比例因子：px 恒为 1，cm 为 mm 的 10 倍，
// in 为 mm 的 25.4 倍。
func TestResolve(t *testing.T) {
	m := Metric{PxPerMM: 4}
	if got := m.Resolve(UnitPX); got != 1 {
		t.Fatalf("px 比例因子期望 1，实际 %g", got)
	}
	if got := m.Resolve(UnitMM); got != 4 {
		t.Fatalf("mm 比例因子期望 4，实际 %g", got)
	}
	if got := m.Resolve(UnitCM); math.Abs(got-40) > 1e-9 {
		t.Fatalf("cm 比例因子期望 40，实际 %g", got)
	}
	if got := m.Resolve(UnitIN); math.Abs(got-4*25.4) > 1e-9 {
		t.Fatalf("in 比例因子期望 %g，实际 %g", 4*25.4, got)
	}
}

// TestResolveAlwaysPositive 验证不变量：比例因子恒大于零，
// 非法度量回退到 96 DPI 默认值。
func TestResolveAlwaysPositive(t *testing.T) {
	for _, m := range []Metric{{}, {PxPerMM: -1}} {
		for _, u := range []Unit{UnitPX, UnitMM, UnitCM, UnitIN} {
			if got := m.Resolve(u); got <= 0 {
				t.Fatalf("比例因子必须大于零: metric=%+v unit=%s got=%g", m, UnitToString(u), got)
			}
		}
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"px", UnitPX},
		{"pixel", UnitPX},
		{"", UnitPX},
		{"mm", UnitMM},
		{"Millimeter", UnitMM},
		{"cm", UnitCM},
		{"in", UnitIN},
		{"inch", UnitIN},
		{"parsec", UnitPX}, // 未识别单位回退到像素
	}
	for _, c := range cases {
		if got := ParseUnit(c.in); got != c.want {
			t.Fatalf("ParseUnit(%q) 期望 %s，实际 %s", c.in, UnitToString(c.want), UnitToString(got))
		}
	}
}

type fixedProber struct{ ppmm float64 }

func (p fixedProber) PixelsPerMillimeter() float64 { return p.ppmm }

// TestMetricFor 验证容器探测：实现 Prober 且返回正值时采用实测值，
// 否则回退默认度量。
func TestMetricFor(t *testing.T) {
	if m := MetricFor(fixedProber{ppmm: 5}); m.PxPerMM != 5 {
		t.Fatalf("探测值期望 5，实际 %g", m.PxPerMM)
	}
	if m := MetricFor(fixedProber{ppmm: 0}); m != DefaultMetric() {
		t.Fatalf("探测值非正时应回退默认度量，实际 %+v", m)
	}
	if m := MetricFor(struct{}{}); m != DefaultMetric() {
		t.Fatalf("未实现 Prober 时应回退默认度量，实际 %+v", m)
	}
}
