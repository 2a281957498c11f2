package ruler

import (
	"testing"

	"github.com/ByLCY/linea/unit"
)

// TestMergeOptionsDefaults 验证 nil 与零值配置回退到文档化默认值。
func TestMergeOptionsDefaults(t *testing.T) {
	for _, opts := range []*Options{nil, {}} {
		merged := mergeOptions(opts)
		if merged.Unit != unit.UnitPX {
			t.Fatalf("默认单位期望 px，实际 %s", unit.UnitToString(merged.Unit))
		}
		if merged.MajorInterval != 100 || merged.MinorInterval != 20 || merged.MicroInterval != 10 {
			t.Fatalf("默认刻度间隔错误: %g/%g/%g", merged.MajorInterval, merged.MinorInterval, merged.MicroInterval)
		}
		if !merged.showLabel() || !merged.showCursorPosition() {
			t.Fatalf("标签与光标指示默认应开启")
		}
		if merged.StartOffset != 0 {
			t.Fatalf("默认起始偏移期望 0，实际 %g", merged.StartOffset)
		}
		if merged.Placement != Outside || merged.Orientation != Horizontal {
			t.Fatalf("默认摆放/方向错误: %v/%v", merged.Placement, merged.Orientation)
		}
		if merged.Thickness != 30 {
			t.Fatalf("默认厚度期望 30，实际 %g", merged.Thickness)
		}
		if merged.TickColor == nil || merged.LabelColor == nil || merged.GuideColor == nil {
			t.Fatalf("默认颜色不能为空")
		}
	}
}

// TestMergeOptionsOverrides 验证显式配置覆盖默认值，负间隔原样保留
// （由布局阶段视为停用）。
func TestMergeOptionsOverrides(t *testing.T) {
	off := false
	merged := mergeOptions(&Options{
		Unit:               unit.UnitMM,
		MajorInterval:      50,
		MinorInterval:      -1,
		MicroInterval:      5,
		ShowLabel:          &off,
		ShowCursorPosition: &off,
		StartOffset:        12,
		Placement:          Inside,
		Orientation:        Vertical,
		Thickness:          40,
	})
	if merged.Unit != unit.UnitMM {
		t.Fatalf("单位覆盖失败: %s", unit.UnitToString(merged.Unit))
	}
	if merged.MajorInterval != 50 || merged.MinorInterval != -1 || merged.MicroInterval != 5 {
		t.Fatalf("间隔覆盖失败: %g/%g/%g", merged.MajorInterval, merged.MinorInterval, merged.MicroInterval)
	}
	if merged.showLabel() || merged.showCursorPosition() {
		t.Fatalf("显式 false 未生效")
	}
	if merged.StartOffset != 12 || merged.Placement != Inside || merged.Orientation != Vertical || merged.Thickness != 40 {
		t.Fatalf("其余字段覆盖失败: %+v", merged)
	}
}

// TestMergeOptionsPure 验证合并是纯函数：不修改调用方的配置。
func TestMergeOptionsPure(t *testing.T) {
	in := &Options{MajorInterval: 50}
	_ = mergeOptions(in)
	if in.MinorInterval != 0 || in.Thickness != 0 {
		t.Fatalf("mergeOptions 修改了入参: %+v", in)
	}
}
