package container

import (
	"testing"

	"github.com/ByLCY/linea/surface"
)

// TestSubscriptionCancel 验证订阅取消后不再收到事件，且可重复取消。
func TestSubscriptionCancel(t *testing.T) {
	c := NewStatic(100, 100, nil)

	moves := 0
	leaves := 0
	cancelMove := c.OnPointerMove(func(x, y float64) { moves++ })
	cancelLeave := c.OnPointerLeave(func() { leaves++ })

	c.PointerMove(1, 2)
	c.PointerLeave()
	if moves != 1 || leaves != 1 {
		t.Fatalf("事件未送达: moves=%d leaves=%d", moves, leaves)
	}

	cancelMove()
	cancelLeave()
	cancelMove() // 重复取消应当无害
	c.PointerMove(3, 4)
	c.PointerLeave()
	if moves != 1 || leaves != 1 {
		t.Fatalf("取消后仍收到事件: moves=%d leaves=%d", moves, leaves)
	}
}

// TestPointerMoveOriginSubtraction 验证分发前减去容器原点。
func TestPointerMoveOriginSubtraction(t *testing.T) {
	c := NewStatic(100, 100, nil)
	c.SetOrigin(10, 20)

	var gotX, gotY float64
	c.OnPointerMove(func(x, y float64) { gotX, gotY = x, y })
	c.PointerMove(15, 26)
	if gotX != 5 || gotY != 6 {
		t.Fatalf("本地坐标期望 (5,6)，实际 (%g,%g)", gotX, gotY)
	}
}

// TestCreateSurfaceRecordsGeometry 验证表面创建参数被记录，且缺少
// 工厂时报错。
func TestCreateSurfaceRecordsGeometry(t *testing.T) {
	c := NewStatic(100, 100, nil)
	if _, err := c.CreateSurface(10, 10, 0, 0); err == nil {
		t.Fatalf("缺少工厂时应返回错误")
	}

	called := false
	c = NewStatic(100, 100, func(w, h, offX, offY float64) (surface.Surface, error) {
		called = true
		return nil, nil
	})
	if _, err := c.CreateSurface(800, 30, 0, -30); err != nil {
		t.Fatalf("创建表面失败: %v", err)
	}
	if !called {
		t.Fatalf("工厂未被调用")
	}
	if c.LastSurfaceW != 800 || c.LastSurfaceH != 30 || c.LastOffsetX != 0 || c.LastOffsetY != -30 {
		t.Fatalf("记录的几何参数错误: %+v", c)
	}
}
