package scene_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/linea/ruler"
	"github.com/ByLCY/linea/scene"
	"github.com/ByLCY/linea/unit"
)

const sampleScene = `
// drawing board with rulers on two edges
scene 800 600 {
	ruler top {
		unit px
		major 50
		minor 10
		micro 5
		labels on
		cursor on
		thickness 30
	}

	ruler left {
		unit mm
		major 10
		minor 5
		micro -1
		labels off
		placement inside
		thickness 40
		offset 12
	}
}
`

func TestParseScene(t *testing.T) {
	doc, err := scene.ParseString(sampleScene)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Width != 800 || doc.Height != 600 {
		t.Fatalf("scene extent mismatch: %gx%g", doc.Width, doc.Height)
	}
	if len(doc.Rulers) != 2 {
		t.Fatalf("expected 2 rulers, got %d", len(doc.Rulers))
	}
	if doc.Rulers[0].Side != "top" || doc.Rulers[1].Side != "left" {
		t.Fatalf("ruler sides mismatch: %s/%s", doc.Rulers[0].Side, doc.Rulers[1].Side)
	}
}

func TestBuildScene(t *testing.T) {
	doc, err := scene.ParseString(sampleScene)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sc, err := scene.Build(doc)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	top := sc.Rulers[0]
	if top.Side != scene.Top || top.Options.Orientation != ruler.Horizontal {
		t.Fatalf("top ruler should be horizontal")
	}
	if top.Options.MajorInterval != 50 || top.Options.MinorInterval != 10 || top.Options.MicroInterval != 5 {
		t.Fatalf("top intervals mismatch: %+v", top.Options)
	}
	if top.Options.ShowLabel == nil || !*top.Options.ShowLabel {
		t.Fatalf("top labels should be on")
	}

	left := sc.Rulers[1]
	if left.Side != scene.Left || left.Options.Orientation != ruler.Vertical {
		t.Fatalf("left ruler should be vertical")
	}
	if left.Options.Unit != unit.UnitMM {
		t.Fatalf("left unit mismatch: %v", left.Options.Unit)
	}
	if left.Options.MicroInterval != -1 {
		t.Fatalf("negative interval should be preserved, got %g", left.Options.MicroInterval)
	}
	if left.Options.ShowLabel == nil || *left.Options.ShowLabel {
		t.Fatalf("left labels should be off")
	}
	if left.Options.Placement != ruler.Inside {
		t.Fatalf("left placement should be inside")
	}
	if left.Options.Thickness != 40 || left.Options.StartOffset != 12 {
		t.Fatalf("left thickness/offset mismatch: %+v", left.Options)
	}
}

func TestBuildRejectsUnknownSetting(t *testing.T) {
	doc, err := scene.ParseString("scene 100 100 {\n\truler top {\n\t\tgravity 9\n\t}\n}\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := scene.Build(doc); err == nil || !strings.Contains(err.Error(), "gravity") {
		t.Fatalf("expected unknown-setting error, got %v", err)
	}
}

func TestBuildRejectsBadExtent(t *testing.T) {
	doc, err := scene.ParseString("scene 0 100 {\n}\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := scene.Build(doc); err == nil {
		t.Fatalf("expected extent error")
	}
}

func TestBuildUnknownUnitDegrades(t *testing.T) {
	doc, err := scene.ParseString("scene 100 100 {\n\truler top {\n\t\tunit parsec\n\t}\n}\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sc, err := scene.Build(doc)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if sc.Rulers[0].Options.Unit != unit.UnitPX {
		t.Fatalf("unknown unit should degrade to px, got %v", sc.Rulers[0].Options.Unit)
	}
}
