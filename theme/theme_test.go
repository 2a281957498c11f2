package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeTestTheme(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeTestTheme(t, `
palette:
  accent: "#0f62fe"
tick: "${accent}"
font:
  size: 12
`)
	th, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	// overridden fields
	if th.Tick != "${accent}" {
		t.Fatalf("tick override lost: %q", th.Tick)
	}
	if th.Font.Size != 12 {
		t.Fatalf("font size override lost: %g", th.Font.Size)
	}
	// untouched fields keep defaults
	if th.Background != Default().Background || th.Guide != Default().Guide {
		t.Fatalf("defaults not preserved: %+v", th)
	}

	c, err := th.TickColor()
	if err != nil {
		t.Fatalf("tick color: %v", err)
	}
	if c != (color.NRGBA{R: 0x0f, G: 0x62, B: 0xfe, A: 0xff}) {
		t.Fatalf("palette reference resolved wrong: %v", c)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if th.Tick != Default().Tick {
		t.Fatalf("expected defaults, got %+v", th)
	}
}

func TestColorUnknownPaletteRef(t *testing.T) {
	th := Default()
	if _, err := th.Color("${missing}"); err == nil {
		t.Fatalf("expected error for missing palette entry")
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#0f62fe", color.NRGBA{R: 0x0f, G: 0x62, B: 0xfe, A: 0xff}},
		{"#1e66cc80", color.NRGBA{R: 0x1e, G: 0x66, B: 0xcc, A: 0x80}},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#", "#12345", "zzz", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) should fail", bad)
		}
	}
}
