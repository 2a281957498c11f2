package scene

import (
	"encoding/json"
	"os"

	"github.com/ByLCY/linea/ruler"
)

// DebugRuler captures the resolved layout of one ruler for inspection.
type DebugRuler struct {
	Side        string       `json:"side"`
	Orientation string       `json:"orientation"`
	Length      int          `json:"length"`
	Thickness   int          `json:"thickness"`
	Scale       float64      `json:"scale"`
	Ticks       []ruler.Tick `json:"ticks"`
}

// DebugScene is the debug-JSON root.
type DebugScene struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Rulers []DebugRuler `json:"rulers"`
}

// WriteDebugJSON dumps the resolved scene layout as indented JSON, for
// debugging or visualization.
func WriteDebugJSON(d *DebugScene, path string) error {
	if d == nil {
		return nil
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
