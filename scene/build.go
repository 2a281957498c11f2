package scene

import (
	"fmt"

	"github.com/ByLCY/linea/ruler"
	"github.com/ByLCY/linea/unit"
)

// Side names the container edge a ruler is attached to.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// SideToString returns the lowercase side name.
func SideToString(s Side) string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "top"
	}
}

// Orientation maps a side to the ruler orientation: top/bottom rulers run
// horizontally, left/right rulers vertically.
func (s Side) Orientation() ruler.Orientation {
	if s == Left || s == Right {
		return ruler.Vertical
	}
	return ruler.Horizontal
}

// Spec is one resolved ruler of the scene.
type Spec struct {
	Side    Side
	Options ruler.Options
}

// Scene is the resolved form of a parsed document.
type Scene struct {
	Width  float64
	Height float64
	Rulers []Spec
}

// Build resolves the AST into ruler options. Settings not recognized here are
// an error; malformed values inside a recognized setting degrade per the ruler
// defaults instead (eg. an unknown unit name falls back to pixels).
func Build(doc *Document) (*Scene, error) {
	if doc == nil {
		return nil, fmt.Errorf("scene document is nil")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("scene extent must be positive, got %gx%g", doc.Width, doc.Height)
	}
	sc := &Scene{Width: doc.Width, Height: doc.Height}
	for _, decl := range doc.Rulers {
		spec, err := buildRuler(decl)
		if err != nil {
			return nil, err
		}
		sc.Rulers = append(sc.Rulers, spec)
	}
	return sc, nil
}

func buildRuler(decl *RulerDecl) (Spec, error) {
	side, err := parseSide(decl.Side)
	if err != nil {
		return Spec{}, err
	}
	opts := ruler.Options{Orientation: side.Orientation()}
	for _, st := range decl.Settings {
		if err := applySetting(&opts, st); err != nil {
			return Spec{}, fmt.Errorf("ruler %s at %s: %w", decl.Side, st.Pos, err)
		}
	}
	return Spec{Side: side, Options: opts}, nil
}

func parseSide(s string) (Side, error) {
	switch s {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Top, fmt.Errorf("unknown ruler side %q", s)
	}
}

func applySetting(opts *ruler.Options, st *Setting) error {
	switch st.Key {
	case "unit":
		word, err := st.Value.Word()
		if err != nil {
			return fmt.Errorf("unit: %w", err)
		}
		opts.Unit = unit.ParseUnit(word)
	case "major":
		return assignFloat(&opts.MajorInterval, st)
	case "minor":
		return assignFloat(&opts.MinorInterval, st)
	case "micro":
		return assignFloat(&opts.MicroInterval, st)
	case "offset":
		return assignFloat(&opts.StartOffset, st)
	case "thickness":
		return assignFloat(&opts.Thickness, st)
	case "labels":
		on, err := parseSwitch(st)
		if err != nil {
			return err
		}
		opts.ShowLabel = &on
	case "cursor":
		on, err := parseSwitch(st)
		if err != nil {
			return err
		}
		opts.ShowCursorPosition = &on
	case "placement":
		word, err := st.Value.Word()
		if err != nil {
			return fmt.Errorf("placement: %w", err)
		}
		switch word {
		case "inside":
			opts.Placement = ruler.Inside
		case "outside":
			opts.Placement = ruler.Outside
		default:
			// Unrecognized placement degrades to the default.
			opts.Placement = ruler.Outside
		}
	default:
		return fmt.Errorf("unknown setting %q", st.Key)
	}
	return nil
}

func assignFloat(dst *float64, st *Setting) error {
	f, err := st.Value.Float()
	if err != nil {
		return fmt.Errorf("%s: %w", st.Key, err)
	}
	*dst = f
	return nil
}

func parseSwitch(st *Setting) (bool, error) {
	word, err := st.Value.Word()
	if err != nil {
		return false, fmt.Errorf("%s: %w", st.Key, err)
	}
	switch word {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%s: expected on/off, got %q", st.Key, word)
	}
}
