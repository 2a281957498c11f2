package scene

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	sceneLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	sceneParser = participle.MustBuild[Document](
		participle.Lexer(sceneLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Document is the root AST node for a scene file: a container extent plus one
// ruler declaration per container side.
type Document struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Width  float64        `parser:"Newline* 'scene' @Number"`
	Height float64        `parser:"@Number"`
	Rulers []*RulerDecl   `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// RulerDecl declares a ruler on one side of the container.
type RulerDecl struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Side     string         `parser:"'ruler' @('top'|'bottom'|'left'|'right')"`
	Settings []*Setting     `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// Setting is a single `key value` pair inside a ruler block.
type Setting struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"@@"`
}

// Value is either a number or a bare word (unit names, on/off, inside/outside).
type Value struct {
	Number *string `parser:"  @Number"`
	Ident  *string `parser:"| @Ident"`
}

// Float returns the numeric value, or an error when the value is a word.
func (v *Value) Float() (float64, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("expected a number")
	}
	f, err := strconv.ParseFloat(*v.Number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", *v.Number, err)
	}
	return f, nil
}

// Word returns the bare-word value, or an error when the value is a number.
func (v *Value) Word() (string, error) {
	if v == nil || v.Ident == nil {
		return "", fmt.Errorf("expected a word")
	}
	return *v.Ident, nil
}

// Parse reads and parses a scene document.
func Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	doc, err := sceneParser.ParseBytes("", src)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return doc, nil
}

// ParseString parses a scene document held in a string.
func ParseString(src string) (*Document, error) {
	doc, err := sceneParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return doc, nil
}
