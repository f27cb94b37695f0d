package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rosetta"
)

func testDocument() *Document {
	return &Document{
		Rosettas: []RosettaStyle{
			{
				Curve:    rosetta.Hypotrochoid{OuterRadius: 10, InnerRadius: 3, PenOffset: 5, Steps: 24},
				Color:    "red",
				Duration: 2 * time.Second,
			},
		},
	}
}

func TestRender(t *testing.T) {
	sb := &strings.Builder{}
	if err := testDocument().Render(sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{
		"<svg",
		"</svg>",
		`fill="#222"`,
		`id="glow"`,
		"rainbow-cycle",
		`id="grid_pattern"`,
		`fill="url(#grid_pattern)"`,
		`d="M`,
		`stroke="red"`,
		`dur="2s"`,
		`id="black-overlay"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if got := strings.Count(out, "<animateTransform"); got != 1 {
		t.Errorf("got %d transform animations, want 1", got)
	}
}

func TestRenderDefaultStyles(t *testing.T) {
	doc := &Document{Rosettas: DefaultStyles(), Precision: 3}
	sb := &strings.Builder{}
	if err := doc.Render(sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if got := strings.Count(out, "<animateTransform"); got != 3 {
		t.Errorf("got %d transform animations, want 3", got)
	}
	for _, want := range []string{`stroke="cyan"`, `stroke="gold"`, `stroke="orange"`, `dur="6s"`, `dur="14s"`, `dur="4s"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestRenderInvalidCurve(t *testing.T) {
	doc := testDocument()
	doc.Rosettas = append(doc.Rosettas, RosettaStyle{
		Curve: rosetta.Hypotrochoid{OuterRadius: 10, InnerRadius: 0, PenOffset: 5, Steps: 24},
		Color: "blue",
	})
	sb := &strings.Builder{}
	err := doc.Render(sb)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, rosetta.ErrInvalidParameter) {
		t.Errorf("error %v does not wrap ErrInvalidParameter", err)
	}
	// A malformed curve must not leave behind a truncated document.
	if sb.Len() != 0 {
		t.Errorf("got %d bytes of partial output, want none", sb.Len())
	}
}

func TestDefaultStylesValid(t *testing.T) {
	styles := DefaultStyles()
	if len(styles) != 3 {
		t.Fatalf("got %d styles, want 3", len(styles))
	}
	for i, s := range styles {
		if err := s.Curve.Validate(); err != nil {
			t.Errorf("style %d: %v", i, err)
		}
		if s.Curve.Steps != DefaultSteps {
			t.Errorf("style %d: got %d steps, want %d", i, s.Curve.Steps, DefaultSteps)
		}
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rosettas.svg")
	if err := testDocument().WriteFile(name); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("written file is not a complete SVG document")
	}
}
