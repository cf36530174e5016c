package garden

import (
	"strings"
	"testing"

	"remember/internal/contact"
)

func TestSVG(t *testing.T) {
	contacts := []contact.Contact{
		leafContact("a", 5, 30),
		leafContact("b", 60, 90),
	}
	contacts[0].Name = `Maya "M" <Chen> & co`

	svg := SVG(Layout(contacts, 300, layoutNow), 300)

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("not an svg document: %q", svg[:40])
	}
	if got := strings.Count(svg, "<ellipse"); got != 2 {
		t.Errorf("leaf count = %d, want 2", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 600 600"`) {
		t.Error("viewBox should span 2x the canvas radius")
	}

	// Names land in <title> and must be escaped.
	if strings.Contains(svg, "<Chen>") {
		t.Error("unescaped name in svg")
	}
	if !strings.Contains(svg, "&lt;Chen&gt;") {
		t.Error("escaped name missing from svg")
	}
}

func TestSVGEmpty(t *testing.T) {
	svg := SVG(nil, 300)
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Errorf("empty garden should still render a valid document: %q", svg)
	}
	if strings.Contains(svg, "<ellipse") {
		t.Error("no leaves expected")
	}
}
