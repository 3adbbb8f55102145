package stack

import (
	"context"
	"strings"
	"testing"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/medium"
	"github.com/jihenghu/canort/pkg/soil"
)

func testCanopy(t *testing.T) *canopy.Canopy {
	t.Helper()
	c, err := medium.MakeCanopy(
		[]float64{0.5, 1.0, 1.0},
		[]float64{0.0002, 0.0002, 0.0003},
		[]float64{293.15, 294.15, 295.15},
		[]float64{0, 0.5, 1.0},
	)
	if err != nil {
		t.Fatalf("MakeCanopy() error = %v", err)
	}
	return c
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testCanopy(t), Options{})

	for _, want := range []string{
		"digraph canopy {",
		`layer2 [label="Layer 2\n1.50 to 2.50 m"`,
		`layer0 [label="Layer 0\n0.00 to 0.50 m"`,
		`layer2 -> layer1 [label="z = 1.50 m"];`,
		`layer1 -> layer0 [label="z = 0.50 m"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Top layer is declared first.
	if strings.Index(dot, "layer2 [") > strings.Index(dot, "layer0 [") {
		t.Error("layers not emitted top first")
	}
	if strings.Contains(dot, "ground") {
		t.Error("ground node emitted without soil")
	}
}

func TestToDOTDetailedWithSoil(t *testing.T) {
	s, err := soil.Loamy(290)
	if err != nil {
		t.Fatalf("Loamy() error = %v", err)
	}
	dot := ToDOT(testCanopy(t), Options{Title: "maize", Detailed: true, Soil: s})

	for _, want := range []string{
		`label="maize";`,
		`LAI 0.50\nT 294.15 K\nleaf 0.200 mm`,
		`ground [label="Soil (dobson)\nmv 0.20, T 290.00 K"`,
		`layer0 -> ground [label="z = 0 m"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestLeafColor(t *testing.T) {
	tests := []struct {
		lai, max float64
		want     string
	}{
		{0, 2, "#e8f5e9"},
		{2, 2, "#1b5e20"},
		{0, 0, "#e8f5e9"},
	}
	for _, tt := range tests {
		if got := leafColor(tt.lai, tt.max); got != tt.want {
			t.Errorf("leafColor(%v, %v) = %s, want %s", tt.lai, tt.max, got, tt.want)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	c := testCanopy(t)
	out, err := Render(context.Background(), c, "DOT", Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(out) != ToDOT(c, Options{}) {
		t.Error("Render(dot) differs from ToDOT")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(context.Background(), testCanopy(t), "pdf", Options{})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v, want UNSUPPORTED", err)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testCanopy(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("svg header not normalized:\n%.300s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got := string(normalizeViewBox(in)); got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
