package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jihenghu/canort/pkg/medium"
	"github.com/jihenghu/canort/pkg/scene"
)

func testModel(t *testing.T, layers int) LayerListModel {
	t.Helper()
	c, err := medium.Uniform(medium.UniformCanopy{
		Layers:         layers,
		LayerThickness: 0.5,
		LeafAreaIndex:  0.4,
		LeafThickness:  0.0002,
		Temperature:    295,
	})
	if err != nil {
		t.Fatalf("Uniform() error = %v", err)
	}
	return NewLayerListModel(&scene.Scene{Name: "test", Canopy: c})
}

func press(m LayerListModel, keys ...string) LayerListModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(LayerListModel)
	}
	return m
}

func TestLayerListModelStartsAtTop(t *testing.T) {
	m := testModel(t, 3)
	if got := m.Selected(); got != 2 {
		t.Errorf("Selected() = %d, want top layer 2", got)
	}
}

func TestLayerListModelNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down once", []string{"down"}, 1},
		{"vim keys", []string{"j", "j"}, 0},
		{"clamped at ground", []string{"j", "j", "j", "j"}, 0},
		{"clamped at top", []string{"up", "k"}, 2},
		{"down then up", []string{"j", "j", "k"}, 1},
		{"jump to ground", []string{"G"}, 0},
		{"jump back to top", []string{"G", "g"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(testModel(t, 3), tt.keys...)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayerListModelScrolls(t *testing.T) {
	m := testModel(t, 20)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 13})
	m = next.(LayerListModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	m = press(m, "j", "j", "j", "j", "j", "j")
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}
	m = press(m, "G")
	if m.Offset != 15 {
		t.Errorf("Offset after G = %d, want 15", m.Offset)
	}
}

func TestLayerListModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := testModel(t, 2).Update(msg)
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestLayerListModelView(t *testing.T) {
	m := press(testModel(t, 3), "down")
	view := m.View()

	for _, want := range []string{
		"test",
		"▸ ",
		"0.50 to 1.00 m",
		"Layer 1",
		"Temperature",
		"295.00 K",
		"[layer 1 of 3, 1.50 m total]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
