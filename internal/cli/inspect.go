package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/scene"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginLeft(2)
)

// inspectCommand creates the inspect command for browsing a scene's layers.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse a scene's layers interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewLayerListModel(s),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// LayerListModel - Interactive layer browser
// =============================================================================

// LayerListModel is the bubbletea model for browsing a canopy. Rows are shown
// top layer first; Cursor is a row position, not a layer index.
type LayerListModel struct {
	Title  string
	Layers []canopy.Layer
	Canopy *canopy.Canopy
	Cursor int
	Height int
	Offset int
}

// NewLayerListModel creates a layer browser for the scene's canopy with the
// cursor on the top layer.
func NewLayerListModel(s *scene.Scene) LayerListModel {
	title := s.Name
	if title == "" {
		title = "Canopy"
	}
	return LayerListModel{
		Title:  title,
		Layers: s.Canopy.Layers(),
		Canopy: s.Canopy,
		Height: 15,
	}
}

// layerIndex converts a row position to a layer index.
func (m LayerListModel) layerIndex(row int) int {
	return len(m.Layers) - 1 - row
}

// Selected returns the index of the layer under the cursor.
func (m LayerListModel) Selected() int {
	return m.layerIndex(m.Cursor)
}

func (m LayerListModel) Init() tea.Cmd {
	return nil
}

func (m LayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Layers)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Layers) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m LayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/ground  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Layers))

	rows := [][]string{}
	for row := m.Offset; row < end; row++ {
		i := m.layerIndex(row)
		l := m.Layers[i]

		cursor := "  "
		if row == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.2f to %.2f m", l.Bottom(), l.Top()),
			fmt.Sprintf("%.2f", l.LeafAreaIndex()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Elevation", "LAI").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), m.detail()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [layer %d of %d, %.2f m total]",
		m.Selected(), len(m.Layers), m.Canopy.TotalHeight())))

	return b.String()
}

// detail renders the properties of the selected layer.
func (m LayerListModel) detail() string {
	if len(m.Layers) == 0 {
		return ""
	}
	l := m.Layers[m.Selected()]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Layer %d", m.Selected())))
	b.WriteString("\n")
	lines := [][2]string{
		{"Bottom", fmt.Sprintf("%.3f m", l.Bottom())},
		{"Top", fmt.Sprintf("%.3f m", l.Top())},
		{"Thickness", fmt.Sprintf("%.3f m", l.Thickness())},
		{"LAI", fmt.Sprintf("%.3f", l.LeafAreaIndex())},
		{"Leaf", fmt.Sprintf("%.3f mm", l.LeafThickness()*1e3)},
		{"Temperature", fmt.Sprintf("%.2f K", l.Temperature())},
		{"Water", fmt.Sprintf("%.2f", l.WaterFraction())},
		{"Dry density", fmt.Sprintf("%.2f g/cm³", l.DryMassDensity())},
		{"VWC", fmt.Sprintf("%.4f kg/m²", l.WaterContent())},
		{"Biomass", fmt.Sprintf("%.4f kg/m²", l.Biomass())},
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for _, kv := range lines {
		b.WriteString(keyStyle.Render(kv[0]) + " " + StyleValue.Render(kv[1]) + "\n")
	}
	return detailPaneStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}
