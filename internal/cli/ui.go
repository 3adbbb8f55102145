package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jihenghu/canort/pkg/canopy"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success, foliage
	colorBlue  = lipgloss.Color("75")  // Light blue - commands
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Canopy Tables
// =============================================================================

// layerHeaders are the column titles of [layerRows].
var layerHeaders = []string{"#", "Bottom [m]", "Top [m]", "Thickness [m]", "LAI", "Leaf [mm]", "T [K]", "Water"}

// layerRows formats each layer as a table row, top layer first so the table
// reads like the canopy stands.
func layerRows(c *canopy.Canopy) [][]string {
	layers := c.Layers()
	rows := make([][]string, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.3f", l.Bottom()),
			fmt.Sprintf("%.3f", l.Top()),
			fmt.Sprintf("%.3f", l.Thickness()),
			fmt.Sprintf("%.2f", l.LeafAreaIndex()),
			fmt.Sprintf("%.3f", l.LeafThickness()*1e3),
			fmt.Sprintf("%.2f", l.Temperature()),
			fmt.Sprintf("%.2f", l.WaterFraction()),
		})
	}
	return rows
}

// layerTable builds a bordered table of the canopy's layers.
func layerTable(c *canopy.Canopy) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(layerHeaders...).
		Rows(layerRows(c)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleNumber
			}
			return lipgloss.NewStyle()
		})
}

// printCanopy prints the layer table and the canopy totals.
func printCanopy(w io.Writer, c *canopy.Canopy) {
	fmt.Fprintln(w, layerTable(c).Render())
	fmt.Fprintln(w)
	printKeyValue(w, "Layers", fmt.Sprintf("%d", c.LayerCount()))
	printKeyValue(w, "Height", fmt.Sprintf("%.3f m", c.TotalHeight()))
	printKeyValue(w, "Total LAI", fmt.Sprintf("%.2f", c.TotalLAI()))
	printKeyValue(w, "Mean T", fmt.Sprintf("%.2f K", c.MeanTemperature()))
	printKeyValue(w, "Water", fmt.Sprintf("%.3f kg/m²", c.TotalWaterContent()))
}
