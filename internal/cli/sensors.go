package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jihenghu/canort/pkg/sensor"
)

// sensorsCommand creates the sensors command for listing radiometer presets.
func (c *CLI) sensorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensors",
		Short: "List the known radiometer presets",
		Long: `List the spaceborne radiometers that can be named as a sensor preset in
a scene file, with their channel frequencies and nominal incidence angle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			missions := sensor.Missions()
			rows := make([][]string, len(missions))
			for i, m := range missions {
				rows[i] = []string{m.Name, joinFloats(m.Frequencies, "GHz"), fmt.Sprintf("%.1f°", m.Angle)}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Sensor", "Frequencies", "Angle").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return styleHeader
					case col == 0:
						return StyleNumber
					}
					return lipgloss.NewStyle()
				})

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, t.Render())
			printNextStep(w, "Use one in a scene", `[sensor] preset = "SMAP"`)
			return nil
		},
	}
	return cmd
}
