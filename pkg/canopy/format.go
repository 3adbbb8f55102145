package canopy

import (
	"fmt"
	"strings"
)

// String returns a human-readable summary of the canopy followed by the
// parameters of each layer, bottom first. The format is for people, not
// for parsing.
func (c *Canopy) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of layers: %d\n", c.LayerCount())
	fmt.Fprintf(&b, "Total height: %.2f m\n", c.TotalHeight())
	fmt.Fprintf(&b, "Total LAI: %.2f m²/m²\n", c.TotalLAI())
	fmt.Fprintf(&b, "Total AGB: %.3f kg/m²\n", c.TotalBiomass())
	fmt.Fprintf(&b, "Total VWC: %.3f kg/m²\n", c.TotalWaterContent())
	fmt.Fprintf(&b, "Mean LFMC: %.2f kg/kg\n", c.MeanLFMC())

	for i, l := range c.layers {
		fmt.Fprintf(&b, "\nLayer %d:\n", i+1)
		fmt.Fprintf(&b, "  Bottom: %.2f m\n", l.Bottom())
		fmt.Fprintf(&b, "  Top: %.2f m\n", l.Top())
		fmt.Fprintf(&b, "  Thickness: %.2f m\n", l.Thickness())
		fmt.Fprintf(&b, "  LAI: %.2f m²/m²\n", l.LeafAreaIndex())
		fmt.Fprintf(&b, "  Leaf thickness: %.3g m\n", l.LeafThickness())
		fmt.Fprintf(&b, "  Temperature: %.2f K\n", l.Temperature())
		fmt.Fprintf(&b, "  Water fraction: %.3f m³/m³\n", l.WaterFraction())
		fmt.Fprintf(&b, "  Dry mass density: %.3f g/cm³\n", l.DryMassDensity())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
