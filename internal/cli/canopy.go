package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/medium"
)

// canopyOpts holds the per-layer lists for the canopy command.
type canopyOpts struct {
	thicknesses     []float64 // m, ground layer first
	leafThicknesses []float64 // m
	temperatures    []float64 // K
	leafAreaIndices []float64 // m²/m²
}

// canopyCommand creates the canopy command for building a canopy from
// per-layer parameter lists.
func (c *CLI) canopyCommand() *cobra.Command {
	var opts canopyOpts

	cmd := &cobra.Command{
		Use:   "canopy",
		Short: "Build a canopy from per-layer parameter lists",
		Long: `Build a canopy from per-layer parameter lists and print its layers.

Lists are comma-separated and ordered from the ground up; all four must have
the same length.`,
		Example: `  canort canopy --thickness 0.5,1,1 --leaf-thickness 0.0002,0.0002,0.0003 \
    --temperature 293.15,294.15,295.15 --lai 0.2,0.5,0.8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cp, err := medium.MakeCanopy(opts.thicknesses, opts.leafThicknesses, opts.temperatures, opts.leafAreaIndices)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built canopy with %d layers", cp.LayerCount()))

			printCanopy(cmd.OutOrStdout(), cp)
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&opts.thicknesses, "thickness", nil, "layer thicknesses in m")
	cmd.Flags().Float64SliceVar(&opts.leafThicknesses, "leaf-thickness", nil, "leaf thicknesses in m")
	cmd.Flags().Float64SliceVar(&opts.temperatures, "temperature", nil, "layer temperatures in K")
	cmd.Flags().Float64SliceVar(&opts.leafAreaIndices, "lai", nil, "leaf area index per layer")

	return cmd
}

// uniformOpts holds the flags for the uniform command.
type uniformOpts struct {
	medium.UniformCanopy
	waterFraction  float64
	dryMassDensity float64
}

// uniformCommand creates the uniform command for building a canopy of
// identical layers.
func (c *CLI) uniformCommand() *cobra.Command {
	opts := uniformOpts{
		waterFraction:  constants.DefaultWaterFraction,
		dryMassDensity: constants.DefaultDryMassDensity,
	}

	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Build a canopy of identical layers",
		Long: `Build a canopy of N identical layers and print its layers.

Give either --layer-thickness (each layer) or --total-thickness (split evenly
between the layers). --lai is the leaf area index of each layer.`,
		Example: `  canort uniform -n 4 --total-thickness 2 --lai 0.5 --leaf-thickness 0.0002 --temperature 295`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cp, err := medium.Uniform(opts.UniformCanopy,
				canopy.WithWaterFraction(opts.waterFraction),
				canopy.WithDryMassDensity(opts.dryMassDensity),
			)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built uniform canopy with %d layers", cp.LayerCount()))

			printCanopy(cmd.OutOrStdout(), cp)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Layers, "layers", "n", 1, "number of layers")
	cmd.Flags().Float64Var(&opts.LayerThickness, "layer-thickness", 0, "thickness of each layer in m")
	cmd.Flags().Float64Var(&opts.TotalThickness, "total-thickness", 0, "total canopy height in m")
	cmd.Flags().Float64Var(&opts.LeafAreaIndex, "lai", 0, "leaf area index of each layer")
	cmd.Flags().Float64Var(&opts.LeafThickness, "leaf-thickness", 0, "leaf thickness in m")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 0, "temperature in K")
	cmd.Flags().Float64Var(&opts.waterFraction, "water-fraction", opts.waterFraction, "gravimetric leaf water fraction")
	cmd.Flags().Float64Var(&opts.dryMassDensity, "dry-mass-density", opts.dryMassDensity, "leaf dry matter density in g/cm³")

	return cmd
}
