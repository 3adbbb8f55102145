package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/scene"
	"github.com/jihenghu/canort/pkg/sensor"
	"github.com/jihenghu/canort/pkg/soil"
)

// defaultSceneFile is written by init when no path is given.
const defaultSceneFile = "scene.toml"

// sceneCommand creates the scene command for loading and summarizing a TOML
// scene file.
func (c *CLI) sceneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene [file]",
		Short: "Load a scene file and print its canopy, soil and sensor",
		Long: `Load a TOML scene file, validate it and print a summary.

When the scene has both a soil and a sensor, the soil permittivity is listed
for every sensor frequency.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			s, err := scene.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %s", args[0]))

			printScene(cmd.OutOrStdout(), s)
			return nil
		},
	}
	return cmd
}

// printScene prints every section of s that is present.
func printScene(w io.Writer, s *scene.Scene) {
	title := s.Name
	if title == "" {
		title = "Scene"
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	if s.Description != "" {
		fmt.Fprintln(w, StyleDim.Render(s.Description))
	}
	fmt.Fprintln(w)
	printCanopy(w, s.Canopy)

	if s.Soil != nil {
		fmt.Fprintln(w)
		printSoil(w, s.Soil)
	}
	if s.Sensor != nil {
		fmt.Fprintln(w)
		printSensor(w, s.Sensor)
	}
	if s.Soil != nil && s.Sensor != nil {
		fmt.Fprintln(w)
		printInfo(w, "Soil permittivity")
		freqs := s.Sensor.Frequencies()
		for i, eps := range s.Soil.Dielectrics(freqs) {
			printDetail(w, "%7.3f GHz  ε = %.3f %+.3fi", freqs[i], real(eps), imag(eps))
		}
	}
}

func printSoil(w io.Writer, s *soil.Soil) {
	fmt.Fprintln(w, StyleTitle.Render("Soil"))
	printKeyValue(w, "Temperature", fmt.Sprintf("%.2f K", s.Temperature()))
	printKeyValue(w, "Moisture", fmt.Sprintf("%.3f m³/m³", s.Moisture()))
	printKeyValue(w, "Texture", fmt.Sprintf("sand %.2f, clay %.2f, silt %.2f", s.Sand(), s.Clay(), s.Silt()))
	printKeyValue(w, "Roughness", fmt.Sprintf("s %.3f m, l %.3f m", s.RMSHeight(), s.CorrelationLength()))
	printKeyValue(w, "Model", s.Model())
}

func printSensor(w io.Writer, s *sensor.Sensor) {
	title := "Sensor"
	if s.Name() != "" {
		title += " " + s.Name()
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	printKeyValue(w, "Frequencies", joinFloats(s.Frequencies(), "GHz"))
	printKeyValue(w, "Angles", joinFloats(s.Angles(), "°"))
	pols := make([]string, 0, len(s.Polarizations()))
	for _, p := range s.Polarizations() {
		pols = append(pols, string(p))
	}
	printKeyValue(w, "Polarizations", strings.Join(pols, ", "))
	printKeyValue(w, "Channels", strconv.Itoa(s.Channels()))
}

func joinFloats(vs []float64, unit string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ") + " " + unit
}

// initCommand creates the init command for writing an example scene file.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example scene file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSceneFile
			if len(args) == 1 {
				path = args[0]
			}

			flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			if !force {
				flags |= os.O_EXCL
			}
			f, err := os.OpenFile(path, flags, 0o644)
			if err != nil {
				if os.IsExist(err) {
					return errors.Field(errors.ErrCodeInvalidParameter, "file", "%s exists (use --force to overwrite)", path)
				}
				return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
			}
			defer f.Close()

			if err := scene.Write(f, scene.Example()); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Example scene written")
			printFile(w, path)
			printNextStep(w, "Inspect it", "canort scene "+path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// probeCommand creates the probe command for finding the layer that contains
// given elevations.
func (c *CLI) probeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [file] [elevation...]",
		Short: "Find the layer containing each elevation",
		Long: `Find the layer containing each elevation (in m above ground).

Each layer covers [bottom, top); an elevation on an internal interface belongs
to the layer above it and the canopy top belongs to the top layer.`,
		Example: `  canort probe scene.toml 0 0.5 2.5`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				z, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Field(errors.ErrCodeInvalidType, "elevation", "not a number: %q", arg)
				}
				i, err := s.Canopy.IndexAtHeight(z)
				if err != nil {
					return err
				}
				l, err := s.Canopy.LayerAt(i)
				if err != nil {
					return err
				}
				printInfo(w, "z = %s m %s layer %s", arg, iconArrow, StyleNumber.Render(strconv.Itoa(i)))
				printDetail(w, "%.3f to %.3f m, LAI %.2f, T %.2f K", l.Bottom(), l.Top(), l.LeafAreaIndex(), l.Temperature())
			}
			return nil
		},
	}
	return cmd
}
