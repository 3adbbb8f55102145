package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/render/stack"
	"github.com/jihenghu/canort/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; stdout when empty
	format   string // "svg" or "dot"
	detailed bool   // show LAI, temperature and leaf thickness per layer
	noSoil   bool   // omit the ground box even when the scene has soil
}

// renderCommand creates the render command for drawing a scene's layer stack.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: stack.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a scene's layer stack as SVG or DOT",
		Long: `Draw a scene's canopy as a stack of boxes, ground at the bottom.

Box heights follow layer thickness and fill colour darkens with leaf area
index. With no --output the diagram is written to stdout; with --output and no
--format the format is taken from the file extension.`,
		Example: `  canort render scene.toml -o canopy.svg --detailed
  canort render scene.toml -f dot | dot -Tpng > canopy.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && opts.output != "" {
				if ext := strings.TrimPrefix(filepath.Ext(opts.output), "."); ext != "" {
					opts.format = strings.ToLower(ext)
				}
			}
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show layer properties in each box")
	cmd.Flags().BoolVar(&opts.noSoil, "no-soil", false, "do not draw the soil")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scene.Import(ctx, path)
	if err != nil {
		return err
	}

	sopts := stack.Options{Title: s.Name, Detailed: opts.detailed}
	if !opts.noSoil {
		sopts.Soil = s.Soil
	}
	out, err := stack.Render(ctx, s.Canopy, opts.format, sopts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := writeFile(opts.output, out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d layers", s.Canopy.LayerCount()))
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// writeFile writes data to path, creating or truncating it.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}
