package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeroute/pkg/pipeline"
	"github.com/matzehuels/mazeroute/pkg/render"
)

// renderOptions holds flags for the render command.
type renderOptions struct {
	format  string
	output  string
	noColor bool
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the solved maze with its cheapest routes",
		Long: fmt.Sprintf(`Render solves a maze and draws it.

Text formats (tight, costs, plain) are written to stdout unless --output is
given. The dot format exports the routes on cheapest paths as a Graphviz
digraph; svg and png run it through Graphviz and default to a file named
after the input.

Formats: %s`, strings.Join(formatNames(), ", ")),
		Example: `  mazeroute render input/day16.txt
  mazeroute render maze.txt --format costs
  mazeroute render maze.txt --format svg -o routes.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatTight), "output format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (text formats default to stdout)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "draw text formats without ANSI colours")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "render again and overwrite the cached artifact")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	ctx := cmd.Context()

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" && graphvizFormat(format) {
		output = defaultOutputPath(path, format)
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	text, err := pipeline.ReadInput(path)
	if err != nil {
		return err
	}

	renderOpts := pipeline.RenderOptions{
		Input:   text,
		Name:    path,
		Format:  format,
		Color:   !opts.noColor && output == "" && !graphvizFormat(format) && lipgloss.ColorProfile() != termenv.Ascii,
		Refresh: opts.refresh,
	}

	if output == "" {
		data, cached, err := runner.Render(ctx, renderOpts)
		if err != nil {
			return err
		}
		loggerFromContext(ctx).Debug("render finished", "format", format, "bytes", len(data), "cached", cached)
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	spin := newRenderSpinner(ctx, cmd.ErrOrStderr(), format, output)
	spin.start()
	data, cached, err := runner.Render(ctx, renderOpts)
	if err == nil {
		loggerFromContext(ctx).Debug("render finished", "format", format, "bytes", len(data), "cached", cached)
		err = os.WriteFile(output, data, 0o644)
		if err != nil {
			err = fmt.Errorf("write %s: %w", output, err)
		}
	}
	if err != nil {
		spin.stop()
		return err
	}
	spin.finish(newPrinter(cmd.OutOrStdout()))
	return nil
}

// graphvizFormat reports whether f goes through the Graphviz pipeline.
func graphvizFormat(f render.Format) bool {
	return f == render.FormatSVG || f == render.FormatPNG
}

// defaultOutputPath swaps the input's extension for the format's.
func defaultOutputPath(input string, f render.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + "." + string(f)
}

func formatNames() []string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names
}
