package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeroute/pkg/config"
	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/pipeline"
)

// runOptions holds flags for the run command.
type runOptions struct {
	config  string
	mode    string
	noCache bool
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured puzzle part and check test answers",
		Long: `Run reads a puzzle configuration listing (part, mode, file, expected)
entries and solves each enabled part in file order. Answers for test inputs
are compared with their expected values; answers for real inputs are only
printed.

The configuration is TOML. Files ending in .config are read in the line
format "part,mode,file,expected" instead.`,
		Example: `  mazeroute run
  mazeroute run --mode test
  mazeroute run --config input/day16.config --mode real`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", defaultConfig, "puzzle configuration file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "all", "which inputs to run: test, real or all")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runRun(cmd *cobra.Command, opts runOptions) error {
	ctx := cmd.Context()

	modes, err := parseModes(opts.mode)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	outcomes, runErr := runner.RunConfig(ctx, cfg, modes...)
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ran %d parts of %s", len(outcomes), cfg.Day))

	pr := newPrinter(cmd.OutOrStdout())
	if len(outcomes) == 0 {
		pr.warning("No enabled parts for mode %s", opts.mode)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcomeTable(outcomes))

	failed := 0
	for _, o := range outcomes {
		if !o.Passed() {
			failed++
		}
	}
	if failed > 0 {
		pr.failure("%d of %d parts failed", failed, len(outcomes))
		return runErr
	}
	pr.success("All %d parts passed", len(outcomes))
	return nil
}

// parseModes maps the --mode flag to the config modes to run. "all" runs
// test inputs before real ones.
func parseModes(s string) ([]config.Mode, error) {
	if strings.EqualFold(s, "all") {
		return []config.Mode{config.Test, config.Real}, nil
	}
	m, err := config.ParseMode(s)
	if err != nil {
		return nil, mrerrors.Wrap(mrerrors.ErrCodeInvalidConfig, err, "invalid --mode %q (want test, real or all)", s)
	}
	return []config.Mode{m}, nil
}

// outcomeTable lays the outcomes out as a rounded lipgloss table.
func outcomeTable(outcomes []pipeline.PartOutcome) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, outcomeRow(o))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Part", "Mode", "File", "Answer", "Expected", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			o := outcomes[row]
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case col == 0 && o.Passed():
				return base.Foreground(colorGreen)
			case col == 0:
				return base.Foreground(colorRed)
			case col == 4 && o.Passed():
				return base.Foreground(colorCyan)
			case col == 4:
				return base.Foreground(colorRed)
			case col >= 5:
				return base.Foreground(colorDim)
			}
			return base
		})

	return t.Render()
}

func outcomeRow(o pipeline.PartOutcome) []string {
	mark := iconSuccess
	if !o.Passed() {
		mark = iconError
	}

	answer := strconv.FormatInt(o.Answer, 10)
	var mismatch *mrerrors.MismatchError
	if o.Err != nil && !errors.As(o.Err, &mismatch) {
		answer = mrerrors.UserMessage(o.Err)
	}

	expected := "—"
	if o.Checked() {
		expected = strconv.FormatInt(o.Part.Expected, 10)
	}

	elapsed := o.Elapsed.Round(time.Microsecond).String()
	if o.Result != nil && o.Result.CacheHit {
		elapsed = iconCached
	}

	return []string{mark, strconv.Itoa(o.Part.Part), o.Part.Mode.String(), o.Part.File, answer, expected, elapsed}
}
