package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/pipeline"
)

// solveOptions holds flags for the solve command.
type solveOptions struct {
	part    int
	noCache bool
	refresh bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the lowest score and seat count for a maze",
		Long: `Solve reads a maze file and prints the lowest score a reindeer can get
travelling from S to E (part 1) and the number of tiles on at least one
route with that score (part 2).

With --part only the requested answer is printed, which is handy in scripts.`,
		Example: `  mazeroute solve input/day16.txt
  mazeroute solve input/day16.txt --part 2
  mazeroute solve maze.txt --no-cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.part, "part", "p", 0, "print only the answer for part 1 or 2")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "solve again and overwrite the cached result")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOptions) error {
	ctx := cmd.Context()
	if opts.part != 0 {
		if err := mrerrors.ValidatePart(opts.part); err != nil {
			return err
		}
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

	prog := newProgress(loggerFromContext(ctx))
	res, err := runner.Execute(ctx, pipeline.Options{Input: text, Name: path, Refresh: opts.refresh})
	if err != nil {
		return err
	}
	prog.done("Solved " + path)

	out := cmd.OutOrStdout()
	if opts.part != 0 {
		_, err := fmt.Fprintln(out, res.Answer(opts.part))
		return err
	}

	pr := newPrinter(out)
	pr.answers(res)
	pr.nextStep("Draw the cheapest routes", "mazeroute render "+path)
	return nil
}
