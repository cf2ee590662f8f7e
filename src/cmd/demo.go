package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/demo"
)

func CmdDemo() *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Action:    runDemo,
		Category:  "TOOL",
		Usage:     "generate, sort and print random vectors",
		ArgsUsage: "",
		Description: `
Runs the built-in scenarios: each one generates a random vector, prints it,
sorts it with the selected strategy and prints the result with the sort count.

Examples:
$ sortdemo demo
# Only the float runs, without listing 10000 elements
$ sortdemo demo -s 2 -s 3 --brief
$ sortdemo demo --list`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "timed",
				Aliases: []string{"t"},
				Value:   true,
				Usage:   "report how long each sort took",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "list the built-in scenarios and exit",
			},
			&cli.IntSliceFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "run only the scenario at this index (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "brief",
				Usage: "print element counts instead of the elements",
			},
		},
	}
}

func runDemo(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	scenarios := demo.DefaultScenarios()
	out := ctx.App.Writer

	if ctx.Bool("list") {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tSTRATEGY\tTYPE\tLENGTH\tMAX\tDESCRIPTION")
		for i, sc := range scenarios {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%v\t%s\n", i, sc.Strategy, sc.Type, sc.Length, sc.Max, sc.Description)
		}
		return w.Flush()
	}

	if idx := ctx.IntSlice("scenario"); len(idx) > 0 {
		selected := make([]demo.Scenario, 0, len(idx))
		for _, i := range idx {
			if i < 0 || i >= len(scenarios) {
				return errors.Errorf("scenario index %d out of range [0, %d)", i, len(scenarios))
			}
			selected = append(selected, scenarios[i])
		}
		scenarios = selected
	}

	r := &demo.Runner{Out: out, Timed: ctx.Bool("timed"), Quiet: ctx.Bool("brief")}
	results, err := r.RunAll(scenarios)
	logger.Debugf("Completed %d of %d scenarios", len(results), len(scenarios))
	return err
}
