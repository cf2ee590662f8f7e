package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortValues,
		Category:  "TOOL",
		Usage:     "sort the numbers given as arguments",
		ArgsUsage: "VALUE...",
		Description: `
Sorts the values with the chosen strategy and prints them before and after.

Examples:
$ sortdemo sort 5 2 8 1 9 4 7 3 6
$ sortdemo sort --strategy insertion --float -- 10 0 5 -3.5 12`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   "bubble",
				Usage:   "sorting strategy (bubble, insertion)",
				EnvVars: []string{"SORTDEMO_STRATEGY"},
			},
			&cli.BoolFlag{
				Name:    "float",
				Aliases: []string{"f"},
				Usage:   "treat the values as floating point numbers",
			},
		},
	}
}

func sortValues(ctx *cli.Context) error {
	if err := setup(ctx, 1); err != nil {
		return err
	}
	strategy, err := sort.ParseStrategy(ctx.String("strategy"))
	if err != nil {
		return err
	}
	args := ctx.Args().Slice()
	out := ctx.App.Writer
	if ctx.Bool("float") {
		return sortParsed(out, strategy, args, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	}
	return sortParsed(out, strategy, args, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func sortParsed[T constraints.Ordered](out io.Writer, strategy sort.Strategy, args []string, parse func(string) (T, error)) error {
	data := make([]T, 0, len(args))
	for _, a := range args {
		v, err := parse(a)
		if err != nil {
			return errors.Wrapf(err, "parse value %q", a)
		}
		data = append(data, v)
	}

	sorter := sort.New[T](strategy)
	fmt.Fprintf(out, "Sorting list using %s...\n", sorter.Strategy())
	fmt.Fprint(out, "Original vector: ")
	if err := utils.PrintVector(out, data); err != nil {
		return err
	}
	sorter.Sort(data)
	fmt.Fprint(out, "Sorted vector: ")
	if err := utils.PrintVector(out, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "Sort count: %d\n", sorter.Invocations())
	return nil
}
