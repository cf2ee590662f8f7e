package cmd

import (
	"github.com/urfave/cli/v2"

	"sortdemo/src/demo"
)

func CmdGenerate() *cli.Command {
	return &cli.Command{
		Name:     "generate",
		Action:   generate,
		Category: "TOOL",
		Usage:    "print a random vector",
		Description: `
Values are drawn uniformly from [0, max]; a negative max is treated as 0.

Examples:
$ sortdemo generate --length 20 --max 50
$ sortdemo generate --type float32 -n 5 -m 1.5`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Value: "int",
				Usage: "element type (int, int8..int64, uint, uint8..uint64, float32, float64)",
			},
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "number of elements",
			},
			&cli.Float64Flag{
				Name:    "max",
				Aliases: []string{"m"},
				Value:   100,
				Usage:   "largest value to draw",
			},
		},
	}
}

func generate(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	return demo.Generate(ctx.App.Writer, ctx.String("type"), ctx.Int("length"), ctx.Float64("max"))
}
