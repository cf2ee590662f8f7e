package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

var logger = utils.GetLogger("demo")

var ErrGenerate = errors.New("failed to generate data")

const separator = "--------------------"

var header = color.New(color.Bold, color.FgCyan)

type Result struct {
	Scenario Scenario
	Count    int
	Elapsed  time.Duration
	Sorted   bool
}

// Runner prints demo runs to Out.
type Runner struct {
	Out   io.Writer
	Timed bool // report how long the sort took
	Quiet bool // skip the element listings
}

func (r *Runner) Run(sc Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := sort.ParseStrategy(sc.Strategy)
	switch sc.Type {
	case "int":
		return run[int](r, sc, strategy)
	case "int8":
		return run[int8](r, sc, strategy)
	case "int16":
		return run[int16](r, sc, strategy)
	case "int32":
		return run[int32](r, sc, strategy)
	case "int64":
		return run[int64](r, sc, strategy)
	case "uint":
		return run[uint](r, sc, strategy)
	case "uint8":
		return run[uint8](r, sc, strategy)
	case "uint16":
		return run[uint16](r, sc, strategy)
	case "uint32":
		return run[uint32](r, sc, strategy)
	case "uint64":
		return run[uint64](r, sc, strategy)
	case "float32":
		return run[float32](r, sc, strategy)
	case "float64":
		return run[float64](r, sc, strategy)
	default:
		return run[string](r, sc, strategy)
	}
}

// RunAll runs every scenario, carrying on past failures. The first error is returned.
func (r *Runner) RunAll(scenarios []Scenario) ([]*Result, error) {
	var results []*Result
	var first error
	for i, sc := range scenarios {
		if i > 0 {
			fmt.Fprintln(r.Out, separator)
		}
		res, err := r.Run(sc)
		if err != nil {
			logger.Errorf("Scenario %q: %s", sc.Description, err)
			if first == nil {
				first = err
			}
			continue
		}
		results = append(results, res)
	}
	return results, first
}

func run[T constraints.Ordered](r *Runner, sc Scenario, strategy sort.Strategy) (*Result, error) {
	out := r.Out
	header.Fprintf(out, "--- %s ---\n", sc.Description)
	fmt.Fprintf(out, "Generating vector with length %s and max value %v...\n", humanize.Comma(int64(sc.Length)), sc.Max)

	data, err := utils.RandomVector[T](sc.Length, sc.Max)
	if err != nil {
		return nil, errors.Wrapf(ErrGenerate, "%s", err)
	}
	if sc.Length > 0 && len(data) == 0 {
		return nil, ErrGenerate
	}
	if sc.Length == 0 {
		fmt.Fprintln(out, "Generated empty vector.")
	}

	printVector(r, out, "Original vector: ", data)

	sorter := sort.New[T](strategy)
	start := time.Now()
	sorter.Sort(data)
	elapsed := time.Since(start)

	printVector(r, out, "Sorted vector: ", data)
	fmt.Fprintf(out, "Sort count for this demonstration: %d\n", sorter.Invocations())
	if r.Timed {
		fmt.Fprintf(out, "Sorting took: %s milliseconds.\n", humanize.Comma(elapsed.Milliseconds()))
	}
	fmt.Fprintln(out)

	return &Result{
		Scenario: sc,
		Count:    sorter.Invocations(),
		Elapsed:  elapsed,
		Sorted:   slices.IsSorted(data),
	}, nil
}

func printVector[T any](r *Runner, out io.Writer, label string, data []T) {
	fmt.Fprint(out, label)
	if r.Quiet {
		fmt.Fprintf(out, "(%s elements)\n", humanize.Comma(int64(len(data))))
		return
	}
	if err := utils.PrintVector(out, data); err != nil {
		logger.Warnf("print vector: %s", err)
	}
}
