package demo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"sortdemo/src/utils"
)

func init() {
	utils.SetOutput(io.Discard)
}

func TestDefaultScenarios(t *testing.T) {
	scs := DefaultScenarios()
	require.Len(t, scs, 5)
	require.Equal(t, Scenario{
		Description: "Bubble Sort (int, 10000 elements, max 10000)",
		Strategy:    "bubble",
		Type:        "int",
		Length:      10000,
		Max:         10000,
	}, scs[0])
	require.Equal(t, "insertion", scs[1].Strategy)
	require.Equal(t, "float64", scs[2].Type)
	require.Equal(t, 1000.5, scs[2].Max)
	require.Equal(t, "float32", scs[3].Type)
	require.Equal(t, 50, scs[3].Length)
	require.Equal(t, 0, scs[4].Length)
}

func TestParseScenariosErrors(t *testing.T) {
	cases := map[string]string{
		"strategy": `[[scenario]]
description = "x"
strategy = "quick"
type = "int"`,
		"type": `[[scenario]]
description = "x"
strategy = "bubble"
type = "complex128"`,
		"length": `[[scenario]]
description = "x"
strategy = "bubble"
type = "int"
length = -1`,
		"unknown key": `[[scenario]]
description = "x"
strategy = "bubble"
type = "int"
seed = 3`,
		"syntax": `[[scenario]
description = "x"`,
	}
	for name, doc := range cases {
		_, err := ParseScenarios(doc)
		require.Error(t, err, name)
	}

	scs, err := ParseScenarios(`[[scenario]]
description = "tiny"
strategy = "insertion sort"
type = "uint16"
length = 3
max = 9.0`)
	require.NoError(t, err)
	require.Equal(t, []Scenario{{"tiny", "insertion sort", "uint16", 3, 9}}, scs)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf, Timed: true}
	res, err := r.Run(Scenario{Description: "small ints", Strategy: "bubble", Type: "int", Length: 20, Max: 50})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.True(t, res.Sorted)

	out := buf.String()
	require.Contains(t, out, "--- small ints ---")
	require.Contains(t, out, "Generating vector with length 20 and max value 50...")
	require.Contains(t, out, "Sort count for this demonstration: 1")
	require.Contains(t, out, "Sorting took: ")

	var sorted string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Sorted vector: ") {
			sorted = strings.TrimPrefix(line, "Sorted vector: ")
		}
	}
	require.Len(t, strings.Fields(sorted), 20)
}

func TestRunEmptyAndQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}
	res, err := r.Run(Scenario{Description: "empty", Strategy: "insertion", Type: "float32", Length: 0, Max: 100})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Contains(t, buf.String(), "Generated empty vector.")
	require.NotContains(t, buf.String(), "Sorting took")

	buf.Reset()
	r.Quiet = true
	_, err = r.Run(Scenario{Description: "big", Strategy: "insertion", Type: "int64", Length: 1500, Max: 10})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Original vector: (1,500 elements)")
	require.Contains(t, buf.String(), "Generating vector with length 1,500")
}

func TestRunUnsupported(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}
	_, err := r.Run(Scenario{Description: "words", Strategy: "bubble", Type: "string", Length: 4, Max: 1})
	require.True(t, errors.Is(err, ErrGenerate))
	require.NotContains(t, buf.String(), "Sorted vector")

	_, err = r.Run(Scenario{Description: "bad", Strategy: "heap", Type: "int"})
	require.Error(t, err)
}

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}
	results, err := r.RunAll([]Scenario{
		{Description: "first", Strategy: "bubble", Type: "uint8", Length: 5, Max: 300},
		{Description: "broken", Strategy: "bubble", Type: "string", Length: 5, Max: 1},
		{Description: "last", Strategy: "2", Type: "float64", Length: 5, Max: 1},
	})
	require.Error(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "first", results[0].Scenario.Description)
	require.Equal(t, "last", results[1].Scenario.Description)
	require.Equal(t, 2, strings.Count(buf.String(), separator))
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, "int8", 5, 10))
	require.Len(t, strings.Fields(buf.String()), 5)

	buf.Reset()
	require.NoError(t, Generate(&buf, "float64", 0, 10))
	require.Equal(t, "\n", buf.String())

	require.Error(t, Generate(&buf, "bool", 5, 10))
	require.Error(t, Generate(&buf, "string", 5, 10))
}
