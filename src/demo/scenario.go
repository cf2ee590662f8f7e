package demo

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"sortdemo/src/sort"
)

//go:embed scenarios.toml
var defaultScenarios string

// Scenario describes one generate, sort and print run.
type Scenario struct {
	Description string  `toml:"description"`
	Strategy    string  `toml:"strategy"`
	Type        string  `toml:"type"`
	Length      int     `toml:"length"`
	Max         float64 `toml:"max"`
}

var elemTypes = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "string",
}

func (s Scenario) Validate() error {
	if _, err := sort.ParseStrategy(s.Strategy); err != nil {
		return errors.Wrapf(err, "scenario %q", s.Description)
	}
	known := false
	for _, t := range elemTypes {
		if s.Type == t {
			known = true
			break
		}
	}
	if !known {
		return errors.Errorf("scenario %q: unknown element type %q", s.Description, s.Type)
	}
	if s.Length < 0 {
		return errors.Errorf("scenario %q: negative length %d", s.Description, s.Length)
	}
	return nil
}

// ParseScenarios decodes [[scenario]] tables and validates each entry.
func ParseScenarios(data string) ([]Scenario, error) {
	var doc struct {
		Scenario []Scenario `toml:"scenario"`
	}
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode scenarios")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}
	for _, sc := range doc.Scenario {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Scenario, nil
}

// DefaultScenarios returns the built-in demo runs.
func DefaultScenarios() []Scenario {
	scs, err := ParseScenarios(defaultScenarios)
	if err != nil {
		panic(err)
	}
	return scs
}
