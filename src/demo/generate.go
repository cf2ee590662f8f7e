package demo

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"sortdemo/src/utils"
)

// Generate prints a random vector of the named element type to out.
func Generate(out io.Writer, typ string, length int, max float64) error {
	switch typ {
	case "int":
		return generate[int](out, length, max)
	case "int8":
		return generate[int8](out, length, max)
	case "int16":
		return generate[int16](out, length, max)
	case "int32":
		return generate[int32](out, length, max)
	case "int64":
		return generate[int64](out, length, max)
	case "uint":
		return generate[uint](out, length, max)
	case "uint8":
		return generate[uint8](out, length, max)
	case "uint16":
		return generate[uint16](out, length, max)
	case "uint32":
		return generate[uint32](out, length, max)
	case "uint64":
		return generate[uint64](out, length, max)
	case "float32":
		return generate[float32](out, length, max)
	case "float64":
		return generate[float64](out, length, max)
	case "string":
		return generate[string](out, length, max)
	default:
		return errors.Errorf("unknown element type %q", typ)
	}
}

func generate[T constraints.Ordered](out io.Writer, length int, max float64) error {
	data, err := utils.RandomVector[T](length, max)
	if err != nil {
		return err
	}
	return utils.PrintVector(out, data)
}
