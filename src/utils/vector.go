package utils

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var vlogger = GetLogger("vector")

var ErrUnsupportedType = errors.New("data type not supported for random generation")

// RandomVector returns length elements drawn uniformly from [0, maxValue],
// seeded from the current time.
func RandomVector[T constraints.Ordered](length int, maxValue float64) ([]T, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return RandomVectorFrom[T](rng, length, maxValue)
}

// RandomVectorFrom is RandomVector with an explicit source.
//
// Integer kinds are drawn from [0, floor(maxValue)], with maxValue capped at
// the largest value T holds. Float kinds are drawn from [0, maxValue).
// Negative maxValue is treated as 0. Other kinds yield ErrUnsupportedType.
func RandomVectorFrom[T constraints.Ordered](rng *rand.Rand, length int, maxValue float64) ([]T, error) {
	if length <= 0 {
		return []T{}, nil
	}
	maxValue = math.Max(0, maxValue)

	var zero T
	typ := reflect.TypeOf(zero)
	var fill func(v reflect.Value)
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bound := uint64(1)<<(typ.Bits()-1) - 1
		bound = intBound(maxValue, bound)
		fill = func(v reflect.Value) { v.SetInt(int64(uniformUint(rng, bound))) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bound := uint64(math.MaxUint64) >> (64 - typ.Bits())
		bound = intBound(maxValue, bound)
		fill = func(v reflect.Value) { v.SetUint(uniformUint(rng, bound)) }
	case reflect.Float32, reflect.Float64:
		if typ.Kind() == reflect.Float32 {
			maxValue = math.Min(maxValue, math.MaxFloat32)
		}
		fill = func(v reflect.Value) { v.SetFloat(rng.Float64() * maxValue) }
	default:
		vlogger.Errorf("Data type %s not supported for random generation.", typ)
		return nil, errors.Wrapf(ErrUnsupportedType, "%s", typ)
	}

	data := make([]T, length)
	for i := range data {
		fill(reflect.ValueOf(&data[i]).Elem())
	}
	return data, nil
}

func intBound(maxValue float64, limit uint64) uint64 {
	if maxValue >= float64(limit) {
		return limit
	}
	return uint64(maxValue)
}

// uniformUint returns a value in [0, bound].
func uniformUint(rng *rand.Rand, bound uint64) uint64 {
	if bound == math.MaxUint64 {
		return rng.Uint64()
	}
	n := bound + 1
	if n <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(n)))
	}
	for {
		if v := rng.Uint64(); v < n {
			return v
		}
	}
}

// PrintVector writes the elements of data separated by spaces, then a newline.
func PrintVector[T any](w io.Writer, data []T) error {
	var b strings.Builder
	for i, elem := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, elem)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
