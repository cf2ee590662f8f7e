package sort

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"sortdemo/src/utils"
)

var logger = utils.GetLogger("sorter")

var ErrUnknownStrategy = errors.New("unknown sorting strategy")

// Strategy selects the algorithm a Sorter runs.
type Strategy int

const (
	BubbleSort    Strategy = 1
	InsertionSort Strategy = 2
	DefaultSort            = BubbleSort
)

func (s Strategy) String() string {
	switch s {
	case BubbleSort:
		return "Bubble Sort"
	case InsertionSort:
		return "Insertion Sort"
	default:
		return "Unknown Sort Method"
	}
}

func (s Strategy) valid() bool {
	return s == BubbleSort || s == InsertionSort
}

// ParseStrategy accepts "bubble", "insertion" (any case, optional "sort"
// suffix) or the numeric value of a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, "sort"), " ")
	n = strings.TrimSuffix(n, "-")
	n = strings.TrimSuffix(n, "_")
	switch n {
	case "bubble":
		return BubbleSort, nil
	case "insertion":
		return InsertionSort, nil
	}
	if v, err := strconv.Atoi(n); err == nil && Strategy(v).valid() {
		return Strategy(v), nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Sorter sorts slices in place with a selectable strategy and counts how
// many sorts it has completed. It is not safe for concurrent use.
//
// The zero value has no strategy and no ordering; Sort on it reports an
// error and leaves the data alone. Use New or NewFunc.
type Sorter[T any] struct {
	strategy Strategy
	less     func(a, b T) bool
	count    int
}

// New returns a Sorter ordering elements with <.
func New[T constraints.Ordered](strategy Strategy) *Sorter[T] {
	return NewFunc(strategy, func(a, b T) bool { return a < b })
}

// NewFunc returns a Sorter ordering elements with less, which must be a
// strict weak ordering.
func NewFunc[T any](strategy Strategy, less func(a, b T) bool) *Sorter[T] {
	s := &Sorter[T]{less: less}
	s.SetStrategy(strategy)
	return s
}

// SetStrategy switches the algorithm. Unknown values fall back to bubble sort.
func (s *Sorter[T]) SetStrategy(strategy Strategy) {
	switch strategy {
	case BubbleSort, InsertionSort:
		s.strategy = strategy
	default:
		logger.Warnf("Unknown sorting type (%d). Defaulting to %s.", int(strategy), BubbleSort)
		s.strategy = BubbleSort
	}
}

func (s *Sorter[T]) Strategy() Strategy {
	return s.strategy
}

// Sort orders data non-descending in place and bumps the invocation count.
func (s *Sorter[T]) Sort(data []T) {
	if s.less == nil || !s.strategy.valid() {
		logger.Errorf("No sorting method is selected!")
		return
	}
	logger.Debugf("Sorting %d elements using %s", len(data), s.strategy)
	switch s.strategy {
	case BubbleSort:
		Bubble(data, s.less)
	case InsertionSort:
		Insertion(data, s.less)
	}
	s.count++
}

// Invocations returns the number of completed Sort calls.
func (s *Sorter[T]) Invocations() int {
	return s.count
}
