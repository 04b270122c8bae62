package bintree

import (
	"cmp"
	"fmt"
)

// DefaultMaxDepth is the recursion limit used if Config.MaxDepth is unset.
// An AVL tree of height 128 would hold more items than are addressable.
const DefaultMaxDepth = 128

// Comparator defines a total order on items.
//
// It returns a negative value if a < b, zero if a and b are equal and a
// positive value if a > b. Items which cannot be ordered produce an error,
// which aborts the operation in progress.
type Comparator[T any] func(a, b T) (int, error)

// Ordered returns a comparator for the natural order of T.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// Infallible lifts a plain comparison function to a Comparator.
func Infallible[T any](compare func(a, b T) int) Comparator[T] {
	return func(a, b T) (int, error) {
		return compare(a, b), nil
	}
}

// Config configures a tree.
type Config[T any] struct {
	// Compare orders the items of the tree. It is required.
	Compare Comparator[T]
	// MaxDepth limits the depth of recursive descents.
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, cfg.MaxDepth)
	}
	return nil
}

// compare calls the client comparator and normalizes its result to -1, 0, +1.
func (cfg *Config[T]) compare(a, b T) (int, error) {
	c, err := cfg.Compare(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCompare, err)
	}
	switch {
	case c < 0:
		return -1, nil
	case c > 0:
		return 1, nil
	}
	return 0, nil
}

func (cfg *Config[T]) checkDepth(depth int) error {
	if depth > cfg.MaxDepth {
		return fmt.Errorf("%w: depth %d > %d", ErrDepthExceeded, depth, cfg.MaxDepth)
	}
	return nil
}
