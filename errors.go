package bintree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bintree: invalid configuration")
	// ErrCompare signals that the comparator could not order a pair of items.
	ErrCompare = errors.New("bintree: comparison failed")
	// ErrDepthExceeded signals a recursion deeper than the configured limit.
	// It indicates a corrupted or pathologically unbalanced tree.
	ErrDepthExceeded = errors.New("bintree: recursion depth exceeded")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("bintree: invariant violated")
)
