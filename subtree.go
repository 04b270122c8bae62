package bintree

import (
	"fmt"
	"iter"
)

// Subtree is a read-only view onto a node of a tree and its descendants.
//
// Subtrees are handed out for the children of a node. They do not own the
// nodes they reference, and they offer no operations which would modify
// them. A Subtree is valid only as long as its backing tree is not modified.
// Use Materialize to get an independent, mutable tree.
//
// The zero Subtree is empty.
type Subtree[T any] struct {
	root *Node[T]
	cfg  *Config[T]
}

// Root returns the node the view is anchored at, or nil for an empty view.
func (s Subtree[T]) Root() *Node[T] {
	return s.root
}

// IsEmpty reports whether the view contains no items.
func (s Subtree[T]) IsEmpty() bool {
	return s.root == nil
}

// Height returns the height of the subtree.
func (s Subtree[T]) Height() int {
	return s.root.Height()
}

// Len counts the items in the subtree. This is an O(n) operation.
func (s Subtree[T]) Len() int {
	cnt := 0
	for range s.All() {
		cnt++
	}
	return cnt
}

// Locate returns the node holding the item equal to target, or nil if there
// is none.
func (s Subtree[T]) Locate(target T) (*Node[T], error) {
	n := s.root
	for n != nil {
		c, err := n.cfg.compare(target, n.item)
		if err != nil {
			return nil, err
		}
		switch c {
		case 0:
			return n, nil
		case -1:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil, nil
}

// Contains reports whether an item equal to target is in the subtree.
func (s Subtree[T]) Contains(target T) (bool, error) {
	n, err := s.Locate(target)
	return n != nil, err
}

// InOrder calls visit for every item in ascending order.
// A visitor error stops the traversal and is returned.
func (s Subtree[T]) InOrder(visit Visitor[T]) error {
	return s.Walk(InOrder, visit)
}

// PreOrder calls visit for every node's item before the items of its
// children. A visitor error stops the traversal and is returned.
func (s Subtree[T]) PreOrder(visit Visitor[T]) error {
	return s.Walk(PreOrder, visit)
}

// PostOrder calls visit for every node's item after the items of its
// children. A visitor error stops the traversal and is returned.
func (s Subtree[T]) PostOrder(visit Visitor[T]) error {
	return s.Walk(PostOrder, visit)
}

// LevelOrder calls visit for every item, level by level from the root and
// from left to right within a level. A visitor error stops the traversal and
// is returned.
func (s Subtree[T]) LevelOrder(visit Visitor[T]) error {
	return s.Walk(LevelOrder, visit)
}

// Walk calls visit for every item in the given order.
func (s Subtree[T]) Walk(order Order, visit Visitor[T]) error {
	if order < InOrder || order > LevelOrder {
		return fmt.Errorf("%w: unknown traversal order %d", ErrInvalidConfig, order)
	}
	if s.root == nil || visit == nil {
		return nil
	}
	if order == LevelOrder {
		return walkLevels(s.root, visit)
	}
	w := walker[T]{order: order, visit: visit, maxDepth: s.root.cfg.MaxDepth}
	return w.walk(s.root, 1)
}

// All returns an iterator over the items of the subtree in ascending order.
//
// Iteration stops silently if the subtree is deeper than the configured
// maximum depth; use InOrder to get an error in this case.
func (s Subtree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root == nil {
			return
		}
		_ = s.InOrder(func(item T) error {
			if !yield(item) {
				return errStopIteration
			}
			return nil
		})
	}
}

// Materialize creates an independent tree holding the items of the view.
//
// The new tree consists of fresh nodes with the same shape as the subtree;
// items are shared. Modifying the new tree does not affect the tree the view
// belongs to, and vice versa.
func (s Subtree[T]) Materialize() (*Tree[T], error) {
	if s.root == nil {
		if s.cfg == nil {
			return nil, fmt.Errorf("%w: cannot materialize a view without configuration", ErrInvalidConfig)
		}
		return &Tree[T]{cfg: s.cfg}, nil
	}
	root, err := s.root.copyTree(1)
	if err != nil {
		return nil, err
	}
	t := &Tree[T]{cfg: s.root.cfg, root: root}
	t.size = t.View().Len()
	tracer().Debugf("bintree: materialized subtree with %d items", t.size)
	return t, nil
}
