package bintree

import (
	"cmp"
	"fmt"
	"iter"
)

// Tree is an ordered collection of items, organized as an AVL tree.
//
// A Tree created with New or NewOrdered owns its nodes exclusively. Items are
// kept in the order given by the configured Comparator; items comparing equal
// to an item already in the tree are not inserted a second time.
type Tree[T any] struct {
	cfg  *Config[T]
	root *Node[T]
	size int // number of items
}

// Reader is the read-only capability set of trees and subtrees.
type Reader[T any] interface {
	Locate(item T) (*Node[T], error)
	Contains(item T) (bool, error)
	InOrder(visit Visitor[T]) error
	PreOrder(visit Visitor[T]) error
	PostOrder(visit Visitor[T]) error
	LevelOrder(visit Visitor[T]) error
	Walk(order Order, visit Visitor[T]) error
	All() iter.Seq[T]
	Root() *Node[T]
	Len() int
	IsEmpty() bool
	Height() int
	Materialize() (*Tree[T], error)
}

// ReadWriter adds mutation to the operations of Reader.
type ReadWriter[T any] interface {
	Reader[T]
	Insert(item T) (bool, error)
	Remove(item T) (bool, error)
}

var (
	_ ReadWriter[int] = (*Tree[int])(nil)
	_ Reader[int]     = Subtree[int]{}
)

// New creates a tree with a validated configuration and inserts items in
// sequence order.
//
// If inserting one of the items fails, construction is aborted and the
// error is returned.
func New[T any](cfg Config[T], items ...T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: &cfg}
	for i, item := range items {
		if _, err := t.Insert(item); err != nil {
			tracer().Errorf("bintree: construction aborted at item #%d: %v", i, err)
			return nil, fmt.Errorf("inserting item #%d: %w", i, err)
		}
	}
	return t, nil
}

// NewOrdered creates a tree ordered by the natural order of T.
func NewOrdered[T cmp.Ordered](items ...T) (*Tree[T], error) {
	return New(Config[T]{Compare: Ordered[T]()}, items...)
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return *t.cfg
}

// Insert adds item to the tree. It returns false if an equal item is
// already contained, in which case the tree is left unchanged.
func (t *Tree[T]) Insert(item T) (bool, error) {
	if t == nil || t.cfg == nil {
		return false, fmt.Errorf("%w: tree not created with New", ErrInvalidConfig)
	}
	ins := inserter[T]{cfg: t.cfg, item: item}
	root, _, err := ins.into(t.root, 1)
	if err != nil {
		return false, err
	}
	t.root = root
	if ins.added {
		t.size++
	}
	return ins.added, nil
}

// Remove deletes the item equal to target from the tree. It returns false
// if no such item is contained.
func (t *Tree[T]) Remove(target T) (bool, error) {
	if t == nil || t.cfg == nil {
		return false, fmt.Errorf("%w: tree not created with New", ErrInvalidConfig)
	}
	rm := remover[T]{cfg: t.cfg, target: target}
	root, _, err := rm.from(t.root, 1)
	if err != nil {
		return false, err
	}
	t.root = root
	if rm.removed {
		t.size--
	}
	return rm.removed, nil
}

// View returns a read-only view onto the complete tree.
func (t *Tree[T]) View() Subtree[T] {
	if t == nil {
		return Subtree[T]{}
	}
	return Subtree[T]{root: t.root, cfg: t.cfg}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T]) Height() int {
	return t.Root().Height()
}

// Locate returns the node holding the item equal to target, or nil.
func (t *Tree[T]) Locate(target T) (*Node[T], error) {
	return t.View().Locate(target)
}

// Contains reports whether an item equal to target is in the tree.
func (t *Tree[T]) Contains(target T) (bool, error) {
	return t.View().Contains(target)
}

// InOrder calls visit for every item in ascending order.
func (t *Tree[T]) InOrder(visit Visitor[T]) error {
	return t.View().InOrder(visit)
}

// PreOrder calls visit for every node's item before the items of its children.
func (t *Tree[T]) PreOrder(visit Visitor[T]) error {
	return t.View().PreOrder(visit)
}

// PostOrder calls visit for every node's item after the items of its children.
func (t *Tree[T]) PostOrder(visit Visitor[T]) error {
	return t.View().PostOrder(visit)
}

// LevelOrder calls visit for every item, level by level from the root.
func (t *Tree[T]) LevelOrder(visit Visitor[T]) error {
	return t.View().LevelOrder(visit)
}

// Walk calls visit for every item in the given order.
func (t *Tree[T]) Walk(order Order, visit Visitor[T]) error {
	return t.View().Walk(order, visit)
}

// All returns an iterator over all items in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return t.View().All()
}

// Materialize returns an independent deep copy of t.
func (t *Tree[T]) Materialize() (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	return t.View().Materialize()
}
