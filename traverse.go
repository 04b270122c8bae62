package bintree

import "errors"

// Visitor is called for items during a traversal. Returning an error stops
// the traversal.
type Visitor[T any] func(item T) error

// Order selects the sequence in which a traversal visits the nodes.
type Order int

// Traversal orders.
const (
	InOrder    Order = iota // left subtree, node, right subtree
	PreOrder                // node, left subtree, right subtree
	PostOrder               // left subtree, right subtree, node
	LevelOrder              // breadth first
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}

// errStopIteration ends an iterator's traversal early.
var errStopIteration = errors.New("stop iteration")

type walker[T any] struct {
	order    Order
	visit    Visitor[T]
	maxDepth int
}

func (w walker[T]) walk(n *Node[T], depth int) error {
	if n == nil {
		return nil
	}
	if depth > w.maxDepth {
		return n.cfg.checkDepth(depth)
	}
	if w.order == PreOrder {
		if err := w.visit(n.item); err != nil {
			return err
		}
	}
	if err := w.walk(n.left, depth+1); err != nil {
		return err
	}
	if w.order == InOrder {
		if err := w.visit(n.item); err != nil {
			return err
		}
	}
	if err := w.walk(n.right, depth+1); err != nil {
		return err
	}
	if w.order == PostOrder {
		return w.visit(n.item)
	}
	return nil
}

// walkLevels visits nodes breadth first. It works iteratively and does not
// need a depth guard.
func walkLevels[T any](root *Node[T], visit Visitor[T]) error {
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := visit(n.item); err != nil {
			return err
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return nil
}
