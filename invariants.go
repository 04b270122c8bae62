package bintree

import "fmt"

// Check validates the structural invariants of the tree: cached heights and
// balance factors, the AVL balance condition, strict ordering of items, and
// the cached item count.
//
// Check is intended for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.cfg == nil {
		return fmt.Errorf("%w: tree without configuration", ErrInvalidTree)
	}
	count, err := t.View().check()
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidTree, t.size, count)
	}
	return nil
}

// Check validates the structural invariants of the subtree, see Tree.Check.
func (s Subtree[T]) Check() error {
	_, err := s.check()
	return err
}

func (s Subtree[T]) check() (int, error) {
	if s.root == nil {
		return 0, nil
	}
	if _, err := checkNode(s.root, 1); err != nil {
		return 0, err
	}
	count := 0
	var prev T
	err := s.InOrder(func(item T) error {
		if count > 0 {
			c, err := s.root.cfg.compare(prev, item)
			if err != nil {
				return err
			}
			if c >= 0 {
				return fmt.Errorf("%w: items out of order at #%d (%v, %v)", ErrInvalidTree, count, prev, item)
			}
		}
		prev = item
		count++
		return nil
	})
	return count, err
}

func checkNode[T any](n *Node[T], depth int) (height int, err error) {
	if n == nil {
		return 0, nil
	}
	if n.cfg == nil {
		return 0, fmt.Errorf("%w: node %v has no configuration", ErrInvalidTree, n.item)
	}
	if err := n.cfg.checkDepth(depth); err != nil {
		return 0, err
	}
	lh, err := checkNode(n.left, depth+1)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right, depth+1)
	if err != nil {
		return 0, err
	}
	height = 1 + max(lh, rh)
	if n.height != height {
		return 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrInvalidTree, n.item, n.height, height)
	}
	if n.balance != rh-lh {
		return 0, fmt.Errorf("%w: node %v has balance %d, expected %d", ErrInvalidTree, n.item, n.balance, rh-lh)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, fmt.Errorf("%w: node %v is unbalanced (%d)", ErrInvalidTree, n.item, n.balance)
	}
	return height, nil
}
