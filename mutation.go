package bintree

// inserter carries the state of a single insertion through the recursive
// descent.
type inserter[T any] struct {
	cfg   *Config[T]
	item  T
	added bool // a new node has been attached
}

// into inserts ins.item into the subtree rooted at n. It returns the new
// subtree root and whether the subtree height has changed.
//
// Comparisons are done on the way down, before anything is attached or
// rotated, so a failing comparator leaves the subtree as it was.
func (ins *inserter[T]) into(n *Node[T], depth int) (*Node[T], bool, error) {
	if n == nil {
		// the new leaf must itself be reachable within the depth limit
		if err := ins.cfg.checkDepth(depth); err != nil {
			return nil, false, err
		}
		ins.added = true
		return newLeaf(ins.item, ins.cfg), true, nil
	}
	if err := ins.cfg.checkDepth(depth); err != nil {
		return n, false, err
	}
	c, err := ins.cfg.compare(ins.item, n.item)
	if err != nil {
		return n, false, err
	}
	oldHeight := n.height
	switch c {
	case 0: // duplicate
		return n, false, nil
	case -1:
		child, grown, err := ins.into(n.left, depth+1)
		if err != nil {
			return n, false, err
		}
		n.left = child
		if !grown {
			return n, false, nil
		}
	default:
		child, grown, err := ins.into(n.right, depth+1)
		if err != nil {
			return n, false, err
		}
		n.right = child
		if !grown {
			return n, false, nil
		}
	}
	root, changed := n.settle(oldHeight)
	return root, changed, nil
}

// remover carries the state of a single removal through the recursive descent.
type remover[T any] struct {
	cfg     *Config[T]
	target  T
	removed bool
}

// from removes rm.target from the subtree rooted at n. It returns the new
// subtree root and whether the subtree height has changed.
func (rm *remover[T]) from(n *Node[T], depth int) (*Node[T], bool, error) {
	if n == nil { // not found
		return nil, false, nil
	}
	if err := rm.cfg.checkDepth(depth); err != nil {
		return n, false, err
	}
	c, err := rm.cfg.compare(rm.target, n.item)
	if err != nil {
		return n, false, err
	}
	oldHeight := n.height
	switch c {
	case 0:
		rm.removed = true
		return rm.unlink(n, depth)
	case -1:
		child, shrunk, err := rm.from(n.left, depth+1)
		if err != nil {
			return n, false, err
		}
		n.left = child
		if !shrunk {
			return n, false, nil
		}
	default:
		child, shrunk, err := rm.from(n.right, depth+1)
		if err != nil {
			return n, false, err
		}
		n.right = child
		if !shrunk {
			return n, false, nil
		}
	}
	root, changed := n.settle(oldHeight)
	return root, changed, nil
}

// unlink removes the item of n from the tree.
//
// A leaf is dropped. A node with a single child takes over the child's item
// and becomes a leaf, keeping its identity. A node with two children takes
// over the item of its in-order predecessor or successor, whichever lives in
// the taller subtree (the successor if both are of equal height), and the
// node holding that item is detached.
func (rm *remover[T]) unlink(n *Node[T], depth int) (*Node[T], bool, error) {
	if n.IsLeaf() {
		return nil, true, nil
	}
	if n.left == nil || n.right == nil {
		adoptChild(n)
		return n, true, nil
	}
	oldHeight := n.height
	if n.balance < 0 {
		child, item, shrunk, err := detachMax(n.left, depth+1)
		if err != nil {
			return n, false, err
		}
		n.item, n.left = item, child
		if !shrunk {
			return n, false, nil
		}
	} else {
		child, item, shrunk, err := detachMin(n.right, depth+1)
		if err != nil {
			return n, false, err
		}
		n.item, n.right = item, child
		if !shrunk {
			return n, false, nil
		}
	}
	root, changed := n.settle(oldHeight)
	return root, changed, nil
}

// adoptChild moves the item of the only child of n into n and discards the
// child. In a balanced tree this child is a leaf.
func adoptChild[T any](n *Node[T]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	assert(child.IsLeaf(), "single child of a balanced node must be a leaf")
	n.item = child.item
	n.setLeaf()
}

// detachMax removes the rightmost node of the subtree rooted at n and
// returns the new subtree root, the removed item, and whether the subtree
// height has changed.
func detachMax[T any](n *Node[T], depth int) (*Node[T], T, bool, error) {
	if err := n.cfg.checkDepth(depth); err != nil {
		var zero T
		return n, zero, false, err
	}
	if n.right == nil {
		item := n.item
		if n.left == nil {
			return nil, item, true, nil
		}
		adoptChild(n)
		return n, item, true, nil
	}
	oldHeight := n.height
	child, item, shrunk, err := detachMax(n.right, depth+1)
	if err != nil {
		return n, item, false, err
	}
	n.right = child
	if !shrunk {
		return n, item, false, nil
	}
	root, changed := n.settle(oldHeight)
	return root, item, changed, nil
}

// detachMin is the mirror image of detachMax.
func detachMin[T any](n *Node[T], depth int) (*Node[T], T, bool, error) {
	if err := n.cfg.checkDepth(depth); err != nil {
		var zero T
		return n, zero, false, err
	}
	if n.left == nil {
		item := n.item
		if n.right == nil {
			return nil, item, true, nil
		}
		adoptChild(n)
		return n, item, true, nil
	}
	oldHeight := n.height
	child, item, shrunk, err := detachMin(n.left, depth+1)
	if err != nil {
		return n, item, false, err
	}
	n.left = child
	if !shrunk {
		return n, item, false, nil
	}
	root, changed := n.settle(oldHeight)
	return root, item, changed, nil
}
