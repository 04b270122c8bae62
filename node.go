package bintree

// Node is the structural unit of a tree. It holds one item, links to two
// children, and cached values for its height and balance.
//
// Clients receive nodes from Locate and from Root. Nodes are read-only for
// clients; their children are exposed as Subtree views only.
type Node[T any] struct {
	item        T
	left, right *Node[T]
	height      int // 1 for a leaf
	balance     int // height(right) - height(left)
	// cfg is the configuration of the tree the node has been created for.
	// Views onto the children use it for searching.
	cfg *Config[T]
}

func newLeaf[T any](item T, cfg *Config[T]) *Node[T] {
	n := &Node[T]{item: item, cfg: cfg}
	n.setLeaf()
	return n
}

// Item returns the item stored in the node.
func (n *Node[T]) Item() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.item
}

// Left returns a read-only view onto the left subtree of n.
func (n *Node[T]) Left() Subtree[T] {
	if n == nil {
		return Subtree[T]{}
	}
	return Subtree[T]{root: n.left, cfg: n.cfg}
}

// Right returns a read-only view onto the right subtree of n.
func (n *Node[T]) Right() Subtree[T] {
	if n == nil {
		return Subtree[T]{}
	}
	return Subtree[T]{root: n.right, cfg: n.cfg}
}

// Height returns the height of the subtree rooted at n, where a leaf
// has height 1 and a nil node height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns height(right) - height(left).
func (n *Node[T]) Balance() int {
	if n == nil {
		return 0
	}
	return n.balance
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[T]) setLeaf() {
	n.left, n.right = nil, nil
	n.height = 1
	n.balance = 0
}

// update recomputes height and balance from the children.
func (n *Node[T]) update() {
	lh, rh := n.left.Height(), n.right.Height()
	n.height = 1 + max(lh, rh)
	n.balance = rh - lh
}

// settle recomputes n after a child has changed height and rotates if n has
// become unbalanced. It returns the new subtree root and whether the subtree
// height differs from oldHeight.
func (n *Node[T]) settle(oldHeight int) (*Node[T], bool) {
	n = n.rebalance()
	return n, n.height != oldHeight
}

// rebalance restores |balance| <= 1 at n.
//
// The child on the heavy side decides between a single and a double rotation:
// if it leans the other way, it is rotated first. A child with balance 0,
// which occurs only after removals, needs the single rotation.
func (n *Node[T]) rebalance() *Node[T] {
	n.update()
	switch {
	case n.balance < -1:
		if n.left.balance > 0 {
			tracer().Debugf("bintree: left-right case at %v", n.item)
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	case n.balance > 1:
		if n.right.balance < 0 {
			tracer().Debugf("bintree: right-left case at %v", n.item)
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	return n
}

// copyTree deep-copies the subtree rooted at n. Items are shared.
func (n *Node[T]) copyTree(depth int) (*Node[T], error) {
	if n == nil {
		return nil, nil
	}
	if err := n.cfg.checkDepth(depth); err != nil {
		return nil, err
	}
	c := &Node[T]{item: n.item, height: n.height, balance: n.balance, cfg: n.cfg}
	var err error
	if c.left, err = n.left.copyTree(depth + 1); err != nil {
		return nil, err
	}
	if c.right, err = n.right.copyTree(depth + 1); err != nil {
		return nil, err
	}
	return c, nil
}
