package bintree

// rotateLeft promotes the right child of n to subtree root and returns it.
//
//	  n                r
//	 / \              / \
//	a   r     =>     n   c
//	   / \          / \
//	  b   c        a   b
//
// If n has no right child, n is returned unchanged.
func (n *Node[T]) rotateLeft() *Node[T] {
	if n == nil || n.right == nil {
		return n
	}
	tracer().Debugf("bintree: rotate left at %v", n.item)
	r := n.right
	n.right = r.left
	n.update() // n first, r's height depends on it
	r.left = n
	r.update()
	return r
}

// rotateRight is the mirror image of rotateLeft.
func (n *Node[T]) rotateRight() *Node[T] {
	if n == nil || n.left == nil {
		return n
	}
	tracer().Debugf("bintree: rotate right at %v", n.item)
	l := n.left
	n.left = l.right
	n.update()
	l.right = n
	l.update()
	return l
}
