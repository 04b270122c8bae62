/*
Package console prints binary trees to terminals with a fixed-width font.

Trees are drawn sideways, with the root at the left margin, right subtrees
above and left subtrees below their parent node:

	    ┌── 7 (+0)
	┌── 6 (+0)
	│   └── 5 (+0)
	4 (+0)
	└── 2 (-1)
	    └── 1 (+0)

Every node is labelled with its item and its balance factor. Nodes leaning
to one side are colored, so that the shape of an AVL tree can be inspected
at a glance. Label widths are measured according to UAX#11 (character
width), which keeps diagrams aligned for items containing wide characters.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package console

import (
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer of package bintree.
func T() tracing.Trace {
	return bintree.T()
}
