/*
Package bintree implements an ordered collection on top of a self-balancing
binary search tree (AVL tree).

Items are kept sorted by a client-supplied total order, a Comparator.
Lookup, insertion and removal run in O(log n). Balance is restored
incrementally on the way back up from every mutating descent: each recursive
step returns the (possibly rotated) root of its subtree together with a flag
telling whether the subtree height has changed, and fix-ups stop as soon as a
height stays the same.

	tree, err := bintree.NewOrdered(4, 2, 6, 1, 3, 5, 7)
	...
	tree.Insert(8)
	found, err := tree.Contains(3)
	err = tree.InOrder(func(item int) error {
		fmt.Println(item)
		return nil
	})

Inserting an item equal to one already present is a no-op, as is removing an
item not contained in the tree. Neither is an error.

# Subtrees

Children of a node are handed out as Subtree values. A Subtree is a
read-only window onto the nodes of another tree: it may be searched and
traversed, but not modified. Clients who need a mutable copy call
Subtree.Materialize, which creates an independent tree with fresh nodes
(the items themselves are shared).

A Subtree must not be used while its backing tree is being modified.
Trees are not safe for concurrent mutation; synchronization is the
responsibility of the client.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer. If the client has not configured one,
// errors are logged through the standard logger.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	return gtrace.CoreTracer
}

func tracer() tracing.Trace {
	return T()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
