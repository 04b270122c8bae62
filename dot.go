package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree or subtree in Graphviz DOT
// format (for debugging purposes). Nodes are labelled with their item, the
// height and the balance factor.
func ToDot[T any](r Reader[T], w io.Writer) error {
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	var missing int
	var each func(n *Node[T], depth int) error
	each = func(n *Node[T], depth int) error {
		if err := n.cfg.checkDepth(depth); err != nil {
			return err
		}
		id := ids.alloc(n)
		label := fmt.Sprintf("%s\\nh=%d b=%+d", escapeDot(fmt.Sprint(n.item)), n.height, n.balance)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(n))
		if n.IsLeaf() {
			return nil
		}
		for _, child := range [2]*Node[T]{n.left, n.right} {
			if child == nil {
				missing++
				nilid := fmt.Sprintf("nil%d", missing)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", id, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, ids.alloc(child))
			if err := each(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if root := r.Root(); root != nil {
		if err := each(root, 1); err != nil {
			tracer().Errorf("bintree DOT: %s", err.Error())
			return err
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	return err
}

// escapeDot quotes backslashes and double quotes of an item label.
func escapeDot(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	return strings.ReplaceAll(label, `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[T any](n *Node[T]) string {
	s := ",style=filled"
	if n.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	switch {
	case n.balance < 0:
		s += ",fillcolor=\"#CCDDFF\"" // left-heavy
	case n.balance > 0:
		s += ",fillcolor=\"#FFDDCC\"" // right-heavy
	default:
		s += ",fillcolor=white"
	}
	return s
}
