package bintree

import (
	"slices"
	"testing"
)

func TestNodeChildrenAreSubtrees(t *testing.T) {
	tree := makeIntTree(t, fixture...)
	right := tree.Root().Right()
	if got := collect(t, right, LevelOrder); !slices.Equal(got, []int{78, 74, 83, 80, 85}) {
		t.Errorf("unexpected right subtree: %v", got)
	}
	if right.Len() != 5 || right.Height() != 3 {
		t.Errorf("expected 5 items of height 3, have %d/%d", right.Len(), right.Height())
	}
	if found, _ := right.Contains(80); !found {
		t.Errorf("expected 80 in right subtree")
	}
	if found, _ := right.Contains(56); found {
		t.Errorf("expected 56 not to be in right subtree")
	}
	if err := right.Check(); err != nil {
		t.Error(err)
	}
	leaf, _ := tree.Locate(0)
	if !leaf.IsLeaf() || !leaf.Left().IsEmpty() || !leaf.Right().IsEmpty() {
		t.Errorf("expected 0 to be a leaf with empty children")
	}
}

func TestMaterializeIsIndependent(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	tree := makeIntTree(t, fixture...)
	right := tree.Root().Right()
	rightTree, err := right.Materialize()
	if err != nil {
		t.Fatal(err)
	}
	if rightTree.Len() != 5 {
		t.Errorf("expected 5 items in materialized tree, have %d", rightTree.Len())
	}
	if !slices.Equal(collect(t, rightTree, InOrder), collect(t, right, InOrder)) {
		t.Errorf("materialized tree differs from subtree")
	}
	if rightTree.Root() == right.Root() {
		t.Errorf("materialized tree shares nodes with the subtree")
	}
	for _, item := range []int{75, 73} {
		if _, err := rightTree.Insert(item); err != nil {
			t.Fatal(err)
		}
	}
	if got := collect(t, rightTree, LevelOrder); !slices.Equal(got, []int{78, 74, 83, 73, 75, 80, 85}) {
		t.Errorf("unexpected materialized tree after inserts: %v", got)
	}
	if err := rightTree.Check(); err != nil {
		t.Fatal(err)
	}
	if found, _ := right.Contains(73); found {
		t.Errorf("73 leaked into original subtree")
	}
	if found, _ := right.Contains(75); found {
		t.Errorf("75 leaked into original subtree")
	}
	if found, _ := tree.Contains(75); found {
		t.Errorf("75 leaked into original tree")
	}
	if _, err := rightTree.Remove(78); err != nil {
		t.Fatal(err)
	}
	if found, _ := tree.Contains(78); !found {
		t.Errorf("removal from materialized tree changed the original")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMaterializeEmptySubtree(t *testing.T) {
	tree := makeIntTree(t, 1)
	empty, err := tree.Root().Left().Materialize()
	if err != nil {
		t.Fatal(err)
	}
	if !empty.IsEmpty() {
		t.Errorf("expected empty tree")
	}
	if _, err := empty.Insert(7); err != nil {
		t.Errorf("expected materialized empty tree to be usable, got %v", err)
	}
	var zero Subtree[int]
	if _, err := zero.Materialize(); err == nil {
		t.Errorf("expected zero subtree not to materialize")
	}
}

func TestTreeMaterialize(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3, 4, 5)
	clone, err := tree.Materialize()
	if err != nil {
		t.Fatal(err)
	}
	_, _ = clone.Remove(3)
	if tree.Len() != 5 || clone.Len() != 4 {
		t.Errorf("expected lengths 5/4, have %d/%d", tree.Len(), clone.Len())
	}
	if err := clone.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestViewIsReadOnly(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3)
	var r Reader[int] = tree.View()
	if _, ok := r.(ReadWriter[int]); ok {
		t.Errorf("expected subtree view not to offer mutation")
	}
	var rw Reader[int] = tree
	if _, ok := rw.(ReadWriter[int]); !ok {
		t.Errorf("expected tree to offer mutation")
	}
}
