package bintree

import (
	"os"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMain(m *testing.M) {
	quietTracing()
	os.Exit(m.Run())
}

func quietTracing() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
}

// traceTo redirects tracing to the test log for the duration of a test.
func traceTo(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return func() {
		teardown()
		quietTracing()
	}
}

func makeIntTree(t *testing.T, items ...int) *Tree[int] {
	t.Helper()
	tree, err := NewOrdered(items...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after construction: %v", err)
	}
	return tree
}

func collect(t *testing.T, r Reader[int], order Order) []int {
	t.Helper()
	var items []int
	err := r.Walk(order, func(item int) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		t.Fatalf("%s traversal failed: %v", order, err)
	}
	return items
}

// fixture holds the items used by the reference test tree, duplicates included.
var fixture = []int{56, 56, 54, 78, 73, 70, 80, 74, 85, 85, 83, 71, 62, 60, 12, 44, 57, 0, 1}
