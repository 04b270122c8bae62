package bintree

import (
	"strings"
	"testing"
)

func TestToDot(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3, 4)
	var sb strings.Builder
	if err := ToDot[int](tree, &sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT graph header")
	}
	for _, label := range []string{`2\nh=3 b=+1`, `4\nh=1 b=+0`, "shape=point"} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected DOT output to contain %q", label)
		}
	}
	if strings.Count(dot, "->") != 4 {
		t.Errorf("expected 4 edges (one to a missing child), have %d", strings.Count(dot, "->"))
	}
}

func TestToDotQuotesLabels(t *testing.T) {
	tree, err := NewOrdered(`C:\dir`, `say "hi"`)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := ToDot[string](tree, &sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	t.Logf("\n%s", dot)
	for _, label := range []string{`label="C:\\dir\nh=2 b=+1"`, `label="say \"hi\"\nh=1 b=+0"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected DOT output to contain %q", label)
		}
	}
}
