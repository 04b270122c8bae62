package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	color.NoColor = true
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var fixtureArgs = []string{"56", "56", "54", "78", "73", "70", "80", "74", "85", "85",
	"83", "71", "62", "60", "12", "44", "57", "0", "1"}

func TestTraversalOutput(t *testing.T) {
	out, err := execute(t, "", fixtureArgs...)
	require.NoError(t, err)
	assert.Equal(t, "0 1 12 44 54 56 57 60 62 70 71 73 74 78 80 83 85\n", out)

	out, err = execute(t, "", append([]string{"--order", "level"}, fixtureArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "73 56 78 44 62 74 83 1 54 60 70 80 85 0 12 57 71\n", out)

	out, err = execute(t, "", append([]string{"-o", "post"}, fixtureArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "0 12 1 54 44 57 60 71 70 62 56 74 80 85 83 78 73\n", out)
}

func TestRemoveAndCheck(t *testing.T) {
	out, err := execute(t, "", "--check", "--remove", "4", "--order", "pre", "4", "2", "6", "1", "3", "5", "7")
	require.NoError(t, err)
	assert.Equal(t, "ok: 6 items, height 3\n5 2 1 3 6 7\n", out)
}

func TestStringsFromStdin(t *testing.T) {
	out, err := execute(t, "pear apple\nfig kiwi apple\n", "--strings")
	require.NoError(t, err)
	assert.Equal(t, "apple fig kiwi pear\n", out)
}

func TestNumbersPrintedInDecimal(t *testing.T) {
	out, err := execute(t, "1000000 2.5\n-0.125 1e3\n")
	require.NoError(t, err)
	assert.Equal(t, "-0.125 2.5 1000 1000000\n", out)
}

func TestDotOutput(t *testing.T) {
	out, err := execute(t, "", "--dot", "2", "1", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.Equal(t, 2, strings.Count(out, "->"))
}

func TestDiagramOutput(t *testing.T) {
	out, err := execute(t, "", "--diagram", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "┌── 3 (+0)\n2 (+0)\n└── 1 (+0)\n", out)
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "", "1", "two")
	assert.ErrorContains(t, err, "not a number")

	_, err = execute(t, "", "--order", "sideways", "1")
	assert.ErrorContains(t, err, "unknown traversal order")
}
