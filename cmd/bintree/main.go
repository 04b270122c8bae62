/*
Command bintree builds an AVL tree from a list of items and prints it.

Items are taken from the command line or, if there are none, from stdin
(separated by whitespace). They are ordered numerically unless --strings
is given.

	bintree 56 54 78 73 70 80 74
	bintree --order pre --remove 73,80 56 54 78 73 70 80 74
	echo "pear apple fig" | bintree --strings --diagram

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
