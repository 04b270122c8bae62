package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/bintree/console"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// options holds the command line flags.
type options struct {
	strings bool
	remove  []string
	order   string
	dot     bool
	diagram bool
	check   bool
	debug   bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bintree [items...]",
		Short: "Builds an AVL tree from items and prints it",
		Long: `bintree inserts items into a self-balancing binary search tree,
optionally removes some of them, and prints the result as a traversal,
as a Graphviz DOT graph, or as a diagram.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.strings, "strings", "s", false, "Order items as strings instead of numbers")
	cmd.Flags().StringSliceVarP(&opts.remove, "remove", "r", nil, "Items to remove after construction")
	cmd.Flags().StringVarP(&opts.order, "order", "o", "in", "Traversal order (in, pre, post, level)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "Print the tree in Graphviz DOT format")
	cmd.Flags().BoolVar(&opts.diagram, "diagram", false, "Draw the tree as a diagram")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify the tree invariants")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Trace rebalancing operations")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.debug {
		bintree.T().SetTraceLevel(tracing.LevelDebug)
	}
	order, err := parseOrder(opts.order)
	if err != nil {
		return err
	}
	words := args
	if len(words) == 0 {
		if words, err = readWords(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if opts.strings {
		return process(cmd.OutOrStdout(), opts, order, words, opts.remove, func(s string) string { return s })
	}
	items, err := parseNumbers(words)
	if err != nil {
		return err
	}
	removals, err := parseNumbers(opts.remove)
	if err != nil {
		return err
	}
	return process(cmd.OutOrStdout(), opts, order, items, removals, formatNumber)
}

func process[T cmp.Ordered](out io.Writer, opts *options, order bintree.Order, items, removals []T,
	format func(T) string) error {
	tree, err := bintree.NewOrdered(items...)
	if err != nil {
		return err
	}
	for _, item := range removals {
		if _, err := tree.Remove(item); err != nil {
			return err
		}
	}
	if opts.check {
		if err := tree.Check(); err != nil {
			return err
		}
		fmt.Fprintf(out, "ok: %d items, height %d\n", tree.Len(), tree.Height())
	}
	switch {
	case opts.dot:
		return bintree.ToDot[T](tree, out)
	case opts.diagram:
		return console.Fprint[T](out, tree, console.NewPrinter(nil, nil))
	}
	var parts []string
	err = tree.Walk(order, func(item T) error {
		parts = append(parts, format(item))
		return nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, strings.Join(parts, " "))
	return err
}

func parseOrder(name string) (bintree.Order, error) {
	switch strings.ToLower(name) {
	case "in", "inorder", "in-order":
		return bintree.InOrder, nil
	case "pre", "preorder", "pre-order":
		return bintree.PreOrder, nil
	case "post", "postorder", "post-order":
		return bintree.PostOrder, nil
	case "level", "levelorder", "level-order":
		return bintree.LevelOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", name)
}

func parseNumbers(words []string) ([]float64, error) {
	numbers := make([]float64, 0, len(words))
	for _, w := range words {
		x, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q (use --strings for text items)", w)
		}
		numbers = append(numbers, x)
	}
	return numbers, nil
}

// formatNumber prints numbers in plain decimal notation, without exponent.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}
