package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Lean classifies nodes by the sign of their balance factor.
type Lean int

// Classes of node balance.
const (
	Balanced Lean = iota
	LeftHeavy
	RightHeavy
)

func leanOf(balance int) Lean {
	switch {
	case balance < 0:
		return LeftHeavy
	case balance > 0:
		return RightHeavy
	}
	return Balanced
}

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // lines are cut at this many fixed-width positions
	Context   *uax11.Context // context for measuring character widths
}

// Printer draws trees with a colored balance indication.
type Printer struct {
	config *Config
	colors map[Lean]*color.Color
}

var setupGraphemes sync.Once

// NewPrinter creates a new printer.
//
// If config is nil, a configuration is derived from the current terminal.
// colors maps node balance to colors. It may contain just a subset of the
// classes; nodes of other classes are printed without color. If colors is
// nil, a default palette is used.
func NewPrinter(config *Config, colors map[Lean]*color.Color) *Printer {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if config == nil {
		config = ConfigFromTerminal()
	}
	cfg := *config // defaults must not leak into the client's config
	p := &Printer{config: &cfg}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if colors == nil {
		p.colors = makeDefaultPalette()
	} else {
		p.colors = colors
	}
	return p
}

func makeDefaultPalette() map[Lean]*color.Color {
	palette := map[Lean]*color.Color{
		LeftHeavy:  color.New(color.FgBlue),
		RightHeavy: color.New(color.FgRed),
	}
	return palette
}

// Fprint draws the tree or subtree r to w.
func Fprint[T any](w io.Writer, r bintree.Reader[T], p *Printer) error {
	if p == nil {
		p = NewPrinter(nil, nil)
	}
	root := r.Root()
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	d := drawing[T]{printer: p, w: w}
	d.node(root, "", "")
	return d.err
}

// Print draws the tree or subtree r to stdout.
func Print[T any](r bintree.Reader[T]) error {
	return Fprint(os.Stdout, r, nil)
}

type drawing[T any] struct {
	printer *Printer
	w       io.Writer
	err     error
}

// node draws the subtree at n. connector links the node to its parent,
// which is drawn below ("┌── ") or above ("└── ") the node.
func (d *drawing[T]) node(n *bintree.Node[T], prefix, connector string) {
	if n == nil || d.err != nil {
		return
	}
	above, below := prefix+"│   ", prefix+"│   "
	switch connector {
	case "┌── ":
		above = prefix + "    "
	case "└── ":
		below = prefix + "    "
	case "":
		above, below = "", ""
	}
	d.node(n.Right().Root(), above, "┌── ")
	d.line(prefix+connector, n)
	d.node(n.Left().Root(), below, "└── ")
}

func (d *drawing[T]) line(lead string, n *bintree.Node[T]) {
	if d.err != nil {
		return
	}
	label := fmt.Sprintf("%v", n.Item())
	suffix := fmt.Sprintf(" (%+d)", n.Balance())
	room := d.printer.config.LineWidth - d.printer.width(lead) - d.printer.width(suffix)
	label = d.printer.truncate(label, room)
	if _, d.err = io.WriteString(d.w, lead); d.err != nil {
		return
	}
	if c, ok := d.printer.colors[leanOf(n.Balance())]; ok {
		_, d.err = c.Fprint(d.w, label+suffix)
	} else {
		_, d.err = io.WriteString(d.w, label+suffix)
	}
	if d.err == nil {
		_, d.err = io.WriteString(d.w, "\n")
	}
}

func (p *Printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// truncate cuts s to at most room fixed-width positions, marking the cut
// with an ellipsis.
func (p *Printer) truncate(s string, room int) string {
	if p.width(s) <= room {
		return s
	}
	if room < 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && p.width(string(runes))+1 > room {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimSpace(string(runes)) + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w < 20 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
		config.Context = uax11.ContextFromEnvironment()
	} else {
		config.LineWidth = 80
		config.Context = uax11.LatinContext
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
