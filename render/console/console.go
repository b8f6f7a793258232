package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Printer outputs fixture variables and trees to a console with a fixed
// width font.
type Printer struct {
	colors  map[dsfixture.Kind]*color.Color
	leaf    *color.Color
	plain   bool           // no escape sequences at all
	context *uax11.Context // for measuring display widths
}

var setupGraphemes sync.Once

// NewPrinter creates a printer. colors maps kinds of data structures to the
// colors used for their labels. It may cover just a subset of the kinds;
// if it is nil, a default palette is used.
//
// Colors are switched off if stdout is not a terminal.
func NewPrinter(colors map[dsfixture.Kind]*color.Color) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{
		colors:  colors,
		leaf:    color.New(color.FgGreen),
		plain:   !term.IsTerminal(int(os.Stdout.Fd())),
		context: uax11.LatinContext,
	}
	if p.colors == nil {
		p.colors = makeDefaultPalette()
	}
	T().P("render", "console").Debugf("colored output = %v", !p.plain)
	return p
}

func makeDefaultPalette() map[dsfixture.Kind]*color.Color {
	return map[dsfixture.Kind]*color.Color{
		dsfixture.KindArray:   color.New(color.FgBlue),
		dsfixture.KindHashMap: color.New(color.FgMagenta),
		dsfixture.KindTree:    color.New(color.FgYellow),
		dsfixture.KindBST:     color.New(color.FgRed, color.Bold),
	}
}

// SetColor switches colored output on or off.
func (p *Printer) SetColor(on bool) {
	p.plain = !on
}

// Print outputs the variables and the tree of f to stdout.
func (p *Printer) Print(f *dsfixture.Fixture) error {
	if err := p.PrintVariables(os.Stdout, f.Variables()); err != nil {
		return err
	}
	return p.PrintTree(os.Stdout, f.Root)
}

// PrintVariables lists variables with their labels, followed by one
// indented row per element. Element values are aligned in a column.
func (p *Printer) PrintVariables(w io.Writer, vars []dsfixture.Variable) error {
	pw := &errWriter{w: w}
	for _, v := range vars {
		p.styled(pw, dsfixture.Label(v), p.colors[dsfixture.Detect(v.Value)])
		pw.WriteString("\n")
		elems := dsfixture.Elements(v)
		namewidth := 0
		for _, e := range elems {
			if wd := p.width(e.Name); wd > namewidth {
				namewidth = wd
			}
		}
		for _, e := range elems {
			pad := namewidth - p.width(e.Name)
			pw.WriteString("  " + e.Name + ":" + strings.Repeat(" ", pad+1) + e.Value + "\n")
		}
	}
	return pw.err
}

// PrintTree draws a tree, one node per line:
//
//     50
//     ├── 30
//     └── 70
//
// A missing child next to an existing sibling is shown as "nil".
func (p *Printer) PrintTree(w io.Writer, root *dsfixture.Node) error {
	if err := root.Validate(); err != nil {
		return err
	}
	pw := &errWriter{w: w}
	if root == nil {
		pw.WriteString("nil\n")
		return pw.err
	}
	p.node(pw, root)
	pw.WriteString("\n")
	p.children(pw, root, "")
	return pw.err
}

func (p *Printer) children(pw *errWriter, n *dsfixture.Node, prefix string) {
	if n.IsLeaf() {
		return
	}
	kids := []*dsfixture.Node{n.Left, n.Right}
	for i, kid := range kids {
		branch, indent := "├── ", "│   "
		if i == len(kids)-1 {
			branch, indent = "└── ", "    "
		}
		pw.WriteString(prefix + branch)
		if kid == nil {
			pw.WriteString("nil\n")
			continue
		}
		p.node(pw, kid)
		pw.WriteString("\n")
		p.children(pw, kid, prefix+indent)
	}
}

func (p *Printer) node(pw *errWriter, n *dsfixture.Node) {
	s := fmt.Sprintf("%d", n.Value)
	if n.IsLeaf() {
		p.styled(pw, s, p.leaf)
		return
	}
	pw.WriteString(s)
}

// styled outputs a string in color c, or plain if c is nil or colors are off.
func (p *Printer) styled(pw *errWriter, s string, c *color.Color) {
	if p.plain || c == nil {
		pw.WriteString(s)
		return
	}
	if pw.err == nil {
		_, pw.err = c.Fprint(pw.w, s)
	}
}

// width is the number of fixed-width positions s occupies on a console.
func (p *Printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// errWriter remembers the first write error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}
