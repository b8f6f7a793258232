/*
Package html renders the data structures of a fixture as an HTML fragment,
suitable for embedding into a web view of a debugger front end.

The fragment contains the list of variables in scope, the binary tree as
nested lists and a block of tree statistics. TreeFromHTML reads the tree
back from such a fragment.
*/
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Document creates an HTML fragment for fixture f, rooted in a
// <div class="dsfixture"> element.
func Document(f *dsfixture.Fixture) *html.Node {
	div := element(atom.Div, "dsfixture")
	h := element(atom.H2, "")
	h.AppendChild(text(dsfixture.DebugPoint))
	div.AppendChild(h)
	div.AppendChild(variableList(f.Variables()))
	tree := element(atom.Ul, "tree")
	if f.Root != nil {
		tree.AppendChild(treeItem(f.Root))
	}
	div.AppendChild(tree)
	div.AppendChild(statsBlock(f.Root.Stats()))
	return div
}

// Render writes the HTML fragment for fixture f to w.
func Render(w io.Writer, f *dsfixture.Fixture) error {
	if err := f.Root.Validate(); err != nil {
		return err
	}
	if err := html.Render(w, Document(f)); err != nil {
		return fmt.Errorf("rendering fixture HTML: %w", err)
	}
	return nil
}

func variableList(vars []dsfixture.Variable) *html.Node {
	ul := element(atom.Ul, "variables")
	for _, v := range vars {
		li := element(atom.Li, "")
		li.Attr = append(li.Attr, html.Attribute{Key: "data-kind", Val: dsfixture.Detect(v.Value).String()})
		label := element(atom.Span, "label")
		label.AppendChild(text(dsfixture.Label(v)))
		li.AppendChild(label)
		if elems := dsfixture.Elements(v); len(elems) > 0 {
			sub := element(atom.Ul, "")
			for _, e := range elems {
				eli := element(atom.Li, "")
				eli.AppendChild(text(e.String()))
				sub.AppendChild(eli)
			}
			li.AppendChild(sub)
		}
		ul.AppendChild(li)
	}
	return ul
}

// treeItem creates a list item for node n. Inner nodes always carry both
// child slots, an empty slot being <li class="nil">.
func treeItem(n *dsfixture.Node) *html.Node {
	if n == nil {
		return element(atom.Li, "nil")
	}
	li := element(atom.Li, "node")
	li.Attr = append(li.Attr, html.Attribute{Key: "data-value", Val: strconv.Itoa(n.Value)})
	li.AppendChild(text(strconv.Itoa(n.Value)))
	if !n.IsLeaf() {
		ul := element(atom.Ul, "")
		ul.AppendChild(treeItem(n.Left))
		ul.AppendChild(treeItem(n.Right))
		li.AppendChild(ul)
	}
	return li
}

func statsBlock(st dsfixture.TreeStats) *html.Node {
	div := element(atom.Div, "stats")
	for _, line := range []string{
		fmt.Sprintf("Nodes: %d", st.NodeCount),
		fmt.Sprintf("Leaves: %d", st.LeafCount),
		fmt.Sprintf("Height: %d", st.Height),
	} {
		d := element(atom.Div, "")
		d.AppendChild(text(line))
		div.AppendChild(d)
	}
	return div
}

// --- Reading trees back ----------------------------------------------------

// TreeFromHTML parses an HTML fragment as produced by Render and
// reconstructs the tree from its <ul class="tree"> list. An empty tree list
// yields a nil tree.
func TreeFromHTML(input io.Reader) (*dsfixture.Node, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if ul := findClass(n, atom.Ul, "tree"); ul != nil {
			item := firstChildElement(ul, atom.Li)
			if item == nil {
				return nil, nil
			}
			return readItem(item)
		}
	}
	T().Errorf("no tree list found in HTML input")
	return nil, dsfixture.ErrIllegalArguments
}

func readItem(li *html.Node) (*dsfixture.Node, error) {
	if hasClass(li, "nil") {
		return nil, nil
	}
	v, err := strconv.Atoi(attr(li, "data-value"))
	if err != nil {
		return nil, fmt.Errorf("tree node without value: %w", err)
	}
	node := dsfixture.NewNode(v)
	ul := firstChildElement(li, atom.Ul)
	if ul == nil {
		return node, nil
	}
	var slots []*html.Node
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			slots = append(slots, c)
		}
	}
	if len(slots) != 2 {
		return nil, fmt.Errorf("tree node %d has %d child slots: %w", v, len(slots),
			dsfixture.ErrIllegalArguments)
	}
	if node.Left, err = readItem(slots[0]); err != nil {
		return nil, err
	}
	if node.Right, err = readItem(slots[1]); err != nil {
		return nil, err
	}
	return node, nil
}

// --- Helpers ---------------------------------------------------------------

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	return attr(n, "class") == class
}

func findClass(n *html.Node, a atom.Atom, class string) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findClass(c, a, class); found != nil {
			return found
		}
	}
	return nil
}

func firstChildElement(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}
