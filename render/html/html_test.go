package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRender(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := Render(&buf, dsfixture.Build()); err != nil {
		t.Fatal(err.Error())
	}
	out := buf.String()
	t.Logf("\n%s", out)
	for _, expected := range []string{
		`<div class="dsfixture">`,
		`<h2>Debug point!</h2>`,
		`<li data-kind="bst"><span class="label">root (bst) [3]</span>`,
		`<li>apple: 5</li>`,
		`<li class="node" data-value="50">50<ul>`,
		`<div>Nodes: 3</div><div>Leaves: 2</div><div>Height: 2</div>`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected HTML to contain %q", expected)
		}
	}
}

func TestTreeRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := dsfixture.Build()
	f.Root.Left.Right = dsfixture.NewNode(40)
	var buf bytes.Buffer
	if err := Render(&buf, f); err != nil {
		t.Fatal(err.Error())
	}
	root, err := TreeFromHTML(&buf)
	if err != nil {
		t.Fatal(err.Error())
	}
	in := root.InOrder()
	if len(in) != 4 || in[0] != 30 || in[1] != 40 || in[2] != 50 || in[3] != 70 {
		t.Errorf("expected in-order 30 40 50 70 after round trip, have %v", in)
	}
	if root.Left.Left != nil || root.Left.Right == nil {
		t.Errorf("child slots of 30 not restored")
	}
}

func TestTreeFromHTMLWithoutTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	_, err := TreeFromHTML(strings.NewReader(`<p>no tree here</p>`))
	if err != dsfixture.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments, have %v", err)
	}
}
