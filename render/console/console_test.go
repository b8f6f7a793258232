package console

import (
	"bytes"
	"testing"

	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrintVariables(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := NewPrinter(nil)
	p.SetColor(false)
	var buf bytes.Buffer
	if err := p.PrintVariables(&buf, dsfixture.Build().Variables()); err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("\n%s", buf.String())
	expected := `myArray (array) [5]
  [0]: 10
  [1]: 20
  [2]: 30
  [3]: 40
  [4]: 50
myHashMap (hashmap) [2]
  apple:  5
  banana: 3
root (bst) [3]
  value: 50
  left:  30
  right: 70
`
	if buf.String() != expected {
		t.Errorf("unexpected variable listing:\n%s", buf.String())
	}
}

func TestPrintTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := NewPrinter(nil)
	p.SetColor(false)
	var buf bytes.Buffer
	if err := p.PrintTree(&buf, dsfixture.Build().Root); err != nil {
		t.Fatal(err.Error())
	}
	expected := "50\n├── 30\n└── 70\n"
	if buf.String() != expected {
		t.Errorf("unexpected tree drawing:\n%s", buf.String())
	}
}

func TestPrintTreeMissingChild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	root := dsfixture.NewNode(50)
	root.Left = dsfixture.NewNode(30)
	root.Left.Right = dsfixture.NewNode(40)
	p := NewPrinter(nil)
	p.SetColor(false)
	var buf bytes.Buffer
	if err := p.PrintTree(&buf, root); err != nil {
		t.Fatal(err.Error())
	}
	expected := "50\n├── 30\n│   ├── nil\n│   └── 40\n└── nil\n"
	if buf.String() != expected {
		t.Errorf("unexpected tree drawing:\n%s", buf.String())
	}
}

func TestPrintSharedTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	kid := dsfixture.NewNode(1)
	root := &dsfixture.Node{Value: 2, Left: kid, Right: kid}
	var buf bytes.Buffer
	if err := NewPrinter(nil).PrintTree(&buf, root); err != dsfixture.ErrSharedNode {
		t.Errorf("expected ErrSharedNode, have %v", err)
	}
}
