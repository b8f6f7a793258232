package dsfixture

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDetect(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := Build()
	unbalanced := NewNode(1)
	unbalanced.Left = NewNode(2)
	var nilnode *Node
	for i, x := range []struct {
		v    interface{}
		kind Kind
	}{
		{f.Array, KindArray},
		{[]int{1}, KindArray},
		{f.HashMap, KindHashMap},
		{map[string]int{}, KindHashMap},
		{f.Root, KindBST},
		{unbalanced, KindTree},
		{nilnode, KindUnknown},
		{"hello", KindUnknown},
	} {
		if k := Detect(x.v); k != x.kind {
			t.Errorf("test %d: expected %s, detected %s", i, x.kind, k)
		}
	}
}

func TestLabel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	vars := Build().Variables()
	expected := []string{
		"myArray (array) [5]",
		"myHashMap (hashmap) [2]",
		"root (bst) [3]",
	}
	for i, v := range vars {
		if l := Label(v); l != expected[i] {
			t.Errorf("expected label %q, have %q", expected[i], l)
		}
	}
	if l := Label(Variable{Name: "x", Value: 3.14}); l != "x (unknown)" {
		t.Errorf("expected label without size, have %q", l)
	}
}

func TestElements(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	vars := Build().Variables()
	expected := [][]string{
		{"[0]: 10", "[1]: 20", "[2]: 30", "[3]: 40", "[4]: 50"},
		{"apple: 5", "banana: 3"},
		{"value: 50", "left: 30", "right: 70"},
	}
	for i, v := range vars {
		elems := Elements(v)
		if len(elems) != len(expected[i]) {
			t.Errorf("%s: expected %d elements, have %d", v.Name, len(expected[i]), len(elems))
			continue
		}
		for j, e := range elems {
			if e.String() != expected[i][j] {
				t.Errorf("%s: expected element %q, have %q", v.Name, expected[i][j], e)
			}
		}
	}
	leaf := Elements(Variable{Name: "leaf", Value: NewNode(7)})
	if leaf[1].Value != "nil" || leaf[2].Value != "nil" {
		t.Errorf("expected nil child slots for leaf, have %v", leaf)
	}
}

func TestDetectCyclicNodes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	loop := NewNode(1)
	loop.Left = loop
	if k := Detect(loop); k != KindUnknown {
		t.Errorf("expected self-referencing node to be unknown, detected %s", k)
	}
	if _, ok := Size(loop); ok {
		t.Errorf("expected no size for self-referencing node")
	}
	if l := Label(Variable{Name: "loop", Value: loop}); l != "loop (unknown)" {
		t.Errorf("unexpected label for self-referencing node: %q", l)
	}
	if loop.IsBST() {
		t.Errorf("self-referencing node should not be a BST")
	}
	if elems := Elements(Variable{Name: "loop", Value: loop}); len(elems) != 3 || elems[1].Value != "1" {
		t.Errorf("expected direct slots of self-referencing node, have %v", elems)
	}
}
