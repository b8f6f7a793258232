package dsfixture

import (
	"fmt"
	"io"
)

// DebugPoint is the marker line the fixture prints. It is a literal, not a
// format string.
const DebugPoint = "Debug point!"

// Sequence is an ordered list of integers, never mutated after construction.
type Sequence []int

// Mapping maps string keys to integer counts.
type Mapping map[string]int

// Fixture bundles the three structures of the debugging fixture.
type Fixture struct {
	Array   Sequence
	HashMap Mapping
	Root    *Node
}

// Build constructs the fixture. Every call returns fresh structures; nothing
// is shared between two fixtures.
func Build() *Fixture {
	myArray := Sequence{10, 20, 30, 40, 50}
	myHashMap := Mapping{}
	myHashMap["apple"] = 5
	myHashMap["banana"] = 3

	root := NewNode(50)
	root.Left = NewNode(30)
	root.Right = NewNode(70)

	return &Fixture{
		Array:   myArray,
		HashMap: myHashMap,
		Root:    root,
	}
}

// Run builds the fixture and writes the marker line to w.
func Run(w io.Writer) error {
	f := Build()
	T().Debugf("fixture built: %d array elements, %d map entries, %d tree nodes",
		len(f.Array), len(f.HashMap), f.Root.Stats().NodeCount)
	if _, err := io.WriteString(w, DebugPoint+"\n"); err != nil { // SET BREAKPOINT HERE
		return fmt.Errorf("writing debug marker: %w", err)
	}
	return nil
}

// Variable is a named value as a debugger would see it in scope.
type Variable struct {
	Name  string
	Value interface{}
}

// Variables returns the fixture's structures under the names they carry in
// the fixture program, in declaration order.
func (f *Fixture) Variables() []Variable {
	return []Variable{
		{Name: "myArray", Value: f.Array},
		{Name: "myHashMap", Value: f.HashMap},
		{Name: "root", Value: f.Root},
	}
}
