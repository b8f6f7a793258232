/*
Package dsfixture holds the data structures of a small debugging fixture
and the tools to look at them from the outside.

Fixture

The fixture is a program meant to be stopped at a breakpoint. It builds a
fixed sequence of integers, a small key-to-count mapping and a three-node
binary tree, prints a marker line and exits:

	myArray   = [10 20 30 40 50]
	myHashMap = {apple: 5, banana: 3}
	root      = 50
	           /  \
	         30    70

Inspection

A debugger front end wants to know which variables in scope are data
structures, what kind they are and how large they are. Detect, Size, Label
and Elements answer these questions for the fixture's variables. Trees may
be walked, measured (Stats), laid out per level (Levels) and dumped in
Graphviz DOT format (Tree2Dot).

Sub-packages render the fixture to a terminal (render/console) or to HTML
(render/html), and snapshot captures it as YAML and broadcasts snapshots to
subscribers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dsfixture

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FixtureError is an error type for the dsfixture module
type FixtureError string

func (e FixtureError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = FixtureError("illegal arguments")

// ErrSharedNode is flagged if a tree node is reachable on more than one path,
// i.e. a child is shared between parents or the tree contains a cycle.
const ErrSharedNode = FixtureError("tree node reachable more than once")
