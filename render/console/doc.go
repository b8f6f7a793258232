/*
Package console prints the data structures of a fixture to a terminal.

Variables are listed with their labels and child rows, trees are drawn
with box-drawing characters. Kinds of data structures are distinguished by
color if the output is an interactive terminal.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
