/*
Dsfixture is a program to be stopped in a debugger.

It builds a sequence, a mapping and a small binary tree, prints

	Debug point!

and exits with status 0. It takes no arguments and reads no environment.
Set a breakpoint on the print statement to inspect the three structures.
*/
package main

import (
	"io"
	"os"

	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	if err := dsfixture.Run(w); err != nil {
		gtrace.CoreTracer.Errorf("dsfixture: %v", err)
		return 1
	}
	return 0
}
