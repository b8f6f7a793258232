/*
Package snapshot captures the data structures of a fixture as a plain,
serializable value.

Snapshots are what a debugger front end displays in its structure list:
one entry per variable with its kind, label and child rows. They are
written and read as YAML, and a Hub broadcasts them to any number of
subscribers, e.g. views which have to refresh whenever the debuggee stops.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package snapshot

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
