// Command dsview shows the data structures of the debugging fixture the way
// a debugger front end presents them: as a labelled variable list, as a
// Graphviz graph, as HTML or as a YAML snapshot.
//
// Usage:
//
//	dsview list
//	dsview dot | dot -Tsvg > tree.svg
//	dsview html --check
//	dsview yaml
//	dsview stats
//	dsview watch --stops 3
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	traceLevel string
	noColor    bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "dsview",
	Short: "Inspect the data structures of the debugging fixture",
	Long: `Builds the fixture's sequence, mapping and binary tree and shows them
the way a debugger's data structure view would.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseTraceLevel(traceLevel)
		if err != nil {
			return err
		}
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "Trace level (error, info, debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	htmlCmd.Flags().BoolVar(&checkHTML, "check", false, "Parse the tree back from the HTML and verify it")
	watchCmd.Flags().IntVar(&stops, "stops", 1, "Number of debugger stops to simulate")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(yamlCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}
