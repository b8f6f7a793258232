package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/npillmayer/dsfixture"
	"github.com/npillmayer/dsfixture/render/console"
	"github.com/npillmayer/dsfixture/render/html"
	"github.com/npillmayer/dsfixture/snapshot"
	"github.com/spf13/cobra"
)

var (
	checkHTML bool
	stops     int
)

// listCmd lists the variables in scope with their elements
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List data structures and their elements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := dsfixture.Build()
		p := console.NewPrinter(nil)
		if noColor {
			p.SetColor(false)
		}
		if err := p.PrintVariables(cmd.OutOrStdout(), f.Variables()); err != nil {
			return err
		}
		return p.PrintTree(cmd.OutOrStdout(), f.Root)
	},
}

// dotCmd writes the fixture tree in Graphviz DOT format
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write the binary tree in Graphviz DOT format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dsfixture.Tree2Dot(dsfixture.Build().Root, cmd.OutOrStdout())
	},
}

// htmlCmd renders the fixture as an HTML fragment
var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Render the data structures as HTML",
	Long: `Renders the variable list, the binary tree and its statistics as an
HTML fragment. With --check, the tree is parsed back from the output and
compared to the original.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := dsfixture.Build()
		var buf bytes.Buffer
		if err := html.Render(&buf, f); err != nil {
			return err
		}
		out := buf.String()
		if checkHTML {
			root, err := html.TreeFromHTML(&buf)
			if err != nil {
				return fmt.Errorf("reading tree from HTML: %w", err)
			}
			if !sameValues(root.InOrder(), f.Root.InOrder()) {
				return fmt.Errorf("tree read from HTML differs from fixture tree")
			}
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

// yamlCmd writes a snapshot of the fixture as YAML
var yamlCmd = &cobra.Command{
	Use:   "yaml",
	Short: "Write a snapshot of the data structures as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshot.Encode(cmd.OutOrStdout(), snapshot.Take(dsfixture.Build()))
	},
}

// statsCmd prints statistics of the binary tree
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics of the binary tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := dsfixture.Build().Root
		st := root.Stats()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Nodes: %d\nLeaves: %d\nHeight: %d\nBST: %v\n",
			st.NodeCount, st.LeafCount, st.Height, root.IsBST())
		return err
	},
}

// watchCmd simulates a debugger stopping repeatedly at the debug point,
// publishing a snapshot at every stop to a subscribed view
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Publish a snapshot at every simulated debugger stop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if stops < 1 {
			return fmt.Errorf("number of stops must be positive, is %d", stops)
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		hub := snapshot.NewHub(ctx)
		defer hub.Close()
		view, err := hub.Subscribe(ctx, uint(stops))
		if err != nil {
			return err
		}
		for i := 0; i < stops; i++ {
			if err := hub.Publish(snapshot.Take(dsfixture.Build())); err != nil {
				return err
			}
		}
		for i := 0; i < stops; i++ {
			s, ok := <-view
			if !ok {
				return snapshot.ErrHubClosed
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "--- stop %d\n", i+1); err != nil {
				return err
			}
			if err := snapshot.Encode(cmd.OutOrStdout(), s); err != nil {
				return err
			}
		}
		return nil
	},
}

func sameValues(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
