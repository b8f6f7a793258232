package dsfixture

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Node ids are assigned in pre-order, starting at 1.
// A missing child of an inner node is drawn as an empty circle.
//
func Tree2Dot(root *Node, w io.Writer) error {
	if err := root.Validate(); err != nil {
		return err
	}
	ids := newtable()
	var nodelist, edgelist strings.Builder
	nilcnt := 0
	root.Each(func(node *Node, depth int) error {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d%s];\n", ID, node.Value, nodeDotStyles(node.IsLeaf()))
		return nil
	})
	root.Each(func(node *Node, depth int) error {
		if node.IsLeaf() {
			return nil
		}
		ID := ids.find(node)
		for _, child := range []*Node{node.Left, node.Right} {
			if child == nil {
				nilcnt++
				nilid := ids.max + 10000 + nilcnt
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.find(child))
			}
		}
		return nil
	})
	T().Debugf("tree DOT: %d nodes, %d empty slots", ids.max-1, nilcnt)
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
