package dsfixture

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind is the kind of data structure a variable holds.
type Kind int

// Kinds of data structures known to the detector.
const (
	KindUnknown Kind = iota
	KindArray
	KindHashMap
	KindTree
	KindBST
)

var kindNames = [...]string{"unknown", "array", "hashmap", "tree", "bst"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Detect tells which kind of data structure v is. A tree satisfying the
// search-tree property is reported as KindBST. Nodes with shared children
// or cycles are not a tree and yield KindUnknown.
func Detect(v interface{}) Kind {
	switch x := v.(type) {
	case Sequence, []int:
		return KindArray
	case Mapping, map[string]int:
		return KindHashMap
	case *Node:
		if x == nil || x.Validate() != nil {
			return KindUnknown
		}
		if x.IsBST() {
			return KindBST
		}
		return KindTree
	}
	return KindUnknown
}

// Size returns the number of elements of v (nodes, for trees). The second
// return value is false if v is not a known data structure, including
// nodes which do not form a proper tree.
func Size(v interface{}) (int, bool) {
	switch x := v.(type) {
	case Sequence:
		return len(x), true
	case []int:
		return len(x), true
	case Mapping:
		return len(x), true
	case map[string]int:
		return len(x), true
	case *Node:
		if x == nil || x.Validate() != nil {
			return 0, false
		}
		return x.Stats().NodeCount, true
	}
	return 0, false
}

// Label formats a variable the way a debugger's structure list shows it:
//
//     myArray (array) [5]
//
// The size part is left out if the size is unknown.
func Label(v Variable) string {
	label := fmt.Sprintf("%s (%s)", v.Name, Detect(v.Value))
	if n, ok := Size(v.Value); ok {
		label += fmt.Sprintf(" [%d]", n)
	}
	return label
}

// Element is a child row of a variable, displayed as "Name: Value".
type Element struct {
	Name  string
	Value string
}

func (e Element) String() string {
	return e.Name + ": " + e.Value
}

// Elements lists the child rows of a variable. Arrays yield one row per
// index, maps one row per key (sorted by key), trees the root's value and
// its two child slots.
func Elements(v Variable) []Element {
	var elems []Element
	switch x := v.Value.(type) {
	case Sequence:
		elems = arrayElements(x)
	case []int:
		elems = arrayElements(x)
	case Mapping:
		elems = mapElements(x)
	case map[string]int:
		elems = mapElements(x)
	case *Node:
		if x == nil {
			return nil
		}
		elems = []Element{
			{Name: "value", Value: strconv.Itoa(x.Value)},
			{Name: "left", Value: slot(x.Left)},
			{Name: "right", Value: slot(x.Right)},
		}
	default:
		T().Debugf("no elements for variable %s of type %T", v.Name, v.Value)
	}
	return elems
}

func arrayElements(a []int) []Element {
	elems := make([]Element, len(a))
	for i, x := range a {
		elems[i] = Element{Name: fmt.Sprintf("[%d]", i), Value: strconv.Itoa(x)}
	}
	return elems
}

func mapElements(m map[string]int) []Element {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	elems := make([]Element, len(keys))
	for i, k := range keys {
		elems[i] = Element{Name: k, Value: strconv.Itoa(m[k])}
	}
	return elems
}

func slot(n *Node) string {
	if n == nil {
		return "nil"
	}
	return strconv.Itoa(n.Value)
}
