package dsfixture

// Node is a binary tree node. Children are either nil or exclusively owned
// by their parent.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// NewNode creates a leaf carrying value v.
func NewNode(v int) *Node {
	return &Node{Value: v}
}

// IsLeaf is true for a node without children. A nil node is not a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Each walks the tree in pre-order (node, left subtree, right subtree),
// calling f for every node together with its depth (root = 0). The walk
// stops at the first error returned by f, and Each returns it.
//
// The tree must be free of cycles; use Validate for nodes of unknown origin.
// The same holds for Stats, Levels and InOrder, which are built on walks.
//
func (n *Node) Each(f func(node *Node, depth int) error) error {
	if n == nil {
		return nil
	}
	return n.each(f, 0)
}

func (n *Node) each(f func(node *Node, depth int) error, depth int) error {
	if err := f(n, depth); err != nil {
		return err
	}
	if n.Left != nil {
		if err := n.Left.each(f, depth+1); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if err := n.Right.each(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// TreeStats holds some figures of a tree. Height is the number of levels.
type TreeStats struct {
	NodeCount int
	LeafCount int
	Height    int
}

// Stats measures the tree rooted at n. A nil tree has all figures zero.
func (n *Node) Stats() TreeStats {
	var st TreeStats
	n.Each(func(node *Node, depth int) error {
		st.NodeCount++
		if node.IsLeaf() {
			st.LeafCount++
		}
		if depth+1 > st.Height {
			st.Height = depth + 1
		}
		return nil
	})
	return st
}

// Levels groups the nodes of the tree by depth, each level ordered left to
// right.
func (n *Node) Levels() [][]*Node {
	var levels [][]*Node
	n.Each(func(node *Node, depth int) error {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], node)
		return nil
	})
	return levels
}

// InOrder lists the node values in symmetric order.
func (n *Node) InOrder() []int {
	var values []int
	var walk func(*Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		walk(node.Left)
		values = append(values, node.Value)
		walk(node.Right)
	}
	walk(n)
	return values
}

// IsBST checks the strict binary-search-tree property: every value in a left
// subtree is smaller than its ancestor, every value in a right subtree is
// greater. A nil tree is not a BST, neither are nodes failing Validate.
func (n *Node) IsBST() bool {
	if n == nil || n.Validate() != nil {
		return false
	}
	values := n.InOrder()
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return false
		}
	}
	return true
}

// Validate checks that every node is reachable on exactly one path from n.
// It returns ErrSharedNode for shared children and for cycles.
func (n *Node) Validate() error {
	seen := make(map[*Node]bool)
	var visit func(*Node) error
	visit = func(node *Node) error {
		if node == nil {
			return nil
		}
		if seen[node] {
			T().Errorf("tree node %d reached twice", node.Value)
			return ErrSharedNode
		}
		seen[node] = true
		if err := visit(node.Left); err != nil {
			return err
		}
		return visit(node.Right)
	}
	return visit(n)
}
