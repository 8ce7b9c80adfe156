package newick

import "fmt"

// Comment is one piece of bracketed free text attached to a node. AfterColon
// records whether the comment appeared after the length separator, which is
// where it will be re-emitted on serialization.
type Comment struct {
	Text       string
	AfterColon bool
}

// Node is one vertex of a tree: an optional label, an optional branch length
// to its ancestor, attached comments, and an ordered list of descendants that
// the node exclusively owns.
//
// Name holds the raw label as it appeared in the source, so a quoted label
// keeps its surrounding quotes. The empty string means the node has no name;
// a parsed '' label is stored as two quote characters and is therefore
// distinct from an absent name.
type Node struct {
	Name     string
	Comments []Comment

	length   *float64
	parent   *Node
	children []*Node
}

// NewNode returns a node with the given raw label. Unquoted labels must not
// contain reserved punctuation; a well-formed quoted label may contain
// anything. Use NewQuotedNode to quote automatically instead.
func NewNode(name string) (*Node, error) {
	if name != "" && !isQuotedName(name) && NeedsQuoting(name) {
		return nil, &ValueError{ParseError{
			Message: fmt.Sprintf("unquoted node name %q contains reserved punctuation", name),
		}}
	}
	return &Node{Name: name}, nil
}

// NewQuotedNode returns a node with the given label, quoting it if it
// contains reserved punctuation.
func NewQuotedNode(name string) *Node {
	if name != "" && NeedsQuoting(name) {
		name = Quote(name)
	}
	return &Node{Name: name}
}

// Create builds a node and attaches the given descendants in order.
func Create(name string, descendants ...*Node) (*Node, error) {
	n, err := NewNode(name)
	if err != nil {
		return nil, err
	}
	for _, d := range descendants {
		if err := n.AddDescendant(d); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%q)", n.Name)
}

// UnquotedName returns the label with quoting removed: the surrounding quotes
// are stripped and escaped quotes are reduced to literal ones. Unquoted
// labels are returned as-is. The value is computed on access, never stored.
func (n *Node) UnquotedName() string {
	return Unquote(n.Name)
}

// Length returns the branch length, or 0 if none is set.
func (n *Node) Length() float64 {
	if n.length == nil {
		return 0
	}
	return *n.length
}

// HasLength reports whether a branch length is set. A length of 0 and an
// absent length serialize differently.
func (n *Node) HasLength() bool { return n.length != nil }

// SetLength sets the branch length.
func (n *Node) SetLength(v float64) { n.length = &v }

// ClearLength removes the branch length.
func (n *Node) ClearLength() { n.length = nil }

// Ancestor returns the node's parent, or nil for a root.
func (n *Node) Ancestor() *Node { return n.parent }

// Descendants returns the node's children in insertion order. The returned
// slice is the node's own; callers must not modify it directly.
func (n *Node) Descendants() []*Node { return n.children }

// IsLeaf reports whether the node has no descendants.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsBinary reports whether every node in the subtree has zero or two
// descendants.
func (n *Node) IsBinary() bool {
	for _, node := range n.Walk() {
		if l := len(node.children); l != 0 && l != 2 {
			return false
		}
	}
	return true
}

// AddDescendant attaches child as the last descendant of n. The child must
// not already have an ancestor, and the attachment must not create a cycle.
func (n *Node) AddDescendant(child *Node) error {
	if child.parent != nil {
		return &OwnershipError{Message: "node already has an ancestor; detach it first"}
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return &OwnershipError{Message: "attaching a node to itself or its own descendant would create a cycle"}
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Detach removes n from its ancestor's descendant list. Detaching a root is
// a no-op.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Walk returns every node in the subtree rooted at n in pre-order
// depth-first order: the node itself, then each descendant subtree in
// insertion order. Traversal uses an explicit stack so that adversarially
// deep trees cannot exhaust the goroutine stack.
func (n *Node) Walk() []*Node {
	var nodes []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, node)
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
	return nodes
}

// WalkPostorder returns every node in the subtree rooted at n in post-order
// depth-first order: each descendant subtree first, then the node itself.
func (n *Node) WalkPostorder() []*Node {
	var nodes []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, node)
		stack = append(stack, node.children...)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// Visit applies action to every node in the subtree satisfying predicate, in
// pre-order depth-first order. A nil predicate matches every node.
func (n *Node) Visit(action func(*Node), predicate func(*Node) bool) {
	for _, node := range n.Walk() {
		if predicate == nil || predicate(node) {
			action(node)
		}
	}
}

// Leaves returns the leaf nodes of the subtree in pre-order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	for _, node := range n.Walk() {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	}
	return leaves
}

// LeafNames returns the raw names of the subtree's leaves in pre-order.
func (n *Node) LeafNames() []string {
	var names []string
	for _, leaf := range n.Leaves() {
		names = append(names, leaf.Name)
	}
	return names
}

// GetNode returns the first node in pre-order whose raw name equals name, or
// nil if there is none.
func (n *Node) GetNode(name string) *Node {
	for _, node := range n.Walk() {
		if node.Name == name {
			return node
		}
	}
	return nil
}

// CommentTexts returns the text of every attached comment in order.
func (n *Node) CommentTexts() []string {
	var texts []string
	for _, c := range n.Comments {
		texts = append(texts, c.Text)
	}
	return texts
}
