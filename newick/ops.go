package newick

// Rename rewrites the name of every node whose current raw name is a key of
// mapping. Implemented as a Visit over the subtree.
func (n *Node) Rename(mapping map[string]string) {
	n.Visit(
		func(node *Node) { node.Name = mapping[node.Name] },
		func(node *Node) bool { _, ok := mapping[node.Name]; return ok },
	)
}

// Prune removes nodes from the subtree rooted at n, together with their
// entire descendant subtrees. With inverse false, every matched node is
// removed. With inverse true, every unmatched leaf is removed; internal
// nodes emptied by that removal become leaves mid-pass and are removed in
// turn unless they match, so pruning to a leaf set leaves no dangling empty
// internal nodes behind. The root itself is never removed.
//
// Matching nothing is a no-op.
func (n *Node) Prune(matches func(*Node) bool, inverse bool) {
	for _, node := range n.WalkPostorder() {
		if node.parent == nil {
			continue
		}
		if (!inverse && matches(node)) || (inverse && node.IsLeaf() && !matches(node)) {
			node.Detach()
		}
	}
}

// PruneByNames prunes nodes whose raw name is in names (or, with inverse,
// leaves whose name is not in names). See Prune.
func (n *Node) PruneByNames(names []string, inverse bool) {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	n.Prune(func(node *Node) bool { return set[node.Name] }, inverse)
}

// RemoveRedundantNodes collapses every internal node with exactly one
// descendant by splicing the descendant into its place. Branch lengths are
// merged by summation (an absent length counts as zero; if neither node has
// a length the survivor keeps none). With keepLeafName, the surviving node
// takes the name of the node farther from the root; otherwise the name
// closest to the root wins. Comments of the removed node are dropped.
func (n *Node) RemoveRedundantNodes(keepLeafName bool) {
	for _, node := range n.WalkPostorder() {
		for node.parent != nil && len(node.parent.children) == 1 {
			father := node.parent
			grandfather := father.parent

			if node.length != nil || father.length != nil {
				node.SetLength(node.Length() + father.Length())
			}
			if keepLeafName {
				father.Name = node.Name
			}

			if grandfather != nil {
				for i, c := range grandfather.children {
					if c == father {
						grandfather.children = append(grandfather.children[:i], grandfather.children[i+1:]...)
						break
					}
				}
				father.parent = nil
				father.children = nil
				node.parent = grandfather
				grandfather.children = append(grandfather.children, node)
			} else {
				// father is the subtree root: the root absorbs the node's
				// children and merged length, keeping its own identity.
				father.children = node.children
				for _, c := range father.children {
					c.parent = father
				}
				node.parent = nil
				node.children = nil
				if node.length != nil {
					father.SetLength(*node.length)
				}
			}
		}
	}
}

// StripComments clears the comments of every node in the subtree, in place.
func (n *Node) StripComments() {
	n.Visit(func(node *Node) { node.Comments = nil }, nil)
}

// ResolvePolytomies inserts zero-length nodes until every internal node has
// exactly two descendants.
func (n *Node) ResolvePolytomies() {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(node.children) > 2 {
			extra := &Node{}
			extra.SetLength(0)
			for len(node.children) > 1 {
				last := node.children[len(node.children)-1]
				node.children = node.children[:len(node.children)-1]
				last.parent = extra
				extra.children = append(extra.children, last)
			}
			extra.parent = node
			node.children = append(node.children, extra)
		}
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}

// RemoveNames clears the name of every node in the subtree.
func (n *Node) RemoveNames() {
	n.Visit(func(node *Node) { node.Name = "" }, nil)
}

// RemoveInternalNames clears the name of every non-leaf node in the subtree.
func (n *Node) RemoveInternalNames() {
	n.Visit(
		func(node *Node) { node.Name = "" },
		func(node *Node) bool { return !node.IsLeaf() },
	)
}

// RemoveLeafNames clears the name of every leaf node in the subtree.
func (n *Node) RemoveLeafNames() {
	n.Visit(
		func(node *Node) { node.Name = "" },
		func(node *Node) bool { return node.IsLeaf() },
	)
}

// RemoveLengths clears the branch length of every node in the subtree.
func (n *Node) RemoveLengths() {
	n.Visit(func(node *Node) { node.ClearLength() }, nil)
}
