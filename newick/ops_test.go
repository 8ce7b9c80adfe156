package newick

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRename(t *testing.T) {
	root := parseOne(t, "(A,B,(C,D)E)F;")
	root.Rename(map[string]string{"A": "a", "E": "e"})
	assert.Equal(t, "(a,B,(C,D)e)F", root.Newick())

	// Unmapped names are untouched, including the empty name.
	root = parseOne(t, "(A,)B;")
	root.Rename(map[string]string{"X": "Y"})
	assert.Equal(t, "(A,)B", root.Newick())
}

func TestPruneByNames(t *testing.T) {
	tests := []struct {
		tree     string
		names    string
		inverse  bool
		expected string
	}{
		{"(A,((B,C),(D,E)))", "A C E", false, "(B,D)"},
		{"((A,B),((C,D),(E,F)))", "A C E", true, "((C,E),A)"},
		{"(b,(c,(d,(e,(f,g))h)i)a)", "b c i", true, "(b,(c,i)a)"},
		{"(b,(c,(d,(e,(f,g))h)i)a)", "b c i", false, ""},
		{"(b,(c,(d,(e,(f,g))h)i)a)", "c i", false, "(b,a)"},
	}
	for _, tt := range tests {
		root := parseOne(t, tt.tree+";")
		root.PruneByNames(strings.Fields(tt.names), tt.inverse)
		root.RemoveRedundantNodes(false)
		assert.Equalf(t, tt.expected, root.Newick(), "tree %q names %q inverse %v", tt.tree, tt.names, tt.inverse)
	}
}

func TestPruneNeverRemovesRoot(t *testing.T) {
	root := parseOne(t, "A;")
	root.PruneByNames([]string{"A"}, false)
	assert.Equal(t, "A", root.Newick())
}

func TestPruneNoMatchIsNoOp(t *testing.T) {
	root := parseOne(t, "(A,(B,C)D)E;")
	root.PruneByNames([]string{"X"}, false)
	assert.Equal(t, "(A,(B,C)D)E", root.Newick())
}

func TestPrunePredicate(t *testing.T) {
	root := parseOne(t, "(A:1,(B:3,C:1)D:1)E;")
	root.Prune(func(n *Node) bool { return n.HasLength() && n.Length() > 2 }, false)
	assert.Equal(t, "(A:1,(C:1)D:1)E", root.Newick())
}

func TestRemoveRedundantNodes(t *testing.T) {
	tests := []struct {
		tree         string
		keepLeafName bool
		expected     string
	}{
		{"((B:0.2,(C:0.3,D:0.4)E:0.5)F:0.1)A;", false, "(B:0.2,(C:0.3,D:0.4)E:0.5)A:0.1"},
		{"((C)B)A;", false, "A"},
		{"((C)B)A;", true, "C"},
		{"((aiw),((aas,(kbt)),((abg),abf)))[h_];", true, "(((aas,kbt),(abf,abg)),aiw)[h_]"},
		{"(((((A,B))),C))X;", false, "(C,(A,B))X"},
		// Chained singletons merge lengths by summation.
		{"(((A,B):1):2)X;", false, "(A,B)X:3"},
		{"(((A,B):1):2):4;", false, "(A,B):7"},
		{"(((A,B)))X;", false, "(A,B)X"},
	}
	for _, tt := range tests {
		root := parseOne(t, tt.tree)
		root.RemoveRedundantNodes(tt.keepLeafName)
		assert.Equalf(t, tt.expected, root.Newick(), "tree %q keepLeafName %v", tt.tree, tt.keepLeafName)
	}
}

func TestRemoveRedundantNodesAfterPrune(t *testing.T) {
	root := parseOne(t, "((A:1,B:1):1,C:1)X;")
	root.PruneByNames([]string{"A"}, false)
	assert.Equal(t, "((B:1):1,C:1)X", root.Newick())
	root.RemoveRedundantNodes(false)
	assert.Equal(t, "(C:1,B:2)X", root.Newick())
}

func TestRemoveRedundantNodesCount(t *testing.T) {
	root := parseOne(t, "((((((((((A))))))))));")
	assert.Len(t, root.Walk(), 11)
	root.RemoveRedundantNodes(true)
	assert.Equal(t, "A", root.Newick())
	assert.Len(t, root.Walk(), 1)
}

func TestResolvePolytomies(t *testing.T) {
	root := parseOne(t, "(A,B,(C,D,(E,F)));")
	root.ResolvePolytomies()
	assert.Equal(t, "(A,((C,((E,F),D):0),B):0)", root.Newick())
	assert.True(t, root.IsBinary())

	root = parseOne(t, "(A,B,C,D,E,F);")
	root.ResolvePolytomies()
	assert.Equal(t, "(A,(F,(B,(E,(C,D):0):0):0):0)", root.Newick())
	assert.True(t, root.IsBinary())

	// Already binary trees are untouched.
	root = parseOne(t, "((A,B),C)D;")
	root.ResolvePolytomies()
	assert.Equal(t, "((A,B),C)D", root.Newick())
}

func TestStripCommentsInPlace(t *testing.T) {
	root := parseOne(t, "(a[c1]:[c2]1,b[c3])c[c4];")
	root.StripComments()
	assert.Equal(t, "(a:1,b)c", root.Newick())
}

func TestNameAndLengthRemoval(t *testing.T) {
	const src = "((B:0.2,(C:0.3,D:0.4)E:0.5)F:0.1)A;"

	root := parseOne(t, src)
	root.RemoveNames()
	assert.Equal(t, "((:0.2,(:0.3,:0.4):0.5):0.1)", root.Newick())

	root = parseOne(t, src)
	root.RemoveInternalNames()
	assert.Equal(t, "((B:0.2,(C:0.3,D:0.4):0.5):0.1)", root.Newick())

	root = parseOne(t, src)
	root.RemoveLeafNames()
	assert.Equal(t, "((:0.2,(:0.3,:0.4)E:0.5)F:0.1)A", root.Newick())

	root = parseOne(t, src)
	root.RemoveLengths()
	assert.Equal(t, "((B,(C,D)E)F)A", root.Newick())
}

func TestLeafNames(t *testing.T) {
	root := parseOne(t, "(A,(B,(C,D)E)F)G;")
	assert.Equal(t, []string{"A", "B", "C", "D"}, root.LeafNames())
	require.Len(t, root.Leaves(), 4)
	for _, leaf := range root.Leaves() {
		assert.True(t, leaf.IsLeaf())
	}
}
