package newick

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rulesOf(diags []Diagnostic) []string {
	var rules []string
	for _, d := range diags {
		rules = append(rules, d.Rule)
	}
	return rules
}

func TestValidateCleanTree(t *testing.T) {
	root := parseOne(t, "(A:1,(B:2,C:3)D:4)E;")
	diags := Validate(root)
	assert.Empty(t, diags)
	assert.False(t, HasErrors(diags))
}

func TestValidateNegativeLength(t *testing.T) {
	root := parseOne(t, "(A:-1,B:2)C;")
	diags := Validate(root)
	require.Len(t, diags, 1)
	assert.Equal(t, "negative_length", diags[0].Rule)
	assert.Equal(t, Warning, diags[0].Severity)
	assert.Equal(t, "A", diags[0].NodeName)
	assert.False(t, HasErrors(diags))
}

func TestValidateNonfiniteLength(t *testing.T) {
	root := parseOne(t, "(A:1,B:2)C;")
	root.GetNode("B").SetLength(math.Inf(1))
	diags := Validate(root)
	assert.Contains(t, rulesOf(diags), "nonfinite_length")
	assert.True(t, HasErrors(diags))

	root.GetNode("B").SetLength(math.NaN())
	assert.True(t, HasErrors(Validate(root)))
}

func TestValidateDuplicateLeafNames(t *testing.T) {
	root := parseOne(t, "(A,(A,B)C)D;")
	diags := Validate(root)
	require.Len(t, diags, 1)
	assert.Equal(t, "duplicate_leaf_name", diags[0].Rule)
	assert.Equal(t, "A", diags[0].NodeName)

	// An internal node sharing a leaf's name is not a duplicate leaf.
	root = parseOne(t, "(A,B)A;")
	assert.Empty(t, Validate(root))
}

func TestValidateRedundantNodes(t *testing.T) {
	root := parseOne(t, "((A,B)C)D;")
	diags := Validate(root)
	require.Len(t, diags, 1)
	assert.Equal(t, "redundant_node", diags[0].Rule)
	assert.Equal(t, Info, diags[0].Severity)
	assert.Equal(t, "D", diags[0].NodeName)
}

func TestValidateUnnamedLeaves(t *testing.T) {
	root := parseOne(t, "(A,,(,B))C;")
	diags := Validate(root)
	require.Len(t, diags, 1)
	assert.Equal(t, "unnamed_leaf", diags[0].Rule)
	assert.Contains(t, diags[0].Message, "2 leaves")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Rule: "negative_length", Severity: Warning, Message: "branch length -1 is negative", NodeName: "A"}
	assert.Equal(t, "[WARNING] negative_length: branch length -1 is negative (node: A)", d.String())

	d = Diagnostic{Rule: "unnamed_leaf", Severity: Info, Message: "2 leaves have no name"}
	assert.Equal(t, "[INFO] unnamed_leaf: 2 leaves have no name", d.String())
}
