package newick

import (
	"fmt"
	"math"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the tree cannot be processed meaningfully.
	Error Severity = iota
	// Warning means processing will work but results may be unexpected.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "duplicate_leaf_name")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	NodeName string   // related node name (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.NodeName != "" {
		fmt.Fprintf(&b, " (node: %s)", d.NodeName)
	}
	return b.String()
}

// Validate inspects a tree and reports findings that commonly break
// downstream tooling: non-finite or negative branch lengths, duplicate leaf
// names, redundant single-child nodes, and unnamed leaves.
func Validate(root *Node) []Diagnostic {
	var diags []Diagnostic
	diags = append(diags, checkLengths(root)...)
	diags = append(diags, checkDuplicateLeafNames(root)...)
	diags = append(diags, checkRedundantNodes(root)...)
	diags = append(diags, checkUnnamedLeaves(root)...)
	return diags
}

// HasErrors reports whether any diagnostic has Error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func checkLengths(root *Node) []Diagnostic {
	var diags []Diagnostic
	for _, n := range root.Walk() {
		if !n.HasLength() {
			continue
		}
		v := n.Length()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			diags = append(diags, Diagnostic{
				Rule:     "nonfinite_length",
				Severity: Error,
				Message:  fmt.Sprintf("branch length %v is not finite", v),
				NodeName: n.Name,
			})
		} else if v < 0 {
			diags = append(diags, Diagnostic{
				Rule:     "negative_length",
				Severity: Warning,
				Message:  fmt.Sprintf("branch length %v is negative", v),
				NodeName: n.Name,
			})
		}
	}
	return diags
}

func checkDuplicateLeafNames(root *Node) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]int)
	for _, leaf := range root.Leaves() {
		if leaf.Name == "" {
			continue
		}
		seen[leaf.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			diags = append(diags, Diagnostic{
				Rule:     "duplicate_leaf_name",
				Severity: Warning,
				Message:  fmt.Sprintf("leaf name appears %d times; name-based operations are ambiguous", count),
				NodeName: name,
			})
		}
	}
	return diags
}

func checkRedundantNodes(root *Node) []Diagnostic {
	var diags []Diagnostic
	for _, n := range root.Walk() {
		if len(n.Descendants()) == 1 {
			diags = append(diags, Diagnostic{
				Rule:     "redundant_node",
				Severity: Info,
				Message:  "internal node has a single descendant; RemoveRedundantNodes can collapse it",
				NodeName: n.Name,
			})
		}
	}
	return diags
}

func checkUnnamedLeaves(root *Node) []Diagnostic {
	var diags []Diagnostic
	count := 0
	for _, leaf := range root.Leaves() {
		if leaf.Name == "" {
			count++
		}
	}
	if count > 0 {
		diags = append(diags, Diagnostic{
			Rule:     "unnamed_leaf",
			Severity: Info,
			Message:  fmt.Sprintf("%d leaves have no name", count),
		})
	}
	return diags
}
