package main

import (
	"fmt"
	"os"

	"github.com/martinemde/newick/newick"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize tree shape and branch lengths",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")

	rootCmd.AddCommand(statsCmd)
}

// treeStats is the per-tree summary printed by the stats command.
type treeStats struct {
	Root        string  `yaml:"root,omitempty"`
	Nodes       int     `yaml:"nodes"`
	Leaves      int     `yaml:"leaves"`
	Depth       int     `yaml:"depth"`
	Binary      bool    `yaml:"binary"`
	TotalLength float64 `yaml:"total_length"`
}

func runStats(cmd *cobra.Command, args []string) error {
	trees, err := loadTrees(args)
	if err != nil {
		return err
	}

	stats := make([]treeStats, len(trees))
	for i, tree := range trees {
		stats[i] = collectStats(tree)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(stats)
	case "text":
		for i, s := range stats {
			name := s.Root
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(os.Stdout, "tree %d: root=%s nodes=%d leaves=%d depth=%d binary=%v total_length=%g\n",
				i+1, name, s.Nodes, s.Leaves, s.Depth, s.Binary, s.TotalLength)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

func collectStats(tree *newick.Node) treeStats {
	s := treeStats{
		Root:   tree.UnquotedName(),
		Binary: tree.IsBinary(),
	}
	for _, n := range tree.Walk() {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
			if d := depthOf(n); d > s.Depth {
				s.Depth = d
			}
		}
		if n.HasLength() {
			s.TotalLength += n.Length()
		}
	}
	return s
}

func depthOf(n *newick.Node) int {
	d := 0
	for cur := n.Ancestor(); cur != nil; cur = cur.Ancestor() {
		d++
	}
	return d
}
