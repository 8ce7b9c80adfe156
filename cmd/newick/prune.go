package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [file]",
	Short: "Remove subtrees by leaf name",
	Long:  "Remove the named nodes and their subtrees, or with --invert reduce each tree to the named leaves.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().StringSliceP("names", "n", nil, "Node names to prune (comma-separated or repeated)")
	pruneCmd.Flags().Bool("invert", false, "Keep the named leaves and prune everything else")
	pruneCmd.Flags().Bool("collapse", false, "Collapse single-descendant nodes left behind")
	pruneCmd.Flags().Bool("keep-leaf-name", false, "When collapsing, keep the name farther from the root")
	_ = pruneCmd.MarkFlagRequired("names")

	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	trees, err := loadTrees(args)
	if err != nil {
		return err
	}

	names, _ := cmd.Flags().GetStringSlice("names")
	invert, _ := cmd.Flags().GetBool("invert")
	collapse, _ := cmd.Flags().GetBool("collapse")
	keepLeafName, _ := cmd.Flags().GetBool("keep-leaf-name")

	for _, tree := range trees {
		before := len(tree.Walk())
		tree.PruneByNames(names, invert)
		if collapse {
			tree.RemoveRedundantNodes(keepLeafName)
		}
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "[prune] %d -> %d nodes\n", before, len(tree.Walk()))
		}
	}

	if len(trees) == 0 {
		return nil
	}
	return dumpTrees(trees)
}
