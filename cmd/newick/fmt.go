package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat trees in canonical Newick form",
	Long:  "Parse trees and print them back in canonical form, one ';'-terminated statement per line, optionally rewriting names, lengths and topology on the way.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("collapse", false, "Collapse single-descendant nodes")
	fmtCmd.Flags().Bool("keep-leaf-name", false, "When collapsing, keep the name farther from the root")
	fmtCmd.Flags().Bool("resolve-polytomies", false, "Insert zero-length nodes until the tree is binary")
	fmtCmd.Flags().Bool("remove-lengths", false, "Drop all branch lengths")
	fmtCmd.Flags().Bool("remove-internal-names", false, "Drop the names of internal nodes")
	fmtCmd.Flags().Bool("remove-leaf-names", false, "Drop the names of leaf nodes")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	trees, err := loadTrees(args)
	if err != nil {
		return err
	}

	collapse, _ := cmd.Flags().GetBool("collapse")
	keepLeafName, _ := cmd.Flags().GetBool("keep-leaf-name")
	resolve, _ := cmd.Flags().GetBool("resolve-polytomies")
	removeLengths, _ := cmd.Flags().GetBool("remove-lengths")
	removeInternal, _ := cmd.Flags().GetBool("remove-internal-names")
	removeLeaf, _ := cmd.Flags().GetBool("remove-leaf-names")

	for _, tree := range trees {
		if collapse {
			tree.RemoveRedundantNodes(keepLeafName)
		}
		if resolve {
			tree.ResolvePolytomies()
		}
		if removeLengths {
			tree.RemoveLengths()
		}
		if removeInternal {
			tree.RemoveInternalNames()
		}
		if removeLeaf {
			tree.RemoveLeafNames()
		}
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[fmt] %d trees\n", len(trees))
	}
	if len(trees) == 0 {
		return nil
	}
	return dumpTrees(trees)
}
