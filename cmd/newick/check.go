package main

import (
	"fmt"
	"os"

	"github.com/martinemde/newick/newick"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check trees for common problems",
	Long:  "Parse trees and report diagnostics: non-finite or negative branch lengths, duplicate leaf names, redundant nodes, unnamed leaves. Exits non-zero when any tree has errors.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	trees, err := loadTrees(args)
	if err != nil {
		return err
	}

	failed := 0
	for i, tree := range trees {
		diags := newick.Validate(tree)
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "tree %d: %s\n", i+1, d)
		}
		if newick.HasErrors(diags) {
			failed++
		}
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[check] %d trees, %d with errors\n", len(trees), failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d trees have errors", failed, len(trees))
	}
	return nil
}
