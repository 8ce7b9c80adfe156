package main

import (
	"fmt"
	"os"

	"github.com/martinemde/newick/newick"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw [file]",
	Short: "Render trees as text art",
	Long:  "Render each tree as multi-line text art, one row per leaf, with box-drawing connectors.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().Bool("strict", false, "Use plain ASCII glyphs instead of box-drawing characters")
	drawCmd.Flags().Bool("no-internal", false, "Hide internal node labels")

	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	trees, err := loadTrees(args)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	noInternal, _ := cmd.Flags().GetBool("no-internal")
	opts := newick.ASCIIArtOptions{Strict: strict, HideInternal: noInternal}

	for i, tree := range trees {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, tree.ASCIIArtWithOptions(opts))
	}
	return nil
}
