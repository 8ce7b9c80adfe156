package main

import (
	"fmt"
	"os"

	"github.com/martinemde/newick/newick"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "newick",
	Short: "Newick tree toolkit",
	Long:  "Newick parses, rewrites, checks and renders phylogenetic trees in the Newick serialization format.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("strip-comments", false, "Discard bracketed comments while parsing")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("strip_comments", rootCmd.PersistentFlags().Lookup("strip-comments"))
}

func initConfig() {
	viper.SetEnvPrefix("NEWICK")
	viper.AutomaticEnv()
}

// loadTrees reads all trees from the file argument, or from stdin when the
// argument is absent or "-".
func loadTrees(args []string) ([]*newick.Node, error) {
	opts := newick.Options{StripComments: viper.GetBool("strip_comments")}
	if len(args) == 0 || args[0] == "-" {
		return newick.Load(os.Stdin, opts)
	}
	return newick.Read(args[0], opts)
}

// dumpTrees writes trees to stdout, one statement per line with a trailing
// newline.
func dumpTrees(trees []*newick.Node) error {
	if err := newick.Dump(os.Stdout, trees...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout)
	return err
}
