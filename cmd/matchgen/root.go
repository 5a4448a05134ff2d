package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "matchgen",
	Short: "matchgen generates longest-prefix matchers as Go source",
	Long: `matchgen turns a set of byte sequences and Go value expressions into a
function that finds the longest registered sequence at the start of its input.
Run it from go:generate and commit the output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
}

// newEnv builds the command environment, honouring --verbose and the
// command's configured output streams.
func newEnv(cmd *cobra.Command) cli.Env {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return cli.NewEnv(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
}

// addOutputFlags registers --out and --metrics-textfile.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Write the generated source to this file instead of stdout")
	cmd.Flags().String("metrics-textfile", "", "Write run metrics in node_exporter textfile format")
}

func outputFlags(cmd *cobra.Command) cli.Output {
	out, _ := cmd.Flags().GetString("out")
	textfile, _ := cmd.Flags().GetString("metrics-textfile")
	return cli.Output{Path: out, MetricsTextfile: textfile}
}
