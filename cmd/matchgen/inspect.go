package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/matchgen/internal/cli"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest>",
	Short: "Summarise a manifest: settings, trie shape and entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.InspectOptions{}
		opts.MaxEntries, _ = cmd.Flags().GetInt("max-entries")
		opts.Samples, _ = cmd.Flags().GetStringArray("sample")
		opts.Mermaid, _ = cmd.Flags().GetBool("mermaid")
		opts.Raw, _ = cmd.Flags().GetBool("raw")

		// Style only when writing straight to a terminal.
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			opts.Styled = true
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				opts.Width = w
			}
		}
		return cli.Inspect(newEnv(cmd), args[0], opts)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <manifest>",
	Short: "Export the trie as a Mermaid flowchart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		return cli.Graph(newEnv(cmd), args[0], input)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("max-entries", 50, "Entries to list (0 for all)")
	inspectCmd.Flags().StringArray("sample", nil, "Show the longest match for this input (repeatable)")
	inspectCmd.Flags().Bool("mermaid", false, "Append the trie as a Mermaid diagram")
	inspectCmd.Flags().Bool("raw", false, "Print Markdown without rendering it")

	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("input", "", "Highlight the path this input takes")
}
