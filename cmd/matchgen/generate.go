package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen/internal/cli"
)

var generateCmd = &cobra.Command{
	Use:   "generate <manifest>",
	Short: "Generate a matcher from a YAML, TOML or JSON manifest",
	Long: `Reads the manifest, builds the trie and writes the generated function.
Output goes to --out, else to the manifest's "output" file, else to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return cli.Generate(newEnv(cmd), args[0], outputFlags(cmd))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.Watch(ctx, newEnv(cmd), args[0], outputFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addOutputFlags(generateCmd)
	generateCmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the manifest changes")
}
