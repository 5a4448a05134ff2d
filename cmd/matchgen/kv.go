package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen/internal/cli"
)

var kvCmd = &cobra.Command{
	Use:   "kv key=value...",
	Short: "Generate a matcher from key=value arguments",
	Long: `Each argument registers the bytes before the first "=" as a key. Values
are emitted as Go string literals, or verbatim as expressions with --raw.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFlags(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")
		return cli.KV(newEnv(cmd), cfg, args, raw, outputFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(kvCmd)
	addConfigFlags(kvCmd, "match", "string")
	addOutputFlags(kvCmd)
	kvCmd.Flags().Bool("raw", false, "Use values as Go expressions instead of quoting them")
}
