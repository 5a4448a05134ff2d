package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen/internal/cli"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities <entities.json>",
	Short: "Generate an HTML character reference decoder",
	Long: `Reads a table shaped like https://html.spec.whatwg.org/entities.json and
generates a decoder returning the replacement characters as a string.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFlags(cmd)
		if err != nil {
			return err
		}
		cursorFunc, _ := cmd.Flags().GetString("cursor-func")
		opts := cli.EntityOptions{Config: cfg, CursorFunc: cursorFunc}
		return cli.Entities(newEnv(cmd), args[0], opts, outputFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
	addConfigFlags(entitiesCmd, "decodeEntity", "string")
	addOutputFlags(entitiesCmd)
	entitiesCmd.Flags().String("cursor-func", "", "Also emit a cursor decoder with this name (needs --package)")
}
