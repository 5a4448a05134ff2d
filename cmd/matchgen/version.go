package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/matchgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of matchgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "matchgen version %s\n", strings.TrimSpace(matchgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
