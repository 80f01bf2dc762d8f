package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dumpable"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dumpable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dumpable version %s\n", strings.TrimSpace(dumpable.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
