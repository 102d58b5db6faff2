package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.0.1-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of autograd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "autograd version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
