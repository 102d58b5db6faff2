package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autograd",
	Short: "autograd is a scalar reverse-mode automatic differentiation engine",
	Long: `autograd builds scalar computation graphs, evaluates them and derives
their gradients symbolically. The train command runs a small gradient-descent demo.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
