package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "rpsim",
		Short: "Rock-paper-scissors agent simulation",
		Long: `rpsim runs a population of rock, paper and scissors agents that chase
their prey, flee their predator and convert whatever they catch, until one
kind has wiped out another.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rpsim %s\n", version)
		},
	}
}
