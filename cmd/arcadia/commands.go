package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	showStats  bool

	rootCmd = &cobra.Command{
		Use:   "arcadia",
		Short: "Drive the Arcadia game indexes from scripted scenarios",
		Long: `arcadia runs YAML scenarios against an in-memory player registry,
leaderboard and auction index, plus the inventory, map and scheduling
calculators. Nothing is persisted between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario and print one line per step",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario, // Defined in run.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the arcadia version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "arcadia", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an arcadia YAML config")
	runCmd.Flags().BoolVar(&showStats, "stats", false, "print operation counters after the run")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
