package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the mathstar command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mathstar",
		Short: "Math practice game for kids",
		Long:  "Mathstar is a terminal math game where kids earn stars and coins, climb ranks and finish daily missions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, "")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/mathstar/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSTAR_DB env var)")
	rootCmd.PersistentFlags().String("backend", "", "Storage backend: sqlite, memory or redis")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newMissionsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
