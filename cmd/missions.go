package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstar/internal/missions"
)

func newMissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missions",
		Short: "List today's daily missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			printMissions(cmd.OutOrStdout(), e.player.Missions())
			return nil
		},
	}
}

func printMissions(w io.Writer, ms []missions.Mission) {
	if len(ms) == 0 {
		fmt.Fprintln(w, "No missions today.")
		return
	}
	for _, m := range ms {
		mark := " "
		if m.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s: %s (%d/%d) reward %d stars, %d coins\n",
			mark, m.Title, m.Description, m.Progress, m.Target, m.Reward.Stars, m.Reward.Coins)
	}
}
