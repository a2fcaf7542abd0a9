package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstar/internal/session"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game right away",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseModeFlag(cmd)
			if err != nil {
				return err
			}
			return runApp(cmd, mode)
		},
	}
	cmd.Flags().String("mode", string(session.ModeLearning), "Game mode: learning, challenge or adventure")
	return cmd
}

// parseModeFlag rejects mode names the game doesn't know instead of
// silently falling back to learning.
func parseModeFlag(cmd *cobra.Command) (session.Mode, error) {
	s, _ := cmd.Flags().GetString("mode")
	want := strings.ToLower(strings.TrimSpace(s))
	for _, m := range session.AllModes() {
		if string(m) == want {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want learning, challenge or adventure)", s)
}
