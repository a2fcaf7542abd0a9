package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNeedConfirm = errors.New("reset erases all stars, coins and missions; rerun with --yes to confirm")

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all player progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errNeedConfirm
			}

			e, err := newEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.player.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset. Fresh missions are ready!")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm the reset")
	return cmd
}
