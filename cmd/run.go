package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathstar/internal/app"
	"github.com/abhisek/mathstar/internal/session"
)

// runApp opens the backend, loads the player and launches the TUI. A
// non-empty mode starts a game of that mode straight away.
func runApp(cmd *cobra.Command, mode session.Mode) error {
	e, err := newEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.log.Info("starting", "version", version, "backend", e.cfg.Backend, "mode", string(mode))
	return app.Run(app.Options{
		Player:    e.player,
		Logger:    e.log,
		StartMode: mode,
	})
}
