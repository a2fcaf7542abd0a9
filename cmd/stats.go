package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/rank"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/store"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stars, coins, rank and skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			printStats(out, e.player.Progress())

			n, _ := cmd.Flags().GetInt("history")
			if n <= 0 {
				return nil
			}
			sessions, err := e.player.RecentSessions(cmd.Context(), n)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			fmt.Fprintln(out)
			printHistory(out, sessions)
			return nil
		},
	}
	cmd.Flags().Int("history", 0, "Also list the N most recent games")
	return cmd
}

func printStats(w io.Writer, p progress.PlayerProgress) {
	st := rank.StandingFor(p.TotalStars)

	fmt.Fprintf(w, "Stars:   %d\n", p.TotalStars)
	fmt.Fprintf(w, "Coins:   %d\n", p.TotalCoins)
	if st.HasNext {
		fmt.Fprintf(w, "Rank:    %s %s (%d stars to %s)\n", st.Current.Icon(), st.Current, st.StarsNeeded, st.Next)
	} else {
		fmt.Fprintf(w, "Rank:    %s %s (top rank)\n", st.Current.Icon(), st.Current)
	}
	if p.LastPlayDate != "" {
		fmt.Fprintf(w, "Streak:  %d day(s), last played %s\n", p.DailyStreak, p.LastPlayDate)
	} else {
		fmt.Fprintf(w, "Streak:  %d day(s)\n", p.DailyStreak)
	}
	fmt.Fprintf(w, "Missions completed: %d\n", len(p.CompletedMissions))

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tQUESTIONS\tSHARE\tLEVEL")
	for _, op := range problemgen.AllOperations() {
		fmt.Fprintf(tw, "%s\t%d\t%.0f%%\t%s\n",
			op.DisplayName(), p.Skills.Get(op), p.SkillShare(op), p.SkillLevel(op))
	}
	tw.Flush()
}

func printHistory(w io.Writer, sessions []store.SessionEventData) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FINISHED\tMODE\tCORRECT\tSCORE\tSTARS\tCOINS")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d\t%d\t%d\n",
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			session.Mode(s.Mode).DisplayName(),
			s.Correct, s.Questions, s.Score, s.Stars, s.Coins)
	}
	tw.Flush()
}
