package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent stage, award and quiz events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		user, _ := cmd.Flags().GetString("user")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		if user == "" {
			sess, err := d.profiles.Resume(ctx)
			if err != nil && !errors.Is(err, profile.ErrNoSession) {
				return err
			}
			if sess != nil {
				user = sess.Username()
			}
		}

		entries, err := d.store.EventRepo().History(ctx, store.QueryOpts{Limit: limit, Username: user})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No events yet.")
			return nil
		}

		fmt.Printf("%-6s  %-16s  %-12s  %-7s  %s\n", "SEQ", "TIME", "USER", "KIND", "DETAIL")
		fmt.Println(strings.Repeat("─", 78))
		for _, e := range entries {
			fmt.Printf("%-6d  %-16s  %-12s  %-7s  %s\n",
				e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(e.Username, 12), e.Kind, historyDetail(e))
		}
		return nil
	},
}

func historyDetail(e store.HistoryEntry) string {
	switch {
	case e.Stage != nil:
		s := fmt.Sprintf("guardian %d stage %d, %d PN", e.Stage.GuardianID, e.Stage.Stage, e.Stage.Points)
		if !e.Stage.Applied {
			s += " (replay)"
		}
		return s
	case e.Award != nil:
		return fmt.Sprintf("%+d PN %s: %s (balance %d)", e.Award.Amount, e.Award.Source, e.Award.Reason, e.Award.Balance)
	case e.Quiz != nil:
		return fmt.Sprintf("%s: %d/%d, %d PN", e.Quiz.Topic, e.Quiz.Correct, e.Quiz.Questions, e.Quiz.Points)
	}
	return ""
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events")
	historyCmd.Flags().String("user", "", "Only this player's events (defaults to the signed-in player)")
}
