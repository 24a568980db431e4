package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/profile"
)

var guardiansCmd = &cobra.Command{
	Use:   "guardians",
	Short: "List the guardians and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		lang := d.cfg.Language
		var sess *profile.Session
		if s, err := d.profiles.Resume(cmd.Context()); err == nil {
			sess = s
			lang = s.Language()
		}

		fmt.Printf("%-3s  %-28s  %6s  %6s  %6s  %s\n", "ID", "Name", "Cost", "Stages", "Reward", "Progress")
		fmt.Println(strings.Repeat("─", 78))
		for _, g := range d.catalog.All() {
			progress := "-"
			if sess != nil {
				switch {
				case !sess.IsUnlocked(g.ID):
					progress = "locked"
				default:
					progress = fmt.Sprintf("%d/%d", sess.Progress(g.ID), g.StageCount())
				}
			}
			fmt.Printf("%-3d  %-28s  %6d  %6d  %6d  %s\n",
				g.ID, truncate(g.Name.Get(lang), 28), g.Cost, g.StageCount(), g.FinalReward, progress)
		}
		if sess != nil {
			fmt.Printf("\n%s: %d PN\n", sess.Username(), sess.Balance())
		}
		return nil
	},
}

var guardiansShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a guardian's story and stages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		g, err := d.catalog.Get(id)
		if err != nil {
			return err
		}
		lang := d.cfg.Language
		if s, _ := cmd.Flags().GetString("lang"); s != "" {
			if lang, err = i18n.ParseLanguage(s); err != nil {
				return err
			}
		}

		fmt.Printf("%s  (cost %d PN, final reward %d PN)\n\n", g.Name.Get(lang), g.Cost, g.FinalReward)
		fmt.Println(g.Story.Get(lang))
		fmt.Println()
		for _, st := range g.Stages {
			fmt.Printf("%2d. %-14s  %-36s  %3d PN\n",
				st.Number, st.Type.DisplayName(), truncate(st.Title.Get(lang), 36), st.Points)
		}
		fmt.Printf("\nTotal: %d PN\n", g.TotalPoints())
		if warnings := g.Lint(); len(warnings) > 0 {
			fmt.Println("\nContent problems (these stages cannot be played):")
			for _, w := range warnings {
				fmt.Println("  " + w)
			}
		}
		return nil
	},
}

func init() {
	guardiansShowCmd.Flags().String("lang", "", "Content language (pt, en, es)")
	guardiansCmd.AddCommand(guardiansShowCmd)
}
