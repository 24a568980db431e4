package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage player profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "Show a profile (defaults to the signed-in player)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		var u profile.User
		if len(args) == 1 {
			if u, err = d.profiles.Lookup(args[0]); err != nil {
				return err
			}
		} else {
			sess, err := d.profiles.Resume(cmd.Context())
			if errors.Is(err, profile.ErrNoSession) {
				fmt.Println("Nobody is signed in.")
				return nil
			}
			if err != nil {
				return err
			}
			u = sess.User()
		}

		fmt.Printf("Username:  %s\n", u.Username)
		if u.Name != "" {
			fmt.Printf("Name:      %s\n", u.Name)
		}
		if u.Email != "" {
			fmt.Printf("Email:     %s\n", u.Email)
		}
		fmt.Printf("Language:  %s\n", u.Language.DisplayName())
		fmt.Printf("Balance:   %d PN\n", u.Balance)
		fmt.Printf("Joined:    %s\n", u.CreatedAt.Local().Format("2006-01-02"))

		fmt.Println()
		fmt.Println("Guardians")
		fmt.Println(strings.Repeat("─", 40))
		for _, g := range d.catalog.All() {
			state := "locked"
			if slices.Contains(u.Unlocked, g.ID) {
				state = fmt.Sprintf("%d/%d", u.Progress[g.ID], g.StageCount())
			}
			fmt.Printf("%-28s  %s\n", truncate(g.Name.Get(u.Language), 28), state)
		}

		if len(u.QuizzesCompleted) > 0 {
			total := 0
			for _, n := range u.QuizzesCompleted {
				total += n
			}
			fmt.Printf("\nQuizzes completed: %d\n", total)
		}
		return nil
	},
}

var profileSignupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create a profile and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			var err error
			if password, err = prompt("Password (4 to 8 characters): "); err != nil {
				return err
			}
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.profiles.SignUp(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s! You are signed in.\n", sess.Username())
		return nil
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the signed-in player's points, unlocks and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.profiles.Resume(cmd.Context())
		if errors.Is(err, profile.ErrNoSession) {
			return fmt.Errorf("nobody is signed in")
		}
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			answer, err := prompt(fmt.Sprintf("Reset all progress for %s? [y/N] ", sess.Username()))
			if err != nil {
				return err
			}
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := sess.Reset(cmd.Context()); err != nil {
			return err
		}
		if events, _ := cmd.Flags().GetBool("events"); events {
			n, err := d.store.EventRepo().DeleteUserEvents(cmd.Context(), sess.Username())
			if err != nil {
				return fmt.Errorf("delete events: %w", err)
			}
			fmt.Printf("Deleted %d events.\n", n)
		}
		fmt.Printf("Progress for %s was reset.\n", sess.Username())
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the signed-in player's name or email",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("name") && !flags.Changed("email") {
			return errors.New("nothing to change: pass --name or --email")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.profiles.Resume(cmd.Context())
		if errors.Is(err, profile.ErrNoSession) {
			return fmt.Errorf("nobody is signed in")
		}
		if err != nil {
			return err
		}

		u := sess.User()
		name, email := u.Name, u.Email
		if flags.Changed("name") {
			name, _ = flags.GetString("name")
		}
		if flags.Changed("email") {
			email, _ = flags.GetString("email")
		}
		if err := sess.SetDetails(name, email); err != nil {
			return err
		}
		fmt.Printf("Profile of %s updated.\n", sess.Username())
		return nil
	},
}

// prompt reads one line from stdin.
func prompt(label string) (string, error) {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func init() {
	profileSignupCmd.Flags().String("password", "", "Password (prompted when empty)")
	profileResetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	profileResetCmd.Flags().Bool("events", false, "Also delete the player's event history")
	profileSetCmd.Flags().String("name", "", "Display name (empty clears it)")
	profileSetCmd.Flags().String("email", "", "Email address (empty clears it)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSignupCmd)
	profileCmd.AddCommand(profileResetCmd)
	profileCmd.AddCommand(profileSetCmd)
}
