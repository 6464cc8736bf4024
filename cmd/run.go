package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/internal/ui"
	"github.com/tesselslate/xwin/key"
)

var pickProfile bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [profile]",
	Short: "Open a window and print its events",
	Long: `Open a window and print every event it receives to standard output.

The window is configured by the given profile, or by the built-in default
profile if none is given. Edits to the profile file are applied while the
window is open.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := profileName(args)
		if err != nil {
			return err
		}
		profile, err := loadProfile(name)
		if err != nil {
			return err
		}
		if err := useLogger(profile.Log); err != nil {
			return err
		}

		s, err := openSession(profile)
		if err != nil {
			return err
		}
		defer s.close()
		s.handle = func(evt event.Event, mods key.Mods) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatEvent(evt, mods))
			return err
		}
		s.retitle = func(title string) {
			fmt.Fprintf(cmd.OutOrStdout(), "# title %q\n", title)
		}
		return s.run()
	},
}

// profileName returns the profile named on the command line, asking for one
// if --pick was given.
func profileName(args []string) (string, error) {
	if len(args) > 0 {
		if pickProfile {
			return "", errors.New("--pick cannot be used with a profile name")
		}
		return args[0], nil
	}
	if !pickProfile {
		return "", nil
	}
	name, err := ui.ShowProfileMenu()
	if err != nil {
		return "", fmt.Errorf("pick profile: %w", err)
	}
	if name == "" {
		return "", errors.New("no profile picked")
	}
	return name, nil
}

// formatEvent formats an event as one line of output. Key events are followed
// by the modifiers held when they were received.
func formatEvent(evt event.Event, mods key.Mods) string {
	switch evt.(type) {
	case event.KeyPress, event.KeyRelease:
		if mods != 0 {
			return fmt.Sprintf("%s mods=%s", evt, mods)
		}
	}
	return evt.String()
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&pickProfile, "pick", "p", false, "pick a profile from a menu")
}
