package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/internal/ui"
	"github.com/tesselslate/xwin/key"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [profile]",
	Short: "Open a window and browse its events in a terminal UI",
	Long: `Open a window and show the events it receives in a terminal UI, along
with the current window size, position, state, pointer and modifiers.`,
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

		p := tea.NewProgram(
			ui.NewModel(profile.Window.Title, s.size),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		logger, err := logConf(profile.Log).LoggerTo(ui.LogWriter{Program: p})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		swapLogger(logger)
		defer func() {
			// The program is gone, so log to the console again.
			_ = useLogger(profile.Log)
		}()

		s.handle = func(evt event.Event, mods key.Mods) error {
			p.Send(ui.MsgEvent{Event: evt, Mods: mods})
			return nil
		}
		s.retitle = func(title string) {
			p.Send(ui.MsgTitle(title))
		}

		done := make(chan error, 1)
		go func() {
			err := s.run()
			p.Send(ui.MsgDone{Err: err})
			done <- err
		}()

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run inspector: %w", err)
		}
		// Closing the window stops the event loop if the user quit first.
		s.close()
		return <-done
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
