package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/tesselslate/xwin/internal/cfg"
)

const profileHelp = "enter: select | ctrl+c: quit"

// ProfileMenu lets the user pick one of their configuration profiles.
type ProfileMenu struct {
	choices []string
	current int
	chosen  string
}

// NewProfileMenu creates a menu offering the given profile names.
func NewProfileMenu(choices []string) ProfileMenu {
	return ProfileMenu{choices: choices}
}

// Chosen returns the selected profile, or an empty string if the menu was
// left without a choice.
func (p ProfileMenu) Chosen() string {
	return p.chosen
}

func (p ProfileMenu) Init() tea.Cmd {
	return nil
}

func (p ProfileMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if p.current > 0 {
			p.current -= 1
		}
	case "down", "j":
		if p.current < len(p.choices)-1 {
			p.current += 1
		}
	case "enter":
		if len(p.choices) == 0 {
			return p, tea.Quit
		}
		p.chosen = p.choices[p.current]
		return p, tea.Quit
	case "ctrl+c", "esc":
		return p, tea.Quit
	}
	return p, nil
}

func (p ProfileMenu) View() string {
	out := profileTitleStyle.Render("\n  Profiles") + "\n"
	for i, choice := range p.choices {
		if i == p.current {
			out += profileSelectedStyle.Render("> "+choice) + "\n"
		} else {
			out += "  " + choice + "\n"
		}
	}
	out += grayStyle.Render("\n  "+profileHelp) + "\n"
	return out
}

// ShowProfileMenu displays the profile selection menu to the user and returns
// their choice. If no choice was picked, then the returned string is empty.
func ShowProfileMenu() (string, error) {
	choices, err := cfg.ListProfiles()
	if err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", errors.New("no configuration profiles found - make one")
	}
	model, err := tea.NewProgram(NewProfileMenu(choices)).Run()
	if err != nil {
		return "", fmt.Errorf("run profile menu: %w", err)
	}
	return model.(ProfileMenu).Chosen(), nil
}

var profileTitleStyle = gloss.NewStyle().Bold(true).Foreground(gloss.Color("11"))
var profileSelectedStyle = gloss.NewStyle().Bold(true).Foreground(gloss.Color("13"))
