package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skadvisory/findna/internal/ui/theme"
)

// Option is one selectable entry in an OptionList.
type Option struct {
	Label       string
	Description string
	Emoji       string
}

// OptionList is a single-select list for quiz options.
type OptionList struct {
	Options  []Option
	Selected int
	Chosen   int // -1 until a choice is made
}

// NewOptionList creates an option list with nothing chosen. If preselect is
// in range the cursor starts there (revisiting a question restores the
// earlier choice).
func NewOptionList(options []Option, preselect int) OptionList {
	l := OptionList{
		Options:  options,
		Selected: 0,
		Chosen:   preselect,
	}
	if preselect >= 0 && preselect < len(options) {
		l.Selected = preselect
	}
	return l
}

// Init returns nil.
func (l OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Enter marks the highlighted option as
// chosen; the caller reads Chosen and decides what to do next.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "enter":
		l.Chosen = l.Selected
	}

	return l, nil
}

// HasChoice reports whether an option has been chosen.
func (l OptionList) HasChoice() bool {
	return l.Chosen >= 0 && l.Chosen < len(l.Options)
}

// View renders the list.
func (l OptionList) View() string {
	var s string
	for i, opt := range l.Options {
		cursor := "  "
		if i == l.Selected {
			cursor = "▸ "
		}

		marker := "○"
		if i == l.Chosen {
			marker = "●"
		}

		line := cursor + marker + " "
		if opt.Emoji != "" {
			line += opt.Emoji + " "
		}
		line += opt.Label

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == l.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else if i == l.Chosen {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"

		if opt.Description != "" && i == l.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("      "+opt.Description) + "\n"
		}
	}
	return s
}
