// Package welcome implements the intro screen: the advisor's opening
// monologue, revealed in timed beats before the quiz begins.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/router"
	"github.com/skadvisory/findna/internal/screen"
	"github.com/skadvisory/findna/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	logoEnd      = 600 * time.Millisecond
	monologueEnd = 1800 * time.Millisecond
	totalDur     = 2600 * time.Millisecond
)

const helixArt = ` ╭─╮   ╭─╮
 │ ╰─╮─╯ │
 ╰─╮ ╳ ╭─╯
 ╭─╯ ╳ ╰─╮
 │ ╭─╯─╮ │
 ╰─╯   ╰─╯`

type tickMsg time.Time

// WelcomeScreen plays the intro and hands off to the quiz.
type WelcomeScreen struct {
	quizFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// quizFactory.
func New(quizFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		quizFactory: quizFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// A keypress skips ahead while the intro plays, and starts the
		// quiz once it has finished.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		w.elapsed = totalDur
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	quizScreen := w.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(helixArt))

	if w.elapsed >= logoEnd {
		sections = append(sections, "")
		sections = append(sections, theme.Title.Render("FINANCIAL DNA"))
		sections = append(sections, theme.Subtitle.Render("Decode how you really handle money"))
	}

	if w.elapsed >= monologueEnd {
		monologue := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 64)).
			Align(lipgloss.Center).
			Render(catalog.IntroMessage)
		sections = append(sections, "", monologue)
	}

	if w.elapsed >= totalDur {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
