package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skadvisory/findna/internal/catalog"
	"github.com/skadvisory/findna/internal/flow"
	"github.com/skadvisory/findna/internal/profile"
	"github.com/skadvisory/findna/internal/ui/components"
	"github.com/skadvisory/findna/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch st := s.ctrl.State(); st.Stage {
	case flow.StageTransition:
		return s.renderTransition(width, height, st.Phase)
	case flow.StageAnswering:
		return s.renderQuestion(width, height)
	case flow.StageReaction:
		return s.renderReaction(width, height, st.Reaction)
	case flow.StageSubmitting:
		return s.renderSubmitting(width, height)
	case flow.StageSubmitted:
		return s.renderResults(width, height)
	}
	return ""
}

func (s *QuizScreen) renderTransition(width, height, phase int) string {
	p := catalog.Phases[phase]

	accent := theme.PhaseColors[phase]
	if accent == nil {
		accent = theme.Primary
	}

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(p.Icon+"  Phase "+fmt.Sprint(phase)))
	sections = append(sections, "")
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Title))
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Subtitle))
	sections = append(sections, "")
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Render(catalog.Transitions[phase]))

	if s.interstitialFor >= interstitialDelay {
		sections = append(sections, "", theme.Hint.Render("press any key"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q, ok := s.ctrl.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Progress header: overall bar plus the phase position.
	pos, total := s.ctrl.Progress()
	start, end := s.ctrl.PhaseBounds()
	phaseLabel := fmt.Sprintf("Phase %d · %d of %d", q.Phase, pos-start+1, end-start+1)

	bar := components.NewProgressBar("  "+phaseLabel, float64(pos)/float64(total), true, width-4)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n")
	if q.Subtitle != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(q.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input area.
	if q.Type == catalog.TypeSingle {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.list.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}

	if isContactQuestion(q) {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Your details stay private and are only used to send your report (PDPA)."))
	}

	return b.String()
}

// isContactQuestion reports whether q collects personal contact details.
func isContactQuestion(q catalog.Question) bool {
	switch q.Key {
	case "clientName", "clientEmail", "clientMobile":
		return true
	}
	return false
}

func (s *QuizScreen) renderReaction(width, height int, key flow.ReactionKey) string {
	msg := catalog.MidwayMessage
	if key == flow.ReactionFinal {
		msg = catalog.FinalMessage
	}

	var sections []string
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🧬  Stanley"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 60)).
		Align(lipgloss.Center).
		Render(msg))

	if s.interstitialFor >= interstitialDelay {
		sections = append(sections, "", theme.Hint.Render("press any key"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderSubmitting(width, height int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}
	frame := frames[int(s.interstitialFor/tickInterval)%len(frames)]

	content := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(frame + "  Sealing your results...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderResults(width, height int) string {
	if !s.hasResult {
		return ""
	}
	card := profile.Content(s.result.Archetype)

	accent := theme.ArchetypeColors[string(s.result.Archetype)]
	if accent == nil {
		accent = theme.Primary
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(card.Emoji + "  " + card.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render(card.Tagline))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(min(width-12, 56)).Foreground(theme.Text)
	label := lipgloss.NewStyle().Foreground(accent).Bold(true)

	b.WriteString(label.Render("Your truth") + "\n")
	b.WriteString(body.Render(card.Truth) + "\n\n")
	b.WriteString(label.Render("Blind spot") + "\n")
	b.WriteString(body.Render(card.BlindSpot) + "\n\n")
	b.WriteString(label.Render("This week") + "\n")
	b.WriteString(body.Render(card.MicroAction) + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
		"Risk %d · Structure %d · Driver: %s", s.result.RiskScore, s.result.StructureScore, s.result.EmotionalDriver)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
		Render("✓ All done. Your full report is on its way."))

	boxed := theme.Card.Render(b.String())
	content := boxed + "\n\n" + lipgloss.PlaceHorizontal(lipgloss.Width(boxed), lipgloss.Center, s.finish.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
