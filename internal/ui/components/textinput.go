package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skadvisory/findna/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with quiz styling and an inline
// validation message.
type TextInput struct {
	Model      textinput.Model
	DigitsOnly bool
	errMsg     string
}

// NewTextInput creates a styled text input.
func NewTextInput(placeholder, initial string, digitsOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:      ti,
		DigitsOnly: digitsOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Digit-only inputs swallow stray keystrokes but
// admit "+" so a typed country prefix reaches validation unchanged.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.DigitsOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && key != "+" && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with any validation message beneath it.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetError sets the inline validation message. Empty clears it.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// Err returns the current validation message.
func (t TextInput) Err() string {
	return t.errMsg
}
