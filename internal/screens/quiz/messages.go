package quiz

import "time"

// tickMsg drives interstitial animations.
type tickMsg time.Time

// submitDoneMsg reports the outcome of the form submission command.
type submitDoneMsg struct {
	err error
}

// recordedMsg reports a background event-log append. Failures are logged
// and otherwise ignored; the quiz never blocks on persistence.
type recordedMsg struct {
	err error
}
