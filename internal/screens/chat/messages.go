package chat

import (
	tea "charm.land/bubbletea/v2"

	"github.com/unholyblue/bloom/internal/conversation"
)

// outcomeMsg carries a finished reframe generation back to the UI.
type outcomeMsg conversation.Outcome

// waitForOutcome blocks until the conversation delivers an outcome.
func waitForOutcome(ch <-chan conversation.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-ch)
	}
}
