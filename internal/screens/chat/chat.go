// Package chat is the conversation screen: the user types a message, it is
// classified and routed at once, and a reframe (when warranted) arrives
// asynchronously.
package chat

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/screen"
	"github.com/unholyblue/bloom/internal/screens/library"
	"github.com/unholyblue/bloom/internal/ui/components"
	"github.com/unholyblue/bloom/internal/ui/layout"
)

const outcomeBuffer = 8

type speaker int

const (
	fromUser speaker = iota
	fromBloom
)

type entry struct {
	from    speaker
	text    string
	reframe bool
	tags    []string
}

// ChatScreen implements screen.Screen for a conversation.
type ChatScreen struct {
	ctx      context.Context
	conv     *conversation.Conversation
	input    components.TextInput
	entries  []entry
	last     *conversation.Turn
	pending  uint64 // turn awaiting a reframe, 0 when idle
	outcomes chan conversation.Outcome
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)

func New(ctx context.Context, conv *conversation.Conversation) *ChatScreen {
	return &ChatScreen{
		ctx:      ctx,
		conv:     conv,
		input:    components.NewTextInput("How are you feeling?", 0),
		outcomes: make(chan conversation.Outcome, outcomeBuffer),
		entries: []entry{{
			from: fromBloom,
			text: "Hi, I'm here to listen. What's on your mind?",
		}},
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), waitForOutcome(s.outcomes))
}

func (s *ChatScreen) Title() string { return "Chat" }

func (s *ChatScreen) Status() string {
	switch {
	case s.pending != 0:
		return "reflecting…"
	case s.last != nil:
		return fmt.Sprintf("turn %d", s.last.Seq)
	}
	return ""
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Patterns"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		s.handleOutcome(conversation.Outcome(msg))
		return s, waitForOutcome(s.outcomes)

	case tea.WindowSizeMsg:
		s.input.SetWidth(msg.Width - 6)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			s.send()
			return s, nil
		case "tab":
			return s, screen.Push(library.New())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send submits the input as a new turn. The turn is routed before Submit
// returns; a pass-through is answered immediately.
func (s *ChatScreen) send() {
	text := s.input.Take()
	if text == "" {
		return
	}
	s.entries = append(s.entries, entry{from: fromUser, text: text})

	turn := s.conv.Submit(s.ctx, text, s.deliver)
	s.last = &turn

	if turn.Decision.ShouldReframe {
		s.pending = turn.Seq
		return
	}
	s.pending = 0
	s.entries = append(s.entries, acknowledge(turn))
}

// deliver runs on the conversation worker. It must not block, so an
// outcome is dropped if the UI is far behind.
func (s *ChatScreen) deliver(o conversation.Outcome) {
	select {
	case s.outcomes <- o:
	default:
	}
}

func (s *ChatScreen) handleOutcome(o conversation.Outcome) {
	if o.Seq != s.pending {
		return
	}
	s.pending = 0

	if !o.Reframed {
		s.entries = append(s.entries, acknowledge(o.Turn))
		return
	}
	s.entries = append(s.entries, entry{
		from:    fromBloom,
		text:    o.Reply,
		reframe: true,
		tags:    o.Decision.DistortionNames,
	})
}

// acknowledge is the ordinary reply for a turn that is not reframed.
func acknowledge(turn conversation.Turn) entry {
	e := entry{
		from: fromBloom,
		text: "Thank you for sharing that. Tell me more about what's going on.",
	}
	if turn.Result.Detected {
		e.tags = turn.Decision.DistortionNames
	}
	return e
}
