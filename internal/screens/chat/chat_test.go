package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/reframe"
	"github.com/unholyblue/bloom/internal/screen"
)

const routedText = "This is going to be a complete disaster and everyone always lets me down"

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string, distortion.Definition) (reframe.Response, error) {
	return reframe.Response{}, errors.New("backend down")
}

func newTestScreen(t *testing.T, gen reframe.Generator) *ChatScreen {
	t.Helper()
	conv := conversation.New(gen)
	t.Cleanup(conv.Close)
	return New(context.Background(), conv)
}

func typeAndSend(s *ChatScreen, text string) {
	s.input.Model.SetValue(text)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

// awaitOutcome waits for the next delivered outcome and feeds it back in.
func awaitOutcome(t *testing.T, s *ChatScreen) {
	t.Helper()
	select {
	case o := <-s.outcomes:
		s.Update(outcomeMsg(o))
	case <-time.After(2 * time.Second):
		t.Fatal("no outcome delivered")
	}
}

func last(s *ChatScreen) entry {
	return s.entries[len(s.entries)-1]
}

func TestChat_PassThroughAnsweredAtOnce(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	typeAndSend(s, "My presentation was a disaster.")

	if s.pending != 0 {
		t.Errorf("pending = %d, want 0", s.pending)
	}
	got := last(s)
	if got.from != fromBloom || got.reframe {
		t.Errorf("last entry = %+v, want a plain bloom reply", got)
	}
	if len(got.tags) != 1 || got.tags[0] != "Catastrophic Thinking" {
		t.Errorf("tags = %v", got.tags)
	}
	if s.Status() != "turn 1" {
		t.Errorf("status = %q, want turn 1", s.Status())
	}
}

func TestChat_RoutedTurnReframes(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	typeAndSend(s, routedText)

	if s.pending != 1 {
		t.Fatalf("pending = %d, want 1", s.pending)
	}
	if last(s).from != fromUser {
		t.Error("reply appeared before generation finished")
	}
	if s.Status() != "reflecting…" {
		t.Errorf("status = %q", s.Status())
	}

	awaitOutcome(t, s)

	got := last(s)
	if !got.reframe {
		t.Fatalf("last entry = %+v, want a reframe", got)
	}
	if !strings.Contains(got.text, "\n\n") {
		t.Errorf("reframe %q should hold message and question", got.text)
	}
	if s.pending != 0 {
		t.Errorf("pending = %d after outcome", s.pending)
	}
}

func TestChat_GenerationFailureFallsBack(t *testing.T) {
	s := newTestScreen(t, failingGenerator{})
	typeAndSend(s, routedText)
	awaitOutcome(t, s)

	got := last(s)
	if got.reframe || got.from != fromBloom {
		t.Errorf("last entry = %+v, want a plain reply", got)
	}
}

func TestChat_StaleOutcomeIgnored(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	typeAndSend(s, routedText)
	typeAndSend(s, "I had a good walk today")

	before := len(s.entries)
	s.Update(outcomeMsg(conversation.Outcome{
		Turn:     conversation.Turn{Seq: 1},
		Reframed: true,
		Reply:    "late",
	}))
	if len(s.entries) != before {
		t.Error("stale outcome was rendered")
	}
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	before := len(s.entries)
	typeAndSend(s, "   ")
	if len(s.entries) != before {
		t.Error("blank input produced entries")
	}
	if s.last != nil {
		t.Error("blank input started a turn")
	}
}

func TestChat_TabOpensLibrary(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if cmd == nil {
		t.Fatal("tab returned no command")
	}
	if _, ok := cmd().(screen.PushMsg); !ok {
		t.Error("tab did not push a screen")
	}
}

func TestChat_ViewFitsHeight(t *testing.T) {
	s := newTestScreen(t, reframe.NewTemplateGenerator())
	for i := 0; i < 10; i++ {
		typeAndSend(s, "I had a good walk today")
	}
	v := s.View(80, 20)
	if n := strings.Count(v, "\n") + 1; n != 20 {
		t.Errorf("view has %d lines, want 20", n)
	}
}
