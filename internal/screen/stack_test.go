package screen

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestStack_PushRunsInit(t *testing.T) {
	root := &stubScreen{title: "chat"}
	st := NewStack(root)

	next := &stubScreen{title: "library"}
	st.Update(PushMsg{Screen: next})

	if st.Depth() != 2 {
		t.Errorf("depth = %d, want 2", st.Depth())
	}
	if st.Active().Title() != "library" {
		t.Errorf("active = %q, want library", st.Active().Title())
	}
	if !next.initRan {
		t.Error("Init() did not run on the pushed screen")
	}
}

func TestStack_PopKeepsRoot(t *testing.T) {
	root := &stubScreen{title: "chat"}
	st := NewStack(root)
	st.Update(PushMsg{Screen: &stubScreen{title: "library"}})

	st.Update(Pop())
	st.Update(Pop())

	if st.Depth() != 1 {
		t.Errorf("depth = %d, want 1", st.Depth())
	}
	if st.View(10, 10) != "chat" {
		t.Errorf("view = %q, want chat", st.View(10, 10))
	}
}

func TestStack_ForwardsToActiveOnly(t *testing.T) {
	root := &stubScreen{title: "chat"}
	st := NewStack(root)
	top := &stubScreen{title: "library"}
	st.Update(PushMsg{Screen: top})

	type ping struct{}
	st.Update(ping{})

	if len(top.got) != 1 {
		t.Errorf("top got %d messages, want 1", len(top.got))
	}
	if len(root.got) != 0 {
		t.Errorf("root got %d messages, want 0", len(root.got))
	}
}

func TestPush_Command(t *testing.T) {
	s := &stubScreen{title: "x"}
	msg, ok := Push(s)().(PushMsg)
	if !ok || msg.Screen != s {
		t.Error("Push did not produce a PushMsg for the screen")
	}
}

func TestStack_ReplaceSwapsTop(t *testing.T) {
	st := NewStack(&stubScreen{title: "welcome"})
	next := &stubScreen{title: "chat"}
	st.Update(ReplaceMsg{Screen: next})

	if st.Depth() != 1 {
		t.Errorf("depth = %d, want 1", st.Depth())
	}
	if st.Active() != Screen(next) {
		t.Errorf("active = %q, want chat", st.Active().Title())
	}
	if !next.initRan {
		t.Error("Init() did not run on the replacement")
	}
}
