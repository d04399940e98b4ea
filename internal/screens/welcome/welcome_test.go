package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/unholyblue/bloom/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "chat" }
func (s *stubScreen) Title() string                           { return "Chat" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestWelcome_Phases(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(80, 24), "press any key") {
		t.Error("prompt visible before the animation finished")
	}

	sendTicks(w, 6)
	if w.elapsed != bloomAt {
		t.Errorf("elapsed = %v, want %v", w.elapsed, bloomAt)
	}
	if !strings.Contains(w.View(80, 24), "(_)@(_)") {
		t.Error("flower not shown after bloom")
	}

	sendTicks(w, 6)
	if !strings.Contains(w.View(80, 24), "press any key") {
		t.Error("prompt not shown once ready")
	}
}

func TestWelcome_TicksStopWhenReady(t *testing.T) {
	w, _ := newTestWelcome()
	sendTicks(w, 12)
	if cmd := sendTicks(w, 1); cmd != nil {
		t.Error("ticking continued after the animation finished")
	}
	if w.elapsed != readyAt {
		t.Errorf("elapsed = %v, want %v", w.elapsed, readyAt)
	}
}

func TestWelcome_KeyReplacesOnce(t *testing.T) {
	w, calls := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("key press returned no command")
	}
	msg, ok := cmd().(screen.ReplaceMsg)
	if !ok {
		t.Fatalf("got %T, want screen.ReplaceMsg", cmd())
	}
	if msg.Screen.Title() != "Chat" {
		t.Errorf("replacement = %q", msg.Screen.Title())
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"}); cmd != nil {
		t.Error("second key press transitioned again")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestRenderBanner_Compact(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, "b l o o m") {
		t.Errorf("compact banner = %q", got)
	}
}
