package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/screen"
	"github.com/unholyblue/bloom/internal/screens/chat"
	"github.com/unholyblue/bloom/internal/screens/welcome"
	"github.com/unholyblue/bloom/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	stack  *screen.Stack
	width  int
	height int
}

func newAppModel(ctx context.Context, conv *conversation.Conversation, splash bool) AppModel {
	var root screen.Screen = chat.New(ctx, conv)
	if splash {
		root = welcome.New(func() screen.Screen { return chat.New(ctx, conv) })
	}
	return AppModel{stack: screen.NewStack(root)}
}

func (m AppModel) Init() tea.Cmd {
	return m.stack.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.stack.Depth() > 1 {
				return m, screen.Pop
			}
			return m, nil
		}
	}

	cmd := m.stack.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.stack.Active()
	if active.Title() == "" {
		// Untitled screens (the splash) take the whole window.
		return active.View(m.width, m.height)
	}
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.stack.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the chat UI on conv and blocks until the user quits.
func Run(ctx context.Context, conv *conversation.Conversation) error {
	p := tea.NewProgram(newAppModel(ctx, conv, true), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
