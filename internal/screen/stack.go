package screen

import (
	tea "charm.land/bubbletea/v2"
)

// PushMsg asks the stack to open Screen on top.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the stack to close the top screen.
type PopMsg struct{}

// ReplaceMsg swaps the top screen for Screen.
type ReplaceMsg struct {
	Screen Screen
}

// Push returns a command that opens s.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Pop returns a command that closes the top screen.
func Pop() tea.Msg { return PopMsg{} }

// Stack is a navigation stack. The root screen is never popped.
type Stack struct {
	screens []Screen
}

func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

func (s *Stack) Active() Screen {
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Depth() int {
	return len(s.screens)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		s.screens = append(s.screens, msg.Screen)
		return msg.Screen.Init()
	case PopMsg:
		if len(s.screens) > 1 {
			s.screens = s.screens[:len(s.screens)-1]
		}
		return nil
	case ReplaceMsg:
		s.screens[len(s.screens)-1] = msg.Screen
		return msg.Screen.Init()
	}

	updated, cmd := s.Active().Update(msg)
	s.screens[len(s.screens)-1] = updated
	return cmd
}

func (s *Stack) View(width, height int) string {
	return s.Active().View(width, height)
}
