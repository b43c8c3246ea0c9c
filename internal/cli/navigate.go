package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/state"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload from the navigator
// after a mutation.
type refreshViewMsg struct{}

// noticeMsg carries a notice to the status line.
type noticeMsg struct {
	notice *state.Notice
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// afterMutation refreshes the stack and shows notice, if any.
func afterMutation(notice *state.Notice) tea.Cmd {
	if notice == nil {
		return refreshViews()
	}
	return tea.Batch(refreshViews(), func() tea.Msg { return noticeMsg{notice: notice} })
}

// mutationResult turns a navigator mutation into the follow-up command. An
// error is shown as a warning; the state did not change.
func mutationResult(notice *state.Notice, err error) tea.Cmd {
	if err != nil {
		notice = &state.Notice{Level: state.LevelWarn, Text: err.Error()}
	}
	return afterMutation(notice)
}
