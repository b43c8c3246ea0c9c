package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/state"
)

// schoolDetailView shows one school card with its tracking controls and a
// note editor. The note is saved when the editor loses focus.
type schoolDetailView struct {
	state    *SharedState
	schoolID string
	vp       viewport.Model
	note     textarea.Model
	editing  bool
}

var (
	keyEditNote = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note"))
	keyDoneNote = key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "save note"))
)

func newSchoolDetailView(shared *SharedState, schoolID string) *schoolDetailView {
	ta := textarea.New()
	ta.Placeholder = "记录开放日、面试准备…"
	ta.CharLimit = state.MaxNoteRunes
	ta.ShowLineNumbers = false
	ta.SetHeight(4)

	v := &schoolDetailView{
		state:    shared,
		schoolID: schoolID,
		vp:       viewport.New(0, 0),
		note:     ta,
	}
	v.resize()
	v.reload()
	return v
}

func (v *schoolDetailView) resize() {
	width := max(v.state.Width, 40)
	v.vp.Width = width
	v.vp.Height = max(v.state.ContentHeight()-7, 3)
	v.note.SetWidth(min(width-2, 100))
}

func (v *schoolDetailView) reload() {
	school, err := v.state.nav().School(v.schoolID)
	if err != nil {
		v.vp.SetContent(formatter.Dim(err.Error()))
		return
	}
	v.vp.SetContent(formatter.FormatSchoolCard(school, v.state.nav().State(), v.state.nav().Now()))
}

// commitNote saves the editor content. It runs whenever the editor loses
// focus, so closing the view never drops an edit.
func (v *schoolDetailView) commitNote() tea.Cmd {
	if !v.editing {
		return nil
	}
	v.editing = false
	v.note.Blur()
	notice, err := v.state.nav().SetNote(v.state.Ctx, v.schoolID, v.note.Value())
	return mutationResult(notice, err)
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *schoolDetailView) Init() tea.Cmd { return nil }

func (v *schoolDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		v.reload()
		return v, nil
	case refreshViewMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		if v.editing {
			if key.Matches(msg, keyDoneNote) {
				return v, v.commitNote()
			}
			var cmd tea.Cmd
			v.note, cmd = v.note.Update(msg)
			return v, cmd
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *schoolDetailView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := v.state.nav()
	ctx := v.state.Ctx

	switch {
	case key.Matches(msg, keyEditNote):
		v.editing = true
		v.note.SetValue(nav.State().NoteOf(v.schoolID))
		return v, v.note.Focus()
	case key.Matches(msg, keyFollow):
		notice, err := nav.ToggleFollow(ctx, v.schoolID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyMonitor):
		notice, err := nav.ToggleMonitor(ctx, v.schoolID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyToggleCm):
		notice, err := nav.ToggleCompare(ctx, v.schoolID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyProgress):
		notice, err := nav.SetProgress(ctx, v.schoolID, v.state.nextProgress(v.schoolID))
		return v, mutationResult(notice, err)
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *schoolDetailView) View() string {
	var b strings.Builder
	b.WriteString(v.vp.View())
	b.WriteString("\n\n")
	if v.editing {
		b.WriteString(formatter.StyleHeader.Render("私人笔记 Notes") + "\n")
		b.WriteString(v.note.View())
	} else {
		note := v.state.nav().State().NoteOf(v.schoolID)
		b.WriteString(formatter.Dim("私人笔记 Notes") + "  ")
		if note == "" {
			b.WriteString(formatter.Dim("(press n to add a note)"))
		} else {
			b.WriteString(formatter.Truncate(strings.ReplaceAll(note, "\n", " "), max(v.state.Width-18, 20)))
		}
	}
	return b.String()
}

// Close saves a pending edit when the view is popped. A failed save comes
// back as a notice for the status line.
func (v *schoolDetailView) Close() tea.Cmd {
	return v.commitNote()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *schoolDetailView) ID() ViewID { return ViewSchoolDetail }

func (v *schoolDetailView) Title() string {
	if s, err := v.state.nav().School(v.schoolID); err == nil {
		return formatter.Truncate(s.DisplayName(), 32)
	}
	return v.schoolID
}

func (v *schoolDetailView) CapturesInput() bool { return v.editing }

func (v *schoolDetailView) ShortHelp() []key.Binding {
	if v.editing {
		return []key.Binding{keyDoneNote}
	}
	return []key.Binding{keyFollow, keyMonitor, keyToggleCm, keyProgress, keyEditNote}
}
