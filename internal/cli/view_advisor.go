package cli

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/advisor"
	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/service"
)

var advisorViewSerial atomic.Int64

// advisoryResultMsg carries a finished advisory call back to the view that
// started it.
type advisoryResultMsg struct {
	owner int64
	gen   uint64
	text  string
}

// advisorView runs advisory calls off the update loop. It serves both the
// assistant chat and the monitored-school news digest. At most one call is
// in flight; a result that arrives after the call was abandoned is dropped.
type advisorView struct {
	state   *SharedState
	serial  int64
	monitor bool

	input    textinput.Model
	spinner  spinner.Model
	tracker  advisor.Tracker
	cancel   context.CancelFunc
	messages []string
	suggest  int
}

var (
	keyAsk     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask"))
	keySuggest = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "suggestion"))
	keyLeave   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
)

func newAdvisorView(state *SharedState) *advisorView {
	ti := textinput.New()
	ti.Prompt = formatter.StylePurple.Render("ask") + formatter.Dim("> ")
	ti.Placeholder = "问我关于香港升小的任何问题…"
	ti.CharLimit = 500
	ti.Focus()

	v := newAdvisorBase(state)
	v.input = ti
	v.messages = []string{formatter.Header("Try asking")}
	for _, q := range advisor.Suggestions {
		v.messages = append(v.messages, formatter.Dim("  · ")+q)
	}
	return v
}

// newMonitorView fetches a news digest for the monitored schools as soon as
// it opens.
func newMonitorView(state *SharedState) *advisorView {
	v := newAdvisorBase(state)
	v.monitor = true
	return v
}

func newAdvisorBase(state *SharedState) *advisorView {
	return &advisorView{
		state:   state,
		serial:  advisorViewSerial.Add(1),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple)),
	}
}

// launch claims the tracker and starts call on a tea.Cmd goroutine.
func (v *advisorView) launch(prepare func() (service.Consult, string, error)) tea.Cmd {
	gen, ok := v.tracker.Begin()
	if !ok {
		v.messages = append(v.messages, formatter.Dim("上一个请求仍在处理中…"))
		return nil
	}
	call, skip, err := prepare()
	if err != nil || call == nil {
		v.tracker.Abandon()
		if err != nil {
			skip = formatter.StyleYellow.Render("⚠ " + err.Error())
		}
		if skip != "" {
			v.messages = append(v.messages, skip)
		}
		return nil
	}

	ctx, cancel := context.WithCancel(v.state.Ctx)
	v.cancel = cancel
	owner := v.serial
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		return advisoryResultMsg{owner: owner, gen: gen, text: call(ctx)}
	})
}

func (v *advisorView) ask(question string) tea.Cmd {
	v.messages = append(v.messages, formatter.Dim("You: ")+question)
	return v.launch(func() (service.Consult, string, error) {
		call, err := v.state.nav().PrepareAsk(question)
		return call, "", err
	})
}

func (v *advisorView) runMonitor() tea.Cmd {
	return v.launch(func() (service.Consult, string, error) {
		call, notice, err := v.state.nav().PrepareMonitor(v.state.Ctx)
		return call, strings.TrimRight(formatter.FormatNotice(notice), "\n"), err
	})
}

// Close abandons an outstanding call when the view is left. Calling it
// twice is harmless.
func (v *advisorView) Close() tea.Cmd {
	if v.tracker.Busy() {
		v.tracker.Abandon()
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	return nil
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *advisorView) Init() tea.Cmd {
	if v.monitor {
		return v.runMonitor()
	}
	return textinput.Blink
}

func (v *advisorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advisoryResultMsg:
		if msg.owner != v.serial || !v.tracker.Resolve(msg.gen) {
			return v, nil
		}
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		v.messages = append(v.messages, v.renderResult(msg.text))
		return v, nil

	case spinner.TickMsg:
		if !v.tracker.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.monitor {
			return v, nil
		}
		switch {
		case key.Matches(msg, keyLeave):
			v.Close()
			return v, popView()
		case key.Matches(msg, keySuggest):
			v.input.SetValue(advisor.Suggestions[v.suggest%len(advisor.Suggestions)])
			v.input.CursorEnd()
			v.suggest++
			return v, nil
		case key.Matches(msg, keyAsk):
			question := strings.TrimSpace(v.input.Value())
			if question == "" {
				return v, nil
			}
			v.input.Reset()
			return v, v.ask(question)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if v.monitor {
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *advisorView) renderResult(text string) string {
	if v.monitor {
		if strings.TrimSpace(text) == "" {
			return formatter.Dim("暂时没有获取到最新动态，请稍后再试。")
		}
		return formatter.RenderBox("AI 招生动态", strings.TrimSpace(text))
	}
	return formatter.FormatAnswer(text)
}

func (v *advisorView) View() string {
	var b strings.Builder
	for _, m := range v.messages {
		b.WriteString(m)
		b.WriteString("\n")
	}
	if v.tracker.Busy() {
		label := "正在思考…"
		if v.monitor {
			label = "正在检索最新招生动态…"
		}
		b.WriteString(v.spinner.View() + " " + formatter.Dim(label) + "\n")
	}
	if !v.monitor {
		b.WriteString("\n" + v.input.View())
	}
	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *advisorView) ID() ViewID { return ViewAdvisor }

func (v *advisorView) Title() string {
	if v.monitor {
		return "News"
	}
	return "Ask AI"
}

func (v *advisorView) CapturesInput() bool { return !v.monitor }

func (v *advisorView) ShortHelp() []key.Binding {
	if v.monitor {
		return nil
	}
	return []key.Binding{keyAsk, keySuggest, keyLeave}
}
