package formatter

import (
	"github.com/alexanderramin/hknav/internal/state"
)

// FormatNotice renders a notice as one line, or "" for nil.
func FormatNotice(n *state.Notice) string {
	if n == nil {
		return ""
	}
	if n.Level == state.LevelWarn {
		return StyleYellow.Render("⚠ "+n.Text) + "\n"
	}
	return StyleBlue.Render("ℹ "+n.Text) + "\n"
}
