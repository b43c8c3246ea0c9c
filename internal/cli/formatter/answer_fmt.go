package formatter

import (
	"fmt"
	"strings"
)

// FormatAnswer renders an assistant reply.
func FormatAnswer(text string) string {
	return RenderBox("AI 升学顾问", strings.TrimSpace(text))
}

// FormatSuggestions lists starter questions for the assistant.
func FormatSuggestions(questions []string) string {
	var b strings.Builder
	b.WriteString(Header("Try asking") + "\n")
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%d.", i+1)), q))
	}
	b.WriteString(Dim(`  hknav ask "<question>"`) + "\n")
	return b.String()
}
