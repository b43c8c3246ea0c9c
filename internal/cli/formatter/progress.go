package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a share as a bar like ████░░░░ 45%, drawn in style.
func RenderBar(share float64, width int, style lipgloss.Style) string {
	share = min(max(share, 0), 1)
	width = max(width, 2)

	filled := min(int(share*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s %3.0f%%", style.Render(bar), share*100)
}
