package cli

import (
	"context"
	"slices"

	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ctx bounds the advisory calls started from the TUI.
	Ctx context.Context

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) nav() *service.Navigator { return s.App.Nav }

// chromeLines is the header, notice line and status bar around a view.
const chromeLines = 6

// ContentHeight is the number of rows available to the active view.
func (s *SharedState) ContentHeight() int {
	if s.Height <= 0 {
		return 20
	}
	return max(s.Height-chromeLines, 3)
}

// nextProgress cycles a school through the funnel stages in lifecycle order.
func (s *SharedState) nextProgress(id string) domain.ProgressStatus {
	cur, ok := s.nav().State().ProgressOf(id)
	if !ok {
		cur = domain.ProgressPlanning
	}
	i := slices.Index(domain.ProgressStatuses, cur)
	return domain.ProgressStatuses[(i+1)%len(domain.ProgressStatuses)]
}
