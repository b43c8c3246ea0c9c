// Package dashboard derives the tracking summary shown for followed
// schools: deadline countdowns, the progress funnel and the interview list.
package dashboard

import (
	"slices"
	"time"

	"github.com/alexanderramin/hknav/internal/domain"
)

const (
	// DeadlineLimit is how many upcoming deadlines the dashboard lists.
	DeadlineLimit = 5
	// InterviewLimit is how many interview-stage schools the dashboard lists.
	InterviewLimit = 2
	// UrgentDays is the countdown below which a deadline is highlighted.
	UrgentDays = 7
)

// DaysRemaining counts calendar days from today, in now's location, to the
// deadline date. A deadline of today is 0 and a deadline of yesterday is -1.
// Both dates are placed at UTC midnight so DST shifts cannot skew the count.
func DaysRemaining(deadline domain.Date, now time.Time) int {
	today := domain.DateOf(now).Midnight(time.UTC)
	return int(deadline.Midnight(time.UTC).Sub(today) / (24 * time.Hour))
}

// Urgent reports whether a countdown should be highlighted.
func Urgent(days int) bool {
	return days < UrgentDays
}

// Deadline is one countdown row.
type Deadline struct {
	School        domain.School
	DaysRemaining int
}

func (d Deadline) Urgent() bool { return Urgent(d.DaysRemaining) }

// Upcoming is the bounded countdown list plus the size of the full list.
type Upcoming struct {
	Items    []Deadline
	Total    int
	Overflow int
}

// UpcomingDeadlines keeps followed schools whose deadline has not passed,
// sorted soonest first, and returns at most limit of them. Schools without
// a deadline are left out. A limit <= 0 returns every upcoming deadline.
func UpcomingDeadlines(followed []domain.School, now time.Time, limit int) Upcoming {
	var all []Deadline
	for _, s := range followed {
		if s.ApplicationEnd.IsZero() {
			continue
		}
		days := DaysRemaining(s.ApplicationEnd, now)
		if days < 0 {
			continue
		}
		all = append(all, Deadline{School: s, DaysRemaining: days})
	}
	slices.SortStableFunc(all, func(a, b Deadline) int {
		return a.School.ApplicationEnd.Compare(b.School.ApplicationEnd)
	})

	up := Upcoming{Items: all, Total: len(all)}
	if limit > 0 && len(all) > limit {
		up.Items = all[:limit]
		up.Overflow = len(all) - limit
	}
	if up.Items == nil {
		up.Items = []Deadline{}
	}
	return up
}

// Stage is one bar of the progress funnel.
type Stage struct {
	Status domain.ProgressStatus
	Count  int
	Share  float64
}

// FunnelStats holds every funnel stage in lifecycle order.
type FunnelStats struct {
	Stages []Stage
	Total  int
}

// Count returns the number of followed schools at status.
func (f FunnelStats) Count(status domain.ProgressStatus) int {
	for _, s := range f.Stages {
		if s.Status == status {
			return s.Count
		}
	}
	return 0
}

// Funnel counts followed schools per progress status. A followed school
// with no progress entry counts as planning. Shares are count/total and all
// zero when nothing is followed.
func Funnel(followed []domain.School, progress map[string]domain.ProgressStatus) FunnelStats {
	counts := make(map[domain.ProgressStatus]int, len(domain.ProgressStatuses))
	for _, s := range followed {
		counts[statusOf(s.ID, progress)]++
	}

	total := len(followed)
	stats := FunnelStats{Total: total, Stages: make([]Stage, 0, len(domain.ProgressStatuses))}
	for _, st := range domain.ProgressStatuses {
		stage := Stage{Status: st, Count: counts[st]}
		if total > 0 {
			stage.Share = float64(stage.Count) / float64(total)
		}
		stats.Stages = append(stats.Stages, stage)
	}
	return stats
}

func statusOf(id string, progress map[string]domain.ProgressStatus) domain.ProgressStatus {
	if st, ok := progress[id]; ok && st.IsValid() {
		return st
	}
	return domain.ProgressPlanning
}

// Interviews is the bounded interview-stage list plus its full size.
type Interviews struct {
	Items []domain.School
	Total int
}

// InterviewStage returns followed schools currently at the interviewing
// stage, in followed order, at most limit of them (limit <= 0 means all).
func InterviewStage(followed []domain.School, progress map[string]domain.ProgressStatus, limit int) Interviews {
	items := []domain.School{}
	total := 0
	for _, s := range followed {
		if statusOf(s.ID, progress) != domain.ProgressInterviewing {
			continue
		}
		total++
		if limit <= 0 || len(items) < limit {
			items = append(items, s)
		}
	}
	return Interviews{Items: items, Total: total}
}

// Summary bundles everything the dashboard renders.
type Summary struct {
	FollowedCount int
	Upcoming      Upcoming
	Funnel        FunnelStats
	Interviews    Interviews
}

// Empty reports whether nothing is being tracked yet.
func (s Summary) Empty() bool { return s.FollowedCount == 0 }

// Build computes the full dashboard with the default display limits.
func Build(followed []domain.School, progress map[string]domain.ProgressStatus, now time.Time) Summary {
	return Summary{
		FollowedCount: len(followed),
		Upcoming:      UpcomingDeadlines(followed, now, DeadlineLimit),
		Funnel:        Funnel(followed, progress),
		Interviews:    InterviewStage(followed, progress, InterviewLimit),
	}
}
