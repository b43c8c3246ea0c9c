// Package filter derives the visible school list from the catalog and the
// active filter criteria. Everything here is pure: inputs are never mutated
// and equal inputs always give equal outputs.
package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/hknav/internal/domain"
)

// SortKey selects the ordering of the visible list.
type SortKey string

const (
	SortRank     SortKey = "rank"
	SortDeadline SortKey = "deadline"
)

// ParseSortKey accepts "rank" or "deadline".
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortRank, SortDeadline:
		return k, nil
	case "":
		return SortRank, nil
	}
	return "", fmt.Errorf("invalid sort key %q (want rank or deadline)", s)
}

// Spec is the set of active criteria. A zero field means "All".
type Spec struct {
	Curriculum domain.Curriculum
	Type       domain.SchoolType
	District   string
	Language   string
	Search     string
	Sort       SortKey
}

// IsZero reports whether no constraint is active. Sort order does not count
// as a constraint.
func (s Spec) IsZero() bool {
	return s.Curriculum == "" && s.Type == "" && s.District == "" &&
		s.Language == "" && s.Search == ""
}

// Cleared drops every constraint and keeps the sort order.
func (s Spec) Cleared() Spec {
	return Spec{Sort: s.Sort}
}

// Describe renders the active constraints for status lines and empty-state
// messages, e.g. `IB · Southern (南區) · "harrow"`.
func (s Spec) Describe() string {
	var parts []string
	if s.Curriculum != "" {
		parts = append(parts, s.Curriculum.Short())
	}
	if s.Type != "" {
		parts = append(parts, string(s.Type))
	}
	if s.District != "" {
		parts = append(parts, s.District)
	}
	if s.Language != "" {
		parts = append(parts, s.Language)
	}
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("%q", s.Search))
	}
	if len(parts) == 0 {
		return "All schools"
	}
	return strings.Join(parts, " · ")
}

// Apply returns the schools that satisfy every constraint in spec, sorted by
// spec.Sort. Ties keep their catalog order.
func Apply(schools []domain.School, spec Spec) []domain.School {
	out := make([]domain.School, 0, len(schools))
	for _, s := range schools {
		if matches(s, spec) {
			out = append(out, s)
		}
	}

	switch spec.Sort {
	case SortDeadline:
		slices.SortStableFunc(out, func(a, b domain.School) int {
			return a.ApplicationEnd.Compare(b.ApplicationEnd)
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.School) int {
			return cmp.Compare(a.Ranking, b.Ranking)
		})
	}
	return out
}

func matches(s domain.School, spec Spec) bool {
	if spec.Curriculum != "" && !s.HasCurriculum(spec.Curriculum) {
		return false
	}
	if spec.Type != "" && s.Type != spec.Type {
		return false
	}
	if spec.Language != "" && !s.HasLanguage(spec.Language) {
		return false
	}
	if spec.District != "" && s.District != spec.District {
		return false
	}
	if spec.Search != "" && !matchesSearch(s, spec.Search) {
		return false
	}
	return true
}

// matchesSearch lowercases the term for the Latin fields only. The Chinese
// name is matched against the term exactly as typed. Ids are short Latin
// slugs ("dbs", "spcc") that users search by, so they count as a Latin field.
func matchesSearch(s domain.School, term string) bool {
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.ID), lower) ||
		strings.Contains(strings.ToLower(s.Name), lower) ||
		strings.Contains(s.NameZh, term) ||
		strings.Contains(strings.ToLower(s.Location), lower) ||
		strings.Contains(strings.ToLower(s.District), lower)
}
