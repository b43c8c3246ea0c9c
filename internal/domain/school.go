package domain

import (
	"net/url"
	"slices"
)

// School is one catalog entry. Built-in records are read-only; custom
// records are created once by the intake form and never edited.
type School struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	NameZh                string       `json:"nameZh"`
	Location              string       `json:"location"`
	District              string       `json:"district"`
	TuitionFee            string       `json:"tuitionFee"`
	Curriculum            []Curriculum `json:"curriculum"`
	Language              []string     `json:"language"`
	Type                  SchoolType   `json:"type"`
	Ranking               int          `json:"ranking"`
	CategoryRanking       *int         `json:"categoryRanking,omitempty"`
	ApplicationStart      Date         `json:"applicationStart"`
	ApplicationEnd        Date         `json:"applicationEnd"`
	InterviewDate         string       `json:"interviewDate"`
	Description           string       `json:"description"`
	Website               string       `json:"website"`
	InterviewRequirements string       `json:"interviewRequirements"`
	InterviewTips         string       `json:"interviewTips"`
}

// HasCurriculum reports whether the school offers c.
func (s School) HasCurriculum(c Curriculum) bool {
	return slices.Contains(s.Curriculum, c)
}

// HasLanguage reports whether the school teaches in lang (exact match).
func (s School) HasLanguage(lang string) bool {
	return slices.Contains(s.Language, lang)
}

// DisplayName prefers the Chinese name, matching the dashboard and
// comparison views.
func (s School) DisplayName() string {
	return CoalesceStr(s.NameZh, s.Name)
}

// MapURL returns a map search link for the school's address.
func (s School) MapURL() string {
	q := url.QueryEscape(s.Name + " " + s.Location + " Hong Kong")
	return "https://www.google.com/maps/search/?api=1&query=" + q
}

// Clone returns a deep copy so callers can hand out records without
// sharing slice backing arrays.
func (s School) Clone() School {
	c := s
	c.Curriculum = slices.Clone(s.Curriculum)
	c.Language = slices.Clone(s.Language)
	if s.CategoryRanking != nil {
		v := *s.CategoryRanking
		c.CategoryRanking = &v
	}
	return c
}
