package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/hknav/internal/domain"
)

var testRankCounter atomic.Int64

// School options
type SchoolOption func(*domain.School)

func WithID(id string) SchoolOption {
	return func(s *domain.School) {
		s.ID = id
	}
}

func WithNameZh(name string) SchoolOption {
	return func(s *domain.School) {
		s.NameZh = name
	}
}

func WithRanking(r int) SchoolOption {
	return func(s *domain.School) {
		s.Ranking = r
	}
}

func WithDistrict(d string) SchoolOption {
	return func(s *domain.School) {
		s.District = d
	}
}

func WithLocation(l string) SchoolOption {
	return func(s *domain.School) {
		s.Location = l
	}
}

func WithType(t domain.SchoolType) SchoolOption {
	return func(s *domain.School) {
		s.Type = t
	}
}

func WithCurriculum(c ...domain.Curriculum) SchoolOption {
	return func(s *domain.School) {
		s.Curriculum = c
	}
}

func WithLanguage(l ...string) SchoolOption {
	return func(s *domain.School) {
		s.Language = l
	}
}

// WithDeadline sets the application end date; "" clears it.
func WithDeadline(date string) SchoolOption {
	return func(s *domain.School) {
		s.ApplicationEnd = domain.MustDate(date)
	}
}

func NewTestSchool(name string, opts ...SchoolOption) domain.School {
	n := int(testRankCounter.Add(1))
	s := domain.School{
		ID:               fmt.Sprintf("test-%d", n),
		Name:             name,
		NameZh:           name,
		Location:         "1 Test Road",
		District:         "Wan Chai (灣仔區)",
		TuitionFee:       "Aided (Free)",
		Curriculum:       []domain.Curriculum{domain.CurriculumDSE},
		Language:         []string{"English"},
		Type:             domain.TypeAided,
		Ranking:          n,
		ApplicationStart: domain.MustDate("2024-09-01"),
		ApplicationEnd:   domain.MustDate("2024-11-30"),
		InterviewDate:    "November",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
