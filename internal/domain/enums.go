package domain

import (
	"fmt"
	"strings"
)

type Curriculum string

const (
	CurriculumDSE     Curriculum = "DSE"
	CurriculumIB      Curriculum = "IB"
	CurriculumAP      Curriculum = "AP"
	CurriculumBritish Curriculum = "British (A-Level)"
)

// Curricula lists every curriculum in tab order.
var Curricula = []Curriculum{CurriculumDSE, CurriculumIB, CurriculumAP, CurriculumBritish}

// ParseCurriculum accepts the wire value or the short name, case-insensitively.
func ParseCurriculum(s string) (Curriculum, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dse":
		return CurriculumDSE, nil
	case "ib", "ib (ip)":
		return CurriculumIB, nil
	case "ap":
		return CurriculumAP, nil
	case "british", "british (a-level)", "a-level":
		return CurriculumBritish, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurriculum, s)
}

// Short returns the tab label for the curriculum.
func (c Curriculum) Short() string {
	if c == CurriculumBritish {
		return "British"
	}
	return string(c)
}

type SchoolType string

const (
	TypeInternational SchoolType = "International"
	TypeDSS           SchoolType = "DSS (Direct Subsidy)"
	TypePrivate       SchoolType = "Private"
	TypeAided         SchoolType = "Aided/Government"
)

// SchoolTypes lists every school type in picker order.
var SchoolTypes = []SchoolType{TypeInternational, TypeDSS, TypePrivate, TypeAided}

// ParseSchoolType accepts the wire value or the short name, case-insensitively.
func ParseSchoolType(s string) (SchoolType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "international":
		return TypeInternational, nil
	case "dss", "dss (direct subsidy)", "direct subsidy":
		return TypeDSS, nil
	case "private":
		return TypePrivate, nil
	case "aided", "aided/government", "government":
		return TypeAided, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// ProgressStatus is a stage of the application funnel.
type ProgressStatus string

const (
	ProgressPlanning     ProgressStatus = "planning"
	ProgressApplied      ProgressStatus = "applied"
	ProgressInterviewing ProgressStatus = "interviewing"
	ProgressAccepted     ProgressStatus = "accepted"
	ProgressWaitlisted   ProgressStatus = "waitlisted"
	ProgressRejected     ProgressStatus = "rejected"
)

// ProgressStatuses is the funnel in lifecycle order.
var ProgressStatuses = []ProgressStatus{
	ProgressPlanning,
	ProgressApplied,
	ProgressInterviewing,
	ProgressAccepted,
	ProgressWaitlisted,
	ProgressRejected,
}

// IsValid reports whether s is one of the six funnel stages.
func (s ProgressStatus) IsValid() bool {
	for _, v := range ProgressStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseProgressStatus validates a user-supplied status string.
func ParseProgressStatus(s string) (ProgressStatus, error) {
	st := ProgressStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Label returns a human-readable label for the status.
func (s ProgressStatus) Label() string {
	switch s {
	case ProgressPlanning:
		return "Planning"
	case ProgressApplied:
		return "Applied"
	case ProgressInterviewing:
		return "Interviewing"
	case ProgressAccepted:
		return "Accepted"
	case ProgressWaitlisted:
		return "Waitlisted"
	case ProgressRejected:
		return "Rejected"
	default:
		return string(s)
	}
}
