package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// PlaceholderRequirements fills interview requirements on new custom records.
	PlaceholderRequirements = "请完善面试要求信息"
	// PlaceholderTips fills interview tips on new custom records.
	PlaceholderTips = "请完善面试建议信息"
)

// LooseStrings decodes either a JSON array of strings or a single string.
// Anything else decodes to an empty list instead of failing the whole record.
type LooseStrings []string

func (l *LooseStrings) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = splitList(one)
		return nil
	}
	*l = nil
	return nil
}

// PartialSchool is the loosely-shaped record an external lookup returns.
// Every field may be absent; enum fields are unvalidated strings.
type PartialSchool struct {
	Name             string       `json:"name"`
	NameZh           string       `json:"nameZh"`
	Location         string       `json:"location"`
	District         string       `json:"district"`
	TuitionFee       string       `json:"tuitionFee"`
	Type             string       `json:"type"`
	Curriculum       LooseStrings `json:"curriculum"`
	Language         LooseStrings `json:"language"`
	ApplicationStart string       `json:"applicationStart"`
	ApplicationEnd   string       `json:"applicationEnd"`
	InterviewDate    string       `json:"interviewDate"`
	Website          string       `json:"website"`
	Description      string       `json:"description"`
}

// IsEmpty reports whether the lookup produced nothing usable.
func (p PartialSchool) IsEmpty() bool {
	return p.Name == "" && p.NameZh == "" && p.Location == "" && p.District == "" &&
		p.TuitionFee == "" && p.Type == "" && len(p.Curriculum) == 0 && len(p.Language) == 0 &&
		p.ApplicationStart == "" && p.ApplicationEnd == "" && p.InterviewDate == "" &&
		p.Website == "" && p.Description == ""
}

// SchoolDraft holds the intake form's field values before a School is built.
type SchoolDraft struct {
	Name             string
	NameZh           string
	Location         string
	District         string
	TuitionFee       string
	Type             SchoolType
	Curriculum       []Curriculum
	Language         []string
	ApplicationStart string
	ApplicationEnd   string
	InterviewDate    string
	Website          string
	Description      string
}

// NewSchoolDraft returns an empty draft with the form's default type.
func NewSchoolDraft() SchoolDraft {
	return SchoolDraft{Type: TypePrivate}
}

// Merge copies every non-empty field of p over the draft. Enum values that
// do not parse are dropped and reported; the draft keeps its prior value.
func (d *SchoolDraft) Merge(p PartialSchool) (rejected []string) {
	d.Name = CoalesceStr(strings.TrimSpace(p.Name), d.Name)
	d.NameZh = CoalesceStr(strings.TrimSpace(p.NameZh), d.NameZh)
	d.Location = CoalesceStr(strings.TrimSpace(p.Location), d.Location)
	d.District = CoalesceStr(strings.TrimSpace(p.District), d.District)
	d.TuitionFee = CoalesceStr(strings.TrimSpace(p.TuitionFee), d.TuitionFee)
	d.InterviewDate = CoalesceStr(strings.TrimSpace(p.InterviewDate), d.InterviewDate)
	d.Website = CoalesceStr(strings.TrimSpace(p.Website), d.Website)
	d.Description = CoalesceStr(strings.TrimSpace(p.Description), d.Description)

	if p.Type != "" {
		t, err := ParseSchoolType(p.Type)
		if err != nil {
			rejected = append(rejected, "type="+p.Type)
		} else {
			d.Type = t
		}
	}

	if len(p.Curriculum) > 0 {
		var curr []Curriculum
		for _, raw := range p.Curriculum {
			c, err := ParseCurriculum(raw)
			if err != nil {
				rejected = append(rejected, "curriculum="+raw)
				continue
			}
			if !containsCurriculum(curr, c) {
				curr = append(curr, c)
			}
		}
		if len(curr) > 0 {
			d.Curriculum = curr
		}
	}

	if langs := cleanList(p.Language); len(langs) > 0 {
		d.Language = langs
	}

	for _, f := range []struct {
		name string
		raw  string
		dst  *string
	}{
		{"applicationStart", p.ApplicationStart, &d.ApplicationStart},
		{"applicationEnd", p.ApplicationEnd, &d.ApplicationEnd},
	} {
		if f.raw == "" {
			continue
		}
		if _, err := ParseDate(f.raw); err != nil {
			rejected = append(rejected, f.name+"="+f.raw)
			continue
		}
		*f.dst = strings.TrimSpace(f.raw)
	}

	return rejected
}

// Build validates the draft and produces a custom School with the given id
// and ranking. Gaps are filled with safe defaults.
func (d SchoolDraft) Build(id string, ranking int) (School, error) {
	name := strings.TrimSpace(d.Name)
	nameZh := strings.TrimSpace(d.NameZh)
	if name == "" && nameZh == "" {
		return School{}, ErrMissingName
	}

	start, err := ParseDate(d.ApplicationStart)
	if err != nil {
		return School{}, fmt.Errorf("application start: %w", err)
	}
	end, err := ParseDate(d.ApplicationEnd)
	if err != nil {
		return School{}, fmt.Errorf("application end: %w", err)
	}

	typ := d.Type
	if typ == "" {
		typ = TypePrivate
	}
	if _, err := ParseSchoolType(string(typ)); err != nil {
		return School{}, err
	}

	curr := make([]Curriculum, 0, len(d.Curriculum))
	for _, c := range d.Curriculum {
		if _, err := ParseCurriculum(string(c)); err != nil {
			return School{}, err
		}
		curr = append(curr, c)
	}

	return School{
		ID:                    id,
		Name:                  CoalesceStr(name, nameZh),
		NameZh:                CoalesceStr(nameZh, name),
		Location:              strings.TrimSpace(d.Location),
		District:              strings.TrimSpace(d.District),
		TuitionFee:            strings.TrimSpace(d.TuitionFee),
		Curriculum:            curr,
		Language:              cleanList(d.Language),
		Type:                  typ,
		Ranking:               ranking,
		ApplicationStart:      start,
		ApplicationEnd:        end,
		InterviewDate:         strings.TrimSpace(d.InterviewDate),
		Description:           strings.TrimSpace(d.Description),
		Website:               strings.TrimSpace(d.Website),
		InterviewRequirements: PlaceholderRequirements,
		InterviewTips:         PlaceholderTips,
	}, nil
}

// SchoolFromPartial builds a School directly from a lookup result, returning
// the enum values that were dropped along the way.
func SchoolFromPartial(p PartialSchool, id string, ranking int) (School, []string, error) {
	d := NewSchoolDraft()
	rejected := d.Merge(p)
	s, err := d.Build(id, ranking)
	return s, rejected, err
}

func containsCurriculum(list []Curriculum, c Curriculum) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	return cleanList(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == '、'
	}))
}

func cleanList(in []string) []string {
	var out []string
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
