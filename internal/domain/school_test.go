package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchool_HasCurriculumAndLanguage(t *testing.T) {
	s := School{
		Curriculum: []Curriculum{CurriculumDSE, CurriculumIB},
		Language:   []string{"English", "Putonghua"},
	}
	assert.True(t, s.HasCurriculum(CurriculumIB))
	assert.False(t, s.HasCurriculum(CurriculumAP))
	assert.True(t, s.HasLanguage("Putonghua"))
	assert.False(t, s.HasLanguage("putonghua"))
}

func TestSchool_DisplayNamePrefersChinese(t *testing.T) {
	assert.Equal(t, "拔萃男書院", School{Name: "Diocesan Boys' School", NameZh: "拔萃男書院"}.DisplayName())
	assert.Equal(t, "Harrow", School{Name: "Harrow"}.DisplayName())
}

func TestSchool_CloneDoesNotShareSlices(t *testing.T) {
	rank := 3
	s := School{Curriculum: []Curriculum{CurriculumDSE}, Language: []string{"English"}, CategoryRanking: &rank}
	c := s.Clone()
	c.Curriculum[0] = CurriculumAP
	c.Language[0] = "French"
	*c.CategoryRanking = 9

	assert.Equal(t, CurriculumDSE, s.Curriculum[0])
	assert.Equal(t, "English", s.Language[0])
	assert.Equal(t, 3, *s.CategoryRanking)
}

func TestSchool_MapURLEscapesQuery(t *testing.T) {
	u := School{Name: "St. Paul's", Location: "33 Kennedy Road"}.MapURL()
	assert.Contains(t, u, "https://www.google.com/maps/search/?api=1&query=")
	assert.Contains(t, u, "St.+Paul%27s+33+Kennedy+Road+Hong+Kong")
}

func TestParseEnums(t *testing.T) {
	c, err := ParseCurriculum("british")
	assert.NoError(t, err)
	assert.Equal(t, CurriculumBritish, c)
	assert.Equal(t, "British", c.Short())

	_, err = ParseCurriculum("GCSE")
	assert.ErrorIs(t, err, ErrInvalidCurriculum)

	typ, err := ParseSchoolType("DSS")
	assert.NoError(t, err)
	assert.Equal(t, TypeDSS, typ)

	_, err = ParseSchoolType("Charter")
	assert.ErrorIs(t, err, ErrInvalidType)

	st, err := ParseProgressStatus(" Interviewing ")
	assert.NoError(t, err)
	assert.Equal(t, ProgressInterviewing, st)

	_, err = ParseProgressStatus("enrolled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
