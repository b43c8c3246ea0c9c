package catalog

import (
	"testing"

	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_HundredUniqueRankedSchools(t *testing.T) {
	base := Base()
	require.Len(t, base, 100)

	seen := map[string]bool{}
	for i, s := range base {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.Equal(t, i+1, s.Ranking)
		assert.NotEmpty(t, s.Curriculum, s.ID)
		assert.False(t, s.ApplicationEnd.IsZero(), s.ID)
	}
}

func TestBase_Deterministic(t *testing.T) {
	assert.Equal(t, Base(), Base())
}

func TestBase_GeneratedEntries(t *testing.T) {
	base := Base()

	first := base[10]
	assert.Equal(t, "school-11", first.ID)
	assert.Equal(t, "Ying Wa Primary School (11)", first.Name)
	assert.Equal(t, "Kowloon City (九龍城區)", first.District)
	assert.Equal(t, domain.TypeAided, first.Type)
	assert.Equal(t, "Aided (Free)", first.TuitionFee)
	assert.Equal(t, domain.MustDate("2024-10-01"), first.ApplicationEnd)
	require.NotNil(t, first.CategoryRanking)
	assert.Equal(t, 3, *first.CategoryRanking)

	second := base[11]
	assert.Equal(t, domain.TypeDSS, second.Type)
	assert.Equal(t, "HK$30800 / yr", second.TuitionFee)
	assert.Equal(t, []domain.Curriculum{domain.CurriculumIB}, second.Curriculum)

	// index 40 rolls into November
	assert.Equal(t, domain.MustDate("2024-11-13"), base[50].ApplicationEnd)
}

func TestBase_ReturnsIndependentCopies(t *testing.T) {
	a := Base()
	a[0].Curriculum[0] = domain.CurriculumAP
	a[2].Language[0] = "French"

	b := Base()
	assert.Equal(t, domain.CurriculumDSE, b[0].Curriculum[0])
	assert.Equal(t, "English", b[2].Language[0])
}

func TestCatalog_GetAndLookup(t *testing.T) {
	c := Default(nil)

	dbs, err := c.Get("dbs")
	require.NoError(t, err)
	assert.Equal(t, "拔萃男書院附屬小學", dbs.NameZh)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownSchool)

	got := c.Lookup([]string{"cis", "missing", "dbs"})
	require.Len(t, got, 2)
	assert.Equal(t, "cis", got[0].ID)
	assert.Equal(t, "dbs", got[1].ID)
}

func TestCatalog_AppendCustom(t *testing.T) {
	c := Default([]domain.School{{ID: "custom-a", Name: "A", Ranking: 101}})
	assert.Equal(t, 101, c.Len())
	assert.Equal(t, 102, c.NextRanking())

	require.NoError(t, c.Append(domain.School{ID: "custom-b", Name: "B", Ranking: 102}))
	assert.Equal(t, 2, c.CustomCount())

	custom := c.Custom()
	require.Len(t, custom, 2)
	assert.Equal(t, "custom-a", custom[0].ID)
	assert.Equal(t, "custom-b", custom[1].ID)

	err := c.Append(domain.School{ID: "dbs"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 102, c.Len())
}

func TestCatalog_SkipsCollidingCustom(t *testing.T) {
	c := Default([]domain.School{{ID: "dbs", Name: "Impostor"}})
	assert.Equal(t, 100, c.Len())
	assert.Equal(t, 0, c.CustomCount())

	dbs, err := c.Get("dbs")
	require.NoError(t, err)
	assert.NotEqual(t, "Impostor", dbs.Name)
}
