package filter

import (
	"testing"

	"github.com/alexanderramin/hknav/internal/catalog"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(schools []domain.School) []string {
	out := make([]string, len(schools))
	for i, s := range schools {
		out[i] = s.ID
	}
	return out
}

func TestApply_ZeroSpecReturnsEverythingByRank(t *testing.T) {
	a := testutil.NewTestSchool("A", testutil.WithID("a"), testutil.WithRanking(2))
	b := testutil.NewTestSchool("B", testutil.WithID("b"), testutil.WithRanking(1))

	got := Apply([]domain.School{a, b}, Spec{})
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := []domain.School{
		testutil.NewTestSchool("A", testutil.WithID("a"), testutil.WithRanking(3)),
		testutil.NewTestSchool("B", testutil.WithID("b"), testutil.WithRanking(1)),
	}
	_ = Apply(in, Spec{Sort: SortRank})
	assert.Equal(t, []string{"a", "b"}, ids(in))
}

func TestApply_Idempotent(t *testing.T) {
	base := catalog.Base()
	spec := Spec{Curriculum: domain.CurriculumIB, Sort: SortDeadline}

	once := Apply(base, spec)
	twice := Apply(once, spec)
	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, ids(once), ids(Apply(base, spec)))
}

func TestApply_FiltersAreConjunctive(t *testing.T) {
	a := testutil.NewTestSchool("Alpha", testutil.WithID("a"), testutil.WithRanking(1),
		testutil.WithCurriculum(domain.CurriculumIB), testutil.WithDistrict("Southern (南區)"),
		testutil.WithDeadline("2024-11-01"))
	b := testutil.NewTestSchool("Beta", testutil.WithID("b"), testutil.WithRanking(2),
		testutil.WithCurriculum(domain.CurriculumDSE), testutil.WithDistrict("Southern (南區)"),
		testutil.WithDeadline("2024-10-01"))
	c := testutil.NewTestSchool("Gamma", testutil.WithID("c"), testutil.WithRanking(3),
		testutil.WithCurriculum(domain.CurriculumIB), testutil.WithDistrict("Eastern (東區)"))
	all := []domain.School{a, b, c}

	assert.Equal(t, []string{"a"}, ids(Apply(all, Spec{Curriculum: domain.CurriculumIB, District: "Southern (南區)"})))
	assert.Equal(t, []string{"b", "a"}, ids(Apply(all, Spec{District: "Southern (南區)", Sort: SortDeadline})))
	assert.Empty(t, Apply(all, Spec{Curriculum: domain.CurriculumAP}))
	assert.NotNil(t, Apply(all, Spec{Curriculum: domain.CurriculumAP}))
}

func TestApply_TypeAndLanguage(t *testing.T) {
	a := testutil.NewTestSchool("A", testutil.WithID("a"), testutil.WithType(domain.TypeDSS),
		testutil.WithLanguage("English", "Putonghua"))
	b := testutil.NewTestSchool("B", testutil.WithID("b"), testutil.WithType(domain.TypeAided),
		testutil.WithLanguage("English", "Cantonese"))
	all := []domain.School{a, b}

	assert.Equal(t, []string{"a"}, ids(Apply(all, Spec{Type: domain.TypeDSS})))
	assert.Equal(t, []string{"b"}, ids(Apply(all, Spec{Language: "Cantonese"})))
	assert.Len(t, Apply(all, Spec{Language: "English"}), 2)
}

func TestApply_SearchIsCaseInsensitiveForLatinFields(t *testing.T) {
	base := catalog.Base()

	lower := Apply(base, Spec{Search: "dbs"})
	upper := Apply(base, Spec{Search: "DBS"})
	assert.Equal(t, []string{"dbs"}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))

	byName := Apply(base, Spec{Search: "DIOCESAN BOYS"})
	require.NotEmpty(t, byName)
	assert.Equal(t, "dbs", byName[0].ID)

	byLocation := Apply(base, Spec{Search: "ARGYLE"})
	assert.Equal(t, []string{"dbs"}, ids(byLocation))

	byDistrict := Apply(base, Spec{Search: "tuen mun"})
	assert.Contains(t, ids(byDistrict), "harrow")
}

func TestApply_SearchMatchesChineseNameAsTyped(t *testing.T) {
	s := testutil.NewTestSchool("Some School", testutil.WithID("s"),
		testutil.WithNameZh("ABC國際學校"), testutil.WithLocation("x"), testutil.WithDistrict("y"))

	assert.Len(t, Apply([]domain.School{s}, Spec{Search: "ABC國際"}), 1)
	assert.Empty(t, Apply([]domain.School{s}, Spec{Search: "abc國際"}),
		"Chinese-name match uses the raw term, so case matters there")
	assert.Len(t, Apply(catalog.Base(), Spec{Search: "漢基"}), 1)
}

func TestApply_DeadlineSortIsStableAndPutsUnknownLast(t *testing.T) {
	a := testutil.NewTestSchool("A", testutil.WithID("a"), testutil.WithRanking(1), testutil.WithDeadline("2024-11-01"))
	b := testutil.NewTestSchool("B", testutil.WithID("b"), testutil.WithRanking(2), testutil.WithDeadline(""))
	c := testutil.NewTestSchool("C", testutil.WithID("c"), testutil.WithRanking(3), testutil.WithDeadline("2024-10-01"))
	d := testutil.NewTestSchool("D", testutil.WithID("d"), testutil.WithRanking(4), testutil.WithDeadline("2024-11-01"))

	got := Apply([]domain.School{a, b, c, d}, Spec{Sort: SortDeadline})
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids(got))
}

func TestApply_RankSortKeepsCatalogOrderOnTies(t *testing.T) {
	a := testutil.NewTestSchool("A", testutil.WithID("a"), testutil.WithRanking(5))
	b := testutil.NewTestSchool("B", testutil.WithID("b"), testutil.WithRanking(5))
	c := testutil.NewTestSchool("C", testutil.WithID("c"), testutil.WithRanking(1))

	assert.Equal(t, []string{"c", "a", "b"}, ids(Apply([]domain.School{a, b, c}, Spec{})))
}

func TestSpec_IsZeroClearedDescribe(t *testing.T) {
	assert.True(t, Spec{Sort: SortDeadline}.IsZero())
	assert.Equal(t, "All schools", Spec{}.Describe())

	s := Spec{Curriculum: domain.CurriculumBritish, District: "Southern (南區)", Search: "harrow", Sort: SortDeadline}
	assert.False(t, s.IsZero())
	assert.Equal(t, `British · Southern (南區) · "harrow"`, s.Describe())
	assert.Equal(t, Spec{Sort: SortDeadline}, s.Cleared())
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("Deadline")
	require.NoError(t, err)
	assert.Equal(t, SortDeadline, k)

	k, err = ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortRank, k)

	_, err = ParseSortKey("name")
	assert.Error(t, err)
}

func TestApply_BaseCatalogOrdering(t *testing.T) {
	base := catalog.Base()

	byRank := Apply(base, Spec{Sort: SortRank})
	require.Len(t, byRank, 100)
	for i := 1; i < len(byRank); i++ {
		assert.LessOrEqual(t, byRank[i-1].Ranking, byRank[i].Ranking)
	}

	byDeadline := Apply(base, Spec{Sort: SortDeadline})
	for i := 1; i < len(byDeadline); i++ {
		assert.LessOrEqual(t, byDeadline[i-1].ApplicationEnd.Compare(byDeadline[i].ApplicationEnd), 0,
			"%s before %s", byDeadline[i-1].ID, byDeadline[i].ID)
	}
}
