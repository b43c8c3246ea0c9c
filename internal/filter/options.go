package filter

import (
	"slices"
	"strings"

	"github.com/alexanderramin/hknav/internal/domain"
)

// Districts returns the distinct district strings, sorted.
func Districts(schools []domain.School) []string {
	return distinct(schools, func(s domain.School) []string { return []string{s.District} })
}

// Languages returns the distinct teaching languages, sorted.
func Languages(schools []domain.School) []string {
	return distinct(schools, func(s domain.School) []string { return s.Language })
}

func distinct(schools []domain.School, values func(domain.School) []string) []string {
	seen := make(map[string]struct{})
	for _, s := range schools {
		for _, v := range values(s) {
			if v != "" {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// DistrictPreviewLimit is how many schools the district explorer shows per
// district.
const DistrictPreviewLimit = 5

// DistrictGroup is one row of the district explorer.
type DistrictGroup struct {
	District string
	Total    int
	Schools  []domain.School
}

// GroupByDistrict buckets schools by district, sorted by district name.
// Each group keeps at most limit members, in input order; Total counts all
// of them. A limit <= 0 keeps every member.
func GroupByDistrict(schools []domain.School, limit int) []DistrictGroup {
	idx := make(map[string]int)
	var groups []DistrictGroup
	for _, s := range schools {
		i, ok := idx[s.District]
		if !ok {
			i = len(groups)
			idx[s.District] = i
			groups = append(groups, DistrictGroup{District: s.District})
		}
		g := &groups[i]
		g.Total++
		if limit <= 0 || len(g.Schools) < limit {
			g.Schools = append(g.Schools, s)
		}
	}
	slices.SortFunc(groups, func(a, b DistrictGroup) int {
		return strings.Compare(a.District, b.District)
	})
	return groups
}
