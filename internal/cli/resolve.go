package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hknav/internal/domain"
)

// resolveSchoolID resolves a school reference which can be:
//   - An exact id ("dbs", "custom-…"), case-insensitive
//   - A unique id prefix
//   - A unique case-insensitive substring of the English or Chinese name
func resolveSchoolID(app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("school ID is required")
	}

	schools := app.Nav.Catalog().All()

	// 1. Exact id
	for _, s := range schools {
		if strings.EqualFold(s.ID, input) {
			return s.ID, nil
		}
	}

	// 2. Id prefix
	matches := matchSchools(schools, func(s domain.School) bool {
		return strings.HasPrefix(strings.ToLower(s.ID), strings.ToLower(input))
	})
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("school ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	// 3. Name substring
	lower := strings.ToLower(input)
	matches = matchSchools(schools, func(s domain.School) bool {
		return strings.Contains(strings.ToLower(s.Name), lower) || strings.Contains(s.NameZh, input)
	})
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("school not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("school name %q is ambiguous (%d matches)", input, len(matches))
	}
}

func matchSchools(schools []domain.School, pred func(domain.School) bool) []string {
	var ids []string
	for _, s := range schools {
		if pred(s) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// resolveOption maps user input onto one of the known option values, e.g.
// "southern" onto "Southern (南區)". Matching tries exact, then prefix, then
// substring, all case-insensitive, and requires a unique hit.
func resolveOption(kind, input string, options []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	lower := strings.ToLower(input)

	for _, o := range options {
		if strings.EqualFold(o, input) {
			return o, nil
		}
	}
	for _, pred := range []func(string) bool{
		func(o string) bool { return strings.HasPrefix(strings.ToLower(o), lower) },
		func(o string) bool { return strings.Contains(strings.ToLower(o), lower) },
	} {
		var hits []string
		for _, o := range options {
			if pred(o) {
				hits = append(hits, o)
			}
		}
		switch len(hits) {
		case 0:
			continue
		case 1:
			return hits[0], nil
		default:
			return "", fmt.Errorf("%s %q is ambiguous: %s", kind, input, strings.Join(hits, ", "))
		}
	}
	return "", fmt.Errorf("unknown %s %q (options: %s)", kind, input, strings.Join(options, ", "))
}
