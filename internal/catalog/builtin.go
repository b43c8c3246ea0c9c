package catalog

import "github.com/alexanderramin/hknav/internal/domain"

func rank(n int) *int { return &n }

var (
	dseIB = []domain.Curriculum{domain.CurriculumDSE, domain.CurriculumIB}
	dse   = []domain.Curriculum{domain.CurriculumDSE}
	ib    = []domain.Curriculum{domain.CurriculumIB}
)

// named is the hand-curated head of the catalog, ranked 1..10.
func named() []domain.School {
	return []domain.School{
		{
			ID:                    "dbs",
			Name:                  "Diocesan Boys' School Primary Division",
			NameZh:                "拔萃男書院附屬小學",
			Location:              "131 Argyle Street, Mong Kok",
			District:              "Kowloon City (九龍城區)",
			TuitionFee:            "HK$53,930 / yr",
			Curriculum:            dseIB,
			Language:              []string{"English"},
			Type:                  domain.TypeDSS,
			Ranking:               1,
			CategoryRanking:       rank(1),
			ApplicationStart:      domain.MustDate("2024-08-30"),
			ApplicationEnd:        domain.MustDate("2024-11-15"),
			InterviewDate:         "October - November",
			Description:           "Top tier boys' school known for academic and sports excellence.",
			Website:               "https://www.dbspd.edu.hk/",
			InterviewRequirements: "Confidence, storytelling, and artistic/sports potential.",
			InterviewTips:         "Focuses on independence and father-son relationship in final rounds.",
		},
		{
			ID:                    "dgs",
			Name:                  "Diocesan Girls' Junior School",
			NameZh:                "拔萃女小學",
			Location:              "1 Jordan Road, Jordan",
			District:              "Yau Tsim Mong (油尖旺區)",
			TuitionFee:            "HK$75,000 / yr",
			Curriculum:            dse,
			Language:              []string{"English"},
			Type:                  domain.TypePrivate,
			Ranking:               2,
			CategoryRanking:       rank(1),
			ApplicationStart:      domain.MustDate("2024-08-20"),
			ApplicationEnd:        domain.MustDate("2024-11-20"),
			InterviewDate:         "September - October",
			Description:           "Prestigious girls' school producing top results consistently.",
			Website:               "https://www.dgjs.edu.hk/",
			InterviewRequirements: "Exceptional English, etiquette, and logical thinking.",
			InterviewTips:         "Looks for gentle yet confident girls with strong family values.",
		},
		{
			ID:                    "spcc",
			Name:                  "St. Paul's Co-educational College Primary School",
			NameZh:                "聖保羅男女中學附屬小學",
			Location:              "11 Nam Fung Path, Wong Chuk Hang",
			District:              "Southern (南區)",
			TuitionFee:            "HK$63,000 / yr",
			Curriculum:            dseIB,
			Language:              []string{"English", "Putonghua"},
			Type:                  domain.TypeDSS,
			Ranking:               3,
			CategoryRanking:       rank(2),
			ApplicationStart:      domain.MustDate("2024-09-01"),
			ApplicationEnd:        domain.MustDate("2024-11-30"),
			InterviewDate:         "October - December",
			Description:           "The most academic-oriented school in Hong Kong.",
			Website:               "https://www.spccps.edu.hk/",
			InterviewRequirements: "Advanced logical reasoning and bilingual fluency.",
			InterviewTips:         "Tests child's reaction to unknown scenarios; no prior drilling expected.",
		},
		{
			ID:                    "la-salle",
			Name:                  "La Salle Primary School",
			NameZh:                "喇沙小學",
			Location:              "1D La Salle Road, Kowloon Tong",
			District:              "Kowloon City (九龍城區)",
			TuitionFee:            "Aided (Free)",
			Curriculum:            dse,
			Language:              []string{"English", "Cantonese"},
			Type:                  domain.TypeAided,
			Ranking:               4,
			CategoryRanking:       rank(2),
			ApplicationStart:      domain.MustDate("2024-09-20"),
			ApplicationEnd:        domain.MustDate("2024-12-15"),
			InterviewDate:         "November (Allocation)",
			Description:           "Iconic Catholic school for boys with a massive alumni network.",
			Website:               "https://www.lasalle.edu.hk/",
			InterviewRequirements: "Discipline, social skills, and basic literacy.",
			InterviewTips:         "Selection is mostly via Government Allocation system.",
		},
		{
			ID:                    "maryknoll",
			Name:                  "Maryknoll Convent School (Primary Section)",
			NameZh:                "瑪利諾修院學校（小學部）",
			Location:              "130 Waterloo Road, Kowloon Tong",
			District:              "Kowloon City (九龍城區)",
			TuitionFee:            "Aided (Free)",
			Curriculum:            dse,
			Language:              []string{"English", "Cantonese"},
			Type:                  domain.TypeAided,
			Ranking:               5,
			CategoryRanking:       rank(3),
			ApplicationStart:      domain.MustDate("2024-09-23"),
			ApplicationEnd:        domain.MustDate("2024-12-10"),
			InterviewDate:         "November",
			Description:           "A heritage girls school with a focus on holistic development.",
			Website:               "https://www.mcsps.edu.hk/",
			InterviewRequirements: "English reading, polite behavior, and general knowledge.",
			InterviewTips:         "Traditional values are highly respected during interactions.",
		},
		{
			ID:                    "sjc",
			Name:                  "St. Joseph's Primary School",
			NameZh:                "聖若瑟小學",
			Location:              "77 Wood Road, Wan Chai",
			District:              "Wan Chai (灣仔區)",
			TuitionFee:            "Aided (Free)",
			Curriculum:            dse,
			Language:              []string{"English"},
			Type:                  domain.TypeAided,
			Ranking:               6,
			CategoryRanking:       rank(4),
			ApplicationStart:      domain.MustDate("2024-09-23"),
			ApplicationEnd:        domain.MustDate("2024-12-25"),
			InterviewDate:         "Late November",
			Description:           "Prestigious Catholic boys school in the heart of Wan Chai.",
			Website:               "https://www.sjps.edu.hk/",
			InterviewRequirements: "Teamwork, instruction following, and basic English.",
			InterviewTips:         "Favors active boys with sports or music interests.",
		},
		{
			ID:                    "cis",
			Name:                  "Chinese International School",
			NameZh:                "漢基國際學校",
			Location:              "1 Hau Yuen Path, Braemar Hill",
			District:              "Eastern (東區)",
			TuitionFee:            "HK$250,000+ / yr",
			Curriculum:            ib,
			Language:              []string{"English", "Putonghua"},
			Type:                  domain.TypeInternational,
			Ranking:               7,
			CategoryRanking:       rank(1),
			ApplicationStart:      domain.MustDate("2024-09-01"),
			ApplicationEnd:        domain.MustDate("2024-10-15"),
			InterviewDate:         "Rolling basis",
			Description:           "The gold standard for bilingual international education in Asia.",
			Website:               "https://www.cis.edu.hk/",
			InterviewRequirements: "Native-level bilingualism and problem-solving.",
			InterviewTips:         "Parents' commitment to bilingualism is as important as the child's.",
		},
		{
			ID:                    "isf",
			Name:                  "The ISF Academy",
			NameZh:                "弘立書院",
			Location:              "1 Kong Sin Wan Road, Pok Fu Lam",
			District:              "Southern (南區)",
			TuitionFee:            "HK$211,000 / yr",
			Curriculum:            ib,
			Language:              []string{"Putonghua", "English"},
			Type:                  domain.TypePrivate,
			Ranking:               8,
			CategoryRanking:       rank(2),
			ApplicationStart:      domain.MustDate("2024-08-01"),
			ApplicationEnd:        domain.MustDate("2025-01-10"),
			InterviewDate:         "September - February",
			Description:           "Private independent school emphasizing Chinese culture and global outlook.",
			Website:               "https://academy.isf.edu.hk/",
			InterviewRequirements: "Bilingual ability and cultural curiosity.",
			InterviewTips:         "Uses an experiential interview style; be prepared for interactive play.",
		},
		{
			ID:                    "harrow",
			Name:                  "Harrow International School Hong Kong",
			NameZh:                "哈羅香港國際學校",
			Location:              "38 Tsing Ying Road, Tuen Mun",
			District:              "Tuen Mun (屯門區)",
			TuitionFee:            "HK$185,000 / yr",
			Curriculum:            []domain.Curriculum{domain.CurriculumBritish},
			Language:              []string{"English"},
			Type:                  domain.TypeInternational,
			Ranking:               9,
			CategoryRanking:       rank(1),
			ApplicationStart:      domain.MustDate("2024-09-01"),
			ApplicationEnd:        domain.MustDate("2024-11-01"),
			InterviewDate:         "November - January",
			Description:           "British boarding school tradition in a modern HK setting.",
			Website:               "https://www.harrowschool.hk/",
			InterviewRequirements: "English literacy, social skills, and leadership potential.",
			InterviewTips:         "Expect group activities and basic individual verbal assessments.",
		},
		{
			ID:                    "hkis",
			Name:                  "Hong Kong International School",
			NameZh:                "香港國際學校",
			Location:              "700 Tai Tam Reservoir Road",
			District:              "Southern (南區)",
			TuitionFee:            "HK$235,000 / yr",
			Curriculum:            []domain.Curriculum{domain.CurriculumAP},
			Language:              []string{"English"},
			Type:                  domain.TypeInternational,
			Ranking:               10,
			CategoryRanking:       rank(1),
			ApplicationStart:      domain.MustDate("2024-09-01"),
			ApplicationEnd:        domain.MustDate("2024-10-31"),
			InterviewDate:         "Winter",
			Description:           "American curriculum school with a strong focus on community and faith.",
			Website:               "https://www.hkis.edu.hk/",
			InterviewRequirements: "Creative expression and social-emotional readiness.",
			InterviewTips:         "Priority is given to US citizens and siblings.",
		},
	}
}
