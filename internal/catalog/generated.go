package catalog

import (
	"fmt"
	"time"

	"github.com/alexanderramin/hknav/internal/domain"
)

const generatedCount = 90

var districts = []struct{ en, zh string }{
	{"Kowloon City", "九龍城區"},
	{"Wan Chai", "灣仔區"},
	{"Central & Western", "中西區"},
	{"Southern", "南區"},
	{"Sha Tin", "沙田區"},
	{"Yau Tsim Mong", "油尖旺區"},
	{"Eastern", "東區"},
	{"Kwun Tong", "觀塘區"},
	{"Sham Shui Po", "深水埗區"},
	{"Tsuen Wan", "荃灣區"},
	{"Tuen Mun", "屯門區"},
	{"Yuen Long", "元朗區"},
	{"North", "北區"},
	{"Tai Po", "大埔區"},
	{"Sai Kung", "西貢區"},
	{"Kwai Tsing", "葵青區"},
}

var generatedTypes = []domain.SchoolType{
	domain.TypeAided, domain.TypeDSS, domain.TypePrivate, domain.TypeInternational,
}

var schoolNames = [][2]string{
	{"Ying Wa Primary School", "英華小學"},
	{"St. Paul's College Primary School", "聖保羅書院小學"},
	{"St. Stephen's College Prep School", "聖士提反書院附屬小學"},
	{"Good Hope Primary School", "德望小學暨幼稚園"},
	{"Heep Yunn Primary School", "協恩中學附屬小學"},
	{"True Light Middle School (Primary)", "香港真光中學（小學部）"},
	{"Shatin Tsung Tsin School", "沙田崇真學校"},
	{"SKH St. James' Primary School", "聖公會聖雅各小學"},
	{"North Point Government Primary", "北角官立小學"},
	{"Raimondi College Primary", "高主教書院小學部"},
	{"St. Francis of Assisi's English Primary", "聖方济各英文小學"},
	{"Pui Kiu College", "培僑書院"},
	{"Evangel College", "播道書院"},
	{"Stewards Pooi Kei Primary", "培基小學"},
	{"VSA - Victoria Shanghai Academy", "滬江維多利亞學校"},
	{"G.T. (Ellen Yeung) College", "優才（楊殷有娣）書院"},
	{"Logos Academy", "香港浸會大學附屬學校王錦輝中小學"},
	{"PLK Choi Kai Yau School", "保良局蔡繼有學校"},
	{"Munsang College Primary", "民生書院小學"},
	{"Holy Family Canossian School", "聖家學校"},
	{"Renaissance College", "啟新書院"},
	{"Discovery College", "智新書院"},
	{"St. Hilary's Primary", "聖希拿里小學"},
	{"Marymount Primary School", "瑪利曼小學"},
	{"Hennessy Road Gov Primary", "軒尼詩道官立小學"},
	{"Shatin Methodist Primary", "沙田循道衛理小學"},
	{"HKUGA Primary School", "香港大學畢業同學會小學"},
	{"Fukien Secondary Affiliated", "福建中學附屬學校"},
	{"St. Margaret's Co-educational", "聖瑪加利男女英文中小學"},
	{"Kowloon Tong School", "九龍塘學校（小學部）"},
	{"Think International School", "朗思國際學校"},
	{"Singapore International School", "新加坡國際學校"},
	{"Australian International School", "香港澳洲國際學校"},
	{"Canadian International School", "香港加拿大國際學校"},
	{"German Swiss International", "德瑞國際學校"},
	{"French International School", "香港法國國際學校"},
	{"Kellett School", "啟歷學校"},
	{"St. Johannes College", "聖若望英文書院"},
	{"Tak Sun School", "德信學校"},
	{"Yaumati Catholic Primary", "油麻地天主教小學"},
	{"Rosaryhill School", "玫瑰崗學校"},
	{"St. Catherine's School", "聖嘉勒小學"},
	{"Kowloon True Light Primary", "九龍真光中學（小學部）"},
	{"Ma On Shan Ling Liang Primary", "馬鞍山靈糧小學"},
	{"Buddhist Chi King Primary", "佛教慈敬學校"},
	{"Tsuen Wan Catholic Primary", "荃灣天主教小學"},
}

// generated fills ranks 11..100. Every field is a pure function of the
// index so the catalog is identical across runs.
func generated() []domain.School {
	out := make([]domain.School, 0, generatedCount)
	for i := 0; i < generatedCount; i++ {
		r := i + 11
		d := districts[i%len(districts)]
		typ := generatedTypes[i%len(generatedTypes)]
		names := schoolNames[i%len(schoolNames)]

		tuition := "Aided (Free)"
		if typ != domain.TypeAided {
			tuition = fmt.Sprintf("HK$%d / yr", 30000+i*800)
		}

		deadline := domain.Date{Year: 2024, Month: time.Month(10 + i/40), Day: i%28 + 1}

		out = append(out, domain.School{
			ID:                    fmt.Sprintf("school-%d", r),
			Name:                  fmt.Sprintf("%s (%d)", names[0], r),
			NameZh:                fmt.Sprintf("%s (%d)", names[1], r),
			Location:              fmt.Sprintf("%d School Lane, %s", (r*37)%500+1, d.en),
			District:              fmt.Sprintf("%s (%s)", d.en, d.zh),
			TuitionFee:            tuition,
			Curriculum:            []domain.Curriculum{domain.Curricula[i%len(domain.Curricula)]},
			Language:              []string{"English", "Cantonese"},
			Type:                  typ,
			Ranking:               r,
			CategoryRanking:       rank(r/4 + 1),
			ApplicationStart:      domain.MustDate("2024-09-01"),
			ApplicationEnd:        deadline,
			InterviewDate:         "October - January",
			Description:           "A highly respected institution fostering academic and personal growth.",
			Website:               "https://www.example.edu.hk",
			InterviewRequirements: "Interaction, curiosity, and language proficiency.",
			InterviewTips:         "Encourage your child to be expressive and observant.",
		})
	}
	return out
}
