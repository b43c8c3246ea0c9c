package advisor

const askSystemPrompt = `You are an expert Hong Kong primary school admission consultant. You have access to real-time information via Google Search. If the user asks for dates, fees, or news about specific schools for the current year (2024/2025), use your search tool to provide the most accurate and up-to-date details. Reply in a professional yet empathetic tone, using both Chinese and English as appropriate.`

const monitorSystemPrompt = `You track admissions news for Hong Kong primary schools on behalf of a parent.
For each school listed, search for the latest announcements about application windows, open days, interviews and results for the current admission cycle.
Reply with one short section per school, in Traditional Chinese with English school names. If nothing new is published for a school, say so plainly. Do not invent dates.`

const lookupSystemPrompt = `You look up facts about a single Hong Kong primary school and return them as one JSON object.
Use exactly these keys, omitting any you cannot confirm:
  name, nameZh, location, district, tuitionFee, type, curriculum, language,
  applicationStart, applicationEnd, interviewDate, website, description
Rules:
- type is one of "International", "DSS (Direct Subsidy)", "Private", "Aided/Government".
- curriculum is an array drawn from "DSE", "IB", "AP", "British (A-Level)".
- language is an array such as ["English", "Cantonese"].
- applicationStart and applicationEnd are YYYY-MM-DD.
Return JSON only, with no commentary.`

// contextTopics is appended to every ask digest.
const contextTopics = "Topics: Ranking, Application Deadlines, Interview Tips, DSE vs IB track."

// contextSampleSize bounds how many catalog entries are described to the model.
const contextSampleSize = 10

const (
	// FallbackEmptyAnswer is shown when the model returns no text.
	FallbackEmptyAnswer = "I'm sorry, I couldn't process that."

	// FallbackUnavailable is shown when the call fails outright.
	FallbackUnavailable = "抱歉，由于网络或 API 限制，目前无法为您提供回复。请检查您的网络连接或稍后再试。"

	referencesHeading = "参考来源:"
	referenceLabel    = "官方/参考链接"
)

// Suggestions are starter questions offered when the assistant has no history.
var Suggestions = []string{
	"DSE和IB该怎么选？",
	"推荐几所九龙城区的名校",
	"面试需要做哪些准备？",
	"直资学校和私立学校的区别",
}
