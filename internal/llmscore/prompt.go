package llmscore

import (
	"fmt"
	"strings"

	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/normalize"
)

const SystemPrompt = "You are a senior biohealth industry analyst at a Korean government research institute. " +
	"Your job is to curate a weekly '바이오헬스 산업 동향' (Biohealth Industry Trends) briefing. " +
	"You read articles in both Korean and English.\n\n" +
	"SCORING PRINCIPLES:\n" +
	"- You are selecting articles that provide actionable intelligence about the biohealth industry.\n" +
	"- Prioritize: regulatory decisions, major corporate deals, breakthrough technologies, " +
	"policy changes, and market-moving events.\n" +
	"- Deprioritize: routine company PR, opinion pieces without data, " +
	"articles only tangentially mentioning biohealth keywords, " +
	"and news from unrelated industries that happen to share keywords " +
	"(e.g. 'FDA' in food context, 'robot' in manufacturing, 'AI' in gaming).\n" +
	"- An article that merely contains a keyword but is NOT substantively about the category " +
	"should score 1-3.\n\n" +
	"Respond ONLY with a JSON array of integers (1-10), one score per article. " +
	"No explanation, no markdown, just the array."

const TranslateSystemPrompt = "You are a Korean translator for a biohealth industry briefing.\n" +
	"For each article, provide:\n" +
	"  1. title_kr: Korean translation of the title (keep it concise)\n" +
	"  2. summary_kr: 2-sentence Korean summary of the article content\n" +
	"If the original is already in Korean, clean up the title and summarize in 2 sentences.\n" +
	"Respond ONLY with a JSON array of objects: " +
	`[{"title_kr":"...","summary_kr":"..."}, ...]`

const AnalyzeSystemPrompt = "You are a Korean biohealth industry analyst preparing a weekly briefing report.\n" +
	"For each article, extract structured metadata in Korean.\n" +
	"Respond ONLY with a JSON array of objects with these exact keys:\n" +
	`  - "country": The main country, region, or company that is the subject (e.g. "미국", "EU", "삼성바이오로직스"). ` +
	"If multiple, pick the most prominent one.\n" +
	`  - "oneliner": A single Korean sentence summarizing what happened (e.g. "FDA, AI 기반 폐암 진단기기 최초 승인")` + "\n" +
	`  - "hashtags": 5+ Korean hashtags separated by spaces (e.g. "#FDA #AI진단 #폐암 #의료기기 #디지털헬스")` + "\n" +
	`  - "summary_3sent": Exactly 3 Korean sentences summarizing the key content of the article. ` +
	"This is the most important field, so be specific with names, numbers, and facts.\n" +
	"If the article is in English, translate everything to Korean.\n" +
	"If already in Korean, keep the language and refine.\n"

const (
	promptTitleLen            = 200
	promptSummaryLen          = 300
	promptSourceLen           = 50
	translatePromptSummaryLen = 500
	analyzePromptSummaryLen   = 600
)

func buildBatchPrompt(category, description string, batch []news.ScoredArticle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Category: %s\n\n", category)
	b.WriteString(description)
	b.WriteString("\n\n")
	b.WriteString("Rate each article's relevance to this SPECIFIC category for a biohealth industry trends briefing.\n")
	b.WriteString("Be strict: an article must be SUBSTANTIVELY about this category's focus, not just mention a keyword.\n")
	b.WriteString("Score 1-10. Return ONLY a JSON array, e.g. [7, 3, 9, ...]\n\n")
	b.WriteString("Articles:\n")

	for i, a := range batch {
		fmt.Fprintf(&b, "\n[%d] Title: %s\n", i+1, normalize.Truncate(a.Title, promptTitleLen))
		fmt.Fprintf(&b, "    Summary: %s\n", normalize.Truncate(a.Summary, promptSummaryLen))
		if len(a.MatchedKeywords) > 0 {
			fmt.Fprintf(&b, "    Matched keywords: %s\n", strings.Join(a.MatchedKeywords, ", "))
		}
	}

	return b.String()
}

func buildTranslatePrompt(batch []news.ScoredArticle) string {
	var b strings.Builder

	b.WriteString("For each article below, provide a Korean title translation and a 2-sentence Korean summary.\n")
	b.WriteString(`Return ONLY a JSON array: [{"title_kr":"...","summary_kr":"..."}, ...]` + "\n\n")

	for i, a := range batch {
		fmt.Fprintf(&b, "[%d] Title: %s\n", i+1, normalize.Truncate(a.Title, promptTitleLen))
		fmt.Fprintf(&b, "    Summary: %s\n\n", normalize.Truncate(a.Summary, translatePromptSummaryLen))
	}

	return b.String()
}

func buildAnalyzePrompt(batch []news.ScoredArticle) string {
	var b strings.Builder

	b.WriteString("For each article below, extract: country, oneliner, hashtags, summary_3sent.\n")
	b.WriteString(`Return ONLY a JSON array: [{"country":"...","oneliner":"...","hashtags":"...","summary_3sent":"..."}, ...]` + "\n\n")

	for i, a := range batch {
		fmt.Fprintf(&b, "[%d] Title: %s\n", i+1, normalize.Truncate(a.Title, promptTitleLen))
		fmt.Fprintf(&b, "    Source: %s\n", normalize.Truncate(a.Source, promptSourceLen))
		fmt.Fprintf(&b, "    Summary: %s\n\n", normalize.Truncate(a.Summary, analyzePromptSummaryLen))
	}

	return b.String()
}
