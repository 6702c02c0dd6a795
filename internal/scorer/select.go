package scorer

import (
	"sort"

	"github.com/deusflow/trendbrief/internal/news"
)

// DefaultWidenFactor sizes the candidate window handed to the LLM pass.
const DefaultWidenFactor = 2

// SelectCandidates drops excluded and below-floor articles, sorts the rest by
// score and keeps topN*widenFactor of them. Pass widenFactor 1 when the LLM
// pass is off. The input slice is not modified.
func SelectCandidates(scored []news.ScoredArticle, minScore float64, topN, widenFactor int) []news.ScoredArticle {
	if widenFactor < 1 {
		widenFactor = 1
	}

	out := make([]news.ScoredArticle, 0, len(scored))
	for _, s := range scored {
		if s.Score < 0 || s.Score < minScore {
			continue
		}
		out = append(out, s)
	}

	SortByScore(out)
	return Truncate(out, topN*widenFactor)
}

// SortByScore orders by score descending. Ties keep their input order.
func SortByScore(articles []news.ScoredArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Score > articles[j].Score
	})
}

func Truncate(articles []news.ScoredArticle, n int) []news.ScoredArticle {
	if n < 0 {
		n = 0
	}
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}
