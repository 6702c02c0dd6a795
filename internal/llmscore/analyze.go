package llmscore

import (
	"context"

	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/metrics"
	"github.com/deusflow/trendbrief/internal/news"
)

const analyzeMaxTokens = 4096

// Analyzer adds briefing metadata (country, one-line summary, hashtags and a
// three sentence summary) to selected articles through the shared caller.
type Analyzer struct {
	caller *Caller
}

func NewAnalyzer(caller *Caller) *Analyzer {
	return &Analyzer{caller: caller}
}

// Analyze returns a copy of articles with the metadata fields the model filled.
// A field is only set when the answer for it is non-empty, and failed batches
// are left as they were.
func (an *Analyzer) Analyze(ctx context.Context, articles []news.ScoredArticle) []news.ScoredArticle {
	out := make([]news.ScoredArticle, len(articles))
	copy(out, articles)

	if an == nil || an.caller == nil {
		return out
	}

	size := an.caller.Options().BatchSize
	for start := 0; start < len(out); start += size {
		if an.caller.QuotaExhausted() || ctx.Err() != nil {
			break
		}

		end := start + size
		if end > len(out) {
			end = len(out)
		}
		batch := out[start:end]

		raw, err := an.caller.Call(ctx, AnalyzeSystemPrompt, buildAnalyzePrompt(batch), analyzeMaxTokens)
		if err != nil {
			logger.Warn("Analysis batch failed", "from", start, "to", end, "error", err)
			continue
		}

		analyzed := 0
		for i, res := range ParseAnalyses(raw, len(batch)) {
			if res.Country != "" {
				batch[i].Country = res.Country
			}
			if res.Oneliner != "" {
				batch[i].Oneliner = res.Oneliner
			}
			if res.Hashtags != "" {
				batch[i].Hashtags = res.Hashtags
			}
			if res.Summary3Sent != "" {
				batch[i].Summary3Sent = res.Summary3Sent
			}
			if res != (Analysis{}) {
				analyzed++
			}
		}
		metrics.Global.AddArticlesAnalyzed(analyzed)
	}

	return out
}
