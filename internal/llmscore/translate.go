package llmscore

import (
	"context"

	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/metrics"
	"github.com/deusflow/trendbrief/internal/news"
)

const translateMaxTokens = 4096

// Translator adds Korean titles and summaries to selected articles. It shares
// the caller, and so the rate budget and quota latch, with the rating pass.
type Translator struct {
	caller *Caller
}

func NewTranslator(caller *Caller) *Translator {
	return &Translator{caller: caller}
}

// TranslateSummaries returns a copy of articles with TitleKR and SummaryKR
// filled where the model answered. Failed batches are left untranslated.
func (t *Translator) TranslateSummaries(ctx context.Context, articles []news.ScoredArticle) []news.ScoredArticle {
	out := make([]news.ScoredArticle, len(articles))
	copy(out, articles)

	if t == nil || t.caller == nil {
		return out
	}

	size := t.caller.Options().BatchSize
	for start := 0; start < len(out); start += size {
		if t.caller.QuotaExhausted() || ctx.Err() != nil {
			break
		}

		end := start + size
		if end > len(out) {
			end = len(out)
		}
		batch := out[start:end]

		raw, err := t.caller.Call(ctx, TranslateSystemPrompt, buildTranslatePrompt(batch), translateMaxTokens)
		if err != nil {
			logger.Warn("Translation batch failed", "from", start, "to", end, "error", err)
			continue
		}

		translated := 0
		for i, tr := range ParseTranslations(raw, len(batch)) {
			if tr.TitleKR != "" {
				batch[i].TitleKR = tr.TitleKR
			}
			if tr.SummaryKR != "" {
				batch[i].SummaryKR = tr.SummaryKR
				translated++
			}
		}
		metrics.Global.AddSummariesTranslated(translated)
	}

	return out
}
