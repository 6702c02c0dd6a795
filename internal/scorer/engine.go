package scorer

import (
	"context"
	"fmt"

	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/metrics"
	"github.com/deusflow/trendbrief/internal/news"
)

// ErrInvalidTopN is returned when a category resolves to a non-positive top_n.
var ErrInvalidTopN = criteria.ErrInvalidTopN

// Rescorer re-rates a candidate list. It must never fail: on any trouble it
// returns the candidates with their keyword scores intact.
type Rescorer interface {
	Apply(ctx context.Context, category string, c criteria.Criteria, candidates []news.ScoredArticle) []news.ScoredArticle
}

type Options struct {
	MinScore    float64
	WidenFactor int
	// LLMEnabled is decided once at startup; without it Rescorer is never called.
	LLMEnabled bool
}

// Selector runs both passes for one category at a time.
type Selector struct {
	provider criteria.Provider
	scorer   *Scorer
	rescorer Rescorer
	opts     Options
}

// NewSelector wires the selection pipeline. rescorer may be nil.
func NewSelector(provider criteria.Provider, scorer *Scorer, rescorer Rescorer, opts Options) *Selector {
	if opts.WidenFactor < 1 {
		opts.WidenFactor = DefaultWidenFactor
	}
	return &Selector{
		provider: provider,
		scorer:   scorer,
		rescorer: rescorer,
		opts:     opts,
	}
}

func (s *Selector) llmActive() bool {
	return s.opts.LLMEnabled && s.rescorer != nil
}

// SelectTopArticles scores articles for category and returns at most top_n of
// them, best first. Pass 2 problems never surface here; the only error is a
// category configured with a non-positive top_n.
func (s *Selector) SelectTopArticles(ctx context.Context, articles []news.Article, category string) ([]news.ScoredArticle, error) {
	c := s.provider.For(category)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("category %q: %w", category, err)
	}

	log := logger.With("category", category)

	scored := make([]news.ScoredArticle, 0, len(articles))
	rejected := 0
	for _, a := range articles {
		score, keywords, countries := s.scorer.ScoreArticle(a, c)
		if score < 0 {
			rejected++
			continue
		}
		scored = append(scored, news.NewScored(a, score, keywords, countries))
	}
	metrics.Global.AddArticlesRejected(rejected)

	widen := 1
	if s.llmActive() {
		widen = s.opts.WidenFactor
	}
	candidates := SelectCandidates(scored, s.opts.MinScore, c.TopN, widen)

	log.Info("Keyword pass done",
		"articles", len(articles),
		"rejected", rejected,
		"candidates", len(candidates),
		"top_n", c.TopN)

	if s.llmActive() && len(candidates) > 0 {
		candidates = s.rescorer.Apply(ctx, category, c, candidates)
		SortByScore(candidates)
	}

	return Truncate(candidates, c.TopN), nil
}
