// Package llmscore is the optional second scoring pass: it asks an LLM to
// rate keyword candidates and blends the rating into their scores.
package llmscore

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/deusflow/trendbrief/internal/cache"
	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/metrics"
	"github.com/deusflow/trendbrief/internal/news"
)

// Combine blends a keyword score with an LLM rating. The keyword score is
// compressed onto the rating scale with kw/3 clamped to [1,10].
func Combine(keywordScore float64, llmScore int, keywordWeight, relevanceWeight float64) float64 {
	normalized := math.Max(math.Min(keywordScore/3.0, 10.0), 1.0)
	combined := keywordWeight*normalized + relevanceWeight*float64(llmScore)
	return math.Round(combined*10) / 10
}

// Scorer rates candidates in fixed-size batches. It never fails: batches that
// cannot be rated keep their keyword scores.
type Scorer struct {
	caller  *Caller
	ratings *cache.Cache
	ttl     time.Duration
}

// NewScorer builds the LLM pass. ratings may be nil to disable reuse.
func NewScorer(caller *Caller, ratings *cache.Cache) *Scorer {
	s := &Scorer{caller: caller, ratings: ratings, ttl: DefaultOptions().RatingsTTL}
	if caller != nil {
		s.ttl = caller.Options().RatingsTTL
	}
	return s
}

// Apply returns a copy of candidates with LLM ratings folded in. The input
// slice is never modified and order is preserved.
func (s *Scorer) Apply(ctx context.Context, category string, c criteria.Criteria, candidates []news.ScoredArticle) []news.ScoredArticle {
	out := make([]news.ScoredArticle, len(candidates))
	copy(out, candidates)

	if s == nil || s.caller == nil || len(out) == 0 {
		return out
	}

	log := logger.With("category", category)
	opts := s.caller.Options()

	description := c.Description
	if description == "" {
		description = category
	}

	for start := 0; start < len(out); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(out) {
			end = len(out)
		}
		batch := out[start:end]

		if s.caller.QuotaExhausted() {
			metrics.Global.IncrementLLMBatchesSkipped()
			log.Warn("LLM quota exhausted, keeping keyword scores", "from", start, "to", end)
			continue
		}

		scores, err := s.rateBatch(ctx, category, description, batch)
		if err != nil {
			var retryErr *RetryableError
			switch {
			case errors.Is(err, ErrQuotaExhausted):
				metrics.Global.IncrementLLMBatchesSkipped()
			case errors.As(err, &retryErr):
				metrics.Global.IncrementLLMBatchesFailed()
			}
			log.Warn("LLM batch failed, keeping keyword scores", "from", start, "to", end, "error", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		for i := range batch {
			llm := scores[i]
			batch[i].LLMScore = &llm
			batch[i].Score = Combine(batch[i].KeywordScore, llm, opts.KeywordWeight, opts.RelevanceWeight)
		}
	}

	return out
}

func (s *Scorer) rateBatch(ctx context.Context, category, description string, batch []news.ScoredArticle) ([]int, error) {
	if cached, ok := s.cachedScores(category, batch); ok {
		logger.Debug("LLM ratings served from cache", "category", category, "size", len(batch))
		return cached, nil
	}

	raw, err := s.caller.Call(ctx, SystemPrompt, buildBatchPrompt(category, description, batch), 0)
	if err != nil {
		return nil, err
	}

	scores, parsed := ParseScores(raw, len(batch))
	if parsed == 0 {
		metrics.Global.IncrementLLMBatchesNeutral()
		logger.Warn("LLM response not parseable, using neutral scores", "category", category, "size", len(batch))
	} else {
		metrics.Global.IncrementLLMBatchesRated()
	}
	s.storeScores(category, batch[:parsed], scores[:parsed])

	return scores, nil
}

func (s *Scorer) ratingKey(category string, a news.ScoredArticle) string {
	return s.ratings.GenerateKey("rating", category, a.Title, a.Summary)
}

func (s *Scorer) cachedScores(category string, batch []news.ScoredArticle) ([]int, bool) {
	if s.ratings == nil {
		return nil, false
	}
	scores := make([]int, len(batch))
	for i, a := range batch {
		v, ok := s.ratings.Get(s.ratingKey(category, a))
		if !ok {
			return nil, false
		}
		scores[i] = v.(int)
	}
	return scores, true
}

func (s *Scorer) storeScores(category string, batch []news.ScoredArticle, scores []int) {
	if s.ratings == nil {
		return
	}
	for i, a := range batch {
		s.ratings.Set(s.ratingKey(category, a), scores[i], s.ttl)
	}
}
