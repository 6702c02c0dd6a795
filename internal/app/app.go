// Package app runs one collection and selection cycle over every category.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/deusflow/trendbrief/internal/cache"
	"github.com/deusflow/trendbrief/internal/config"
	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/gemini"
	"github.com/deusflow/trendbrief/internal/llmscore"
	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/metrics"
	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/ratelimit"
	"github.com/deusflow/trendbrief/internal/rss"
	"github.com/deusflow/trendbrief/internal/scorer"
	"github.com/deusflow/trendbrief/internal/storage"
)

// Fetcher collects raw articles. rss.Collector is the production implementation.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string, w rss.Window) []news.Article
	FetchSearch(ctx context.Context, queries []string, w rss.Window) []news.Article
}

type App struct {
	cfg        *config.Config
	store      *storage.SettingsStore
	fetcher    Fetcher
	selector   *scorer.Selector
	translator *llmscore.Translator
	analyzer   *llmscore.Analyzer
	limiter    *ratelimit.Limiter
	ratings    *cache.Cache
	llm        *gemini.Client

	now func() time.Time
}

// New loads the settings file and wires the pipeline. The Gemini client is
// only created when cfg.LLMEnabled is set.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store := storage.NewSettingsStore(cfg.SettingsPath)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	a := &App{
		cfg:     cfg,
		store:   store,
		fetcher: rss.NewCollector(cfg.FetchTimeout, cfg.SearchPause),
		limiter: ratelimit.New(cfg.LLMMinInterval),
		ratings: cache.New(),
		now:     time.Now,
	}

	var rescorer scorer.Rescorer
	if cfg.LLMEnabled {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, float32(cfg.LLMTemperature))
		if err != nil {
			a.ratings.Close()
			return nil, err
		}
		a.llm = client

		caller := llmscore.NewCaller(client, a.limiter, llmscore.Options{
			BatchSize:       cfg.LLMBatchSize,
			KeywordWeight:   cfg.KeywordWeight,
			RelevanceWeight: cfg.RelevanceWeight,
			MaxAttempts:     cfg.LLMMaxRetries,
			RetryDelay:      cfg.LLMRetryDelay,
			MaxRetryDelay:   cfg.LLMMaxBackoff,
			CallTimeout:     cfg.LLMTimeout,
			RatingsTTL:      cfg.RatingsTTL,
		})
		rescorer = llmscore.NewScorer(caller, a.ratings)
		if cfg.TranslateTop {
			a.translator = llmscore.NewTranslator(caller)
		}
		if cfg.AnalyzeTop {
			a.analyzer = llmscore.NewAnalyzer(caller)
		}
	} else {
		logger.Info("LLM scoring disabled, using keyword scores only")
	}

	filter := scorer.Filter{GlobalOnly: cfg.GlobalOnly}
	a.selector = scorer.NewSelector(criteria.NewResolver(store), scorer.NewScorer(filter), rescorer, scorer.Options{
		MinScore:    cfg.MinKeywordScore,
		WidenFactor: cfg.WidenFactor,
		LLMEnabled:  cfg.LLMEnabled,
	})

	return a, nil
}

func (a *App) Close() {
	a.ratings.Close()
	if a.llm != nil {
		a.llm.Close()
	}
}

// Stats merges the run counters with the LLM rate limiter statistics.
func (a *App) Stats() map[string]interface{} {
	stats := metrics.Global.GetStats()
	for k, v := range a.limiter.GetStats() {
		stats[k] = v
	}
	return stats
}

func (a *App) categories() []string {
	if len(a.cfg.Categories) > 0 {
		return a.cfg.Categories
	}
	return a.store.FolderNames()
}

// Run processes every category in order and returns the assembled report.
// A failing category is logged and reported with its error; only context
// cancellation aborts the run.
func (a *App) Run(ctx context.Context) (*Report, error) {
	began := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(began))
	}()

	start := a.now()

	window := rss.MaxAge(a.cfg.NewsMaxAge, start)

	report := &Report{GeneratedAt: start.UTC()}
	for _, category := range a.categories() {
		if err := ctx.Err(); err != nil {
			metrics.Global.SetError(err.Error())
			return report, err
		}

		section := a.runCategory(ctx, category, window)
		report.Categories = append(report.Categories, section)
		metrics.Global.IncrementCategoriesProcessed()
	}

	logger.Info("Run finished",
		"categories", len(report.Categories),
		"duration", time.Since(began).Round(time.Millisecond),
	)
	logger.Debug("LLM limiter stats", "stats", a.limiter.GetStats())

	if err := ctx.Err(); err != nil {
		metrics.Global.SetError(err.Error())
		return report, err
	}
	metrics.Global.SetLastRun()
	return report, nil
}

func (a *App) runCategory(ctx context.Context, category string, window rss.Window) CategoryReport {
	log := logger.With("category", category)
	section := CategoryReport{Category: category, Articles: []news.ScoredArticle{}}

	feeds := a.store.Feeds(category)
	urls := make([]string, 0, len(feeds))
	for _, f := range feeds {
		urls = append(urls, f.URL)
	}

	raw := a.fetcher.FetchAll(ctx, urls, window)
	if queries := a.store.SearchQueries(category); len(queries) > 0 {
		raw = append(raw, a.fetcher.FetchSearch(ctx, queries, window)...)
	}
	articles := news.Dedupe(raw)
	section.Collected = len(articles)
	metrics.Global.AddArticlesFetched(len(raw))
	metrics.Global.AddDuplicatesFiltered(len(raw) - len(articles))

	log.Info("Collected articles", "feeds", len(urls), "articles", len(articles))

	selected, err := a.selector.SelectTopArticles(ctx, articles, category)
	if err != nil {
		log.Error("Selection failed", "error", err)
		metrics.Global.SetError(err.Error())
		section.Error = err.Error()
		return section
	}

	if a.translator != nil && len(selected) > 0 {
		selected = a.translator.TranslateSummaries(ctx, selected)
	}
	if a.analyzer != nil && len(selected) > 0 {
		selected = a.analyzer.Analyze(ctx, selected)
	}

	section.Articles = selected
	log.Info("Selected articles", "selected", len(selected))
	return section
}
