package rss

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/deusflow/trendbrief/internal/logger"
	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/normalize"
)

const googleNewsSearchBase = "https://news.google.com/rss/search"

// Window limits collection to articles published inside it. Zero bounds are open.
// Articles without a publication date always pass.
type Window struct {
	NewerThan time.Time
	OlderThan time.Time
}

// MaxAge is the window of articles at most age old at now. A non-positive
// age leaves the window open.
func MaxAge(age time.Duration, now time.Time) Window {
	if age <= 0 {
		return Window{}
	}
	return Window{NewerThan: now.Add(-age)}
}

// Contains reports whether a publication time falls inside the window.
func (w Window) Contains(t *time.Time) bool {
	if t == nil {
		return true
	}
	if !w.NewerThan.IsZero() && t.Before(w.NewerThan) {
		return false
	}
	if !w.OlderThan.IsZero() && t.After(w.OlderThan) {
		return false
	}
	return true
}

// Collector turns feeds into news.Article values.
type Collector struct {
	parser      *gofeed.Parser
	searchBase  string
	searchPause time.Duration
}

func NewCollector(timeout, searchPause time.Duration) *Collector {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "trendbrief/1.0"

	return &Collector{
		parser:      parser,
		searchBase:  googleNewsSearchBase,
		searchPause: searchPause,
	}
}

// FetchFeed downloads and parses one feed.
func (c *Collector) FetchFeed(ctx context.Context, feedURL string, w Window) ([]news.Article, error) {
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}
	return toArticles(feed, w), nil
}

// ParseFeed parses an already downloaded feed body.
func (c *Collector) ParseFeed(r io.Reader, w Window) ([]news.Article, error) {
	feed, err := c.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return toArticles(feed, w), nil
}

// FetchAll downloads every feed of a category. A failing feed is logged and
// skipped; it never aborts the others.
func (c *Collector) FetchAll(ctx context.Context, urls []string, w Window) []news.Article {
	var all []news.Article
	successCount := 0

	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		articles, err := c.FetchFeed(ctx, u, w)
		if err != nil {
			logger.Warn("Error parsing RSS", "url", u, "error", err)
			continue
		}
		all = append(all, articles...)
		successCount++
		logger.Debug("Loaded feed", "url", u, "articles", len(articles))
	}

	logger.Info("Processed RSS feeds", "ok", successCount, "total", len(urls), "articles", len(all))
	return all
}

// SearchURL builds the Google News RSS search for query over the last 14 days,
// in the Korean edition for Korean queries and the US edition otherwise.
func SearchURL(query string) string {
	return searchURL(googleNewsSearchBase, query)
}

func searchURL(base, query string) string {
	locale := "hl=en&gl=US&ceid=US:en"
	if normalize.IsKoreanQuery(query) {
		locale = "hl=ko&gl=KR&ceid=KR:ko"
	}
	return fmt.Sprintf("%s?q=%s+when:14d&%s", base, url.PathEscape(query), locale)
}

// FetchSearch runs each query against Google News and returns the results
// deduplicated by title, pausing between queries.
func (c *Collector) FetchSearch(ctx context.Context, queries []string, w Window) []news.Article {
	seen := news.NewSeen()
	var all []news.Article
	first := true

	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}

		if !first {
			if err := sleepContext(ctx, c.searchPause); err != nil {
				break
			}
		}
		first = false

		articles, err := c.FetchFeed(ctx, searchURL(c.searchBase, q), w)
		if err != nil {
			logger.Warn("Search query failed", "query", q, "error", err)
			continue
		}
		all = append(all, seen.Filter(articles)...)
	}

	return all
}

func toArticles(feed *gofeed.Feed, w Window) []news.Article {
	articles := make([]news.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		a := toArticle(item)
		if !w.Contains(a.Published) {
			continue
		}
		articles = append(articles, a)
	}
	return articles
}

func toArticle(item *gofeed.Item) news.Article {
	var published *time.Time
	switch {
	case item.PublishedParsed != nil:
		t := item.PublishedParsed.UTC()
		published = &t
	case item.UpdatedParsed != nil:
		t := item.UpdatedParsed.UTC()
		published = &t
	}

	title, source := normalize.SplitSource(item.Title)
	if source == "" {
		source = normalize.DomainSource(item.Link)
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	categories := make([]string, 0, len(item.Categories))
	for _, c := range item.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	return news.Article{
		Title:      title,
		Summary:    normalize.StripHTML(summary),
		URL:        item.Link,
		Source:     source,
		Published:  published,
		Categories: categories,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
