package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched     int64
	DuplicatesFiltered  int64
	ArticlesRejected    int64
	CategoriesProcessed int64
	LLMBatchesRated     int64
	LLMBatchesNeutral   int64
	LLMBatchesSkipped   int64
	LLMBatchesFailed    int64
	SummariesTranslated int64
	ArticlesAnalyzed    int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = New()

func New() *Metrics {
	return &Metrics{IsHealthy: true}
}

func (m *Metrics) AddArticlesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) AddDuplicatesFiltered(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += int64(n)
}

func (m *Metrics) AddArticlesRejected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesRejected += int64(n)
}

func (m *Metrics) IncrementCategoriesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CategoriesProcessed++
}

// IncrementLLMBatchesRated counts batches whose scores came back from the model.
func (m *Metrics) IncrementLLMBatchesRated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LLMBatchesRated++
}

// IncrementLLMBatchesNeutral counts batches that fell back to neutral scores.
func (m *Metrics) IncrementLLMBatchesNeutral() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LLMBatchesNeutral++
}

// IncrementLLMBatchesSkipped counts batches never sent because the quota latch was set.
func (m *Metrics) IncrementLLMBatchesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LLMBatchesSkipped++
}

// IncrementLLMBatchesFailed counts batches that kept keyword scores after every retry failed.
func (m *Metrics) IncrementLLMBatchesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LLMBatchesFailed++
}

func (m *Metrics) AddSummariesTranslated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummariesTranslated += int64(n)
}

func (m *Metrics) AddArticlesAnalyzed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesAnalyzed += int64(n)
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.IsHealthy
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":           m.ArticlesFetched,
		"duplicates_filtered":        m.DuplicatesFiltered,
		"articles_rejected":          m.ArticlesRejected,
		"categories_processed":       m.CategoriesProcessed,
		"llm_batches_rated":          m.LLMBatchesRated,
		"llm_batches_neutral":        m.LLMBatchesNeutral,
		"llm_batches_skipped":        m.LLMBatchesSkipped,
		"llm_batches_failed":         m.LLMBatchesFailed,
		"summaries_translated":       m.SummariesTranslated,
		"articles_analyzed":          m.ArticlesAnalyzed,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
