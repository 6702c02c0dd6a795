package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/normalize"
)

// maxBriefSummary is the rune limit for summaries in the text briefing.
const maxBriefSummary = 600

type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Categories  []CategoryReport `json:"categories"`
}

type CategoryReport struct {
	Category  string               `json:"category"`
	Collected int                  `json:"collected"`
	Articles  []news.ScoredArticle `json:"articles"`
	Error     string               `json:"error,omitempty"`
}

func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Save writes the report next to path and renames it into place.
func (r *Report) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.json")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := r.WriteJSON(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace report file: %w", err)
	}
	return nil
}

// FormatText renders the report as a plain text briefing, one section per
// category, Korean translations shown under the original when present.
func (r *Report) FormatText() string {
	var b strings.Builder

	b.WriteString("바이오헬스 뉴스 브리핑\n")
	b.WriteString(fmt.Sprintf("%s\n", r.GeneratedAt.Format("2006-01-02 15:04 MST")))
	b.WriteString(strings.Repeat("━", 40) + "\n")

	for _, section := range r.Categories {
		b.WriteString(fmt.Sprintf("\n[%s] %d건\n\n", section.Category, len(section.Articles)))
		if section.Error != "" {
			b.WriteString(fmt.Sprintf("오류: %s\n", section.Error))
			continue
		}
		for i, a := range section.Articles {
			b.WriteString(formatArticle(a, i+1))
		}
	}

	return b.String()
}

func formatArticle(a news.ScoredArticle, number int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%d. %s (%.1f)\n", number, a.Title, a.Score))
	if a.TitleKR != "" && a.TitleKR != a.Title {
		b.WriteString(fmt.Sprintf("   %s\n", a.TitleKR))
	}
	if a.Source != "" {
		b.WriteString(fmt.Sprintf("   %s", a.Source))
		if a.Published != nil {
			b.WriteString(" · " + a.Published.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("   %s\n", a.URL))
	if a.Oneliner != "" {
		b.WriteString(fmt.Sprintf("   ▶ %s\n", a.Oneliner))
	}

	summary := a.Summary3Sent
	if summary == "" {
		summary = a.SummaryKR
	}
	if summary == "" {
		summary = a.Summary
	}
	if summary = trimSentence(strings.TrimSpace(summary), maxBriefSummary); summary != "" {
		b.WriteString(fmt.Sprintf("   %s\n", summary))
	}
	if a.Hashtags != "" {
		b.WriteString(fmt.Sprintf("   %s\n", a.Hashtags))
	}
	if len(a.MatchedKeywords) > 0 {
		b.WriteString(fmt.Sprintf("   키워드: %s\n", strings.Join(a.MatchedKeywords, ", ")))
	}
	b.WriteString("\n")

	return b.String()
}

// trimSentence cuts text to max runes, backing up to the last full sentence
// when there is one.
func trimSentence(text string, max int) string {
	if len([]rune(text)) <= max {
		return text
	}
	cut := normalize.Truncate(text, max)
	if i := strings.LastIndex(cut, "."); i > 0 {
		return cut[:i+1]
	}
	return cut + "..."
}
