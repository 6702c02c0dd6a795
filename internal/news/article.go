package news

import "time"

// Article is a single collected item. Title and Summary are plain text;
// missing values are empty strings.
type Article struct {
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	URL        string     `json:"url"`
	Source     string     `json:"source"`
	Published  *time.Time `json:"published,omitempty"`
	Categories []string   `json:"categories"`
}

// ScoredArticle is an Article after Pass 1, optionally adjusted by Pass 2.
// Score equals KeywordScore until the LLM rates the article, then LLMScore is set.
type ScoredArticle struct {
	Article

	Score            float64  `json:"score"`
	KeywordScore     float64  `json:"keyword_score"`
	LLMScore         *int     `json:"llm_score"`
	MatchedKeywords  []string `json:"matched_keywords"`
	MatchedCountries []string `json:"matched_countries"`

	TitleKR   string `json:"title_kr,omitempty"`
	SummaryKR string `json:"summary_kr,omitempty"`

	// briefing metadata from the analysis step, in Korean
	Country      string `json:"country,omitempty"`
	Oneliner     string `json:"oneliner,omitempty"`
	Hashtags     string `json:"hashtags,omitempty"`
	Summary3Sent string `json:"summary_3sent,omitempty"`
}

// NewScored wraps a with its keyword score and provenance.
// Provenance slices are never nil so they encode as [] rather than null.
func NewScored(a Article, keywordScore float64, keywords, countries []string) ScoredArticle {
	if keywords == nil {
		keywords = []string{}
	}
	if countries == nil {
		countries = []string{}
	}
	return ScoredArticle{
		Article:          a,
		Score:            keywordScore,
		KeywordScore:     keywordScore,
		MatchedKeywords:  keywords,
		MatchedCountries: countries,
	}
}

// Rated reports whether Pass 2 assigned an LLM score.
func (s ScoredArticle) Rated() bool {
	return s.LLMScore != nil
}
