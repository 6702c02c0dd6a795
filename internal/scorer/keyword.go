package scorer

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/normalize"
)

// Excluded is the score of an article that must never be ranked.
const Excluded = -1.0

const (
	titleWeight   = 3
	summaryWeight = 1
)

// Scorer is the deterministic keyword pass. The only state it keeps is a
// cache of compiled keyword patterns, so scoring is idempotent.
type Scorer struct {
	filter   Filter
	patterns sync.Map // lower-cased keyword -> *regexp.Regexp
}

func NewScorer(filter Filter) *Scorer {
	return &Scorer{filter: filter}
}

// ScoreArticle scores a against c and reports which keywords and countries matched.
// Inadmissible articles and articles hitting an exclude keyword score Excluded.
func (s *Scorer) ScoreArticle(a news.Article, c criteria.Criteria) (float64, []string, []string) {
	matchedKeywords := []string{}
	matchedCountries := []string{}

	if !s.filter.IsAdmissible(a) {
		return Excluded, matchedKeywords, matchedCountries
	}

	title := strings.ToLower(a.Title)
	summary := strings.ToLower(a.Summary)

	for _, kw := range c.ExcludeKeywords {
		if s.wordMatch(kw, title) || s.wordMatch(kw, summary) {
			return Excluded, matchedKeywords, matchedCountries
		}
	}

	score := 0.0
	for _, list := range [][]string{c.Keywords, c.KeywordsEN} {
		for _, kw := range list {
			switch {
			case s.wordMatch(kw, title):
				score += titleWeight
				matchedKeywords = append(matchedKeywords, kw)
			case s.wordMatch(kw, summary):
				score += summaryWeight
				matchedKeywords = append(matchedKeywords, kw)
			}
		}
	}

	for _, kw := range c.NegativeKeywords {
		if s.wordMatch(kw, title) {
			score -= titleWeight
		}
		if s.wordMatch(kw, summary) {
			score -= summaryWeight
		}
	}

	if score > 0 && len(c.CountryBoost) > 0 {
		countries := make([]string, 0, len(c.CountryBoost))
		for country := range c.CountryBoost {
			countries = append(countries, country)
		}
		sort.Strings(countries)

		for _, country := range countries {
			if s.wordMatch(country, title) || s.wordMatch(country, summary) {
				score += float64(c.CountryBoost[country])
				matchedCountries = append(matchedCountries, country)
			}
		}
	}

	return score, matchedKeywords, matchedCountries
}

// wordMatch looks for keyword in text, which must already be lower-cased.
// ASCII keywords match on word boundaries and tolerate up to three trailing
// word characters ("approval" matches "approvals", "US" never matches
// "pushed"). Other keywords, Korean ones in particular, match as substrings.
func (s *Scorer) wordMatch(keyword, text string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	if !normalize.IsASCII(kw) {
		return strings.Contains(text, kw)
	}
	return s.pattern(kw).MatchString(text)
}

func (s *Scorer) pattern(kw string) *regexp.Regexp {
	if re, ok := s.patterns.Load(kw); ok {
		return re.(*regexp.Regexp)
	}

	expr := regexp.QuoteMeta(kw)
	// boundaries only make sense next to word characters, otherwise
	// keywords like "510(k)" could never match
	if isWordByte(kw[0]) {
		expr = `(?:^|[^` + wordClass + `])` + expr
	}
	if isWordByte(kw[len(kw)-1]) {
		expr += `[` + wordClass + `]{0,3}(?:$|[^` + wordClass + `])`
	}

	re := regexp.MustCompile(expr)
	actual, _ := s.patterns.LoadOrStore(kw, re)
	return actual.(*regexp.Regexp)
}

// wordClass is a Unicode word character. Go's \b only knows ASCII, which
// would let "fda" match inside "미국fda" or "fda승인허가서".
const wordClass = `\p{L}\p{N}\p{M}_`

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
