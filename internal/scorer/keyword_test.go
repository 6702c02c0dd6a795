package scorer

import (
	"reflect"
	"testing"

	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/news"
)

func TestWordMatch(t *testing.T) {
	s := NewScorer(Filter{})

	tests := []struct {
		keyword, text string
		want          bool
	}{
		{"US", "the bill was pushed through", false},
		{"US", "us fda approves first ai triage tool", true},
		{"approval", "fda approvals granted", true},
		{"app", "approval granted", false},
		{"FDA approval", "fda approval of new ingredient", true},
		{"510(k)", "cleared via the 510(k) pathway", true},
		{"DTx", "korean dtx startups", true},
		{"승인", "fda승인 획득", true},
		{"FDA", "fda승인허가서 발표", false},
		{"FDA", "미국fda 발표", false},
		{"FDA", "미국 fda가 승인", true},
		{"approval", "approval허가", true},
		{"의료기기", "의료 기기", false},
		{"", "anything", false},
		{"   ", "anything", false},
	}

	for _, tt := range tests {
		if got := s.wordMatch(tt.keyword, tt.text); got != tt.want {
			t.Errorf("wordMatch(%q, %q) = %v, want %v", tt.keyword, tt.text, got, tt.want)
		}
	}
}

func article(title, summary string) news.Article {
	return news.Article{Title: title, Summary: summary, URL: "https://example.com/" + title}
}

func TestScoreArticle(t *testing.T) {
	s := NewScorer(Filter{})

	boost := criteria.Criteria{
		TopN:       10,
		KeywordsEN: []string{"telehealth"},
		CountryBoost: map[string]int{
			"US": 2, "Dubai": 3, "Qatar": 3,
		},
	}

	t.Run("US does not match inside pushed", func(t *testing.T) {
		score, kws, countries := s.ScoreArticle(article("Insurer pushed telehealth coverage", longSummary), boost)
		if score != 3 || len(countries) != 0 || !reflect.DeepEqual(kws, []string{"telehealth"}) {
			t.Errorf("got (%v, %v, %v)", score, kws, countries)
		}
	})

	t.Run("US matches as a word", func(t *testing.T) {
		score, _, countries := s.ScoreArticle(article("US FDA approves telehealth platform", longSummary), boost)
		if score != 5 || !reflect.DeepEqual(countries, []string{"US"}) {
			t.Errorf("got (%v, %v)", score, countries)
		}
	})

	t.Run("country boosts add up in sorted order", func(t *testing.T) {
		score, _, countries := s.ScoreArticle(article("Telehealth deals in Qatar and Dubai", longSummary), boost)
		if score != 9 || !reflect.DeepEqual(countries, []string{"Dubai", "Qatar"}) {
			t.Errorf("got (%v, %v)", score, countries)
		}
	})

	t.Run("country boost needs a positive score", func(t *testing.T) {
		score, kws, countries := s.ScoreArticle(article("Dubai hospital opens", longSummary), boost)
		if score != 0 || len(kws) != 0 || len(countries) != 0 {
			t.Errorf("got (%v, %v, %v)", score, kws, countries)
		}
	})

	t.Run("title beats summary and counts once", func(t *testing.T) {
		c := criteria.Criteria{TopN: 10, KeywordsEN: []string{"robotic surgery"}, Keywords: []string{"수술로봇"}}
		a := article("Robotic surgery adoption grows", longSummary+" Robotic surgery and 수술로봇 demand rose.")
		score, kws, _ := s.ScoreArticle(a, c)
		if score != 4 {
			t.Errorf("expected 3 (title) + 1 (korean summary) = 4, got %v", score)
		}
		if !reflect.DeepEqual(kws, []string{"수술로봇", "robotic surgery"}) {
			t.Errorf("keywords must follow list order, got %v", kws)
		}
	})

	t.Run("negative keywords apply to title and summary independently", func(t *testing.T) {
		c := criteria.Criteria{TopN: 10, NegativeKeywords: []string{"real estate"}}
		score, _, _ := s.ScoreArticle(article("Real estate slump", longSummary+" The real estate market fell."), c)
		if score != -4 {
			t.Errorf("expected -4, got %v", score)
		}
	})

	t.Run("exclude keyword drops the article", func(t *testing.T) {
		c := criteria.Criteria{TopN: 10, KeywordsEN: []string{"telehealth"}, ExcludeKeywords: []string{"sponsored"}}
		score, kws, countries := s.ScoreArticle(article("Telehealth platform launch", longSummary+" Sponsored content."), c)
		if score != Excluded || kws == nil || countries == nil {
			t.Errorf("got (%v, %v, %v)", score, kws, countries)
		}
	})

	t.Run("inadmissible article is excluded", func(t *testing.T) {
		score, kws, countries := s.ScoreArticle(article("Telehealth", "too short"), boost)
		if score != Excluded || len(kws) != 0 || len(countries) != 0 {
			t.Errorf("got (%v, %v, %v)", score, kws, countries)
		}
	})

	t.Run("no criteria keywords scores zero", func(t *testing.T) {
		score, _, _ := s.ScoreArticle(article("Anything at all", longSummary), criteria.Default())
		if score != 0 {
			t.Errorf("expected 0, got %v", score)
		}
	})
}

func TestScoreArticle_FoodSafetyScenario(t *testing.T) {
	s := NewScorer(Filter{})
	c := criteria.Criteria{
		TopN:             10,
		KeywordsEN:       []string{"FDA approval"},
		NegativeKeywords: []string{"food safety"},
	}
	title := "FDA approval of new cosmetic ingredient process, food safety concerns raised"

	score, _, _ := s.ScoreArticle(article(title, longSummary), c)
	if score != 0 {
		t.Errorf("title match and title penalty should cancel, got %v", score)
	}

	score, _, _ = s.ScoreArticle(article(title, longSummary+" Food safety groups objected."), c)
	if score != -1 {
		t.Errorf("summary penalty should push the score to -1, got %v", score)
	}

	scored := []news.ScoredArticle{news.NewScored(article(title, longSummary), 0, nil, nil)}
	for _, floor := range []float64{1, 3} {
		if got := SelectCandidates(scored, floor, 10, 1); len(got) != 0 {
			t.Errorf("floor %v should filter the article, got %d", floor, len(got))
		}
	}
}

func TestScoreArticle_Idempotent(t *testing.T) {
	s := NewScorer(Filter{GlobalOnly: true})
	c, _ := criteria.Builtin("의료서비스")
	a := article("US telemedicine firm signs healthcare cooperation deal in Saudi Arabia", longSummary+" Medical tourism is expected to grow.")

	s1, k1, c1 := s.ScoreArticle(a, c)
	s2, k2, c2 := s.ScoreArticle(a, c)

	if s1 != s2 || !reflect.DeepEqual(k1, k2) || !reflect.DeepEqual(c1, c2) {
		t.Errorf("scoring is not idempotent: (%v %v %v) vs (%v %v %v)", s1, k1, c1, s2, k2, c2)
	}
	if s1 <= 0 {
		t.Errorf("expected a positive score, got %v", s1)
	}
}
