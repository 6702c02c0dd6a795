package news

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	in := []Article{
		{Title: "FDA Clears New Device", Source: "feed"},
		{Title: "  fda clears new device ", Source: "search"},
		{Title: "Another Story", Source: "feed"},
		{Title: "", Source: "feed"},
		{Title: "ANOTHER STORY", Source: "search"},
	}

	got := Dedupe(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d: %+v", len(got), got)
	}
	if got[0].Source != "feed" || got[1].Title != "Another Story" {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestSeen_AcrossPasses(t *testing.T) {
	seen := NewSeen()

	feeds := seen.Filter([]Article{{Title: "Telehealth expands in UAE"}})
	search := seen.Filter([]Article{
		{Title: "TELEHEALTH EXPANDS IN UAE"},
		{Title: "Medical tourism rebounds"},
	})

	if len(feeds) != 1 || len(search) != 1 {
		t.Fatalf("expected 1+1 articles, got %d+%d", len(feeds), len(search))
	}
	if search[0].Title != "Medical tourism rebounds" {
		t.Errorf("unexpected search survivor %q", search[0].Title)
	}
	if seen.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", seen.Len())
	}
}

func TestTitleKey_UnicodeFold(t *testing.T) {
	if TitleKey("Straße") != TitleKey("STRASSE") {
		t.Error("full case folding should equate ß and SS")
	}
}

func TestNewScored_ProvenanceNeverNull(t *testing.T) {
	s := NewScored(Article{Title: "t"}, 4, nil, nil)
	if s.Score != s.KeywordScore || s.Rated() {
		t.Fatalf("fresh scored article should carry only the keyword score: %+v", s)
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	for _, want := range []string{`"matched_keywords":[]`, `"matched_countries":[]`, `"llm_score":null`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}
