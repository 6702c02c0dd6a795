package news

import (
	"strings"

	"golang.org/x/text/cases"
)

// TitleKey is the deduplication key: the trimmed, case-folded title.
func TitleKey(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// Seen tracks title keys across several collection passes, e.g. feed polling
// followed by keyword search. The zero value is not usable; call NewSeen.
type Seen struct {
	keys map[string]struct{}
}

func NewSeen() *Seen {
	return &Seen{keys: make(map[string]struct{})}
}

// Add records the article's title key and reports whether it was new.
// Articles with an empty title are never admitted.
func (s *Seen) Add(a Article) bool {
	key := TitleKey(a.Title)
	if key == "" {
		return false
	}
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

func (s *Seen) Len() int {
	return len(s.keys)
}

// Filter returns the articles not seen before, in input order.
func (s *Seen) Filter(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if s.Add(a) {
			out = append(out, a)
		}
	}
	return out
}

// Dedupe drops later articles whose title key repeats an earlier one.
func Dedupe(articles []Article) []Article {
	return NewSeen().Filter(articles)
}
