// Package criteria describes how each category is scored and where that
// description comes from.
package criteria

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTopN = errors.New("top_n must be positive")

// Criteria is the scoring configuration of one category.
type Criteria struct {
	TopN             int            `yaml:"top_n" json:"top_n"`
	Description      string         `yaml:"description" json:"description"`
	Keywords         []string       `yaml:"keywords" json:"keywords"`
	KeywordsEN       []string       `yaml:"keywords_en" json:"keywords_en"`
	NegativeKeywords []string       `yaml:"negative_keywords" json:"negative_keywords"`
	ExcludeKeywords  []string       `yaml:"exclude_keywords" json:"exclude_keywords"`
	CountryBoost     map[string]int `yaml:"country_boost" json:"country_boost"`
}

// HasKeywords reports whether the criteria carry any positive match terms.
func (c Criteria) HasKeywords() bool {
	return len(c.Keywords) > 0 || len(c.KeywordsEN) > 0
}

func (c Criteria) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTopN, c.TopN)
	}
	return nil
}

// Clone returns a deep copy so callers can edit it without touching shared tables.
func (c Criteria) Clone() Criteria {
	out := c
	out.Keywords = cloneStrings(c.Keywords)
	out.KeywordsEN = cloneStrings(c.KeywordsEN)
	out.NegativeKeywords = cloneStrings(c.NegativeKeywords)
	out.ExcludeKeywords = cloneStrings(c.ExcludeKeywords)
	out.CountryBoost = make(map[string]int, len(c.CountryBoost))
	for k, v := range c.CountryBoost {
		out.CountryBoost[k] = v
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Default is used for categories nothing else knows about. It matches no
// keywords, so every admissible article scores 0.
func Default() Criteria {
	return Criteria{
		TopN:             20,
		Description:      "General biohealth industry news and trends.",
		Keywords:         []string{},
		KeywordsEN:       []string{},
		NegativeKeywords: []string{},
		ExcludeKeywords:  []string{},
		CountryBoost:     map[string]int{},
	}
}

// Provider resolves the criteria of a category. It never fails.
type Provider interface {
	For(category string) Criteria
}

// Source is an external criteria store, such as the settings file.
type Source interface {
	Lookup(category string) (Criteria, bool)
}

// Resolver applies the precedence: a stored entry with keyword content,
// then the built-in table, then Default.
type Resolver struct {
	source Source
}

// NewResolver builds a resolver over src. src may be nil.
func NewResolver(src Source) *Resolver {
	return &Resolver{source: src}
}

func (r *Resolver) For(category string) Criteria {
	if r != nil && r.source != nil {
		if c, ok := r.source.Lookup(category); ok && c.HasKeywords() {
			return withDefaults(c)
		}
	}

	if c, ok := Builtin(category); ok {
		return c
	}
	return Default()
}

// Builtin finds the built-in criteria whose name contains, or is contained
// in, category. Entries are tried in table order.
func Builtin(category string) (Criteria, bool) {
	if strings.TrimSpace(category) == "" {
		return Criteria{}, false
	}
	for _, e := range builtins {
		if strings.Contains(category, e.name) || strings.Contains(e.name, category) {
			return e.criteria.Clone(), true
		}
	}
	return Criteria{}, false
}

// BuiltinNames lists the built-in categories in table order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for _, e := range builtins {
		names = append(names, e.name)
	}
	return names
}

// withDefaults fills the fields a hand-edited settings entry may leave out.
func withDefaults(c Criteria) Criteria {
	if c.TopN == 0 {
		c.TopN = Default().TopN
	}
	if c.CountryBoost == nil {
		c.CountryBoost = map[string]int{}
	}
	return c
}
