package criteria

import (
	"errors"
	"testing"
)

type mapSource map[string]Criteria

func (m mapSource) Lookup(category string) (Criteria, bool) {
	c, ok := m[category]
	return c, ok
}

func TestResolver_Precedence(t *testing.T) {
	stored := Criteria{TopN: 5, KeywordsEN: []string{"robotic surgery"}}
	src := mapSource{
		"의료기기":   stored,
		"제약":     {TopN: 7}, // no keyword content, must not win
		"Custom": {KeywordsEN: []string{"x"}},
	}
	r := NewResolver(src)

	t.Run("store with keywords wins", func(t *testing.T) {
		got := r.For("의료기기")
		if got.TopN != 5 || len(got.KeywordsEN) != 1 {
			t.Errorf("expected stored criteria, got %+v", got)
		}
	})

	t.Run("empty store entry falls back to builtin", func(t *testing.T) {
		got := r.For("제약")
		if got.TopN != 25 || !got.HasKeywords() {
			t.Errorf("expected builtin pharma criteria, got top_n=%d", got.TopN)
		}
	})

	t.Run("stored entry without top_n gets the default", func(t *testing.T) {
		got := r.For("Custom")
		if got.TopN != 20 || got.CountryBoost == nil {
			t.Errorf("expected defaults filled in, got %+v", got)
		}
	})

	t.Run("unknown category gets default", func(t *testing.T) {
		got := r.For("Space mining")
		if got.HasKeywords() || got.TopN != 20 {
			t.Errorf("expected Default, got %+v", got)
		}
	})
}

func TestResolver_NilSource(t *testing.T) {
	r := NewResolver(nil)
	if got := r.For("의료서비스"); got.TopN != 40 || got.CountryBoost["UAE"] != 3 {
		t.Errorf("expected builtin medical services criteria, got top_n=%d", got.TopN)
	}
}

func TestBuiltin_SubstringMatch(t *testing.T) {
	if _, ok := Builtin("2026 의료기기 동향"); !ok {
		t.Error("folder name containing a builtin name should match")
	}
	if _, ok := Builtin("화장"); !ok {
		t.Error("folder name contained in a builtin name should match")
	}
	if _, ok := Builtin(""); ok {
		t.Error("empty folder name must not match")
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a, _ := Builtin("의료서비스")
	a.Keywords[0] = "mutated"
	a.CountryBoost["US"] = 99

	b, _ := Builtin("의료서비스")
	if b.Keywords[0] == "mutated" || b.CountryBoost["US"] == 99 {
		t.Error("builtin table must not be mutable through returned criteria")
	}
}

func TestCriteria_Validate(t *testing.T) {
	if err := (Criteria{TopN: 0}).Validate(); !errors.Is(err, ErrInvalidTopN) {
		t.Errorf("expected ErrInvalidTopN, got %v", err)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default must be valid: %v", err)
	}
	if len(BuiltinNames()) != 5 {
		t.Errorf("expected 5 builtin categories, got %v", BuiltinNames())
	}
}
