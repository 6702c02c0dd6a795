package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deusflow/trendbrief/internal/criteria"
)

func TestSettingsStore_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "settings.yaml")
	store := NewSettingsStore(path)

	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults should be written to disk: %v", err)
	}

	names := store.FolderNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 default folders, got %v", names)
	}
	c, ok := store.Lookup("의료서비스")
	if !ok || c.TopN != 40 || c.CountryBoost["Dubai"] != 3 {
		t.Errorf("unexpected seeded criteria: %+v", c)
	}
	if feeds := store.Feeds("의료기기"); len(feeds) != 6 {
		t.Errorf("expected 6 seeded feeds, got %d", len(feeds))
	}
}

func TestSettingsStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := NewSettingsStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	store.AddFolder("Space medicine")
	custom := criteria.Criteria{
		TopN:             5,
		Description:      "Medicine in orbit",
		KeywordsEN:       []string{"microgravity"},
		NegativeKeywords: []string{},
		ExcludeKeywords:  []string{"sponsored"},
		Keywords:         []string{"우주의학"},
		CountryBoost:     map[string]int{"NASA": 2},
	}
	if err := store.UpdateCriteria("Space medicine", custom); err != nil {
		t.Fatal(err)
	}
	if err := store.AddFeed("Space medicine", "orbit", "https://example.com/feed.xml"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewSettingsStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	got, ok := reloaded.Lookup("Space medicine")
	if !ok || !reflect.DeepEqual(got, custom) {
		t.Errorf("criteria did not survive a round trip:\n got %+v\nwant %+v", got, custom)
	}
	if feeds := reloaded.Feeds("Space medicine"); len(feeds) != 1 || feeds[0].URL != "https://example.com/feed.xml" {
		t.Errorf("unexpected feeds %+v", feeds)
	}

	// leftovers from the atomic write must not pile up
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the settings file, found %d entries", len(entries))
	}
}

func TestSettingsStore_Mutations(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "s.yaml"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateCriteria("missing", criteria.Default()); err == nil {
		t.Error("updating an unknown folder should fail")
	}
	if err := store.UpdateCriteria("제약", criteria.Criteria{TopN: 0}); err == nil {
		t.Error("invalid criteria should be rejected")
	}

	before := len(store.Feeds("제약"))
	store.DeleteFeed("제약", 0)
	store.DeleteFeed("제약", 99)
	if got := len(store.Feeds("제약")); got != before-1 {
		t.Errorf("expected %d feeds, got %d", before-1, got)
	}

	store.DeleteFolder("제약")
	if _, ok := store.Lookup("제약"); ok {
		t.Error("deleted folder still present")
	}

	store.AddFolder("new")
	c, ok := store.Lookup("new")
	if !ok || c.HasKeywords() || c.TopN != 20 {
		t.Errorf("new folder should start empty: %+v", c)
	}

	if err := store.SetSearchQueries("new", []string{" FDA approval ", "", "디지털 헬스"}); err != nil {
		t.Fatal(err)
	}
	if got := store.SearchQueries("new"); !reflect.DeepEqual(got, []string{"FDA approval", "디지털 헬스"}) {
		t.Errorf("unexpected search queries %q", got)
	}
	if err := store.SetSearchQueries("missing", []string{"x"}); err == nil {
		t.Error("setting queries on an unknown folder should fail")
	}
}

func TestSettingsStore_InvalidFileKeptOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("folders: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewSettingsStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if len(store.FolderNames()) != 5 {
		t.Error("defaults should be used in memory")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "folders: [unclosed" {
		t.Error("a broken settings file must not be overwritten")
	}
}

func TestSettingsStore_LookupReturnsCopy(t *testing.T) {
	store := NewSettingsStore(filepath.Join(t.TempDir(), "s.yaml"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	c, _ := store.Lookup("화장품")
	c.KeywordsEN[0] = "mutated"

	again, _ := store.Lookup("화장품")
	if again.KeywordsEN[0] == "mutated" {
		t.Error("Lookup must not expose internal state")
	}
}
