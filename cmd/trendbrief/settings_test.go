package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deusflow/trendbrief/internal/storage"
)

func runCommand(t *testing.T, out io.Writer, args ...string) {
	t.Helper()
	_, handled, err := parseOptions(args, out)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	if !handled {
		t.Fatalf("%v: command was not handled", args)
	}
}

func TestSettingsCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("folders:\n  제약:\n    criteria:\n      top_n: 10\n      keywords: [신약]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	critFile := filepath.Join(dir, "criteria.yaml")
	if err := os.WriteFile(critFile, []byte("top_n: 7\nkeywords_en: [telehealth]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := "--settings=" + path
	runCommand(t, io.Discard, s, "folder", "add", "디지털헬스")
	runCommand(t, io.Discard, s, "feed", "add", "디지털헬스", "MobiHealthNews", "https://www.mobihealthnews.com/feed")
	runCommand(t, io.Discard, s, "feed", "add", "디지털헬스", "Old", "https://old.example.com/rss")
	runCommand(t, io.Discard, s, "feed", "remove", "디지털헬스", "1")
	runCommand(t, io.Discard, s, "query", "set", "디지털헬스", "원격진료", " ", "digital health")
	runCommand(t, io.Discard, s, "criteria", "import", "디지털헬스", critFile)
	runCommand(t, io.Discard, s, "folder", "remove", "제약")

	store := storage.NewSettingsStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if names := store.FolderNames(); len(names) != 1 || names[0] != "디지털헬스" {
		t.Fatalf("unexpected folders %q", names)
	}
	feeds := store.Feeds("디지털헬스")
	if len(feeds) != 1 || feeds[0].Name != "MobiHealthNews" {
		t.Errorf("unexpected feeds %+v", feeds)
	}
	if q := store.SearchQueries("디지털헬스"); len(q) != 2 || q[1] != "digital health" {
		t.Errorf("unexpected queries %q", q)
	}
	crit, _ := store.Lookup("디지털헬스")
	if crit.TopN != 7 || len(crit.KeywordsEN) != 1 || crit.KeywordsEN[0] != "telehealth" {
		t.Errorf("criteria not imported: %+v", crit)
	}

	var buf bytes.Buffer
	runCommand(t, &buf, s, "folder", "list")
	if !strings.Contains(buf.String(), "디지털헬스") || !strings.Contains(buf.String(), "FEEDS") {
		t.Errorf("unexpected listing %q", buf.String())
	}
}

func TestSettingsCommands_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("folders:\n  제약:\n    criteria:\n      top_n: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("top_n: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		{"feed", "add", "없음", "X", "https://x.example.com/rss"},
		{"query", "set", "없음", "q"},
		{"criteria", "import", "제약", bad},
		{"criteria", "import", "제약", filepath.Join(dir, "missing.yaml")},
		{"feed", "add", "제약"},
	}
	for _, args := range cases {
		if _, _, err := parseOptions(append([]string{"--settings=" + path}, args...), io.Discard); err == nil {
			t.Errorf("%v should fail", args)
		}
	}

	store := storage.NewSettingsStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if crit, _ := store.Lookup("제약"); crit.TopN != 10 {
		t.Errorf("failed import must leave criteria alone, got top_n %d", crit.TopN)
	}
}
