package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/logger"
)

// Feed is one RSS/Atom source of a folder.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Folder is a category: its scoring criteria and where its articles come from.
type Folder struct {
	Criteria      criteria.Criteria `yaml:"criteria"`
	Feeds         []Feed            `yaml:"feeds"`
	SearchQueries []string          `yaml:"search_queries"`
}

type Settings struct {
	Folders map[string]*Folder `yaml:"folders"`
}

// SettingsStore keeps the settings file in memory and writes it back atomically.
type SettingsStore struct {
	filePath string
	mu       sync.RWMutex
	settings Settings
}

func NewSettingsStore(filePath string) *SettingsStore {
	return &SettingsStore{
		filePath: filePath,
		settings: Settings{Folders: make(map[string]*Folder)},
	}
}

// Load reads the settings file. A missing file is created from the built-in
// defaults; an unreadable one is left alone and the defaults are used in memory.
func (s *SettingsStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		s.settings = Defaults()
		s.mu.Unlock()
		logger.Info("Settings file not found, writing defaults", "path", s.filePath)
		return s.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logger.Warn("Settings file is not valid YAML, using defaults", "path", s.filePath, "error", err)
		loaded = Defaults()
	}
	if loaded.Folders == nil {
		loaded.Folders = make(map[string]*Folder)
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()

	logger.Info("Settings loaded", "path", s.filePath, "folders", len(loaded.Folders))
	return nil
}

// Save writes through a temporary file so a crash never leaves a truncated file.
func (s *SettingsStore) Save() error {
	s.mu.RLock()
	data, err := yaml.Marshal(&s.settings)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// FolderNames returns the folder names in sorted order.
func (s *SettingsStore) FolderNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.settings.Folders))
	for name := range s.settings.Folders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the stored criteria of category.
func (s *SettingsStore) Lookup(category string) (criteria.Criteria, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.settings.Folders[category]
	if !ok || f == nil {
		return criteria.Criteria{}, false
	}
	return f.Criteria.Clone(), true
}

func (s *SettingsStore) Feeds(category string) []Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.settings.Folders[category]
	if !ok || f == nil {
		return nil
	}
	out := make([]Feed, len(f.Feeds))
	copy(out, f.Feeds)
	return out
}

func (s *SettingsStore) SearchQueries(category string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.settings.Folders[category]
	if !ok || f == nil {
		return nil
	}
	out := make([]string, len(f.SearchQueries))
	copy(out, f.SearchQueries)
	return out
}

// AddFolder creates an empty folder. Existing folders are left untouched.
func (s *SettingsStore) AddFolder(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settings.Folders[name]; ok {
		return
	}
	c := criteria.Default()
	c.Description = ""
	s.settings.Folders[name] = &Folder{Criteria: c, Feeds: []Feed{}, SearchQueries: []string{}}
}

func (s *SettingsStore) DeleteFolder(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.settings.Folders, name)
}

func (s *SettingsStore) UpdateCriteria(name string, c criteria.Criteria) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.settings.Folders[name]
	if !ok {
		return fmt.Errorf("folder %q not found", name)
	}
	f.Criteria = c.Clone()
	return nil
}

func (s *SettingsStore) AddFeed(folder, name, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.settings.Folders[folder]
	if !ok {
		return fmt.Errorf("folder %q not found", folder)
	}
	f.Feeds = append(f.Feeds, Feed{Name: name, URL: url})
	return nil
}

// DeleteFeed removes the feed at idx; out of range indexes are ignored.
func (s *SettingsStore) DeleteFeed(folder string, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.settings.Folders[folder]
	if !ok || idx < 0 || idx >= len(f.Feeds) {
		return
	}
	f.Feeds = append(f.Feeds[:idx], f.Feeds[idx+1:]...)
}

// SetSearchQueries replaces the keyword-search queries of folder. Blank
// queries are dropped.
func (s *SettingsStore) SetSearchQueries(folder string, queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.settings.Folders[folder]
	if !ok {
		return fmt.Errorf("folder %q not found", folder)
	}
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	f.SearchQueries = out
	return nil
}
