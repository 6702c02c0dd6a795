package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/deusflow/trendbrief/internal/config"
	"github.com/deusflow/trendbrief/internal/criteria"
	"github.com/deusflow/trendbrief/internal/storage"
)

// settingsCmd is embedded by every command that edits the settings file.
type settingsCmd struct {
	root *Options
	out  io.Writer
}

func (c settingsCmd) open() (*storage.SettingsStore, error) {
	path := c.root.Settings
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		path = cfg.SettingsPath
	}

	store := storage.NewSettingsStore(path)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// edit loads the store, applies fn and saves the result.
func (c settingsCmd) edit(fn func(*storage.SettingsStore) error) error {
	store, err := c.open()
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return store.Save()
}

type folderListCmd struct{ settingsCmd }

func (c *folderListCmd) Execute([]string) error {
	store, err := c.open()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FOLDER\tTOP_N\tFEEDS\tQUERIES")
	for _, name := range store.FolderNames() {
		crit, _ := store.Lookup(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, crit.TopN, len(store.Feeds(name)), len(store.SearchQueries(name)))
	}
	return w.Flush()
}

type folderAddCmd struct {
	settingsCmd
	Args struct {
		Name string `positional-arg-name:"name" required:"yes"`
	} `positional-args:"yes"`
}

func (c *folderAddCmd) Execute([]string) error {
	return c.edit(func(s *storage.SettingsStore) error {
		s.AddFolder(c.Args.Name)
		return nil
	})
}

type folderRemoveCmd struct {
	settingsCmd
	Args struct {
		Name string `positional-arg-name:"name" required:"yes"`
	} `positional-args:"yes"`
}

func (c *folderRemoveCmd) Execute([]string) error {
	return c.edit(func(s *storage.SettingsStore) error {
		s.DeleteFolder(c.Args.Name)
		return nil
	})
}

type feedAddCmd struct {
	settingsCmd
	Args struct {
		Folder string `positional-arg-name:"folder" required:"yes"`
		Name   string `positional-arg-name:"name" required:"yes"`
		URL    string `positional-arg-name:"url" required:"yes"`
	} `positional-args:"yes"`
}

func (c *feedAddCmd) Execute([]string) error {
	return c.edit(func(s *storage.SettingsStore) error {
		return s.AddFeed(c.Args.Folder, c.Args.Name, c.Args.URL)
	})
}

type feedRemoveCmd struct {
	settingsCmd
	Args struct {
		Folder string `positional-arg-name:"folder" required:"yes"`
		Index  int    `positional-arg-name:"index" required:"yes"`
	} `positional-args:"yes"`
}

func (c *feedRemoveCmd) Execute([]string) error {
	return c.edit(func(s *storage.SettingsStore) error {
		s.DeleteFeed(c.Args.Folder, c.Args.Index)
		return nil
	})
}

type querySetCmd struct {
	settingsCmd
	Args struct {
		Folder  string   `positional-arg-name:"folder" required:"yes"`
		Queries []string `positional-arg-name:"query"`
	} `positional-args:"yes"`
}

func (c *querySetCmd) Execute([]string) error {
	return c.edit(func(s *storage.SettingsStore) error {
		return s.SetSearchQueries(c.Args.Folder, c.Args.Queries)
	})
}

type criteriaImportCmd struct {
	settingsCmd
	Args struct {
		Folder string `positional-arg-name:"folder" required:"yes"`
		File   string `positional-arg-name:"file" required:"yes"`
	} `positional-args:"yes"`
}

func (c *criteriaImportCmd) Execute([]string) error {
	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to read criteria file: %w", err)
	}
	var crit criteria.Criteria
	if err := yaml.Unmarshal(data, &crit); err != nil {
		return fmt.Errorf("failed to parse criteria file: %w", err)
	}

	return c.edit(func(s *storage.SettingsStore) error {
		return s.UpdateCriteria(c.Args.Folder, crit)
	})
}

// addSettingsCommands registers the settings editing commands on parser.
func addSettingsCommands(parser *flags.Parser, root *Options, out io.Writer) error {
	base := settingsCmd{root: root, out: out}

	folder, err := parser.AddCommand("folder", "Manage categories", "", &struct{}{})
	if err != nil {
		return err
	}
	feed, err := parser.AddCommand("feed", "Manage the feeds of a category", "", &struct{}{})
	if err != nil {
		return err
	}
	query, err := parser.AddCommand("query", "Manage keyword-search queries", "", &struct{}{})
	if err != nil {
		return err
	}
	crit, err := parser.AddCommand("criteria", "Manage scoring criteria", "", &struct{}{})
	if err != nil {
		return err
	}

	subs := []struct {
		parent *flags.Command
		name   string
		short  string
		data   interface{}
	}{
		{folder, "list", "List categories", &folderListCmd{base}},
		{folder, "add", "Add an empty category", &folderAddCmd{settingsCmd: base}},
		{folder, "remove", "Remove a category", &folderRemoveCmd{settingsCmd: base}},
		{feed, "add", "Add a feed", &feedAddCmd{settingsCmd: base}},
		{feed, "remove", "Remove a feed by its zero-based index", &feedRemoveCmd{settingsCmd: base}},
		{query, "set", "Replace the search queries of a category", &querySetCmd{settingsCmd: base}},
		{crit, "import", "Replace the criteria of a category from a YAML file", &criteriaImportCmd{settingsCmd: base}},
	}
	for _, sub := range subs {
		if _, err := sub.parent.AddCommand(sub.name, sub.short, "", sub.data); err != nil {
			return err
		}
	}
	return nil
}
