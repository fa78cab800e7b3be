package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "tabdeck.db"
	DefaultLogName        = "tabdeck.log"
	DefaultTasksKey       = "customDashboardTasks"
	DefaultLinksKey       = "customDashboardLinks"
	DefaultSearchURL      = "https://www.google.com/search?q=%s"

	envConfigPath = "TABDECK_CONFIG"
	appDirName    = "tabdeck"
)

// Keymap values are comma-separated key names as reported by bubbletea,
// e.g. "down,j".
type Keymap struct {
	Quit        string `toml:"quit"`
	NextPane    string `toml:"next_pane"`
	PrevPane    string `toml:"prev_pane"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Remove      string `toml:"remove"`
	ToggleLinks string `toml:"toggle_links"`
	AddLink     string `toml:"add_link"`
	OpenLink    string `toml:"open_link"`
	CopyLink    string `toml:"copy_link"`
	Search      string `toml:"search"`
	Confirm     string `toml:"confirm"`
	Cancel      string `toml:"cancel"`
}

type Config struct {
	DBPath    string `toml:"db_path"`
	UserName  string `toml:"user_name"`
	SearchURL string `toml:"search_url"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	TasksKey  string `toml:"tasks_key"`
	LinksKey  string `toml:"links_key"`
	Keys      Keymap `toml:"keys"`
}

// ResolveConfigPath prefers $TABDECK_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults first if the
// file does not exist. Relative paths inside the file resolve against its
// directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg.resolve(filepath.Dir(path)), nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	d := defaultConfig()
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.SearchURL == "" {
		c.SearchURL = d.SearchURL
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.TasksKey == "" {
		c.TasksKey = d.TasksKey
	}
	if c.LinksKey == "" {
		c.LinksKey = d.LinksKey
	}
	c.Keys.fillDefaults(d.Keys)
}

func (k *Keymap) fillDefaults(d Keymap) {
	fields := []struct {
		dst *string
		def string
	}{
		{&k.Quit, d.Quit},
		{&k.NextPane, d.NextPane},
		{&k.PrevPane, d.PrevPane},
		{&k.Up, d.Up},
		{&k.Down, d.Down},
		{&k.Remove, d.Remove},
		{&k.ToggleLinks, d.ToggleLinks},
		{&k.AddLink, d.AddLink},
		{&k.OpenLink, d.OpenLink},
		{&k.CopyLink, d.CopyLink},
		{&k.Search, d.Search},
		{&k.Confirm, d.Confirm},
		{&k.Cancel, d.Cancel},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

func (c Config) resolve(base string) Config {
	c.DBPath = resolvePath(base, c.DBPath)
	c.LogFile = resolvePath(base, c.LogFile)
	return c
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "file:") {
		return p
	}
	return filepath.Join(base, p)
}

func defaultConfig() Config {
	return Config{
		DBPath:    DefaultDBName,
		SearchURL: DefaultSearchURL,
		LogFile:   DefaultLogName,
		LogLevel:  "info",
		TasksKey:  DefaultTasksKey,
		LinksKey:  DefaultLinksKey,
		Keys: Keymap{
			Quit:        "ctrl+c",
			NextPane:    "tab",
			PrevPane:    "shift+tab",
			Up:          "up,k",
			Down:        "down,j",
			Remove:      "delete,x,d",
			ToggleLinks: "ctrl+l",
			AddLink:     "ctrl+a",
			OpenLink:    "enter",
			CopyLink:    "ctrl+y",
			Search:      "ctrl+f",
			Confirm:     "enter",
			Cancel:      "esc",
		},
	}
}
