package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "sub", DefaultDBName) {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.TasksKey != DefaultTasksKey || cfg.LinksKey != DefaultLinksKey {
		t.Fatalf("keys = %q %q", cfg.TasksKey, cfg.LinksKey)
	}
	if cfg.Keys.Confirm != "enter" || cfg.Keys.Remove == "" {
		t.Fatalf("keymap = %+v", cfg.Keys)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Fatalf("reload differs:\n%+v\n%+v", again, cfg)
	}
}

func TestLoadOrCreateReadsOverridesAndFillsGaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	data := `
db_path = "/var/tmp/deck.db"
user_name = "Anubhav"
links_key = "myLinks"

[keys]
remove = "backspace"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/var/tmp/deck.db" {
		t.Fatalf("absolute db path should be kept, got %q", cfg.DBPath)
	}
	if cfg.UserName != "Anubhav" || cfg.LinksKey != "myLinks" {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	if cfg.TasksKey != DefaultTasksKey || cfg.SearchURL != DefaultSearchURL {
		t.Fatalf("defaults not filled: %+v", cfg)
	}
	if cfg.Keys.Remove != "backspace" || cfg.Keys.Confirm != "enter" {
		t.Fatalf("keymap = %+v", cfg.Keys)
	}
	if cfg.LogFile != filepath.Join(dir, DefaultLogName) {
		t.Fatalf("log file = %q", cfg.LogFile)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("db_path = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveConfigPathHonoursEnv(t *testing.T) {
	t.Setenv(envConfigPath, "/tmp/custom.toml")
	if got := ResolveConfigPath(); got != "/tmp/custom.toml" {
		t.Fatalf("got %q", got)
	}
}

func TestResolvePathKeepsFileDSN(t *testing.T) {
	if got := resolvePath("/base", "file:memdb?mode=memory"); got != "file:memdb?mode=memory" {
		t.Fatalf("got %q", got)
	}
	if got := resolvePath("/base", "x.db"); got != filepath.Join("/base", "x.db") {
		t.Fatalf("got %q", got)
	}
}
