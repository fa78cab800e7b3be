package storage

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "tabdeck.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTemp(t)
	v, ok, err := s.Get("customDashboardTasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("expected missing key, got ok=%v value=%q", ok, v)
	}
}

func TestSetOverwritesAndStamps(t *testing.T) {
	s, _ := openTemp(t)
	if err := s.Set("k", `["a"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", `["a","b"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `["a","b"]` {
		t.Fatalf("got %q", v)
	}
	stamp, err := s.UpdatedAt("k")
	if err != nil {
		t.Fatalf("updated_at: %v", err)
	}
	if stamp.IsZero() {
		t.Fatal("expected updated_at to be stamped")
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := openTemp(t)
	if err := s.Set("links", `["https://example.com"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get("links")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if v != `["https://example.com"]` {
		t.Fatalf("got %q", v)
	}
}

func TestOpenMigratesLegacyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		t.Fatalf("open legacy: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);`); err != nil {
		t.Fatalf("create legacy: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('tasks', '["old"]');`); err != nil {
		t.Fatalf("seed legacy: %v", err)
	}
	db.Close()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	stamp, err := s.UpdatedAt("tasks")
	if err != nil {
		t.Fatalf("updated_at: %v", err)
	}
	if !stamp.IsZero() {
		t.Fatalf("expected zero stamp for migrated row, got %v", stamp)
	}
	if err := s.Set("tasks", `["new"]`); err != nil {
		t.Fatalf("set after migration: %v", err)
	}
	v, _, _ := s.Get("tasks")
	if v != `["new"]` {
		t.Fatalf("got %q", v)
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := sqliteDSN("file:memdb?mode=memory"); got != "file:memdb?mode=memory" {
		t.Fatalf("file: DSN should pass through, got %q", got)
	}
	got := sqliteDSN(filepath.Join(t.TempDir(), "x.db"))
	if !strings.HasPrefix(got, "file://") || !strings.Contains(got, "mode=rwc") {
		t.Fatalf("unexpected dsn %q", got)
	}
}
