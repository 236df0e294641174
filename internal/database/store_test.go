package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"warda-panel/internal/config"

	"github.com/sirupsen/logrus"
)

func TestFileStoreMissingFileLoadsNil(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "database.json"))

	data, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Fatalf("Load = %q, want nil", data)
	}
}

func TestFileStoreSaveReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.json")
	s := NewFileStore(path)
	ctx := context.Background()

	for _, body := range []string{`{"totalCash":1}`, `{"totalCash":2}`} {
		if err := s.Save(ctx, []byte(body)); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if string(got) != body {
			t.Fatalf("Load = %q, want %q", got, body)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileStoreSaveFailsForMissingDir(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "yok", "database.json"))
	if err := s.Save(context.Background(), []byte("{}")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	if data, _ := s.Load(ctx); data != nil {
		t.Fatalf("empty store Load = %q", data)
	}

	buf := []byte(`{"a":1}`)
	if err := s.Save(ctx, buf); err != nil {
		t.Fatal(err)
	}
	buf[2] = 'b'

	got, _ := s.Load(ctx)
	if string(got) != `{"a":1}` {
		t.Fatalf("stored data mutated through caller slice: %q", got)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg := &config.Config{LedgerBackend: config.BackendFile, LedgerFile: filepath.Join(t.TempDir(), "db.json")}
	s, err := Open(context.Background(), cfg, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("file backend returned %T", s)
	}

	cfg = &config.Config{LedgerBackend: config.BackendMemory}
	s, err = Open(context.Background(), cfg, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("memory backend returned %T", s)
	}

	cfg = &config.Config{LedgerBackend: "mongo"}
	if _, err := Open(context.Background(), cfg, logger); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
