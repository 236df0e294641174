package config

import (
	"os"
	"testing"
)

// chdir, Go 1.24'teki t.Chdir'in eşdeğeri: test bitince eski dizine döner.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := Load()
	if cfg.HTTPPort != "8080" {
		t.Fatalf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.LedgerBackend != BackendFile {
		t.Fatalf("LedgerBackend = %q, want %q", cfg.LedgerBackend, BackendFile)
	}
	if cfg.LedgerFile != "database.json" {
		t.Fatalf("LedgerFile = %q", cfg.LedgerFile)
	}
	if cfg.AuditCapacity != 500 {
		t.Fatalf("AuditCapacity = %d, want 500", cfg.AuditCapacity)
	}
	if cfg.ReminderSchedule != "0 8 * * *" {
		t.Fatalf("ReminderSchedule = %q", cfg.ReminderSchedule)
	}
	if cfg.AuthEnabled() {
		t.Fatal("auth should be disabled without PANEL_PASSWORD_HASH")
	}
	if cfg.MailEnabled() {
		t.Fatal("mail should be disabled without SMTP settings")
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("AUDIT_CAPACITY", "42")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "panel@example.com")
	t.Setenv("REMINDER_EMAIL", "muhasebe@example.com")

	cfg := Load()
	if cfg.HTTPPort != "9090" {
		t.Fatalf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.LedgerBackend != BackendRedis {
		t.Fatalf("LedgerBackend = %q, want %q", cfg.LedgerBackend, BackendRedis)
	}
	if cfg.RedisAddr != "cache:6380" {
		t.Fatalf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.AuditCapacity != 42 {
		t.Fatalf("AuditCapacity = %d", cfg.AuditCapacity)
	}
	if !cfg.MailEnabled() {
		t.Fatal("mail should be enabled")
	}
}

func TestLoadUnknownBackendFallsBackToFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEDGER_BACKEND", "mongo")

	if got := Load().LedgerBackend; got != BackendFile {
		t.Fatalf("LedgerBackend = %q, want %q", got, BackendFile)
	}
}
