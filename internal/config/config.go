package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

const (
	defaultDatabaseDSN = "host=localhost user=postgres password=postgres dbname=warda port=5432 sslmode=disable"
	defaultCORSOrigins = "http://localhost:5173"
)

type Config struct {
	HTTPPort    string
	CORSOrigins string

	// Ledger saklama
	LedgerBackend string // file | postgres | redis | memory
	LedgerFile    string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string

	// Panel girişi; PanelPasswordHash boşsa API açık çalışır
	JWTSecret         string
	PanelPasswordHash string

	LogLevel      string
	AuditCapacity int

	// Ödeme hatırlatıcı
	ReminderSchedule string
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SenderEmail      string
	ReminderEmail    string
}

// AuthEnabled: panel şifresi tanımlıysa /api JWT ister
func (c *Config) AuthEnabled() bool {
	return c.PanelPasswordHash != ""
}

// MailEnabled: SMTP ayarları tamsa hatırlatıcı e-posta gönderir
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != "" && c.ReminderEmail != ""
}

func Load() *Config {
	// .env varsa yükle (production'da olmayabilir)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("LEDGER_BACKEND", BackendFile)
	v.SetDefault("LEDGER_FILE", "database.json")
	v.SetDefault("DATABASE_DSN", defaultDatabaseDSN)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUDIT_CAPACITY", 500)
	v.SetDefault("REMINDER_SCHEDULE", "0 8 * * *")
	v.SetDefault("SMTP_PORT", "587")

	// Config dosyası opsiyonel
	if err := v.ReadInConfig(); err != nil {
		log.Println("[Config] configs/config.yaml bulunamadı, env ve varsayılanlar kullanılıyor")
	}

	cfg := &Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		CORSOrigins:       v.GetString("CORS_ALLOWED_ORIGINS"),
		LedgerBackend:     strings.ToLower(strings.TrimSpace(v.GetString("LEDGER_BACKEND"))),
		LedgerFile:        v.GetString("LEDGER_FILE"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		PanelPasswordHash: v.GetString("PANEL_PASSWORD_HASH"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		AuditCapacity:     v.GetInt("AUDIT_CAPACITY"),
		ReminderSchedule:  v.GetString("REMINDER_SCHEDULE"),
		SMTPHost:          v.GetString("SMTP_HOST"),
		SMTPPort:          v.GetString("SMTP_PORT"),
		SMTPUser:          v.GetString("SMTP_USER"),
		SMTPPassword:      v.GetString("SMTP_PASSWORD"),
		SenderEmail:       v.GetString("SENDER_EMAIL"),
		ReminderEmail:     v.GetString("REMINDER_EMAIL"),
	}

	// Production güvenlik kontrolleri
	if cfg.AuthEnabled() {
		if cfg.JWTSecret == "" {
			log.Fatal("[FATAL] PANEL_PASSWORD_HASH tanımlı ama JWT_SECRET yok! Giriş açıkken zorunludur.")
		}
		if len(cfg.JWTSecret) < 32 {
			log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
		}
	} else {
		log.Println("[WARN] PANEL_PASSWORD_HASH tanımlı değil, API kimlik doğrulamasız çalışıyor.")
	}
	if cfg.AuditCapacity <= 0 {
		log.Println("[WARN] AUDIT_CAPACITY geçersiz, 500 kullanılıyor.")
		cfg.AuditCapacity = 500
	}
	switch cfg.LedgerBackend {
	case BackendFile, BackendPostgres, BackendRedis, BackendMemory:
	default:
		log.Printf("[WARN] LEDGER_BACKEND=%q bilinmiyor, %q kullanılıyor.", cfg.LedgerBackend, BackendFile)
		cfg.LedgerBackend = BackendFile
	}
	if cfg.LedgerBackend == BackendPostgres && cfg.DatabaseDSN == defaultDatabaseDSN {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.LedgerBackend == BackendMemory {
		log.Println("[WARN] LEDGER_BACKEND=memory: veriler süreç kapanınca kaybolur.")
	}
	if cfg.CORSOrigins == defaultCORSOrigins {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}
