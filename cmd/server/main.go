package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"warda-panel/internal/audit"
	"warda-panel/internal/auth"
	"warda-panel/internal/config"
	"warda-panel/internal/dashboard"
	"warda-panel/internal/database"
	"warda-panel/internal/ledger"
	"warda-panel/internal/metrics"
	"warda-panel/internal/reminder"
	"warda-panel/internal/teklif"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("LOG_LEVEL=%q geçersiz, info kullanılıyor", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newApp(cfg *config.Config, svc *ledger.Service, logger *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "warda-panel",
		BodyLimit: 16 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.WithError(err).WithField("path", c.Path()).Error("Beklenmeyen hata")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: logger.Writer(),
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(metrics.Middleware())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/teklif/hesapla", teklif.CalculateHandler())

	// Protected (panel şifresi yoksa açık)
	protected := api.Group("", auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(cfg))

	// Ham ledger: tarayıcı tarafının tüm veriyi okuyup yazdığı uç
	protected.Get("/ledger", ledger.RawLedgerHandler(svc))
	protected.Post("/ledger", ledger.ReplaceLedgerHandler(svc))
	protected.Post("/ledger/save", ledger.SaveLedgerHandler(svc))

	// Koleksiyon CRUD
	protected.Get("/records/:collection", ledger.ListRecordsHandler(svc))
	protected.Post("/records/:collection", ledger.CreateRecordHandler(svc))
	protected.Get("/records/:collection/:id", ledger.GetRecordHandler(svc))
	protected.Put("/records/:collection/:id", ledger.UpdateRecordHandler(svc))
	protected.Delete("/records/:collection/:id", ledger.DeleteRecordHandler(svc))

	// Kasa, sabit giderler, notlar
	protected.Put("/cash", ledger.SetCashHandler(svc))
	protected.Get("/fixed-expenses", ledger.GetFixedExpensesHandler(svc))
	protected.Put("/fixed-expenses", ledger.SetFixedExpensesHandler(svc))
	protected.Get("/notes", ledger.ListNotesHandler(svc))
	protected.Put("/notes/:index", ledger.UpdateNoteHandler(svc))

	// Ödeme takibi
	protected.Post("/payments/:id/complete", ledger.CompletePaymentHandler(svc))
	protected.Put("/payments/:id/status", ledger.SetPaymentStatusHandler(svc))

	// Özetler
	dashboard.Register(protected.Group("/dashboard"), svc)

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(svc.Journal()))
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler(svc))

	return app
}

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Ledger deposu açılamadı")
	}

	svc := ledger.NewService(store, audit.NewJournal(cfg.AuditCapacity), logger)
	if err := svc.Load(ctx); err != nil {
		logger.WithError(err).Fatal("Ledger yüklenemedi")
	}

	var notifier reminder.Notifier
	if cfg.MailEnabled() {
		notifier = reminder.NewEmailNotifier(cfg, logger)
	} else {
		logger.Warn("SMTP ayarları eksik, hatırlatmalar sadece loglanacak")
	}
	rem, err := reminder.New(svc, notifier, logger, cfg.ReminderSchedule)
	if err != nil {
		logger.WithError(err).Fatal("Ödeme hatırlatıcı kurulamadı")
	}
	rem.Start()

	app := newApp(cfg, svc, logger)

	go func() {
		<-ctx.Done()
		logger.Info("Kapanış sinyali alındı")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		rem.Stop(shutdownCtx)
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.WithError(err).Error("Sunucu düzgün kapatılamadı")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":    cfg.HTTPPort,
		"backend": cfg.LedgerBackend,
		"auth":    cfg.AuthEnabled(),
	}).Info("Server çalışıyor")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.WithError(err).Fatal("Server başlatılamadı")
	}
}
