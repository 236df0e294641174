package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warda_http_requests_total",
		Help: "İşlenen HTTP istekleri",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "warda_http_request_duration_seconds",
		Help:    "HTTP istek süreleri",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	LedgerMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warda_ledger_mutations_total",
		Help: "Başarılı ledger değişiklikleri",
	}, []string{"collection", "action"})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warda_validation_failures_total",
		Help: "Doğrulamadan geçemeyen kayıtlar",
	}, []string{"collection"})

	LedgerSaveFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warda_ledger_save_failures_total",
		Help: "Kalıcı katmana yazılamayan kayıt denemeleri",
	})

	BidCalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warda_bid_calculations_total",
		Help: "Teklif hesaplama istekleri",
	}, []string{"result"})
)

// Middleware istek sayısı ve süresini route şablonu bazında kaydeder.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		path := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler: GET /metrics
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
