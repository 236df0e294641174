package teklif

import (
	"errors"

	"warda-panel/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

type CalculateResponse struct {
	Result    Result         `json:"result"`
	Formatted []FormattedRow `json:"formatted"`
}

// POST /api/teklif/hesapla
// Body JSON veya form olabilir; alanlar ham metin olarak okunur.
func CalculateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw RawInput
		if err := c.BodyParser(&raw); err != nil {
			metrics.BidCalculationsTotal.WithLabelValues("invalid").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		res, err := Calculate(raw.Parse())
		if err != nil {
			metrics.BidCalculationsTotal.WithLabelValues("error").Inc()
			if errors.Is(err, ErrNegativeInput) {
				return fiber.NewError(fiber.StatusBadRequest, "Hesaplama hatası: "+err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Hesaplama hatası")
		}

		metrics.BidCalculationsTotal.WithLabelValues("ok").Inc()
		return c.JSON(CalculateResponse{
			Result:    res,
			Formatted: res.Formatted(),
		})
	}
}
