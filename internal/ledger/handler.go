package ledger

import (
	"errors"
	"strconv"
	"strings"

	"warda-panel/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CashRequest struct {
	TotalCash *float64 `json:"totalCash"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

type CompletePaymentRequest struct {
	Month         string               `json:"month"` // "YYYY-MM", boşsa bu ay
	ActualDate    string               `json:"actualDate"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

type PaymentStatusRequest struct {
	Month  string              `json:"month"`
	Status models.PaymentState `json:"status"`
}

// -------------------------
// Yardımcı: servis hatasını HTTP cevabına çevir
// -------------------------
func respondError(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": verr.Messages,
		})
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı")
	case errors.Is(err, ErrUnknownCollection):
		return fiber.NewError(fiber.StatusNotFound, "Bilinmeyen koleksiyon")
	case errors.Is(err, ErrReferenced):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrCashLocked):
		return fiber.NewError(fiber.StatusConflict, "Eksi Hesaplarda borç varken manuel düzenleme yapılamaz")
	case errors.Is(err, ErrPersist):
		return fiber.NewError(fiber.StatusInternalServerError, "Hata: Veriler sunucuya kaydedilemedi.")
	default:
		return err
	}
}

func collectionParam(c *fiber.Ctx) (models.Collection, error) {
	col, ok := models.ParseCollection(c.Params("collection"))
	if !ok {
		return "", fiber.NewError(fiber.StatusNotFound, "Bilinmeyen koleksiyon")
	}
	return col, nil
}

func monthOrCurrent(svc *Service, s string) (models.YearMonth, error) {
	if strings.TrimSpace(s) == "" {
		return models.YearMonthOf(svc.Now()), nil
	}
	ym, err := models.ParseYearMonth(s)
	if err != nil {
		return models.YearMonth{}, fiber.NewError(fiber.StatusBadRequest, "Ay formatı 'YYYY-MM' olmalı")
	}
	return ym, nil
}

// -------------------------
// Ham ledger (GET/POST okuma-değiştirme ucu)
// -------------------------

// GET /api/ledger
func RawLedgerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.RawLedger(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veriler okunamadı")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(data)
	}
}

// POST /api/ledger
func ReplaceLedgerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := svc.ReplaceLedger(c.UserContext(), c.Body())
		var verr *ValidationError
		switch {
		case err == nil:
			return c.JSON(fiber.Map{"message": "Veriler başarıyla kaydedildi."})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Hata: " + verr.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Hata: Veritabanı dosyasına yazılamadı!",
			})
		}
	}
}

// POST /api/ledger/save
func SaveLedgerHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Save(c.UserContext()); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Veriler başarıyla kaydedildi."})
	}
}

// -------------------------
// Kayıtlar
// -------------------------

// GET /api/records/:collection
func ListRecordsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, err := collectionParam(c)
		if err != nil {
			return err
		}
		items, err := svc.List(col)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(items)
	}
}

// GET /api/records/:collection/:id
func GetRecordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, err := collectionParam(c)
		if err != nil {
			return err
		}
		rec, err := svc.Get(col, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	}
}

// POST /api/records/:collection
func CreateRecordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, err := collectionParam(c)
		if err != nil {
			return err
		}
		rec, err := svc.Create(c.UserContext(), col, c.Body())
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// PUT /api/records/:collection/:id
func UpdateRecordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, err := collectionParam(c)
		if err != nil {
			return err
		}
		rec, err := svc.Update(c.UserContext(), col, c.Params("id"), c.Body())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	}
}

// DELETE /api/records/:collection/:id
func DeleteRecordHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		col, err := collectionParam(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), col, c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Kayıt silindi"})
	}
}

// -------------------------
// Kasa, sabit giderler, notlar
// -------------------------

// PUT /api/cash
func SetCashHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CashRequest
		if err := c.BodyParser(&body); err != nil || body.TotalCash == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := svc.SetTotalCash(c.UserContext(), *body.TotalCash); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"totalCash": *body.TotalCash})
	}
}

// GET /api/fixed-expenses
func GetFixedExpensesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Snapshot().FixedExpenses)
	}
}

// PUT /api/fixed-expenses
func SetFixedExpensesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.FixedExpenses
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := svc.SetFixedExpenses(c.UserContext(), body); err != nil {
			return respondError(c, err)
		}
		return c.JSON(body)
	}
}

// GET /api/notes
func ListNotesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Notes())
	}
}

// PUT /api/notes/:index
func UpdateNoteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz not satırı")
		}
		var body NoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		note, err := svc.UpdateNote(c.UserContext(), index, body.Text)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(note)
	}
}

// -------------------------
// Ödeme durumları
// -------------------------

// POST /api/payments/:id/complete
func CompletePaymentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CompletePaymentRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
			}
		}
		ym, err := monthOrCurrent(svc, body.Month)
		if err != nil {
			return err
		}
		if err := svc.CompletePayment(c.UserContext(), ym, c.Params("id"), body.ActualDate, body.PaymentMethod); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Ödeme başarıyla tamamlandı"})
	}
}

// PUT /api/payments/:id/status
func SetPaymentStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PaymentStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		ym, err := monthOrCurrent(svc, body.Month)
		if err != nil {
			return err
		}
		if err := svc.SetPaymentStatus(c.UserContext(), ym, c.Params("id"), body.Status); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Ödeme başarıyla güncellendi"})
	}
}
