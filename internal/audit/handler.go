package audit

import (
	"errors"
	"strconv"

	"warda-panel/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint64             `json:"id"`
	CreatedAt   string             `json:"created_at"`
	Collection  models.Collection  `json:"collection"`
	EntityID    string             `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	BeforeData  any                `json:"before_data"`
	AfterData   any                `json:"after_data"`
	Undone      bool               `json:"undone"`
	IsUndone    bool               `json:"is_undone"`
	UndoneAt    *string            `json:"undone_at"`
}

// GET /api/audit-logs?collection=expenses&entity_id=...&action=delete
func ListAuditLogsHandler(j *Journal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := Filter{
			EntityID: c.Query("entity_id"),
			Action:   models.AuditAction(c.Query("action")),
		}
		if col := c.Query("collection"); col != "" {
			parsed, ok := models.ParseCollection(col)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz koleksiyon")
			}
			filter.Collection = parsed
		}

		logs := j.List(filter)
		resp := make([]AuditLogResponse, 0, len(logs))
		for _, log := range logs {
			var undoneAtStr *string
			if log.UndoneAt != nil {
				formatted := log.UndoneAt.Format("2006-01-02 15:04:05")
				undoneAtStr = &formatted
			}

			resp = append(resp, AuditLogResponse{
				ID:          log.ID,
				CreatedAt:   log.CreatedAt.Format("2006-01-02 15:04:05"),
				Collection:  log.Collection,
				EntityID:    log.EntityID,
				Action:      log.Action,
				Description: log.Description,
				BeforeData:  log.BeforeData,
				AfterData:   log.AfterData,
				Undone:      log.Undone,
				IsUndone:    log.IsUndone,
				UndoneAt:    undoneAtStr,
			})
		}

		return c.JSON(resp)
	}
}

// POST /api/audit-logs/:id/undo
func UndoAuditLogHandler(u Undoer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || logID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz log ID")
		}

		if err := u.Undo(c.UserContext(), logID); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Log bulunamadı")
			case errors.Is(err, ErrAlreadyUndone), errors.Is(err, ErrNotUndoable):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrUndoConflict):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			default:
				return err
			}
		}

		return c.JSON(fiber.Map{
			"message": "İşlem başarıyla geri alındı",
		})
	}
}
