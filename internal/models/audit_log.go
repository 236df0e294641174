package models

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionUndo   AuditAction = "undo"
)

type AuditLog struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi koleksiyon / kayıt?
	Collection Collection `json:"collection"`
	EntityID   string     `json:"entity_id"`

	// İşlem tipi: create/update/delete/undo
	Action AuditAction `json:"action"`

	// Kısa özet
	Description string `json:"description"`

	// Önceki ve sonraki hal (JSON), yoksa null
	BeforeData json.RawMessage `json:"before_data"`
	AfterData  json.RawMessage `json:"after_data"`

	// Bu log bir undo işlemi sonucunda mı oluştu
	Undone bool `json:"undone"`

	// Bu log geri alındı mı?
	IsUndone bool       `json:"is_undone"`
	UndoneAt *time.Time `json:"undone_at"`
}
