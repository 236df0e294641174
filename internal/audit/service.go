package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"warda-panel/internal/models"
)

const DefaultCapacity = 500

var (
	ErrNotFound      = errors.New("log bulunamadı")
	ErrAlreadyUndone = errors.New("bu işlem zaten geri alınmış")
	ErrNotUndoable   = errors.New("bu işlem türü geri alınamaz")
	ErrUndoConflict  = errors.New("kayıt güncel durumla çakışıyor, geri alınamaz")
)

var nullJSON = json.RawMessage("null")

// Undoer: bir log kaydını tersine çeviren taraf (Ledger servisi)
type Undoer interface {
	Undo(ctx context.Context, logID uint64) error
}

type LogOptions struct {
	Collection  models.Collection
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
	Undone      bool
}

type Filter struct {
	Collection models.Collection
	EntityID   string
	Action     models.AuditAction
}

// Journal: son N işlemi bellekte tutar; kapasite dolunca en eskisi düşer.
type Journal struct {
	mu       sync.Mutex
	capacity int
	nextID   uint64
	logs     []models.AuditLog // eskiden yeniye
	now      func() time.Time
}

func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{capacity: capacity, now: time.Now}
}

func marshalData(v any) json.RawMessage {
	if v == nil {
		return nullJSON
	}
	// Önceden kodlanmış veri olduğu gibi saklanır
	if raw, ok := v.(json.RawMessage); ok {
		if len(raw) == 0 {
			return nullJSON
		}
		return raw
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nullJSON
	}
	return b
}

func (j *Journal) WriteLog(opts LogOptions) models.AuditLog {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.nextID++
	log := models.AuditLog{
		ID:          j.nextID,
		CreatedAt:   j.now(),
		Collection:  opts.Collection,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  marshalData(opts.Before),
		AfterData:   marshalData(opts.After),
		Undone:      opts.Undone,
	}
	j.logs = append(j.logs, log)
	if len(j.logs) > j.capacity {
		j.logs = append([]models.AuditLog(nil), j.logs[len(j.logs)-j.capacity:]...)
	}
	return log
}

// List filtreye uyan logları yeniden eskiye döner.
func (j *Journal) List(f Filter) []models.AuditLog {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]models.AuditLog, 0, len(j.logs))
	for i := len(j.logs) - 1; i >= 0; i-- {
		l := j.logs[i]
		if f.Collection != "" && l.Collection != f.Collection {
			continue
		}
		if f.EntityID != "" && l.EntityID != f.EntityID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (j *Journal) Get(id uint64) (models.AuditLog, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if i := j.index(id); i >= 0 {
		return j.logs[i], true
	}
	return models.AuditLog{}, false
}

// MarkUndone logu geri alındı olarak işaretler.
func (j *Journal) MarkUndone(id uint64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	i := j.index(id)
	if i < 0 {
		return ErrNotFound
	}
	if j.logs[i].IsUndone {
		return ErrAlreadyUndone
	}
	now := j.now()
	j.logs[i].IsUndone = true
	j.logs[i].UndoneAt = &now
	return nil
}

// Reset tüm logları atar. Id sayacı sıfırlanmaz; eski bir id yeni bir
// kayda denk gelmez.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logs = nil
}

func (j *Journal) index(id uint64) int {
	for i := range j.logs {
		if j.logs[i].ID == id {
			return i
		}
	}
	return -1
}
