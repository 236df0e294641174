package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"warda-panel/internal/audit"
	"warda-panel/internal/database"
	"warda-panel/internal/metrics"
	"warda-panel/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service: bellekteki Ledger'ın tek sahibi. Tüm değişiklikler mu ile sıraya
// girer ve her başarılı değişiklikten sonra Ledger bütünüyle store'a yazılır.
type Service struct {
	mu      sync.Mutex
	ledger  *models.Ledger
	store   database.Store
	journal *audit.Journal
	log     *logrus.Logger
	now     func() time.Time
	newID   func() string
}

type Option func(*Service)

// WithClock testlerde sabit zaman vermek için
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(store database.Store, journal *audit.Journal, logger *logrus.Logger, opts ...Option) *Service {
	if journal == nil {
		journal = audit.NewJournal(audit.DefaultCapacity)
	}
	if logger == nil {
		logger = logrus.New()
	}
	s := &Service{
		ledger:  models.NewLedger(),
		store:   store,
		journal: journal,
		log:     logger,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Journal() *audit.Journal { return s.journal }

// -------------------------
// Yükleme / kaydetme
// -------------------------

// Load kalıcı veriyi okuyup bellekteki Ledger'ı değiştirir. Bozuk veri
// ölümcül değildir: uyarı loglanır, varsayılanlar kullanılır.
func (s *Service) Load(ctx context.Context) error {
	data, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("ledger yüklenemedi: %w", err)
	}
	l, warnings := models.DecodeLedger(data)
	for _, w := range warnings {
		s.log.Warn(w)
	}

	s.mu.Lock()
	s.ledger = l
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"records":   l.RecordCount(),
		"totalCash": l.TotalCash,
	}).Info("Ledger yüklendi")
	return nil
}

// Save bellekteki hali yeniden yazar (önceki kayıt denemesi başarısız olduysa).
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

// persist mu tutulurken çağrılır.
func (s *Service) persist(ctx context.Context) error {
	data, err := models.EncodeLedger(s.ledger)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		metrics.LedgerSaveFailuresTotal.Inc()
		s.log.WithError(err).Error("Ledger kaydedilemedi, değişiklik bellekte tutuluyor")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// RawLedger kalıcı katmandaki veriyi olduğu gibi döner; hiç kayıt yoksa "{}".
func (s *Service) RawLedger(ctx context.Context) ([]byte, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

// ReplaceLedger gövdeyi olduğu gibi kalıcı katmana yazar (son yazan kazanır)
// ve bellekteki Ledger'ı ondan yeniden kurar.
func (s *Service) ReplaceLedger(ctx context.Context, data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil || probe == nil {
		return invalid("Gövde bir JSON nesnesi olmalıdır")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, data); err != nil {
		metrics.LedgerSaveFailuresTotal.Inc()
		s.log.WithError(err).Error("Ledger dosyası yazılamadı")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	l, warnings := models.DecodeLedger(data)
	for _, w := range warnings {
		s.log.Warn(w)
	}
	s.ledger = l
	// Eski belgenin before/after verisi yeni belgeye uygulanamaz.
	s.journal.Reset()
	metrics.LedgerMutationsTotal.WithLabelValues("ledger", "replace").Inc()
	return nil
}

// Snapshot: okuma tarafı için derin kopya
func (s *Service) Snapshot() *models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Clone()
}

// Now: servisin saati (dashboard ve hatırlatıcı aynı saati kullanır)
func (s *Service) Now() time.Time {
	return s.now()
}

// -------------------------
// CRUD
// -------------------------

func (s *Service) List(col models.Collection) (any, error) {
	ops, err := opsFor(col)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return ops.list(s.ledger), nil
}

func (s *Service) Get(col models.Collection, id string) (models.Record, error) {
	ops, err := opsFor(col)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := ops.get(s.ledger, id)
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// prepare gövdeyi çözer, normalize eder ve doğrular.
func (s *Service) prepare(ops collectionOps, col models.Collection, raw []byte) (models.Record, error) {
	rec, err := ops.decode(raw)
	if err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(string(col)).Inc()
		return nil, invalid("Geçersiz kayıt verisi")
	}
	// Tek seferlik ödeme ay seçilmeden girildiyse içinde bulunulan aya yazılır.
	if p, ok := rec.(*models.Payment); ok && !p.IsRecurring && p.SpecificMonth == "" {
		p.SpecificMonth = models.YearMonthOf(s.now()).String()
	}
	rec.Normalize()
	if msgs := rec.Validate(); len(msgs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues(string(col)).Inc()
		return nil, invalid(msgs...)
	}
	return rec, nil
}

func (s *Service) Create(ctx context.Context, col models.Collection, raw []byte) (models.Record, error) {
	ops, err := opsFor(col)
	if err != nil {
		return nil, err
	}
	rec, err := s.prepare(ops, col, raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.SetRecordID(s.newID())
	ops.insert(s.ledger, rec)
	s.ledger.TotalCash += cashEffect(rec)

	s.journal.WriteLog(audit.LogOptions{
		Collection:  col,
		EntityID:    rec.RecordID(),
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("%s kaydı eklendi", col),
		After:       rec,
	})
	metrics.LedgerMutationsTotal.WithLabelValues(string(col), string(models.AuditActionCreate)).Inc()
	s.log.WithFields(logrus.Fields{"collection": col, "id": rec.RecordID()}).Debug("Kayıt eklendi")

	return rec, s.persist(ctx)
}

func (s *Service) Update(ctx context.Context, col models.Collection, id string, raw []byte) (models.Record, error) {
	ops, err := opsFor(col)
	if err != nil {
		return nil, err
	}
	rec, err := s.prepare(ops, col, raw)
	if err != nil {
		return nil, err
	}
	rec.SetRecordID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := ops.replace(s.ledger, rec)
	if !ok {
		return nil, ErrNotFound
	}
	s.ledger.TotalCash += cashEffect(rec) - cashEffect(old)

	s.journal.WriteLog(audit.LogOptions{
		Collection:  col,
		EntityID:    id,
		Action:      models.AuditActionUpdate,
		Description: fmt.Sprintf("%s kaydı güncellendi", col),
		Before:      old,
		After:       rec,
	})
	metrics.LedgerMutationsTotal.WithLabelValues(string(col), string(models.AuditActionUpdate)).Inc()

	return rec, s.persist(ctx)
}

func (s *Service) Delete(ctx context.Context, col models.Collection, id string) error {
	ops, err := opsFor(col)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := ops.get(s.ledger, id)
	if !ok {
		return ErrNotFound
	}
	if err := s.checkDeletable(rec); err != nil {
		return err
	}
	ops.remove(s.ledger, id)
	s.ledger.TotalCash -= cashEffect(rec)

	s.journal.WriteLog(audit.LogOptions{
		Collection:  col,
		EntityID:    id,
		Action:      models.AuditActionDelete,
		Description: fmt.Sprintf("%s kaydı silindi", col),
		Before:      rec,
	})
	metrics.LedgerMutationsTotal.WithLabelValues(string(col), string(models.AuditActionDelete)).Inc()

	return s.persist(ctx)
}

// checkDeletable: gider kaydı olan tedarikçi silinemez.
func (s *Service) checkDeletable(rec models.Record) error {
	company, ok := rec.(*models.Company)
	if !ok {
		return nil
	}
	for _, e := range s.ledger.Expenses {
		if e.Payee == company.Name {
			return &ReferencedError{Name: company.Name}
		}
	}
	return nil
}

// ReferencedError: ErrReferenced ile eşleşir, mesajı kullanıcıya gösterilir.
type ReferencedError struct {
	Name string
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("'%s' tedarikçisini silemezsiniz. Bu tedarikçiye ait gider (ödeme/borç) kayıtları bulunmaktadır.", e.Name)
}

func (e *ReferencedError) Is(target error) bool { return target == ErrReferenced }

// -------------------------
// Skaler alanlar
// -------------------------

// SetTotalCash kasayı elle düzeltir; eksi hesaplarda borç varken reddedilir.
func (s *Service) SetTotalCash(ctx context.Context, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.TotalOverdraftDebt() > 0 {
		return ErrCashLocked
	}
	s.ledger.TotalCash = value
	metrics.LedgerMutationsTotal.WithLabelValues("totalCash", "set").Inc()
	s.log.WithField("totalCash", value).Info("Kasa bakiyesi elle güncellendi")
	return s.persist(ctx)
}

func (s *Service) SetFixedExpenses(ctx context.Context, f models.FixedExpenses) error {
	if f.Salary < 0 || f.Insurance < 0 || f.Loan < 0 || f.Card < 0 {
		return invalid("Sabit giderler negatif olamaz")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.FixedExpenses = f
	metrics.LedgerMutationsTotal.WithLabelValues("fixedExpenses", "set").Inc()
	return s.persist(ctx)
}

// Notes: her zaman NoteSlots satır
func (s *Service) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.PadNotes(s.ledger.Notes, s.now().UTC().Format(time.RFC3339))
}

func (s *Service) UpdateNote(ctx context.Context, index int, text string) (models.Note, error) {
	if index < 0 || index >= models.NoteSlots {
		return models.Note{}, invalid(fmt.Sprintf("Not satırı 0 ile %d arasında olmalıdır", models.NoteSlots-1))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UTC().Format(time.RFC3339)
	if len(s.ledger.Notes) < models.NoteSlots {
		s.ledger.Notes = models.PadNotes(s.ledger.Notes, ts)
	}
	s.ledger.Notes[index].Text = text
	s.ledger.Notes[index].UpdatedAt = ts
	metrics.LedgerMutationsTotal.WithLabelValues("notes", "set").Inc()

	return s.ledger.Notes[index], s.persist(ctx)
}
