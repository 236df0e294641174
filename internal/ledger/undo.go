package ledger

import (
	"context"
	"fmt"

	"warda-panel/internal/audit"
	"warda-panel/internal/metrics"
	"warda-panel/internal/models"
)

// Undo bir audit kaydını ters işlemle geri alır. Ters işlem normal CRUD
// yolundan geçtiği için kasa hesabı tutarlı kalır.
func (s *Service) Undo(ctx context.Context, logID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.journal.Get(logID)
	if !ok {
		return audit.ErrNotFound
	}
	if log.IsUndone {
		return audit.ErrAlreadyUndone
	}
	ops, err := opsFor(log.Collection)
	if err != nil {
		return audit.ErrNotUndoable
	}

	switch log.Action {
	case models.AuditActionCreate:
		// Create ise kaydı sil
		rec, ok := ops.get(s.ledger, log.EntityID)
		if !ok {
			return fmt.Errorf("%w: kayıt artık mevcut değil", audit.ErrUndoConflict)
		}
		if err := s.checkDeletable(rec); err != nil {
			return fmt.Errorf("%w: %v", audit.ErrUndoConflict, err)
		}
		ops.remove(s.ledger, log.EntityID)
		s.ledger.TotalCash -= cashEffect(rec)

	case models.AuditActionUpdate:
		// Update ise önceki haline döndür
		before, err := ops.decode(log.BeforeData)
		if err != nil {
			return fmt.Errorf("önceki hal çözülemedi: %w", err)
		}
		current, ok := ops.replace(s.ledger, before)
		if !ok {
			return fmt.Errorf("%w: kayıt artık mevcut değil", audit.ErrUndoConflict)
		}
		s.ledger.TotalCash += cashEffect(before) - cashEffect(current)

	case models.AuditActionDelete:
		// Delete ise kaydı aynı id ile geri ekle
		if _, exists := ops.get(s.ledger, log.EntityID); exists {
			return fmt.Errorf("%w: aynı id ile kayıt zaten var", audit.ErrUndoConflict)
		}
		rec, err := ops.decode(log.BeforeData)
		if err != nil {
			return fmt.Errorf("silinen kayıt çözülemedi: %w", err)
		}
		ops.insert(s.ledger, rec)
		s.ledger.TotalCash += cashEffect(rec)

	default:
		return audit.ErrNotUndoable
	}

	if err := s.journal.MarkUndone(logID); err != nil {
		return err
	}
	s.journal.WriteLog(audit.LogOptions{
		Collection:  log.Collection,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		Before:      log.AfterData,
		After:       log.BeforeData,
		Undone:      true,
	})
	metrics.LedgerMutationsTotal.WithLabelValues(string(log.Collection), string(models.AuditActionUndo)).Inc()

	return s.persist(ctx)
}
