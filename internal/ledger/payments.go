package ledger

import (
	"context"
	"strings"

	"warda-panel/internal/metrics"
	"warda-panel/internal/models"
)

func (s *Service) paymentExists(id string) bool {
	for _, p := range s.ledger.Payments {
		if p.ID == id {
			return true
		}
	}
	return false
}

// CompletePayment ödemeyi verilen ay için tamamlandı işaretler.
// actualDate boşsa bugünün tarihi yazılır.
func (s *Service) CompletePayment(ctx context.Context, ym models.YearMonth, paymentID, actualDate string, method models.PaymentMethod) error {
	actualDate = strings.TrimSpace(actualDate)
	if actualDate == "" {
		actualDate = s.now().Format(models.DateLayout)
	} else if _, ok := models.ParseDate(actualDate); !ok {
		return invalid("Tarih formatı 'YYYY-MM-DD' olmalı")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paymentExists(paymentID) {
		return ErrNotFound
	}
	entry := models.PaymentStatusEntry{
		Status:     models.PaymentCompleted,
		ActualDate: &actualDate,
	}
	if method != "" {
		m := string(method)
		entry.PaymentMethod = &m
	}
	s.ledger.MonthlyPaymentStatus[models.PaymentStatusKey{Month: ym, PaymentID: paymentID}] = entry
	metrics.LedgerMutationsTotal.WithLabelValues(string(models.CollectionPayments), "complete").Inc()

	return s.persist(ctx)
}

// SetPaymentStatus durumu doğrudan ayarlar; tamamlandıysa gerçek tarih bugündür.
func (s *Service) SetPaymentStatus(ctx context.Context, ym models.YearMonth, paymentID string, state models.PaymentState) error {
	if !state.Valid() {
		return invalid("Ödeme durumu geçersiz")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paymentExists(paymentID) {
		return ErrNotFound
	}
	entry := models.PaymentStatusEntry{Status: state}
	if state == models.PaymentCompleted {
		today := s.now().Format(models.DateLayout)
		entry.ActualDate = &today
	}
	s.ledger.MonthlyPaymentStatus[models.PaymentStatusKey{Month: ym, PaymentID: paymentID}] = entry
	metrics.LedgerMutationsTotal.WithLabelValues(string(models.CollectionPayments), "status").Inc()

	return s.persist(ctx)
}

// SeedMonthlyStatuses tekrarlayan ödemeler için ayın "bekliyor" durumlarını
// oluşturur; var olan durumlara dokunmaz. Eklenen kayıt sayısını döner.
func (s *Service) SeedMonthlyStatuses(ctx context.Context, ym models.YearMonth) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, p := range s.ledger.Payments {
		if !p.IsRecurring {
			continue
		}
		key := models.PaymentStatusKey{Month: ym, PaymentID: p.ID}
		if _, ok := s.ledger.MonthlyPaymentStatus[key]; ok {
			continue
		}
		s.ledger.MonthlyPaymentStatus[key] = models.PaymentStatusEntry{Status: models.PaymentPending}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	metrics.LedgerMutationsTotal.WithLabelValues(string(models.CollectionPayments), "seed").Inc()
	return added, s.persist(ctx)
}
