package ledger

import (
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("kayıt bulunamadı")
	ErrUnknownCollection = errors.New("bilinmeyen koleksiyon")
	// Firma silinmek istendiğinde ona ait gider kaydı varsa döner.
	ErrReferenced = errors.New("kayıt başka kayıtlar tarafından kullanılıyor")
	// Eksi hesap borcu varken kasa elle değiştirilemez.
	ErrCashLocked = errors.New("eksi hesap borcu varken kasa bakiyesi elle değiştirilemez")
	// Kalıcı katmana yazılamadı; bellekteki değişiklik korunur.
	ErrPersist = errors.New("veriler kaydedilemedi")
)

// ValidationError: kullanıcıya gösterilecek doğrulama mesajları; hiçbir değişiklik uygulanmamıştır.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func invalid(msgs ...string) error {
	return &ValidationError{Messages: msgs}
}
