package models

import (
	"strings"
	"time"
)

// Collection: Ledger içindeki kayıt koleksiyonlarının adı (JSON anahtarı ile aynı)
type Collection string

const (
	CollectionCompanies        Collection = "companies"
	CollectionJobs             Collection = "jobs"
	CollectionChecks           Collection = "checks"
	CollectionLoans            Collection = "loans"
	CollectionCards            Collection = "cards"
	CollectionOverdrafts       Collection = "overdrafts"
	CollectionDebts            Collection = "debts"
	CollectionReceivables      Collection = "receivables"
	CollectionExpenses         Collection = "expenses"
	CollectionIncomes          Collection = "incomes"
	CollectionBilancoVarliklar Collection = "bilancoVarliklar"
	CollectionBilancoAlacaklar Collection = "bilancoAlacaklar"
	CollectionBilancoBorclar   Collection = "bilancoBorclar"
	CollectionPayments         Collection = "payments"
	CollectionProjects         Collection = "projects"
)

// Collections: CRUD ile yönetilen tüm koleksiyonlar
var Collections = []Collection{
	CollectionCompanies,
	CollectionJobs,
	CollectionChecks,
	CollectionLoans,
	CollectionCards,
	CollectionOverdrafts,
	CollectionDebts,
	CollectionReceivables,
	CollectionExpenses,
	CollectionIncomes,
	CollectionBilancoVarliklar,
	CollectionBilancoAlacaklar,
	CollectionBilancoBorclar,
	CollectionPayments,
	CollectionProjects,
}

// ParseCollection URL'den gelen adı enum'a çevirir.
func ParseCollection(s string) (Collection, bool) {
	for _, c := range Collections {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Record: her koleksiyon elemanının ortak davranışı
type Record interface {
	RecordID() string
	SetRecordID(id string)
	// Normalize form verisini kayıt edilecek hale getirir (trim, varsayılanlar).
	Normalize()
	// Validate kullanıcıya gösterilecek hata mesajlarını döner; boşsa kayıt geçerli.
	Validate() []string
}

// CashBearing: kasayı (totalCash) etkileyen kayıtlar
type CashBearing interface {
	CashEffect() float64
}

const DateLayout = "2006-01-02"

// ParseDate "YYYY-MM-DD" veya ISO tarih-saat string'ini çözer.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if len(s) >= 10 {
		if t, err := time.Parse(DateLayout, s[:10]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
