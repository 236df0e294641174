package models

import "strings"

const (
	// Tedarikçiye yapılan iş karşılığı borç kaydı; cari bakiyede borç tarafı.
	CategorySupplierDebt = "Cari Borç Kaydı"
	// Cari sayfasından girilen tedarikçi ödemesi; cari bakiyede ödeme tarafı.
	CategorySupplierPayment = "Cari Borç Ödemesi"
)

type Expense struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Payee         string        `json:"payee"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func (e *Expense) RecordID() string      { return e.ID }
func (e *Expense) SetRecordID(id string) { e.ID = id }

func (e *Expense) Normalize() {
	e.Category = strings.TrimSpace(e.Category)
	e.Payee = strings.TrimSpace(e.Payee)
}

func (e *Expense) Validate() []string {
	return validateDated(e.Date, e.Category, e.Description, e.Amount)
}

func (e *Expense) CashEffect() float64 {
	return cashEffect(e.PaymentMethod, e.Amount, -1)
}

// IsSupplierDebt: tedarikçi borç kaydı mı (ödeme değil)
func (e Expense) IsSupplierDebt() bool {
	return e.Category == CategorySupplierDebt
}

// IsSupplierLedger: cari hesap hareketi mi; genel gider listelerine girmez.
func (e Expense) IsSupplierLedger() bool {
	return e.Category == CategorySupplierDebt || e.Category == CategorySupplierPayment
}

type Income struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Source        string        `json:"source"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func (i *Income) RecordID() string      { return i.ID }
func (i *Income) SetRecordID(id string) { i.ID = id }

func (i *Income) Normalize() {
	i.Category = strings.TrimSpace(i.Category)
}

func (i *Income) Validate() []string {
	return validateDated(i.Date, i.Category, i.Description, i.Amount)
}

func (i *Income) CashEffect() float64 {
	return cashEffect(i.PaymentMethod, i.Amount, 1)
}

func validateDated(date, category, description string, amount float64) []string {
	var errs []string
	if blank(date) {
		errs = append(errs, "Tarih seçilmelidir")
	} else if _, ok := ParseDate(date); !ok {
		errs = append(errs, "Tarih formatı 'YYYY-MM-DD' olmalı")
	}
	if blank(category) {
		errs = append(errs, "Kategori seçilmelidir")
	}
	if blank(description) {
		errs = append(errs, "Açıklama boş olamaz")
	}
	if amount <= 0 {
		errs = append(errs, "Tutar sıfırdan büyük olmalıdır")
	}
	return errs
}
