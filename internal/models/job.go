package models

import "github.com/shopspring/decimal"

// VATRate: işlere uygulanan sabit KDV oranı
const VATRate = 0.20

// CompletionTolerance: kalan bakiye bu değerin altındaysa iş tamamlanmış sayılır;
// tam 0.01 kalan iş devam ediyor.
const CompletionTolerance = 0.01

type Job struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Customer      string  `json:"customer"`
	Company       string  `json:"company"`
	InvoiceStatus string  `json:"invoiceStatus"`
	Amount        float64 `json:"amount"` // KDV hariç
	Collected     float64 `json:"collected"`
}

func (j *Job) RecordID() string      { return j.ID }
func (j *Job) SetRecordID(id string) { j.ID = id }
func (j *Job) Normalize()            {}

func (j *Job) Validate() []string {
	var errs []string
	if blank(j.Name) {
		errs = append(errs, "İş adı boş olamaz")
	}
	if blank(j.Customer) {
		errs = append(errs, "Müşteri seçilmelidir")
	}
	if blank(j.Company) {
		errs = append(errs, "Şirket seçilmelidir")
	}
	if j.Amount <= 0 {
		errs = append(errs, "Tutar sıfırdan büyük olmalıdır")
	}
	if j.Collected < 0 {
		errs = append(errs, "Tahsilat negatif olamaz")
	}
	if j.Collected > j.AmountWithVAT() {
		errs = append(errs, "Tahsilat tutardan fazla olamaz")
	}
	return errs
}

func (j Job) AmountWithVAT() float64 {
	return j.amountWithVAT().InexactFloat64()
}

func (j Job) amountWithVAT() decimal.Decimal {
	return decimal.NewFromFloat(j.Amount).Mul(decimal.NewFromFloat(1 + VATRate))
}

// remaining: float çıkarmada 1200 - 1199.99 = 0.00999... olur, decimal ile tam 0.01.
func (j Job) remaining() decimal.Decimal {
	return j.amountWithVAT().Sub(decimal.NewFromFloat(j.Collected))
}

// Remaining: KDV dahil tutardan tahsil edilmeyen kısım
func (j Job) Remaining() float64 {
	return j.remaining().InexactFloat64()
}

func (j Job) Completed() bool {
	return j.remaining().LessThan(decimal.NewFromFloat(CompletionTolerance))
}
