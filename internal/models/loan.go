package models

type Loan struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PaymentDay        int     `json:"paymentDay"`
	Principal         float64 `json:"principal"`
	Term              int     `json:"term"` // ay
	PaidInstallments  int     `json:"paidInstallments"`
	InstallmentAmount float64 `json:"installmentAmount"`
}

func (l *Loan) RecordID() string      { return l.ID }
func (l *Loan) SetRecordID(id string) { l.ID = id }
func (l *Loan) Normalize()            {}

func (l *Loan) Validate() []string {
	var errs []string
	if blank(l.Name) {
		errs = append(errs, "Kredi adı boş olamaz")
	}
	if l.Principal <= 0 {
		errs = append(errs, "Anapara sıfırdan büyük olmalıdır")
	}
	if l.Term <= 0 {
		errs = append(errs, "Vade sıfırdan büyük olmalıdır")
	}
	if l.InstallmentAmount <= 0 {
		errs = append(errs, "Taksit tutarı sıfırdan büyük olmalıdır")
	}
	if l.PaidInstallments < 0 {
		errs = append(errs, "Ödenmiş taksit sayısı negatif olamaz")
	}
	if l.PaidInstallments > l.Term {
		errs = append(errs, "Ödenmiş taksit sayısı toplam vadeden fazla olamaz")
	}
	if l.PaymentDay < 1 || l.PaymentDay > 31 {
		errs = append(errs, "Ödeme günü 1 ile 31 arasında olmalıdır")
	}
	return errs
}

func (l Loan) TotalAmount() float64 {
	return float64(l.Term) * l.InstallmentAmount
}

func (l Loan) TotalPaid() float64 {
	return float64(l.PaidInstallments) * l.InstallmentAmount
}

func (l Loan) Remaining() float64 {
	return l.TotalAmount() - l.TotalPaid()
}

// Progress: ödenen taksitlerin yüzdesi
func (l Loan) Progress() float64 {
	if l.Term <= 0 {
		return 0
	}
	return float64(l.PaidInstallments) / float64(l.Term) * 100
}
