package models

// Debt: piyasaya olan borç
type Debt struct {
	ID          string  `json:"id"`
	To          string  `json:"to"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (d *Debt) RecordID() string      { return d.ID }
func (d *Debt) SetRecordID(id string) { d.ID = id }
func (d *Debt) Normalize()            {}

func (d *Debt) Validate() []string {
	return validateCounterparty(d.Description, d.Amount)
}

// Receivable: piyasadan alacak
type Receivable struct {
	ID          string  `json:"id"`
	From        string  `json:"from"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (r *Receivable) RecordID() string      { return r.ID }
func (r *Receivable) SetRecordID(id string) { r.ID = id }
func (r *Receivable) Normalize()            {}

func (r *Receivable) Validate() []string {
	return validateCounterparty(r.Description, r.Amount)
}

func validateCounterparty(description string, amount float64) []string {
	var errs []string
	if blank(description) {
		errs = append(errs, "Açıklama boş olamaz")
	}
	if amount <= 0 {
		errs = append(errs, "Tutar sıfırdan büyük olmalıdır")
	}
	return errs
}
