package models

// CreditLine: kredi kartı veya eksi (KMH) hesap
type CreditLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
	Debt  float64 `json:"debt"`

	// Formdan "kullanılabilir limit" girildiyse borç bundan türetilir; saklanmaz.
	AvailableLimit *float64 `json:"availableLimit,omitempty"`
}

func (c *CreditLine) RecordID() string      { return c.ID }
func (c *CreditLine) SetRecordID(id string) { c.ID = id }

func (c *CreditLine) Normalize() {
	if c.AvailableLimit != nil {
		// Güncel borç = Limit - Kullanılabilir Limit
		c.Debt = c.Limit - *c.AvailableLimit
		c.AvailableLimit = nil
	}
}

func (c *CreditLine) Validate() []string {
	var errs []string
	if blank(c.Name) {
		errs = append(errs, "Ad boş olamaz")
	}
	if c.Limit <= 0 {
		errs = append(errs, "Limit sıfırdan büyük olmalıdır")
	}
	if c.Debt < 0 {
		errs = append(errs, "Borç negatif olamaz")
	}
	if c.Debt > c.Limit {
		errs = append(errs, "Borç limitten büyük olamaz")
	}
	return errs
}

func (c CreditLine) Available() float64 {
	return c.Limit - c.Debt
}

// Usage: limitin kullanılan yüzdesi
func (c CreditLine) Usage() float64 {
	if c.Limit <= 0 {
		return 0
	}
	return c.Debt / c.Limit * 100
}
