package models

type CheckStatus string

const (
	CheckStatusWaiting CheckStatus = "waiting"
	CheckStatusPaid    CheckStatus = "paid"
)

type ResponsibleParty string

const (
	ResponsibleCompany     ResponsibleParty = "company"
	ResponsiblePartnership ResponsibleParty = "partnership"
)

// Çek listelerinde ayrı gruplanan ortaklıklar; diğerleri "Diğer" altında toplanır.
var PartnershipCategories = []string{"WARDA", "ATÖLYE", "BROSS", "ORYAP"}

const (
	PartnershipOther = "Diğer"
	// Bilançoda çek borcu olarak sayılan ortaklık
	BalanceSheetPartnership = "WARDA"
)

type Check struct {
	ID                  string           `json:"id"`
	GivenDate           string           `json:"givenDate"`
	DueDate             string           `json:"dueDate"`
	PartnershipCategory string           `json:"partnershipCategory"`
	Company             string           `json:"company"`
	CheckbookName       string           `json:"checkbookName"`
	Amount              float64          `json:"amount"`
	ResponsibleParty    ResponsibleParty `json:"responsibleParty"`
	CompanyShare        *float64         `json:"companyShare,omitempty"` // 0..1, yoksa 1
	Status              CheckStatus      `json:"status"`
}

func (c *Check) RecordID() string      { return c.ID }
func (c *Check) SetRecordID(id string) { c.ID = id }

func (c *Check) Normalize() {
	if c.Status == "" {
		c.Status = CheckStatusWaiting
	}
	if c.ResponsibleParty == "" {
		c.ResponsibleParty = ResponsibleCompany
	}
	if c.ResponsibleParty != ResponsiblePartnership {
		full := 1.0
		c.CompanyShare = &full
	}
}

func (c *Check) Validate() []string {
	var errs []string
	if blank(c.Company) {
		errs = append(errs, "Firma adı boş olamaz")
	}
	if blank(c.CheckbookName) {
		errs = append(errs, "Çek defteri adı boş olamaz")
	}
	if blank(c.GivenDate) {
		errs = append(errs, "Veriliş tarihi seçilmelidir")
	}
	if blank(c.DueDate) {
		errs = append(errs, "Vade tarihi seçilmelidir")
	} else if _, ok := ParseDate(c.DueDate); !ok {
		errs = append(errs, "Tarih formatı 'YYYY-MM-DD' olmalı")
	}
	if c.Amount <= 0 {
		errs = append(errs, "Çek tutarı sıfırdan büyük olmalıdır")
	}
	if c.Status != CheckStatusWaiting && c.Status != CheckStatusPaid {
		errs = append(errs, "Çek durumu geçersiz")
	}
	if c.ResponsibleParty != ResponsibleCompany && c.ResponsibleParty != ResponsiblePartnership {
		errs = append(errs, "Sorumluluk tipi geçersiz")
	}
	if s := c.Share(); s < 0 || s > 1 {
		errs = append(errs, "Şirket payı %0 ile %100 arasında olmalıdır")
	}
	return errs
}

// Share: şirketin çekteki payı, tanımsızsa tamamı
func (c Check) Share() float64 {
	if c.CompanyShare == nil {
		return 1
	}
	return *c.CompanyShare
}

// CompanyObligation: çek tutarının şirkete düşen kısmı
func (c Check) CompanyObligation() float64 {
	return c.Amount * c.Share()
}

// PartnershipGroup: listeleme grubu (bilinmeyen ortaklıklar "Diğer")
func (c Check) PartnershipGroup() string {
	for _, p := range PartnershipCategories {
		if c.PartnershipCategory == p {
			return p
		}
	}
	return PartnershipOther
}
