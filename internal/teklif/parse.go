package teklif

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount kullanıcı girdisini sayıya çevirir. Virgül veya nokta ondalık
// ayraç olabilir; "₺", "TL" ve boşluklar atılır. İki ayraç birlikte
// kullanılmışsa sondaki ondalık, diğeri binlik ayraç sayılır.
// Boş ya da çözülemeyen girdi 0 döner.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("₺", "", "TL", "", "tl", "", " ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return decimal.Zero
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		// 1.234.567
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// RawInput: formdan gelen ham metinler
type RawInput struct {
	Material    string `json:"malzeme" form:"malzeme"`
	Labor       string `json:"iscilik" form:"iscilik"`
	Machine     string `json:"makine" form:"makine"`
	Insurance   string `json:"sigorta" form:"sigorta"`
	Taxes       string `json:"vergi" form:"vergi"`
	OverheadPct string `json:"genelGider" form:"genelGider"`
	ProfitPct   string `json:"kar" form:"kar"`
	VATPct      string `json:"kdv" form:"kdv"`
	RiskPct     string `json:"risk" form:"risk"`
}

func (r RawInput) Parse() Input {
	return Input{
		Material:    ParseAmount(r.Material),
		Labor:       ParseAmount(r.Labor),
		Machine:     ParseAmount(r.Machine),
		Insurance:   ParseAmount(r.Insurance),
		Taxes:       ParseAmount(r.Taxes),
		OverheadPct: ParseAmount(r.OverheadPct),
		ProfitPct:   ParseAmount(r.ProfitPct),
		VATPct:      ParseAmount(r.VATPct),
		RiskPct:     ParseAmount(r.RiskPct),
	}
}
