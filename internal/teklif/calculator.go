package teklif

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Teminat oranı sabittir, kullanıcı değiştiremez.
var GuaranteeRate = decimal.NewFromFloat(0.03)

var hundred = decimal.NewFromInt(100)

var ErrNegativeInput = errors.New("değerler negatif olamaz")

// Input: teklif hesabının girdileri. Yüzdeler 0-100 aralığında yazılır (20 = %20).
type Input struct {
	Material  decimal.Decimal // malzeme maliyeti
	Labor     decimal.Decimal // işçilik
	Machine   decimal.Decimal // makine/ekipman
	Insurance decimal.Decimal // sigorta (opsiyonel)
	Taxes     decimal.Decimal // vergi/harç (opsiyonel)

	OverheadPct decimal.Decimal // genel gider %
	ProfitPct   decimal.Decimal // kâr %
	VATPct      decimal.Decimal // KDV %
	RiskPct     decimal.Decimal // risk payı % (opsiyonel)
}

type Result struct {
	DirectCost decimal.Decimal `json:"direktMaliyet"`
	Overhead   decimal.Decimal `json:"genelGiderTutar"`
	TotalCost  decimal.Decimal `json:"toplamMaliyet"`
	Profit     decimal.Decimal `json:"karTutar"`
	Risk       decimal.Decimal `json:"riskTutar"`
	Subtotal   decimal.Decimal `json:"araToplam"`
	VAT        decimal.Decimal `json:"kdvTutar"`
	Offer      decimal.Decimal `json:"teklifTutari"`
	Guarantee  decimal.Decimal `json:"teminatTutari"`
}

type namedValue struct {
	name  string
	value decimal.Decimal
}

func (in Input) fields() []namedValue {
	return []namedValue{
		{"malzeme", in.Material},
		{"işçilik", in.Labor},
		{"makine", in.Machine},
		{"sigorta", in.Insurance},
		{"vergi", in.Taxes},
		{"genel gider", in.OverheadPct},
		{"kâr", in.ProfitPct},
		{"kdv", in.VATPct},
		{"risk", in.RiskPct},
	}
}

func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// Calculate teklif tutarını sırasıyla hesaplar: direkt maliyet, genel gider,
// toplam maliyet, kâr, risk, ara toplam, KDV, teklif ve teminat.
// Hata varsa kısmi sonuç dönmez.
func Calculate(in Input) (Result, error) {
	for _, f := range in.fields() {
		if f.value.IsNegative() {
			return Result{}, fmt.Errorf("%w: %s", ErrNegativeInput, f.name)
		}
	}

	var r Result
	r.DirectCost = in.Material.Add(in.Labor).Add(in.Machine).Add(in.Insurance).Add(in.Taxes)
	r.Overhead = percentOf(r.DirectCost, in.OverheadPct)
	r.TotalCost = r.DirectCost.Add(r.Overhead)
	r.Profit = percentOf(r.TotalCost, in.ProfitPct)
	r.Risk = percentOf(r.TotalCost, in.RiskPct)
	r.Subtotal = r.TotalCost.Add(r.Profit).Add(r.Risk)
	r.VAT = percentOf(r.Subtotal, in.VATPct)
	r.Offer = r.Subtotal.Add(r.VAT)
	r.Guarantee = r.Offer.Mul(GuaranteeRate)
	return r, nil
}

// Rows: ekranda gösterilecek sırayla etiket/değer çiftleri
func (r Result) Rows() []Row {
	return []Row{
		{"Direkt Maliyet", r.DirectCost},
		{"Genel Giderler", r.Overhead},
		{"Toplam Maliyet", r.TotalCost},
		{"Kâr", r.Profit},
		{"Risk Payı", r.Risk},
		{"Ara Toplam (KDV Hariç)", r.Subtotal},
		{"KDV", r.VAT},
		{"Teklif Tutarı", r.Offer},
		{"Teminat (%3)", r.Guarantee},
	}
}

type Row struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}
