package dashboard

import "warda-panel/internal/models"

type BalanceLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Automatic bool    `json:"automatic"`
}

type BalanceBucket struct {
	Lines []BalanceLine `json:"lines"`
	Total float64       `json:"total"`
}

type BalanceSheetResponse struct {
	Assets      BalanceBucket `json:"assets"`      // mal varlıkları
	Receivables BalanceBucket `json:"receivables"` // alacaklar
	Payables    BalanceBucket `json:"payables"`    // borçlar
	TotalCash   float64       `json:"totalCash"`
	NetWorth    float64       `json:"netWorth"`    // varlık + alacak - borç
	CashBalance float64       `json:"cashBalance"` // alacak - borç + kasa
}

// Otomatik satırlar bu tutarın altındaysa listelenmez (toplama yine girer).
const autoLineThreshold = 0.01

func autoReceivables(l *models.Ledger) []BalanceLine {
	var jobs float64
	for _, j := range l.Jobs {
		jobs += j.Remaining()
	}
	var market float64
	for _, r := range l.Receivables {
		market += r.Amount
	}
	supplier, _ := supplierTotals(l)

	return []BalanceLine{
		{ID: "auto_islerden", Name: "İŞLERDEN ALACAKLAR", Amount: jobs, Automatic: true},
		{ID: "auto_piyasadan", Name: "PİYASADAN ALACAKLAR", Amount: market, Automatic: true},
		{ID: "auto_cari_alacak", Name: "CARİ ALACAKLARI (TEDARİKÇİ)", Amount: supplier, Automatic: true},
	}
}

func autoPayables(l *models.Ledger) []BalanceLine {
	var checks float64
	for _, c := range l.Checks {
		if c.Status == models.CheckStatusWaiting && c.PartnershipCategory == models.BalanceSheetPartnership {
			checks += c.Amount
		}
	}
	var loans float64
	for _, ln := range l.Loans {
		loans += ln.Remaining()
	}
	var cards float64
	for _, c := range l.Cards {
		cards += c.Debt
	}
	var market float64
	for _, d := range l.Debts {
		market += d.Amount
	}
	_, supplier := supplierTotals(l)

	return []BalanceLine{
		{ID: "auto_cek", Name: "WARDA ÇEK BORÇLARI", Amount: checks, Automatic: true},
		{ID: "auto_kredi", Name: "KREDİ BORÇLARI", Amount: loans, Automatic: true},
		{ID: "auto_kart", Name: "KREDİ KARTI BORÇLARI", Amount: cards, Automatic: true},
		{ID: "auto_piyasa_borc", Name: "PİYASA BORÇLARI", Amount: market, Automatic: true},
		{ID: "auto_eksi", Name: "EKSİ HESAP BORÇLARI", Amount: l.TotalOverdraftDebt(), Automatic: true},
		{ID: "auto_cari_borc", Name: "CARİ BORÇLARI (TEDARİKÇİ)", Amount: supplier, Automatic: true},
	}
}

func buildBucket(auto []BalanceLine, manual []models.BilancoItem) BalanceBucket {
	b := BalanceBucket{Lines: []BalanceLine{}}
	for _, line := range auto {
		b.Total += line.Amount
		if line.Amount > autoLineThreshold {
			b.Lines = append(b.Lines, line)
		}
	}
	for _, item := range manual {
		b.Total += item.Amount
		b.Lines = append(b.Lines, BalanceLine{ID: item.ID, Name: item.Name, Amount: item.Amount})
	}
	return b
}

// BalanceSheet otomatik ve elle girilen satırları birleştirip bilançoyu çıkarır.
func BalanceSheet(l *models.Ledger) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		Assets:      buildBucket(nil, l.BilancoVarliklar),
		Receivables: buildBucket(autoReceivables(l), l.BilancoAlacaklar),
		Payables:    buildBucket(autoPayables(l), l.BilancoBorclar),
		TotalCash:   l.TotalCash,
	}
	resp.NetWorth = resp.Assets.Total + resp.Receivables.Total - resp.Payables.Total
	resp.CashBalance = resp.Receivables.Total - resp.Payables.Total + l.TotalCash
	return resp
}
