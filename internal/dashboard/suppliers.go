package dashboard

import (
	"sort"

	"warda-panel/internal/models"
)

// Bakiye eşiği: |bakiye| bu değerin altındaysa cari kapalı sayılır.
const balanceTolerance = 0.01

type SupplierStanding string

const (
	SupplierCredit  SupplierStanding = "alacak" // fazla ödeme, tedarikçiden alacaklıyız
	SupplierOwed    SupplierStanding = "borc"   // tedarikçiye borçluyuz
	SupplierSettled SupplierStanding = "kapali"
)

type SupplierBalanceRow struct {
	Company      string           `json:"company"`
	TotalDebt    float64          `json:"totalDebt"`
	TotalPayment float64          `json:"totalPayment"`
	Balance      float64          `json:"balance"` // ödemeler - borç kayıtları
	Standing     SupplierStanding `json:"standing"`
}

// SupplierBalance tek bir tedarikçinin cari durumunu hesaplar.
// Payee eşleşen giderlerden "Cari Borç Kaydı" borç, geri kalan her şey ödemedir.
func SupplierBalance(l *models.Ledger, company string) SupplierBalanceRow {
	row := SupplierBalanceRow{Company: company}
	for _, e := range l.Expenses {
		if e.Payee != company {
			continue
		}
		if e.IsSupplierDebt() {
			row.TotalDebt += e.Amount
		} else {
			row.TotalPayment += e.Amount
		}
	}
	row.Balance = row.TotalPayment - row.TotalDebt
	row.Standing = standingOf(row.Balance)
	return row
}

func standingOf(balance float64) SupplierStanding {
	switch {
	case balance > balanceTolerance:
		return SupplierCredit
	case balance < -balanceTolerance:
		return SupplierOwed
	default:
		return SupplierSettled
	}
}

// SupplierBalances: tüm tedarikçiler, isme göre sıralı
func SupplierBalances(l *models.Ledger) []SupplierBalanceRow {
	rows := make([]SupplierBalanceRow, 0, len(l.Companies))
	for _, c := range l.Companies {
		rows = append(rows, SupplierBalance(l, c.Name))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Company < rows[j].Company
	})
	return rows
}

// supplierTotals: pozitif bakiyeler alacak, negatifler borç toplamına gider
func supplierTotals(l *models.Ledger) (receivable, payable float64) {
	for _, c := range l.Companies {
		b := SupplierBalance(l, c.Name).Balance
		if b > balanceTolerance {
			receivable += b
		} else if b < -balanceTolerance {
			payable += -b
		}
	}
	return receivable, payable
}
