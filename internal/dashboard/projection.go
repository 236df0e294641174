package dashboard

import (
	"time"

	"warda-panel/internal/models"
)

// Grafik penceresi: bu ay + önümüzdeki 2 ay
const projectionMonths = 3

var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

type MonthlyBalance struct {
	Month   string  `json:"month"` // YYYY-MM
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type CheckMonthTotal struct {
	Month string  `json:"month"`
	Name  string  `json:"name"`
	Total float64 `json:"total"` // şirket payı kadar
}

func projectionWindow(now time.Time) []models.YearMonth {
	start := models.YearMonthOf(now)
	out := make([]models.YearMonth, projectionMonths)
	for i := range out {
		out[i] = start.AddMonths(i)
	}
	return out
}

func monthIndex(window []models.YearMonth, date string) int {
	t, ok := models.ParseDate(date)
	if !ok {
		return -1
	}
	for i, ym := range window {
		if ym.Contains(t) {
			return i
		}
	}
	return -1
}

// MonthlyProjection: bu ay ve sonraki iki ayın gelir/gider dengesi.
// Cari hareketleri gider sayılmaz; sabit giderler her aya eklenir.
func MonthlyProjection(l *models.Ledger, now time.Time) []MonthlyBalance {
	window := projectionWindow(now)
	rows := make([]MonthlyBalance, len(window))
	for i, ym := range window {
		rows[i] = MonthlyBalance{Month: ym.String(), Name: MonthName(ym.Month)}
	}

	for _, in := range l.Incomes {
		if i := monthIndex(window, in.Date); i >= 0 {
			rows[i].Income += in.Amount
		}
	}
	for _, e := range l.Expenses {
		if e.IsSupplierLedger() {
			continue
		}
		if i := monthIndex(window, e.Date); i >= 0 {
			rows[i].Expense += e.Amount
		}
	}

	fixed := l.FixedExpenses.Total()
	for i := range rows {
		rows[i].Expense += fixed
		rows[i].Balance = rows[i].Income - rows[i].Expense
	}
	return rows
}

// CheckProjection: bekleyen çeklerin vade ayına göre şirket payı toplamı
func CheckProjection(l *models.Ledger, now time.Time) []CheckMonthTotal {
	window := projectionWindow(now)
	rows := make([]CheckMonthTotal, len(window))
	for i, ym := range window {
		rows[i] = CheckMonthTotal{Month: ym.String(), Name: MonthName(ym.Month)}
	}
	for _, c := range l.Checks {
		if c.Status != models.CheckStatusWaiting {
			continue
		}
		if i := monthIndex(window, c.DueDate); i >= 0 {
			rows[i].Total += c.CompanyObligation()
		}
	}
	return rows
}

type CheckGroupSummary struct {
	Partnership  string  `json:"partnership"`
	PendingCount int     `json:"pendingCount"`
	PendingTotal float64 `json:"pendingTotal"`
	PaidCount    int     `json:"paidCount"`
	PaidTotal    float64 `json:"paidTotal"`
}

type CheckSummaryResponse struct {
	ThisMonthCount int                 `json:"thisMonthCount"`
	ThisMonthTotal float64             `json:"thisMonthTotal"` // bu ay vadesi gelen bekleyen çekler
	PendingCount   int                 `json:"pendingCount"`
	PendingTotal   float64             `json:"pendingTotal"`
	PaidCount      int                 `json:"paidCount"`
	PaidTotal      float64             `json:"paidTotal"`
	Groups         []CheckGroupSummary `json:"groups"`
	Projection     []CheckMonthTotal   `json:"projection"`
}

// CheckSummary: tutarlar şirket payı ile çarpılmış yükümlülüklerdir.
func CheckSummary(l *models.Ledger, now time.Time) CheckSummaryResponse {
	order := append(append([]string{}, models.PartnershipCategories...), models.PartnershipOther)
	groups := make(map[string]*CheckGroupSummary, len(order))
	resp := CheckSummaryResponse{Groups: make([]CheckGroupSummary, 0, len(order))}
	for _, name := range order {
		groups[name] = &CheckGroupSummary{Partnership: name}
	}

	current := models.YearMonthOf(now)
	for _, c := range l.Checks {
		g := groups[c.PartnershipGroup()]
		amount := c.CompanyObligation()
		if c.Status == models.CheckStatusPaid {
			g.PaidCount++
			g.PaidTotal += amount
			resp.PaidCount++
			resp.PaidTotal += amount
			continue
		}
		g.PendingCount++
		g.PendingTotal += amount
		resp.PendingCount++
		resp.PendingTotal += amount
		if due, ok := models.ParseDate(c.DueDate); ok && current.Contains(due) {
			resp.ThisMonthCount++
			resp.ThisMonthTotal += amount
		}
	}
	for _, name := range order {
		resp.Groups = append(resp.Groups, *groups[name])
	}
	resp.Projection = CheckProjection(l, now)
	return resp
}
