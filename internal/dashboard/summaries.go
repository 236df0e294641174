package dashboard

import (
	"sort"
	"time"

	"warda-panel/internal/models"
)

// -------------------------
// Krediler
// -------------------------

type LoanRow struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PaymentDay        int     `json:"paymentDay"`
	InstallmentAmount float64 `json:"installmentAmount"`
	PaidInstallments  int     `json:"paidInstallments"`
	Term              int     `json:"term"`
	Remaining         float64 `json:"remaining"`
	Progress          float64 `json:"progress"` // yüzde
}

type LoanSummaryResponse struct {
	Loans              []LoanRow `json:"loans"`
	MonthlyInstallment float64   `json:"monthlyInstallment"`
	TotalPrincipal     float64   `json:"totalPrincipal"`
	TotalAmount        float64   `json:"totalAmount"`
	TotalPaid          float64   `json:"totalPaid"`
	TotalRemaining     float64   `json:"totalRemaining"`
}

func LoanSummary(l *models.Ledger) LoanSummaryResponse {
	resp := LoanSummaryResponse{Loans: make([]LoanRow, 0, len(l.Loans))}
	for _, ln := range l.Loans {
		resp.Loans = append(resp.Loans, LoanRow{
			ID:                ln.ID,
			Name:              ln.Name,
			PaymentDay:        ln.PaymentDay,
			InstallmentAmount: ln.InstallmentAmount,
			PaidInstallments:  ln.PaidInstallments,
			Term:              ln.Term,
			Remaining:         ln.Remaining(),
			Progress:          ln.Progress(),
		})
		resp.MonthlyInstallment += ln.InstallmentAmount
		resp.TotalPrincipal += ln.Principal
		resp.TotalAmount += ln.TotalAmount()
		resp.TotalPaid += ln.TotalPaid()
	}
	resp.TotalRemaining = resp.TotalAmount - resp.TotalPaid
	return resp
}

// -------------------------
// Kredi kartları ve eksi hesaplar
// -------------------------

type CreditLineRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Limit     float64 `json:"limit"`
	Debt      float64 `json:"debt"`
	Available float64 `json:"available"`
	Usage     float64 `json:"usage"` // yüzde
}

type CreditLineSummaryResponse struct {
	Lines          []CreditLineRow `json:"lines"`
	TotalLimit     float64         `json:"totalLimit"`
	TotalDebt      float64         `json:"totalDebt"`
	TotalAvailable float64         `json:"totalAvailable"`
	Usage          float64         `json:"usage"`
}

// CreditLineSummary: satırlar borca göre azalan sırada
func CreditLineSummary(lines []models.CreditLine) CreditLineSummaryResponse {
	resp := CreditLineSummaryResponse{Lines: make([]CreditLineRow, 0, len(lines))}
	for _, cl := range lines {
		resp.Lines = append(resp.Lines, CreditLineRow{
			ID:        cl.ID,
			Name:      cl.Name,
			Limit:     cl.Limit,
			Debt:      cl.Debt,
			Available: cl.Available(),
			Usage:     cl.Usage(),
		})
		resp.TotalLimit += cl.Limit
		resp.TotalDebt += cl.Debt
	}
	sort.SliceStable(resp.Lines, func(i, j int) bool {
		return resp.Lines[i].Debt > resp.Lines[j].Debt
	})
	resp.TotalAvailable = resp.TotalLimit - resp.TotalDebt
	if resp.TotalLimit > 0 {
		resp.Usage = resp.TotalDebt / resp.TotalLimit * 100
	}
	return resp
}

// -------------------------
// Projeler
// -------------------------

// ProjectCounts: her durum için proje sayısı (sıfır olanlar dahil)
func ProjectCounts(l *models.Ledger) map[models.ProjectStatus]int {
	counts := make(map[models.ProjectStatus]int, len(models.ProjectStatuses))
	for _, s := range models.ProjectStatuses {
		counts[s] = 0
	}
	for _, p := range l.Projects {
		counts[p.Status]++
	}
	return counts
}

// -------------------------
// Kategori toplamları
// -------------------------

type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// CategoryFilter: Month nil ise tüm aylar, Method boşsa tüm ödeme şekilleri
type CategoryFilter struct {
	Kind   CategoryKind
	Month  *models.YearMonth
	Method models.PaymentMethod
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type CategoryTotalsResponse struct {
	Categories []CategoryTotal `json:"categories"`
	Total      float64         `json:"total"`
}

type datedEntry struct {
	date     string
	category string
	method   models.PaymentMethod
	amount   float64
}

func (f CategoryFilter) match(e datedEntry) bool {
	if f.Method != "" && e.method != f.Method {
		return false
	}
	if f.Month == nil {
		return true
	}
	t, ok := models.ParseDate(e.date)
	return ok && f.Month.Contains(t)
}

// CategoryTotals gelir veya giderleri kategoriye göre toplar, büyükten küçüğe.
// Cari hareketleri gider listesine girmez.
func CategoryTotals(l *models.Ledger, f CategoryFilter) CategoryTotalsResponse {
	var entries []datedEntry
	if f.Kind == CategoryIncome {
		for _, in := range l.Incomes {
			entries = append(entries, datedEntry{in.Date, in.Category, in.PaymentMethod, in.Amount})
		}
	} else {
		for _, e := range l.Expenses {
			if e.IsSupplierLedger() {
				continue
			}
			entries = append(entries, datedEntry{e.Date, e.Category, e.PaymentMethod, e.Amount})
		}
	}

	totals := map[string]float64{}
	resp := CategoryTotalsResponse{Categories: []CategoryTotal{}}
	for _, e := range entries {
		if e.category == "" || !f.match(e) {
			continue
		}
		totals[e.category] += e.amount
		resp.Total += e.amount
	}
	for name, total := range totals {
		if total > 0 {
			resp.Categories = append(resp.Categories, CategoryTotal{Category: name, Total: total})
		}
	}
	sort.Slice(resp.Categories, func(i, j int) bool {
		if resp.Categories[i].Total != resp.Categories[j].Total {
			return resp.Categories[i].Total > resp.Categories[j].Total
		}
		return resp.Categories[i].Category < resp.Categories[j].Category
	})
	return resp
}

// -------------------------
// Ana sayfa özeti
// -------------------------

type OverviewResponse struct {
	TotalCash          float64           `json:"totalCash"`
	CashBalance        float64           `json:"cashBalance"`  // nakit bilançosu
	AssetBalance       float64           `json:"assetBalance"` // mal varlığı
	NetWorth           float64           `json:"netWorth"`
	OngoingJobs        int               `json:"ongoingJobs"`
	JobReceivables     float64           `json:"jobReceivables"`
	PendingChecksTotal float64           `json:"pendingChecksTotal"`
	MonthlyInstallment float64           `json:"monthlyInstallment"`
	CardDebt           float64           `json:"cardDebt"`
	OverdraftDebt      float64           `json:"overdraftDebt"`
	UpcomingPayments   []UpcomingPayment `json:"upcomingPayments"`
	OverdueCount       int               `json:"overdueCount"`
	Monthly            []MonthlyBalance  `json:"monthly"`
}

func Overview(l *models.Ledger, now time.Time) OverviewResponse {
	sheet := BalanceSheet(l)
	jobs := JobSummary(l)
	checks := CheckSummary(l, now)
	loans := LoanSummary(l)

	return OverviewResponse{
		TotalCash:          l.TotalCash,
		CashBalance:        sheet.CashBalance,
		AssetBalance:       sheet.Assets.Total,
		NetWorth:           sheet.NetWorth,
		OngoingJobs:        len(jobs.Ongoing),
		JobReceivables:     jobs.TotalRemaining,
		PendingChecksTotal: checks.PendingTotal,
		MonthlyInstallment: loans.MonthlyInstallment,
		CardDebt:           CreditLineSummary(l.Cards).TotalDebt,
		OverdraftDebt:      l.TotalOverdraftDebt(),
		UpcomingPayments:   UpcomingPayments(l, now, DefaultUpcomingDays),
		OverdueCount:       len(OverduePayments(l, now)),
		Monthly:            MonthlyProjection(l, now),
	}
}
