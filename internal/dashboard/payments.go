package dashboard

import (
	"math"
	"sort"
	"time"

	"warda-panel/internal/models"
)

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "bekliyor"
	ScheduleOverdue   ScheduleStatus = "gecikti"
	ScheduleCompleted ScheduleStatus = "tamamlandı"
)

type PaymentRow struct {
	ID            string         `json:"id"`
	Day           string         `json:"day"`
	DueDate       string         `json:"dueDate"`
	Recipient     string         `json:"recipient"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Amount        float64        `json:"amount"`
	IsRecurring   bool           `json:"isRecurring"`
	Status        ScheduleStatus `json:"status"`
	ActualDate    *string        `json:"actualDate,omitempty"`
	PaymentMethod *string        `json:"paymentMethod,omitempty"`
}

type PaymentScheduleResponse struct {
	Month          string       `json:"month"`
	Pending        []PaymentRow `json:"pending"` // gecikmiş olanlar dahil
	Completed      []PaymentRow `json:"completed"`
	PendingTotal   float64      `json:"pendingTotal"`
	CompletedTotal float64      `json:"completedTotal"`
	OverdueCount   int          `json:"overdueCount"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isOverdue: sadece içinde bulunulan ay için, gün geçtiyse ve hâlâ bekliyorsa
func isOverdue(ym models.YearMonth, dueDay int, state models.PaymentState, now time.Time) bool {
	return state == models.PaymentPending &&
		ym.Contains(now) &&
		now.Day() > dueDay
}

// PaymentSchedule verilen ayın ödeme takvimini durumlarıyla birlikte döner.
func PaymentSchedule(l *models.Ledger, ym models.YearMonth, now time.Time) PaymentScheduleResponse {
	resp := PaymentScheduleResponse{
		Month:     ym.String(),
		Pending:   []PaymentRow{},
		Completed: []PaymentRow{},
	}
	for _, p := range l.Payments {
		if !p.AppliesTo(ym) {
			continue
		}
		entry := l.MonthlyPaymentStatus[models.PaymentStatusKey{Month: ym, PaymentID: p.ID}]
		state := l.MonthlyPaymentStatus.State(ym, p.ID)
		due := p.Day.In(ym)

		row := PaymentRow{
			ID:            p.ID,
			Day:           string(p.Day),
			DueDate:       p.DueDate(ym, now.Location()).Format(models.DateLayout),
			Recipient:     p.Recipient,
			Description:   p.Description,
			Category:      p.Category,
			Amount:        p.Amount,
			IsRecurring:   p.IsRecurring,
			ActualDate:    entry.ActualDate,
			PaymentMethod: entry.PaymentMethod,
		}
		switch {
		case state == models.PaymentCompleted:
			row.Status = ScheduleCompleted
			resp.Completed = append(resp.Completed, row)
			resp.CompletedTotal += p.Amount
			continue
		case isOverdue(ym, due, state, now):
			row.Status = ScheduleOverdue
			resp.OverdueCount++
		default:
			row.Status = SchedulePending
		}
		resp.Pending = append(resp.Pending, row)
		resp.PendingTotal += p.Amount
	}
	sortByDueDate(resp.Pending)
	sortByDueDate(resp.Completed)
	return resp
}

func sortByDueDate(rows []PaymentRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DueDate < rows[j].DueDate
	})
}

// -------------------------
// Yaklaşan ödemeler
// -------------------------

type Urgency string

const (
	UrgencyCritical Urgency = "kritik" // 0-1 gün
	UrgencyHigh     Urgency = "yuksek" // 2-3 gün
	UrgencyMedium   Urgency = "orta"   // 4-5 gün
	UrgencyLow      Urgency = "dusuk"  // 6-7 gün
)

func urgencyOf(daysUntil int) Urgency {
	switch {
	case daysUntil <= 1:
		return UrgencyCritical
	case daysUntil <= 3:
		return UrgencyHigh
	case daysUntil <= 5:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

type UpcomingPayment struct {
	ID        string  `json:"id"`
	Recipient string  `json:"recipient"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	DueDate   string  `json:"dueDate"`
	DaysUntil int     `json:"daysUntil"`
	Urgency   Urgency `json:"urgency"`
}

// DefaultUpcomingDays: ana sayfadaki yaklaşan ödeme penceresi
const DefaultUpcomingDays = 7

// UpcomingPayments bugünden itibaren days gün içinde vadesi gelen ve
// tamamlanmamış ödemeleri tarih sırasıyla döner. Pencere ay sonunu aşarsa
// sonraki ayın tekrarlayan ödemeleri de dahil edilir.
func UpcomingPayments(l *models.Ledger, now time.Time, days int) []UpcomingPayment {
	today := startOfDay(now)
	until := today.AddDate(0, 0, days)

	months := []models.YearMonth{models.YearMonthOf(today)}
	if last := models.YearMonthOf(until); last != months[0] {
		months = append(months, last)
	}

	out := []UpcomingPayment{}
	for _, ym := range months {
		for _, p := range l.Payments {
			if !p.AppliesTo(ym) {
				continue
			}
			if l.MonthlyPaymentStatus.State(ym, p.ID) == models.PaymentCompleted {
				continue
			}
			due := p.DueDate(ym, today.Location())
			if due.Before(today) || due.After(until) {
				continue
			}
			daysUntil := int(math.Round(due.Sub(today).Hours() / 24))
			out = append(out, UpcomingPayment{
				ID:        p.ID,
				Recipient: p.Recipient,
				Category:  p.Category,
				Amount:    p.Amount,
				DueDate:   due.Format(models.DateLayout),
				DaysUntil: daysUntil,
				Urgency:   urgencyOf(daysUntil),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// OverduePayments: içinde bulunulan ayda günü geçmiş bekleyen ödemeler
func OverduePayments(l *models.Ledger, now time.Time) []PaymentRow {
	schedule := PaymentSchedule(l, models.YearMonthOf(now), now)
	out := []PaymentRow{}
	for _, row := range schedule.Pending {
		if row.Status == ScheduleOverdue {
			out = append(out, row)
		}
	}
	return out
}
