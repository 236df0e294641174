package dashboard

import (
	"strings"
	"time"

	"warda-panel/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Source: özetlerin okunduğu veri kaynağı (ledger.Service bunu sağlar)
type Source interface {
	Snapshot() *models.Ledger
	Now() time.Time
}

// ?month=YYYY-MM, boşsa bu ay
func monthQuery(c *fiber.Ctx, now time.Time) (models.YearMonth, error) {
	s := strings.TrimSpace(c.Query("month"))
	if s == "" {
		return models.YearMonthOf(now), nil
	}
	ym, err := models.ParseYearMonth(s)
	if err != nil {
		return models.YearMonth{}, fiber.NewError(fiber.StatusBadRequest, "Ay formatı 'YYYY-MM' olmalı")
	}
	return ym, nil
}

// GET /api/dashboard/suppliers
func SuppliersHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SupplierBalances(src.Snapshot()))
	}
}

// GET /api/dashboard/suppliers/:name
func SupplierHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := src.Snapshot()
		name := c.Params("name")
		for _, co := range l.Companies {
			if co.Name == name {
				return c.JSON(SupplierBalance(l, name))
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "Tedarikçi bulunamadı")
	}
}

// GET /api/dashboard/jobs
func JobsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(JobSummary(src.Snapshot()))
	}
}

// GET /api/dashboard/balance-sheet
func BalanceSheetHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(BalanceSheet(src.Snapshot()))
	}
}

// GET /api/dashboard/monthly
func MonthlyHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(MonthlyProjection(src.Snapshot(), src.Now()))
	}
}

// GET /api/dashboard/checks
func ChecksHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(CheckSummary(src.Snapshot(), src.Now()))
	}
}

// GET /api/dashboard/payments?month=2025-03
func PaymentsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := src.Now()
		ym, err := monthQuery(c, now)
		if err != nil {
			return err
		}
		return c.JSON(PaymentSchedule(src.Snapshot(), ym, now))
	}
}

// GET /api/dashboard/upcoming-payments?days=7
func UpcomingPaymentsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", DefaultUpcomingDays)
		if days < 0 || days > 62 {
			return fiber.NewError(fiber.StatusBadRequest, "days 0 ile 62 arasında olmalı")
		}
		return c.JSON(UpcomingPayments(src.Snapshot(), src.Now(), days))
	}
}

// GET /api/dashboard/loans
func LoansHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(LoanSummary(src.Snapshot()))
	}
}

// GET /api/dashboard/cards
func CardsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(CreditLineSummary(src.Snapshot().Cards))
	}
}

// GET /api/dashboard/overdrafts
func OverdraftsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(CreditLineSummary(src.Snapshot().Overdrafts))
	}
}

// GET /api/dashboard/projects
func ProjectsHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ProjectCounts(src.Snapshot()))
	}
}

// GET /api/dashboard/categories?type=expense&month=2025-03&method=nakit
func CategoriesHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := CategoryFilter{
			Kind:   CategoryKind(c.Query("type", string(CategoryExpense))),
			Method: models.PaymentMethod(c.Query("method")),
		}
		if f.Kind != CategoryIncome && f.Kind != CategoryExpense {
			return fiber.NewError(fiber.StatusBadRequest, "type 'income' veya 'expense' olmalı")
		}
		if f.Method == "all" {
			f.Method = ""
		}
		if m := c.Query("month"); m != "" && m != "all" {
			ym, err := models.ParseYearMonth(m)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ay formatı 'YYYY-MM' olmalı")
			}
			f.Month = &ym
		}
		return c.JSON(CategoryTotals(src.Snapshot(), f))
	}
}

// GET /api/dashboard/overview
func OverviewHandler(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Overview(src.Snapshot(), src.Now()))
	}
}

// Register tüm özet uçlarını verilen gruba bağlar.
func Register(r fiber.Router, src Source) {
	r.Get("/suppliers", SuppliersHandler(src))
	r.Get("/suppliers/:name", SupplierHandler(src))
	r.Get("/jobs", JobsHandler(src))
	r.Get("/balance-sheet", BalanceSheetHandler(src))
	r.Get("/monthly", MonthlyHandler(src))
	r.Get("/checks", ChecksHandler(src))
	r.Get("/payments", PaymentsHandler(src))
	r.Get("/upcoming-payments", UpcomingPaymentsHandler(src))
	r.Get("/loans", LoansHandler(src))
	r.Get("/cards", CardsHandler(src))
	r.Get("/overdrafts", OverdraftsHandler(src))
	r.Get("/projects", ProjectsHandler(src))
	r.Get("/categories", CategoriesHandler(src))
	r.Get("/overview", OverviewHandler(src))
}
