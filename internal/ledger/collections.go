package ledger

import (
	"encoding/json"
	"slices"

	"warda-panel/internal/models"
)

// collectionOps: tip bilgisini saklayan koleksiyon erişimi
type collectionOps interface {
	decode(raw []byte) (models.Record, error)
	list(l *models.Ledger) any
	get(l *models.Ledger, id string) (models.Record, bool)
	insert(l *models.Ledger, rec models.Record)
	replace(l *models.Ledger, rec models.Record) (old models.Record, ok bool)
	remove(l *models.Ledger, id string) (models.Record, bool)
}

type collection[T any, P interface {
	*T
	models.Record
}] struct {
	slice func(*models.Ledger) *[]T
}

func (c collection[T, P]) decode(raw []byte) (models.Record, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (c collection[T, P]) list(l *models.Ledger) any {
	return slices.Clone(*c.slice(l))
}

func (c collection[T, P]) find(l *models.Ledger, id string) int {
	items := *c.slice(l)
	for i := range items {
		if P(&items[i]).RecordID() == id {
			return i
		}
	}
	return -1
}

func (c collection[T, P]) get(l *models.Ledger, id string) (models.Record, bool) {
	i := c.find(l, id)
	if i < 0 {
		return nil, false
	}
	v := (*c.slice(l))[i]
	return P(&v), true
}

func (c collection[T, P]) insert(l *models.Ledger, rec models.Record) {
	s := c.slice(l)
	*s = append(*s, *rec.(P))
}

func (c collection[T, P]) replace(l *models.Ledger, rec models.Record) (models.Record, bool) {
	i := c.find(l, rec.RecordID())
	if i < 0 {
		return nil, false
	}
	s := *c.slice(l)
	old := s[i]
	s[i] = *rec.(P)
	return P(&old), true
}

func (c collection[T, P]) remove(l *models.Ledger, id string) (models.Record, bool) {
	i := c.find(l, id)
	if i < 0 {
		return nil, false
	}
	s := c.slice(l)
	old := (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return P(&old), true
}

var registry = map[models.Collection]collectionOps{
	models.CollectionCompanies: collection[models.Company, *models.Company]{
		slice: func(l *models.Ledger) *[]models.Company { return &l.Companies },
	},
	models.CollectionJobs: collection[models.Job, *models.Job]{
		slice: func(l *models.Ledger) *[]models.Job { return &l.Jobs },
	},
	models.CollectionChecks: collection[models.Check, *models.Check]{
		slice: func(l *models.Ledger) *[]models.Check { return &l.Checks },
	},
	models.CollectionLoans: collection[models.Loan, *models.Loan]{
		slice: func(l *models.Ledger) *[]models.Loan { return &l.Loans },
	},
	models.CollectionCards: collection[models.CreditLine, *models.CreditLine]{
		slice: func(l *models.Ledger) *[]models.CreditLine { return &l.Cards },
	},
	models.CollectionOverdrafts: collection[models.CreditLine, *models.CreditLine]{
		slice: func(l *models.Ledger) *[]models.CreditLine { return &l.Overdrafts },
	},
	models.CollectionDebts: collection[models.Debt, *models.Debt]{
		slice: func(l *models.Ledger) *[]models.Debt { return &l.Debts },
	},
	models.CollectionReceivables: collection[models.Receivable, *models.Receivable]{
		slice: func(l *models.Ledger) *[]models.Receivable { return &l.Receivables },
	},
	models.CollectionExpenses: collection[models.Expense, *models.Expense]{
		slice: func(l *models.Ledger) *[]models.Expense { return &l.Expenses },
	},
	models.CollectionIncomes: collection[models.Income, *models.Income]{
		slice: func(l *models.Ledger) *[]models.Income { return &l.Incomes },
	},
	models.CollectionBilancoVarliklar: collection[models.BilancoItem, *models.BilancoItem]{
		slice: func(l *models.Ledger) *[]models.BilancoItem { return &l.BilancoVarliklar },
	},
	models.CollectionBilancoAlacaklar: collection[models.BilancoItem, *models.BilancoItem]{
		slice: func(l *models.Ledger) *[]models.BilancoItem { return &l.BilancoAlacaklar },
	},
	models.CollectionBilancoBorclar: collection[models.BilancoItem, *models.BilancoItem]{
		slice: func(l *models.Ledger) *[]models.BilancoItem { return &l.BilancoBorclar },
	},
	models.CollectionPayments: collection[models.Payment, *models.Payment]{
		slice: func(l *models.Ledger) *[]models.Payment { return &l.Payments },
	},
	models.CollectionProjects: collection[models.Project, *models.Project]{
		slice: func(l *models.Ledger) *[]models.Project { return &l.Projects },
	},
}

func opsFor(col models.Collection) (collectionOps, error) {
	ops, ok := registry[col]
	if !ok {
		return nil, ErrUnknownCollection
	}
	return ops, nil
}

// cashEffect: kaydın kasaya etkisi (nakit gelir/gider dışında 0)
func cashEffect(rec models.Record) float64 {
	if cb, ok := rec.(models.CashBearing); ok {
		return cb.CashEffect()
	}
	return 0
}
