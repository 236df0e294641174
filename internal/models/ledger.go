package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ledger: panelin tüm kalıcı verisi. Tek bir JSON belgesi olarak saklanır.
type Ledger struct {
	TotalCash            float64           `json:"totalCash"`
	Companies            []Company         `json:"companies"`
	Jobs                 []Job             `json:"jobs"`
	Cards                []CreditLine      `json:"cards"`
	Overdrafts           []CreditLine      `json:"overdrafts"`
	Checks               []Check           `json:"checks"`
	Loans                []Loan            `json:"loans"`
	Debts                []Debt            `json:"debts"`
	Receivables          []Receivable      `json:"receivables"`
	Expenses             []Expense         `json:"expenses"`
	Incomes              []Income          `json:"incomes"`
	BilancoVarliklar     []BilancoItem     `json:"bilancoVarliklar"`
	BilancoAlacaklar     []BilancoItem     `json:"bilancoAlacaklar"`
	BilancoBorclar       []BilancoItem     `json:"bilancoBorclar"`
	Payments             []Payment         `json:"payments"`
	Projects             []Project         `json:"projects"`
	Notes                []Note            `json:"notes"`
	MonthlyPaymentStatus PaymentStatusBook `json:"monthlyPaymentStatus"`
	FixedExpenses        FixedExpenses     `json:"fixedExpenses"`
}

// NewLedger: tüm koleksiyonları boş (nil değil) bir Ledger
func NewLedger() *Ledger {
	l := &Ledger{}
	l.fillDefaults()
	return l
}

func (l *Ledger) fillDefaults() {
	if l.Companies == nil {
		l.Companies = []Company{}
	}
	if l.Jobs == nil {
		l.Jobs = []Job{}
	}
	if l.Cards == nil {
		l.Cards = []CreditLine{}
	}
	if l.Overdrafts == nil {
		l.Overdrafts = []CreditLine{}
	}
	if l.Checks == nil {
		l.Checks = []Check{}
	}
	if l.Loans == nil {
		l.Loans = []Loan{}
	}
	if l.Debts == nil {
		l.Debts = []Debt{}
	}
	if l.Receivables == nil {
		l.Receivables = []Receivable{}
	}
	if l.Expenses == nil {
		l.Expenses = []Expense{}
	}
	if l.Incomes == nil {
		l.Incomes = []Income{}
	}
	if l.BilancoVarliklar == nil {
		l.BilancoVarliklar = []BilancoItem{}
	}
	if l.BilancoAlacaklar == nil {
		l.BilancoAlacaklar = []BilancoItem{}
	}
	if l.BilancoBorclar == nil {
		l.BilancoBorclar = []BilancoItem{}
	}
	if l.Payments == nil {
		l.Payments = []Payment{}
	}
	if l.Projects == nil {
		l.Projects = []Project{}
	}
	if l.Notes == nil {
		l.Notes = []Note{}
	}
	if l.MonthlyPaymentStatus == nil {
		l.MonthlyPaymentStatus = PaymentStatusBook{}
	}
}

// RecordCount: tüm koleksiyonlardaki kayıt sayısı (notlar hariç)
func (l *Ledger) RecordCount() int {
	return len(l.Companies) + len(l.Jobs) + len(l.Cards) + len(l.Overdrafts) +
		len(l.Checks) + len(l.Loans) + len(l.Debts) + len(l.Receivables) +
		len(l.Expenses) + len(l.Incomes) + len(l.BilancoVarliklar) +
		len(l.BilancoAlacaklar) + len(l.BilancoBorclar) + len(l.Payments) +
		len(l.Projects)
}

// isEmpty: hiç kayıt, ödeme durumu ya da sabit gider yok
func (l *Ledger) isEmpty() bool {
	return l.RecordCount() == 0 &&
		len(l.MonthlyPaymentStatus) == 0 &&
		l.FixedExpenses == (FixedExpenses{})
}

// TotalOverdraftDebt: eksi hesapların toplam borcu
func (l *Ledger) TotalOverdraftDebt() float64 {
	var total float64
	for _, od := range l.Overdrafts {
		total += od.Debt
	}
	return total
}

// -------------------------
// Kodlama / çözme
// -------------------------

// EncodeLedger kalıcı formatı üretir. Map anahtarları sıralı yazılır.
func EncodeLedger(l *Ledger) ([]byte, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("ledger kodlanamadı: %w", err)
	}
	return b, nil
}

func decodeField[T any](dst *T) func(json.RawMessage) error {
	return func(msg json.RawMessage) error {
		var v T
		if err := json.Unmarshal(msg, &v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// DecodeLedger kalıcı veriyi okur. Eksik koleksiyonlar boş, eksik skalerler
// sıfır olur; çözülemeyen alanlar varsayılana döner ve uyarı olarak bildirilir.
// Hiç hata dönmez: bozuk veri ölümcül değildir.
func DecodeLedger(data []byte) (*Ledger, []string) {
	l := NewLedger()
	var warnings []string

	trimmed := bytes.TrimSpace(data)
	var raw map[string]json.RawMessage
	if len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("kayıtlı veri çözülemedi, boş ledger kullanılıyor: %v", err))
			raw = nil
		}
	}

	fields := map[string]func(json.RawMessage) error{
		"totalCash":            decodeField(&l.TotalCash),
		"companies":            decodeField(&l.Companies),
		"jobs":                 decodeField(&l.Jobs),
		"cards":                decodeField(&l.Cards),
		"overdrafts":           decodeField(&l.Overdrafts),
		"checks":               decodeField(&l.Checks),
		"loans":                decodeField(&l.Loans),
		"debts":                decodeField(&l.Debts),
		"receivables":          decodeField(&l.Receivables),
		"expenses":             decodeField(&l.Expenses),
		"incomes":              decodeField(&l.Incomes),
		"bilancoVarliklar":     decodeField(&l.BilancoVarliklar),
		"bilancoAlacaklar":     decodeField(&l.BilancoAlacaklar),
		"bilancoBorclar":       decodeField(&l.BilancoBorclar),
		"payments":             decodeField(&l.Payments),
		"projects":             decodeField(&l.Projects),
		"notes":                decodeField(&l.Notes),
		"monthlyPaymentStatus": decodeField(&l.MonthlyPaymentStatus),
		"fixedExpenses":        decodeField(&l.FixedExpenses),
	}
	for key, decode := range fields {
		msg, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			continue
		}
		if err := decode(msg); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s alanı çözülemedi, varsayılan kullanılıyor: %v", key, err))
		}
	}
	l.fillDefaults()

	// İlk açılış: Ledger tamamen boşsa kasa varsayılan bakiyeyle başlar.
	if l.TotalCash == 0 && l.isEmpty() {
		l.TotalCash = DefaultTotalCash
	}
	return l, warnings
}

// Clone: JSON üzerinden derin kopya; okuma tarafı kilidin dışında çalışabilsin diye.
func (l *Ledger) Clone() *Ledger {
	b, err := json.Marshal(l)
	if err != nil {
		return NewLedger()
	}
	var out Ledger
	if err := json.Unmarshal(b, &out); err != nil {
		return NewLedger()
	}
	out.fillDefaults()
	return &out
}
