package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LastDayOfMonth: "ayın son günü" seçeneğinin saklanan değeri
const LastDayOfMonth = "son-gun"

// PaymentDay: 1..31 veya "son-gun". Eski kayıtlarda sayı olarak da gelebilir.
type PaymentDay string

func (d *PaymentDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = PaymentDay(strings.TrimSpace(s))
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("ödeme günü çözülemedi: %w", err)
	}
	*d = PaymentDay(strconv.Itoa(int(n)))
	return nil
}

// Valid: 1..31 arası gün veya ayın son günü
func (d PaymentDay) Valid() bool {
	if d == LastDayOfMonth {
		return true
	}
	n, err := strconv.Atoi(string(d))
	return err == nil && n >= 1 && n <= 31
}

// In: verilen aydaki gerçek gün (son gün ve 31 çeken olmayan aylar için kırpılır)
func (d PaymentDay) In(ym YearMonth) int {
	last := ym.Days()
	if d == LastDayOfMonth {
		return last
	}
	n, err := strconv.Atoi(string(d))
	if err != nil || n < 1 {
		return 1
	}
	if n > last {
		return last
	}
	return n
}

type Payment struct {
	ID            string     `json:"id"`
	Day           PaymentDay `json:"day"`
	Recipient     string     `json:"recipient"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Amount        float64    `json:"amount"`
	IsRecurring   bool       `json:"isRecurring"`
	SpecificMonth string     `json:"specificMonth,omitempty"` // tek seferlik ödemeler için "YYYY-MM"
}

func (p *Payment) RecordID() string      { return p.ID }
func (p *Payment) SetRecordID(id string) { p.ID = id }

func (p *Payment) Normalize() {
	if p.IsRecurring {
		p.SpecificMonth = ""
	}
}

func (p *Payment) Validate() []string {
	var errs []string
	if p.Day == "" {
		errs = append(errs, "Ödeme günü seçilmelidir")
	} else if !p.Day.Valid() {
		errs = append(errs, "Ödeme günü geçersiz")
	}
	if blank(p.Recipient) {
		errs = append(errs, "Alıcı adı boş olamaz")
	}
	if blank(p.Category) {
		errs = append(errs, "Kategori seçilmelidir")
	}
	if p.Amount <= 0 {
		errs = append(errs, "Tutar sıfırdan büyük olmalıdır")
	}
	if !p.IsRecurring {
		if p.SpecificMonth == "" {
			errs = append(errs, "Tek seferlik ödeme için ay seçilmelidir")
		} else if _, err := ParseYearMonth(p.SpecificMonth); err != nil {
			errs = append(errs, "Ay formatı 'YYYY-MM' olmalı")
		}
	}
	return errs
}

// AppliesTo: ödeme verilen ayın takviminde yer alıyor mu
func (p Payment) AppliesTo(ym YearMonth) bool {
	return p.IsRecurring || p.SpecificMonth == ym.String()
}

// DueDate: verilen aydaki vade tarihi
func (p Payment) DueDate(ym YearMonth, loc *time.Location) time.Time {
	return time.Date(ym.Year, ym.Month, p.Day.In(ym), 0, 0, 0, 0, loc)
}

// -------------------------
// Aylık ödeme durumları
// -------------------------

type YearMonth struct {
	Year  int
	Month time.Month
}

func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, fmt.Errorf("ay formatı 'YYYY-MM' olmalı: %w", err)
	}
	return YearMonthOf(t), nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AddMonths: ay taşmalarını yıl geçişiyle birlikte hesaplar
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonthOf(t)
}

func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

type PaymentState string

const (
	PaymentPending   PaymentState = "bekliyor"
	PaymentCompleted PaymentState = "tamamlandı"
)

func (s PaymentState) Valid() bool {
	return s == PaymentPending || s == PaymentCompleted
}

// PaymentStatusKey: bir ödeme tanımının belirli bir aydaki durumu
type PaymentStatusKey struct {
	Month     YearMonth
	PaymentID string
}

type PaymentStatusEntry struct {
	Status        PaymentState `json:"status"`
	ActualDate    *string      `json:"actualDate"`
	PaymentMethod *string      `json:"paymentMethod"`
}

// PaymentStatusBook: (ay, ödeme) -> durum. JSON'da
// {"2025-01": {"payment_<id>": {...}}} şeklinde saklanır.
type PaymentStatusBook map[PaymentStatusKey]PaymentStatusEntry

const paymentKeyPrefix = "payment_"

func (b PaymentStatusBook) MarshalJSON() ([]byte, error) {
	nested := make(map[string]map[string]PaymentStatusEntry)
	for k, v := range b {
		month := k.Month.String()
		if nested[month] == nil {
			nested[month] = make(map[string]PaymentStatusEntry)
		}
		nested[month][paymentKeyPrefix+k.PaymentID] = v
	}
	return json.Marshal(nested)
}

func (b *PaymentStatusBook) UnmarshalJSON(data []byte) error {
	var nested map[string]map[string]PaymentStatusEntry
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	book := make(PaymentStatusBook)
	for month, entries := range nested {
		ym, err := ParseYearMonth(month)
		if err != nil {
			// bozuk ay anahtarı sessizce atlanır
			continue
		}
		for key, entry := range entries {
			id := strings.TrimPrefix(key, paymentKeyPrefix)
			book[PaymentStatusKey{Month: ym, PaymentID: id}] = entry
		}
	}
	*b = book
	return nil
}

// State: kayıt yoksa ödeme bekliyor sayılır
func (b PaymentStatusBook) State(ym YearMonth, paymentID string) PaymentState {
	if e, ok := b[PaymentStatusKey{Month: ym, PaymentID: paymentID}]; ok && e.Status != "" {
		return e.Status
	}
	return PaymentPending
}
