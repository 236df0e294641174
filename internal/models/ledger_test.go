package models

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestDecodeLedgerDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCash float64
		warn     bool
	}{
		{name: "empty input", input: "", wantCash: DefaultTotalCash},
		{name: "empty object", input: "{}", wantCash: DefaultTotalCash},
		{name: "malformed", input: "{not json", wantCash: DefaultTotalCash, warn: true},
		{name: "cash kept", input: `{"totalCash": 10}`, wantCash: 10},
		{name: "zero cash with a company", input: `{"totalCash":0,"companies":[{"id":"1","name":"A"}]}`, wantCash: 0},
		{name: "zero cash with only expenses", input: `{"expenses":[{"id":"e","amount":5}]}`, wantCash: 0},
		{name: "zero cash with incomes and loans", input: `{"totalCash":0,"incomes":[{"id":"i","amount":5}],"loans":[{"id":"l","paymentDay":5}]}`, wantCash: 0},
		{name: "zero cash with only fixed expenses", input: `{"totalCash":0,"fixedExpenses":{"salary":1000}}`, wantCash: 0},
		{name: "zero cash with only payment statuses", input: `{"monthlyPaymentStatus":{"2025-02":{"payment_p":{"status":"bekliyor"}}}}`, wantCash: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, warnings := DecodeLedger([]byte(tt.input))
			if l.TotalCash != tt.wantCash {
				t.Fatalf("TotalCash = %v, want %v", l.TotalCash, tt.wantCash)
			}
			if tt.warn != (len(warnings) > 0) {
				t.Fatalf("warnings = %v, want warn=%v", warnings, tt.warn)
			}
			if l.Jobs == nil || l.Checks == nil || l.Payments == nil || l.MonthlyPaymentStatus == nil {
				t.Fatal("collections must never be nil after decode")
			}
			if l.FixedExpenses.Total() != 0 {
				t.Fatalf("fixed expenses = %+v, want zero", l.FixedExpenses)
			}
		})
	}
}

func TestDecodeLedgerBadFieldKeepsOthers(t *testing.T) {
	input := `{"totalCash": 50, "jobs": "bozuk", "companies": [{"id":"c1","name":"ACME"}]}`
	l, warnings := DecodeLedger([]byte(input))
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if len(l.Jobs) != 0 {
		t.Fatalf("jobs = %v, want empty", l.Jobs)
	}
	if len(l.Companies) != 1 || l.TotalCash != 50 {
		t.Fatalf("good fields lost: %+v", l)
	}
}

func TestEncodeDecodeIsIdempotent(t *testing.T) {
	input := `{
		"totalCash": 1000,
		"companies": [{"id":"c1","name":"ACME"}],
		"jobs": [{"id":"j1","name":"Cephe","customer":"X","company":"WARDA","invoiceStatus":"kesildi","amount":1000,"collected":200}],
		"payments": [{"id":"p1","day":"son-gun","recipient":"SGK","description":"","category":"Sigorta","amount":300,"isRecurring":true}],
		"monthlyPaymentStatus": {"2025-01": {"payment_p1": {"status":"tamamlandı","actualDate":"2025-01-30","paymentMethod":"banka"}}},
		"notes": [{"id":"note-0","text":"ara"}],
		"fixedExpenses": {"salary": 10, "insurance": 0, "loan": 0, "card": 0}
	}`
	l, warnings := DecodeLedger([]byte(input))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	first, err := EncodeLedger(l)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := DecodeLedger(first)
	second, err := EncodeLedger(again)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("encode not idempotent:\n%s\n%s", first, second)
	}
}

func TestPaymentStatusBookWireShape(t *testing.T) {
	ym := YearMonth{Year: 2025, Month: 3}
	date := "2025-03-05"
	book := PaymentStatusBook{
		{Month: ym, PaymentID: "abc"}: {Status: PaymentCompleted, ActualDate: &date},
	}
	b, err := json.Marshal(book)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"2025-03":{"payment_abc":{"status":"tamamlandı","actualDate":"2025-03-05","paymentMethod":null}}}`
	if string(b) != want {
		t.Fatalf("marshal = %s, want %s", b, want)
	}

	var back PaymentStatusBook
	if err := json.Unmarshal([]byte(`{"2025-03":{"payment_abc":{"status":"tamamlandı"}},"bozuk":{"payment_x":{}}}`), &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 {
		t.Fatalf("len = %d, want 1 (bad month skipped)", len(back))
	}
	if back.State(ym, "abc") != PaymentCompleted {
		t.Fatalf("state = %q", back.State(ym, "abc"))
	}
	if back.State(ym, "other") != PaymentPending {
		t.Fatal("missing entry should be pending")
	}
}

func TestPaymentDay(t *testing.T) {
	feb := YearMonth{Year: 2025, Month: 2}
	tests := []struct {
		day   PaymentDay
		valid bool
		inFeb int
	}{
		{"1", true, 1},
		{"15", true, 15},
		{"31", true, 28},
		{LastDayOfMonth, true, 28},
		{"0", false, 1},
		{"32", false, 28},
		{"abc", false, 1},
	}
	for _, tt := range tests {
		if got := tt.day.Valid(); got != tt.valid {
			t.Errorf("%q.Valid() = %v, want %v", tt.day, got, tt.valid)
		}
		if got := tt.day.In(feb); got != tt.inFeb {
			t.Errorf("%q.In(feb) = %d, want %d", tt.day, got, tt.inFeb)
		}
	}

	var d PaymentDay
	if err := json.Unmarshal([]byte("12"), &d); err != nil || d != "12" {
		t.Fatalf("numeric day = %q, %v", d, err)
	}
}

func TestJobCompletionBoundary(t *testing.T) {
	tests := []struct {
		collected float64
		completed bool
	}{
		{1199.99, false},
		{1199.98, false},
		{1200, true},
		{1199.995, true},
		{1200.5, true},
	}
	for _, tt := range tests {
		j := Job{Amount: 1000, Collected: tt.collected}
		if got := j.Completed(); got != tt.completed {
			t.Errorf("collected=%v: Completed() = %v, want %v (remaining %v)", tt.collected, got, tt.completed, j.Remaining())
		}
	}
}

func TestCreditLineAvailableLimit(t *testing.T) {
	avail := 3000.0
	c := CreditLine{Name: "Kart", Limit: 10000, AvailableLimit: &avail}
	c.Normalize()
	if c.Debt != 7000 || c.AvailableLimit != nil {
		t.Fatalf("normalize = %+v", c)
	}
	if errs := c.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestCheckNormalizeShare(t *testing.T) {
	half := 0.5
	c := Check{ResponsibleParty: ResponsiblePartnership, CompanyShare: &half, Amount: 1000}
	c.Normalize()
	if c.CompanyObligation() != 500 {
		t.Fatalf("obligation = %v", c.CompanyObligation())
	}
	c = Check{CompanyShare: &half, Amount: 1000}
	c.Normalize()
	if c.Status != CheckStatusWaiting || c.CompanyObligation() != 1000 {
		t.Fatalf("company check = %+v", c)
	}
}

func TestPadNotes(t *testing.T) {
	notes := PadNotes([]Note{{ID: "note-0", Text: "a"}}, "2025-01-01T00:00:00Z")
	if len(notes) != NoteSlots {
		t.Fatalf("len = %d", len(notes))
	}
	if notes[0].Text != "a" || notes[9].ID != "note-9" {
		t.Fatalf("notes = %+v", notes)
	}
}

func TestPaymentMethodNullRoundTrip(t *testing.T) {
	input := `{"expenses":[{"id":"e1","date":"2025-03-02","category":"Cari Borç Kaydı","description":"x","payee":"A","amount":7,"paymentMethod":null},{"id":"e2","date":"2025-03-02","category":"Yakıt","description":"y","payee":"","amount":3,"paymentMethod":"nakit"}]}`
	l, warnings := DecodeLedger([]byte(input))
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if l.Expenses[0].PaymentMethod != "" || l.Expenses[1].PaymentMethod != PaymentMethodCash {
		t.Fatalf("methods = %q, %q", l.Expenses[0].PaymentMethod, l.Expenses[1].PaymentMethod)
	}

	out, err := EncodeLedger(l)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte(`"paymentMethod":null`)) || bytes.Contains(out, []byte(`"paymentMethod":""`)) {
		t.Fatalf("null method not kept: %s", out)
	}
	if !bytes.Contains(out, []byte(`"paymentMethod":"nakit"`)) {
		t.Fatalf("cash method lost: %s", out)
	}
}

func TestLoanPaymentDayRange(t *testing.T) {
	tests := []struct {
		day   int
		valid bool
	}{
		{0, false},
		{1, true},
		{31, true},
		{32, false},
	}
	for _, tt := range tests {
		l := Loan{Name: "K", Principal: 1000, Term: 12, InstallmentAmount: 100, PaymentDay: tt.day}
		if got := len(l.Validate()) == 0; got != tt.valid {
			t.Errorf("day %d: valid = %v, want %v (%v)", tt.day, got, tt.valid, l.Validate())
		}
	}
}
