package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"warda-panel/internal/audit"
	"warda-panel/internal/database"
	"warda-panel/internal/models"

	"github.com/sirupsen/logrus"
)

type failingStore struct {
	database.MemoryStore
	fail bool
}

func (s *failingStore) Save(ctx context.Context, data []byte) error {
	if s.fail {
		return errors.New("disk dolu")
	}
	return s.MemoryStore.Save(ctx, data)
}

var fixedNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(t *testing.T, store database.Store) *Service {
	t.Helper()
	n := 0
	svc := NewService(store, audit.NewJournal(50), quietLogger(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc
}

func mustCreate(t *testing.T, svc *Service, col models.Collection, body string) models.Record {
	t.Helper()
	rec, err := svc.Create(context.Background(), col, []byte(body))
	if err != nil {
		t.Fatalf("Create(%s): %v", col, err)
	}
	return rec
}

func TestLoadEmptyStoreSeedsCash(t *testing.T) {
	svc := newTestService(t, database.NewMemoryStore(nil))
	if got := svc.Snapshot().TotalCash; got != models.DefaultTotalCash {
		t.Fatalf("TotalCash = %v, want %v", got, models.DefaultTotalCash)
	}
}

func TestCashDeltaAccounting(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore([]byte(`{"totalCash":1000,"companies":[{"id":"c","name":"A"}]}`)))

	cash := func() float64 { return svc.Snapshot().TotalCash }

	inc := mustCreate(t, svc, models.CollectionIncomes,
		`{"date":"2025-03-01","category":"Hakediş","description":"Mart","amount":250,"paymentMethod":"nakit"}`)
	if cash() != 1250 {
		t.Fatalf("after cash income: %v", cash())
	}

	// nakit -> banka: etkisi geri alınır
	if _, err := svc.Update(ctx, models.CollectionIncomes, inc.RecordID(),
		[]byte(`{"date":"2025-03-01","category":"Hakediş","description":"Mart","amount":250,"paymentMethod":"banka"}`)); err != nil {
		t.Fatal(err)
	}
	if cash() != 1000 {
		t.Fatalf("after switching to bank: %v", cash())
	}

	exp := mustCreate(t, svc, models.CollectionExpenses,
		`{"date":"2025-03-02","category":"Yakıt","description":"Mazot","payee":"","amount":40,"paymentMethod":"nakit"}`)
	if cash() != 960 {
		t.Fatalf("after cash expense: %v", cash())
	}

	if _, err := svc.Update(ctx, models.CollectionExpenses, exp.RecordID(),
		[]byte(`{"date":"2025-03-02","category":"Yakıt","description":"Mazot","payee":"","amount":100,"paymentMethod":"nakit"}`)); err != nil {
		t.Fatal(err)
	}
	if cash() != 900 {
		t.Fatalf("after expense amount change: %v", cash())
	}

	if err := svc.Delete(ctx, models.CollectionExpenses, exp.RecordID()); err != nil {
		t.Fatal(err)
	}
	if cash() != 1000 {
		t.Fatalf("after expense delete: %v", cash())
	}

	// Nakit olmayan kayıtlar kasayı etkilemez
	mustCreate(t, svc, models.CollectionExpenses,
		`{"date":"2025-03-02","category":"Kira","description":"Ofis","amount":500,"paymentMethod":"havale-eft"}`)
	if cash() != 1000 {
		t.Fatalf("non-cash expense changed cash: %v", cash())
	}
}

func TestCompanyDeleteBlockedByExpenses(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))

	company := mustCreate(t, svc, models.CollectionCompanies, `{"name":"  acme yapı "}`)
	if got := company.(*models.Company).Name; got != "ACME YAPI" {
		t.Fatalf("name = %q, want upper-cased and trimmed", got)
	}
	exp := mustCreate(t, svc, models.CollectionExpenses,
		`{"date":"2025-03-02","category":"Cari Borç Kaydı","description":"Demir","payee":"ACME YAPI","amount":700,"paymentMethod":"banka"}`)

	err := svc.Delete(ctx, models.CollectionCompanies, company.RecordID())
	if !errors.Is(err, ErrReferenced) {
		t.Fatalf("Delete err = %v, want ErrReferenced", err)
	}
	if len(svc.Snapshot().Companies) != 1 {
		t.Fatal("company removed despite reference")
	}

	if err := svc.Delete(ctx, models.CollectionExpenses, exp.RecordID()); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, models.CollectionCompanies, company.RecordID()); err != nil {
		t.Fatalf("Delete after clearing expenses: %v", err)
	}
}

func TestValidationLeavesStateUnchanged(t *testing.T) {
	svc := newTestService(t, database.NewMemoryStore(nil))
	before := svc.Snapshot()

	_, err := svc.Create(context.Background(), models.CollectionJobs, []byte(`{"name":"","customer":"X","company":"WARDA","amount":0}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := map[string]bool{"İş adı boş olamaz": true, "Tutar sıfırdan büyük olmalıdır": true}
	for _, m := range verr.Messages {
		delete(want, m)
	}
	if len(want) != 0 {
		t.Fatalf("missing messages %v in %v", want, verr.Messages)
	}
	if len(svc.Snapshot().Jobs) != len(before.Jobs) {
		t.Fatal("invalid job was stored")
	}

	if _, err := svc.Create(context.Background(), models.CollectionJobs, []byte(`not json`)); !errors.As(err, &verr) {
		t.Fatalf("malformed body err = %v", err)
	}
	if _, err := svc.Create(context.Background(), models.Collection("yok"), []byte(`{}`)); !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("unknown collection err = %v", err)
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))

	if _, err := svc.Update(ctx, models.CollectionCompanies, "yok", []byte(`{"name":"A"}`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update err = %v", err)
	}
	if err := svc.Delete(ctx, models.CollectionCompanies, "yok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete err = %v", err)
	}
	if _, err := svc.Get(models.CollectionCompanies, "yok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get err = %v", err)
	}
}

func TestUpdateKeepsID(t *testing.T) {
	svc := newTestService(t, database.NewMemoryStore(nil))
	rec := mustCreate(t, svc, models.CollectionCompanies, `{"name":"A"}`)

	updated, err := svc.Update(context.Background(), models.CollectionCompanies, rec.RecordID(), []byte(`{"id":"baska","name":"B"}`))
	if err != nil {
		t.Fatal(err)
	}
	if updated.RecordID() != rec.RecordID() {
		t.Fatalf("id changed to %q", updated.RecordID())
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	store := &failingStore{}
	svc := newTestService(t, store)
	store.fail = true

	rec, err := svc.Create(context.Background(), models.CollectionCompanies, []byte(`{"name":"A"}`))
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("err = %v, want ErrPersist", err)
	}
	if rec == nil || len(svc.Snapshot().Companies) != 1 {
		t.Fatal("mutation should be retained in memory")
	}

	store.fail = false
	if err := svc.Save(context.Background()); err != nil {
		t.Fatalf("retry Save: %v", err)
	}
	data, _ := store.Load(context.Background())
	l, _ := models.DecodeLedger(data)
	if len(l.Companies) != 1 {
		t.Fatalf("retried save did not persist: %s", data)
	}
}

// originalDocument: tarayıcı tarafının yazdığı database.json biçiminde bir belge
const originalDocument = `{
  "totalCash": 84250.5,
  "companies": [{"id": "1718000000000abc123def", "name": "DEMIR ÇELIK"}],
  "jobs": [{"id": "j1", "name": "Okul çatısı", "customer": "Belediye", "company": "WARDA", "invoiceStatus": "kesildi", "amount": 1000, "collected": 1199.99}],
  "cards": [{"id": "k1", "name": "Ziraat Kart", "limit": 50000, "debt": 12000}],
  "overdrafts": [{"id": "o1", "name": "Eksi Hesap", "limit": 20000, "debt": 0}],
  "checks": [{"id": "c1", "givenDate": "2025-02-01", "dueDate": "2025-04-10", "partnershipCategory": "WARDA", "company": "DEMIR ÇELIK", "checkbookName": "Halkbank", "amount": 15000, "responsibleParty": "partnership", "companyShare": 0.5, "status": "waiting"}],
  "loans": [{"id": "l1", "name": "İşletme Kredisi", "paymentDay": 15, "principal": 100000, "term": 24, "paidInstallments": 3, "installmentAmount": 5200}],
  "debts": [{"id": "d1", "to": "Ahmet", "description": "Nakliye", "amount": 750}],
  "receivables": [{"id": "r1", "from": "Mehmet", "description": "Avans", "amount": 300}],
  "expenses": [
    {"id": "e1", "date": "2025-03-02", "category": "Cari Borç Kaydı", "description": "Profil alımı", "payee": "DEMIR ÇELIK", "amount": 700, "paymentMethod": null},
    {"id": "e2", "date": "2025-03-05", "category": "Cari Borç Ödemesi", "description": "Ödeme", "payee": "DEMIR ÇELIK", "amount": 500, "paymentMethod": "nakit"}
  ],
  "incomes": [{"id": "i1", "date": "2025-03-01", "category": "Hakediş", "description": "1. hakediş", "source": "Belediye", "amount": 20000, "paymentMethod": "banka"}],
  "bilancoVarliklar": [{"id": "b1", "name": "Araç", "amount": 400000}],
  "bilancoAlacaklar": [],
  "bilancoBorclar": [],
  "payments": [
    {"id": "p1", "day": "10", "recipient": "KİRA", "description": "Ofis", "category": "Kira", "amount": 8000, "isRecurring": true},
    {"id": "p2", "day": "son-gun", "recipient": "SGK", "description": "Prim", "category": "Sigorta", "amount": 3000, "isRecurring": false, "specificMonth": "2025-03"}
  ],
  "projects": [{"id": "pr1", "name": "Spor salonu", "customer": "Vakıf", "status": "ihale", "description": "", "startDate": "2025-01-01", "endDate": "", "progress": 10, "budget": 250000, "responsible": "Ali"}],
  "notes": [{"id": "note-0", "text": "Vergi dairesini ara", "createdAt": "2025-03-01T08:00:00Z", "updatedAt": "2025-03-02T08:00:00Z"}],
  "monthlyPaymentStatus": {"2025-03": {"payment_p1": {"status": "tamamlandı", "actualDate": "2025-03-10", "paymentMethod": "banka"}, "payment_p2": {"status": "bekliyor", "actualDate": null, "paymentMethod": null}}},
  "fixedExpenses": {"salary": 45000, "insurance": 12000, "loan": 0, "card": 0}
}`

func decodeDocument(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return doc
}

func TestLoadSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore([]byte(originalDocument))
	svc := newTestService(t, store)

	if err := svc.Save(ctx); err != nil {
		t.Fatal(err)
	}
	first, _ := store.Load(ctx)

	want := decodeDocument(t, []byte(originalDocument))
	got := decodeDocument(t, first)
	for key, w := range want {
		if !reflect.DeepEqual(got[key], w) {
			t.Errorf("%s changed on load/save:\n got %v\nwant %v", key, got[key], w)
		}
	}
	if len(got) != len(want) {
		t.Errorf("keys = %d, want %d", len(got), len(want))
	}

	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save(ctx); err != nil {
		t.Fatal(err)
	}
	second, _ := store.Load(ctx)
	if string(first) != string(second) {
		t.Fatalf("second save differs:\n%s\n%s", first, second)
	}
}

func TestLoadKeepsZeroCashOfNonEmptyLedger(t *testing.T) {
	store := database.NewMemoryStore([]byte(`{"totalCash":0,"incomes":[{"id":"i","date":"2025-03-01","category":"Hakediş","description":"x","amount":5,"paymentMethod":"banka"}],"loans":[{"id":"l","name":"K","paymentDay":5,"principal":10,"term":2,"paidInstallments":0,"installmentAmount":5}]}`))
	svc := newTestService(t, store)
	if got := svc.Snapshot().TotalCash; got != 0 {
		t.Fatalf("TotalCash = %v, want 0", got)
	}
}

func TestReplaceLedger(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore(nil)
	svc := newTestService(t, store)

	raw, err := svc.RawLedger(ctx)
	if err != nil || string(raw) != "{}" {
		t.Fatalf("RawLedger = %q, %v", raw, err)
	}

	var verr *ValidationError
	if err := svc.ReplaceLedger(ctx, []byte(`[1,2]`)); !errors.As(err, &verr) {
		t.Fatalf("array body err = %v", err)
	}

	body := `{"totalCash":42,"jobs":[{"id":"j","name":"İş","customer":"M","company":"WARDA","amount":10,"collected":0}]}`
	if err := svc.ReplaceLedger(ctx, []byte(body)); err != nil {
		t.Fatal(err)
	}
	raw, _ = svc.RawLedger(ctx)
	if string(raw) != body {
		t.Fatalf("raw = %s, want body verbatim", raw)
	}
	snap := svc.Snapshot()
	if snap.TotalCash != 42 || len(snap.Jobs) != 1 {
		t.Fatalf("in-memory ledger not reloaded: %+v", snap)
	}
}

func TestReplaceLedgerDropsAuditHistory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))

	mustCreate(t, svc, models.CollectionIncomes, `{"date":"2025-03-01","category":"Hakediş","description":"x","amount":100,"paymentMethod":"nakit"}`)
	logs := svc.Journal().List(audit.Filter{})
	if len(logs) != 1 {
		t.Fatalf("logs = %d", len(logs))
	}

	if err := svc.ReplaceLedger(ctx, []byte(`{"totalCash":42}`)); err != nil {
		t.Fatal(err)
	}
	if got := svc.Journal().List(audit.Filter{}); len(got) != 0 {
		t.Fatalf("logs after replace = %+v", got)
	}
	if err := svc.Undo(ctx, logs[0].ID); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("undo of replaced history err = %v", err)
	}
	if got := svc.Snapshot().TotalCash; got != 42 {
		t.Fatalf("TotalCash = %v, want 42", got)
	}
}

func TestSetTotalCashLockedByOverdraft(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))

	if err := svc.SetTotalCash(ctx, 10); err != nil {
		t.Fatal(err)
	}
	mustCreate(t, svc, models.CollectionOverdrafts, `{"name":"KMH","limit":5000,"availableLimit":4000}`)
	if got := svc.Snapshot().Overdrafts[0].Debt; got != 1000 {
		t.Fatalf("overdraft debt = %v, want 1000", got)
	}

	if err := svc.SetTotalCash(ctx, 99); !errors.Is(err, ErrCashLocked) {
		t.Fatalf("err = %v, want ErrCashLocked", err)
	}
	if svc.Snapshot().TotalCash != 10 {
		t.Fatal("cash changed while locked")
	}
}

func TestFixedExpensesAndNotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))

	var verr *ValidationError
	if err := svc.SetFixedExpenses(ctx, models.FixedExpenses{Salary: -1}); !errors.As(err, &verr) {
		t.Fatalf("negative fixed expense err = %v", err)
	}
	if err := svc.SetFixedExpenses(ctx, models.FixedExpenses{Salary: 1000, Card: 200}); err != nil {
		t.Fatal(err)
	}
	if svc.Snapshot().FixedExpenses.Total() != 1200 {
		t.Fatal("fixed expenses not stored")
	}

	if notes := svc.Notes(); len(notes) != models.NoteSlots {
		t.Fatalf("notes = %d slots", len(notes))
	}
	note, err := svc.UpdateNote(ctx, 3, "vergi ödemesi")
	if err != nil {
		t.Fatal(err)
	}
	if note.ID != "note-3" || note.Text != "vergi ödemesi" || note.UpdatedAt == "" {
		t.Fatalf("note = %+v", note)
	}
	if _, err := svc.UpdateNote(ctx, models.NoteSlots, "x"); !errors.As(err, &verr) {
		t.Fatalf("out of range err = %v", err)
	}
}

func TestPaymentStatuses(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore(nil))
	march := models.YearMonth{Year: 2025, Month: time.March}

	oneOff := mustCreate(t, svc, models.CollectionPayments,
		`{"day":"10","recipient":"Vergi Dairesi","category":"Vergi","amount":300,"isRecurring":false}`)
	if got := oneOff.(*models.Payment).SpecificMonth; got != "2025-03" {
		t.Fatalf("specificMonth = %q, want current month", got)
	}
	recurring := mustCreate(t, svc, models.CollectionPayments,
		`{"day":"son-gun","recipient":"SGK","category":"Sigorta","amount":900,"isRecurring":true}`)

	added, err := svc.SeedMonthlyStatuses(ctx, march)
	if err != nil || added != 1 {
		t.Fatalf("seed = %d, %v; want 1 recurring payment", added, err)
	}
	if added, _ := svc.SeedMonthlyStatuses(ctx, march); added != 0 {
		t.Fatalf("second seed added %d", added)
	}

	if err := svc.CompletePayment(ctx, march, recurring.RecordID(), "", models.PaymentMethodBank); err != nil {
		t.Fatal(err)
	}
	entry := svc.Snapshot().MonthlyPaymentStatus[models.PaymentStatusKey{Month: march, PaymentID: recurring.RecordID()}]
	if entry.Status != models.PaymentCompleted || entry.ActualDate == nil || *entry.ActualDate != "2025-03-15" {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.PaymentMethod == nil || *entry.PaymentMethod != "banka" {
		t.Fatalf("payment method = %v", entry.PaymentMethod)
	}

	if err := svc.SetPaymentStatus(ctx, march, recurring.RecordID(), models.PaymentPending); err != nil {
		t.Fatal(err)
	}
	if svc.Snapshot().MonthlyPaymentStatus.State(march, recurring.RecordID()) != models.PaymentPending {
		t.Fatal("status not reset to pending")
	}

	var verr *ValidationError
	if err := svc.SetPaymentStatus(ctx, march, recurring.RecordID(), "bilinmiyor"); !errors.As(err, &verr) {
		t.Fatalf("invalid status err = %v", err)
	}
	if err := svc.CompletePayment(ctx, march, "yok", "", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing payment err = %v", err)
	}
}

func TestUndo(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, database.NewMemoryStore([]byte(`{"totalCash":1000,"companies":[{"id":"c","name":"A"}]}`)))
	cash := func() float64 { return svc.Snapshot().TotalCash }

	exp := mustCreate(t, svc, models.CollectionExpenses,
		`{"date":"2025-03-02","category":"Yakıt","description":"Mazot","amount":100,"paymentMethod":"nakit"}`)
	createLog := svc.Journal().List(audit.Filter{Action: models.AuditActionCreate})[0]

	if err := svc.Undo(ctx, createLog.ID); err != nil {
		t.Fatal(err)
	}
	if cash() != 1000 || len(svc.Snapshot().Expenses) != 0 {
		t.Fatalf("undo create: cash=%v expenses=%d", cash(), len(svc.Snapshot().Expenses))
	}
	if err := svc.Undo(ctx, createLog.ID); !errors.Is(err, audit.ErrAlreadyUndone) {
		t.Fatalf("second undo err = %v", err)
	}

	exp = mustCreate(t, svc, models.CollectionExpenses,
		`{"date":"2025-03-02","category":"Yakıt","description":"Mazot","amount":100,"paymentMethod":"nakit"}`)
	if err := svc.Delete(ctx, models.CollectionExpenses, exp.RecordID()); err != nil {
		t.Fatal(err)
	}
	deleteLog := svc.Journal().List(audit.Filter{Action: models.AuditActionDelete})[0]
	if err := svc.Undo(ctx, deleteLog.ID); err != nil {
		t.Fatal(err)
	}
	snap := svc.Snapshot()
	if len(snap.Expenses) != 1 || snap.Expenses[0].ID != exp.RecordID() {
		t.Fatalf("undo delete did not restore original id: %+v", snap.Expenses)
	}
	if cash() != 900 {
		t.Fatalf("cash after undo delete = %v", cash())
	}

	if _, err := svc.Update(ctx, models.CollectionExpenses, exp.RecordID(),
		[]byte(`{"date":"2025-03-02","category":"Yakıt","description":"Mazot","amount":300,"paymentMethod":"nakit"}`)); err != nil {
		t.Fatal(err)
	}
	updateLog := svc.Journal().List(audit.Filter{Action: models.AuditActionUpdate})[0]
	if err := svc.Undo(ctx, updateLog.ID); err != nil {
		t.Fatal(err)
	}
	if got := svc.Snapshot().Expenses[0].Amount; got != 100 {
		t.Fatalf("amount after undo update = %v", got)
	}
	if cash() != 900 {
		t.Fatalf("cash after undo update = %v", cash())
	}

	if err := svc.Undo(ctx, 9999); !errors.Is(err, audit.ErrNotFound) {
		t.Fatalf("missing log err = %v", err)
	}
}
