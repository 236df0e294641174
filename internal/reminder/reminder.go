package reminder

import (
	"context"
	"fmt"
	"time"

	"warda-panel/internal/dashboard"
	"warda-panel/internal/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Source: hatırlatıcının ihtiyaç duyduğu ledger işlemleri
type Source interface {
	dashboard.Source
	SeedMonthlyStatuses(ctx context.Context, ym models.YearMonth) (int, error)
}

type Digest struct {
	Date     string                      `json:"date"`
	Seeded   int                         `json:"seeded"`
	Upcoming []dashboard.UpcomingPayment `json:"upcoming"`
	Overdue  []dashboard.PaymentRow      `json:"overdue"`
}

func (d Digest) Empty() bool {
	return len(d.Upcoming) == 0 && len(d.Overdue) == 0
}

func (d Digest) Total() float64 {
	var total float64
	for _, p := range d.Upcoming {
		total += p.Amount
	}
	for _, p := range d.Overdue {
		total += p.Amount
	}
	return total
}

const runTimeout = time.Minute

type Reminder struct {
	src      Source
	notifier Notifier // nil ise sadece log
	logger   *logrus.Logger
	cron     *cron.Cron
}

// New zamanlamayı doğrular; "0 8 * * *" gibi standart 5 alanlı cron ifadesi bekler.
func New(src Source, notifier Notifier, logger *logrus.Logger, schedule string) (*Reminder, error) {
	r := &Reminder{
		src:      src,
		notifier: notifier,
		logger:   logger,
		cron:     cron.New(),
	}
	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return nil, fmt.Errorf("geçersiz REMINDER_SCHEDULE %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Reminder) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if _, err := r.RunOnce(ctx); err != nil {
		r.logger.WithError(err).Error("Ödeme hatırlatıcı çalıştırılamadı")
	}
}

// RunOnce bu ayın durumlarını oluşturur, yaklaşan/gecikmiş ödemeleri
// toplar ve varsa bildirimi gönderir.
func (r *Reminder) RunOnce(ctx context.Context) (Digest, error) {
	now := r.src.Now()
	seeded, err := r.src.SeedMonthlyStatuses(ctx, models.YearMonthOf(now))
	if err != nil {
		return Digest{}, fmt.Errorf("aylık ödeme durumları oluşturulamadı: %w", err)
	}

	l := r.src.Snapshot()
	d := Digest{
		Date:     now.Format(models.DateLayout),
		Seeded:   seeded,
		Upcoming: dashboard.UpcomingPayments(l, now, dashboard.DefaultUpcomingDays),
		Overdue:  dashboard.OverduePayments(l, now),
	}

	r.logger.WithFields(logrus.Fields{
		"seeded":   d.Seeded,
		"upcoming": len(d.Upcoming),
		"overdue":  len(d.Overdue),
	}).Info("Ödeme hatırlatıcı çalıştı")
	for _, p := range d.Overdue {
		r.logger.WithFields(logrus.Fields{
			"payment_id": p.ID,
			"recipient":  p.Recipient,
			"due_date":   p.DueDate,
			"amount":     p.Amount,
		}).Warn("Gecikmiş ödeme")
	}

	if r.notifier == nil || d.Empty() {
		return d, nil
	}
	if err := r.notifier.Notify(ctx, d); err != nil {
		return d, err
	}
	return d, nil
}

func (r *Reminder) Start() {
	r.cron.Start()
	r.logger.Info("Ödeme hatırlatıcı başlatıldı")
}

// Stop çalışan bir iş varsa bitmesini ctx süresince bekler.
func (r *Reminder) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}
