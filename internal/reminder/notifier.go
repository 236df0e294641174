package reminder

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"warda-panel/internal/config"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Notifier: günlük özetin iletildiği kanal
type Notifier interface {
	Notify(ctx context.Context, d Digest) error
}

// EmailNotifier özeti SMTP üzerinden REMINDER_EMAIL adresine yollar.
type EmailNotifier struct {
	cfg    *config.Config
	logger *logrus.Logger
}

func NewEmailNotifier(cfg *config.Config, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, d Digest) error {
	e := email.NewEmail()
	e.From = n.cfg.SenderEmail
	e.To = []string{n.cfg.ReminderEmail}
	e.Subject = d.Subject()
	e.Text = []byte(d.Body())

	addr := fmt.Sprintf("%s:%s", n.cfg.SMTPHost, n.cfg.SMTPPort)
	var auth smtp.Auth
	if n.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", n.cfg.SMTPUser, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		n.logger.Errorf("Hatırlatma e-postası gönderilemedi (%s): %v", n.cfg.ReminderEmail, err)
		return fmt.Errorf("e-posta gönderilemedi: %w", err)
	}

	n.logger.Infof("Hatırlatma e-postası gönderildi: %s", e.Subject)
	return nil
}

// Subject: gecikme varsa konu satırında önce o yazılır
func (d Digest) Subject() string {
	if len(d.Overdue) > 0 {
		return fmt.Sprintf("WARDA: %d gecikmiş, %d yaklaşan ödeme", len(d.Overdue), len(d.Upcoming))
	}
	return fmt.Sprintf("WARDA: %d yaklaşan ödeme", len(d.Upcoming))
}

func (d Digest) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ödeme özeti (%s)\n\n", d.Date)

	if len(d.Overdue) > 0 {
		b.WriteString("GECİKMİŞ ÖDEMELER\n")
		for _, p := range d.Overdue {
			fmt.Fprintf(&b, "- %s  %s (%s)  %.2f TL\n", p.DueDate, p.Recipient, p.Category, p.Amount)
		}
		b.WriteString("\n")
	}
	if len(d.Upcoming) > 0 {
		b.WriteString("YAKLAŞAN ÖDEMELER\n")
		for _, p := range d.Upcoming {
			fmt.Fprintf(&b, "- %s  %s (%s)  %.2f TL  [%s]\n", p.DueDate, p.Recipient, p.Category, p.Amount, dayText(p.DaysUntil))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Toplam: %.2f TL\n", d.Total())
	return b.String()
}

func dayText(days int) string {
	switch days {
	case 0:
		return "BUGÜN"
	case 1:
		return "YARIN"
	default:
		return fmt.Sprintf("%d GÜN", days)
	}
}
