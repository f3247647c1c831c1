package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/wb-go/wbf/logger"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/config"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

// Mailer sends client-facing booking emails over SMTP. With no host
// configured it logs and drops messages, same as the disabled bot below.
type Mailer struct {
	cfg    config.SMTPConfig
	logger logger.Logger
}

func NewMailer(cfg config.SMTPConfig, logger logger.Logger) *Mailer {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
	}
	return &Mailer{cfg: cfg, logger: logger}
}

func (m *Mailer) NotifyBookingCreated(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	subject := "Booking request received"
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your booking request for %s on %s, %s-%s.\n"+
			"Its status is Pending until an administrator confirms it. We will be in touch.",
		b.ClientName, v.Name, b.EventDate.Format("2006-01-02"), b.StartTime, b.EndTime,
	)
	m.send(ctx, b.ContactEmail, subject, body)
}

func (m *Mailer) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	var subject, body string
	switch b.Status {
	case domain.BookingStatusConfirmed:
		subject = "Booking confirmed"
		body = fmt.Sprintf(
			"Hello %s,\n\nYour booking of %s on %s, %s-%s is confirmed. See you there!",
			b.ClientName, v.Name, b.EventDate.Format("2006-01-02"), b.StartTime, b.EndTime,
		)
	case domain.BookingStatusCancelled:
		subject = "Booking cancelled"
		body = fmt.Sprintf(
			"Hello %s,\n\nYour booking of %s on %s, %s-%s has been cancelled.",
			b.ClientName, v.Name, b.EventDate.Format("2006-01-02"), b.StartTime, b.EndTime,
		)
	default:
		return
	}
	m.send(ctx, b.ContactEmail, subject, body)
}

func (m *Mailer) SendVerificationCode(ctx context.Context, email, code string) {
	subject := "Your verification code"
	body := fmt.Sprintf(
		"Your verification code is: %s\n\nThis code expires in 10 minutes. "+
			"If you did not request it, ignore this email.",
		code,
	)
	m.send(ctx, email, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) {
	if m.cfg.Host == "" {
		m.logger.Debug("email skipped (smtp disabled)",
			logger.String("to", to),
			logger.String("subject", subject),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		m.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		m.logger.Error("failed to send email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
