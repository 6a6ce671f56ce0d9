package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/circuit_breaker"
)

type Mailer interface {
	BookingReceived(b model.Booking, c model.Customer) error
	BookingConfirmed(b model.Booking, c model.Customer) error
}

// NewMailer returns an SMTP mailer, or a logging stub when no SMTP host
// is configured.
func NewMailer(cfg config.SMTP, log *zap.Logger) Mailer {
	if cfg.Host == "" {
		return &nopMailer{log: log.Named("mailer")}
	}
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cb:     circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

type smtpMailer struct {
	cfg    config.SMTP
	dialer *gomail.Dialer
	cb     circuit_breaker.CircuitBreaker
}

func (m *smtpMailer) BookingReceived(b model.Booking, c model.Customer) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your booking request %s for %s.\nPickup: %s\nReturn: %s\nEstimated total: %s\n\n"+
			"We will confirm availability shortly.",
		c.FirstName, b.Number, b.VehicleName,
		b.StartAt.Format("02 Jan 2006 15:04"), b.EndAt.Format("02 Jan 2006 15:04"),
		b.TotalPrice.StringFixed(2),
	)
	return m.send(c.Email, fmt.Sprintf("Booking request %s received", b.Number), body)
}

func (m *smtpMailer) BookingConfirmed(b model.Booking, c model.Customer) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking %s is confirmed.\nPickup: %s\nReturn: %s\nTotal: %s\n\nSee you soon!",
		c.FirstName, b.Number,
		b.StartAt.Format("02 Jan 2006 15:04"), b.EndAt.Format("02 Jan 2006 15:04"),
		b.TotalPrice.StringFixed(2),
	)
	return m.send(c.Email, fmt.Sprintf("Booking %s confirmed", b.Number), body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.cb.Call(func() error {
		return m.dialer.DialAndSend(msg)
	})
}

type nopMailer struct {
	log *zap.Logger
}

func (m *nopMailer) BookingReceived(b model.Booking, c model.Customer) error {
	m.log.Info("skip mail: booking received", zap.String("number", b.Number), zap.String("email", c.Email))
	return nil
}

func (m *nopMailer) BookingConfirmed(b model.Booking, c model.Customer) error {
	m.log.Info("skip mail: booking confirmed", zap.String("number", b.Number), zap.String("email", c.Email))
	return nil
}
