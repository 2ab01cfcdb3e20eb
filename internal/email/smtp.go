package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/haemolab/lab-api/internal/config"
	"github.com/haemolab/lab-api/pkg/metrics"
)

type smtpService struct {
	dialer  *gomail.Dialer
	from    string
	metrics *metrics.Metrics
}

// NewSMTPService builds the gomail-backed sender.
func NewSMTPService(cfg config.SMTPConfig, m *metrics.Metrics) Service {
	return &smtpService{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		metrics: m,
	}
}

func (s *smtpService) send(ctx context.Context, kind, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s mail: %w", kind, err)
	}
	if s.metrics != nil {
		s.metrics.MailsSent.WithLabelValues(kind).Inc()
	}
	return nil
}

func (s *smtpService) SendPasswordReset(ctx context.Context, to string, resetLink string) error {
	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset link: %s\n\nIf you did not request this, ignore this mail.", resetLink)
	return s.send(ctx, "password_reset", to, "HaemoLab password reset", body)
}

func (s *smtpService) SendResultReady(ctx context.Context, to string, patientName string, panel string) error {
	body := fmt.Sprintf("Dear %s,\n\nYour %s test results are ready. Please log in to the patient portal to view them.", patientName, panel)
	return s.send(ctx, "result_ready", to, "Your test results are ready", body)
}

func (s *smtpService) SendWelcome(ctx context.Context, to string, name string) error {
	body := fmt.Sprintf("Dear %s,\n\nYour HaemoLab account has been created.", name)
	return s.send(ctx, "welcome", to, "Welcome to HaemoLab", body)
}
