package email

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/healsmart/healsmart-api/internal/config"
)

// Service sends transactional mail. Delivery is best-effort; callers log
// failures and move on.
type Service interface {
	SendAppointmentConfirmation(to, patientName, confirmedTime string) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg config.EmailConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendAppointmentConfirmation(to, patientName, confirmedTime string) error {
	if !strings.Contains(to, "@") {
		return fmt.Errorf("contact %q is not an email address", to)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your appointment has been confirmed")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been approved for %s.\n\nHealSmart Team",
		patientName, confirmedTime,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
