package notifications

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/riyazmahammad/dolphine-cafe/domain"
)

// SMTPServiceImpl implements domain.NotificationService over plain SMTP
type SMTPServiceImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host string, port int, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendOTPEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendOTPEmail(to, code string) error {
	subject := "CafeteriaHub - Email Verification"
	body := fmt.Sprintf("Your OTP for email verification is: %s\n\n"+
		"This OTP will expire in 10 minutes.\n\n"+
		"If you didn't request this, please ignore this email.", code)

	return s.send(to, subject, body)
}

func (s *SMTPServiceImpl) send(to, subject, body string) error {
	// If the SMTP host is not configured, log instead of sending.
	if s.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, to, subject, body))

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
