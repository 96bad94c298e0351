package services

import (
	"fmt"

	"marlink_backend/internal/config"
	"marlink_backend/internal/logger"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"

	"gopkg.in/gomail.v2"
)

// MailSender abstracts the SMTP dialer so the relay can be tested
// without a live mail server.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type ContactService interface {
	Send(req *dto.ContactRequest) error
	Config() *dto.ContactConfig
}

type ContactServiceImpl struct {
	cfg    *config.Config
	sender MailSender
}

func NewContactService(cfg *config.Config) ContactService {
	return &ContactServiceImpl{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Contact.SMTPHost, cfg.Contact.SMTPPort, cfg.Contact.SMTPUser, cfg.Contact.SMTPPassword),
	}
}

// NewContactServiceWithSender injects a custom sender. Used by tests.
func NewContactServiceWithSender(cfg *config.Config, sender MailSender) ContactService {
	return &ContactServiceImpl{cfg: cfg, sender: sender}
}

// Send relays a contact form submission to the configured recipient.
func (s *ContactServiceImpl) Send(req *dto.ContactRequest) error {
	if s.cfg.Contact.Recipient == "" {
		return apperrors.NewServiceUnavailableError("Contact form is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Contact.FromEmail)
	m.SetHeader("To", s.cfg.Contact.Recipient)
	m.SetHeader("Reply-To", req.Email)
	m.SetHeader("Subject", fmt.Sprintf("%s Message from %s", s.cfg.Contact.SubjectPrefix, req.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		req.Name, req.Email, req.Phone, req.Message,
	))

	if err := s.sender.DialAndSend(m); err != nil {
		logger.WithError(err).Error("contact relay failed")
		return apperrors.NewServiceUnavailableError("Could not deliver your message, please try again later")
	}

	return nil
}

func (s *ContactServiceImpl) Config() *dto.ContactConfig {
	return &dto.ContactConfig{
		Recipient:     s.cfg.Contact.Recipient,
		SubjectPrefix: s.cfg.Contact.SubjectPrefix,
	}
}
