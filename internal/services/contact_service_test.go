package services

import (
	"net/http"
	"testing"

	"marlink_backend/internal/config"
	"marlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func contactConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Contact.FromEmail = "noreply@marlink.example"
	cfg.Contact.Recipient = "office@marlink.example"
	cfg.Contact.SubjectPrefix = "[Website Contact]"
	return cfg
}

func TestContactService_SendRelaysMessage(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactServiceWithSender(contactConfig(), sender)

	err := svc.Send(&dto.ContactRequest{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Phone:   "+7 700 000 0000",
		Message: "Please quote a 40ft container to Aktau.",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	m := sender.sent[0]
	assert.Equal(t, []string{"office@marlink.example"}, m.GetHeader("To"))
	assert.Equal(t, []string{"jamie@example.com"}, m.GetHeader("Reply-To"))
	assert.Contains(t, m.GetHeader("Subject")[0], "[Website Contact]")
	assert.Contains(t, m.GetHeader("Subject")[0], "Jamie Doe")
}

func TestContactService_SendWithoutRecipient(t *testing.T) {
	cfg := contactConfig()
	cfg.Contact.Recipient = ""
	sender := &fakeSender{}
	svc := NewContactServiceWithSender(cfg, sender)

	err := svc.Send(&dto.ContactRequest{Name: "x", Email: "x@example.com", Message: "hi"})
	assertHTTPCode(t, err, http.StatusServiceUnavailable)
	assert.Empty(t, sender.sent)
}

func TestContactService_SMTPFailureIsServiceUnavailable(t *testing.T) {
	sender := &fakeSender{err: assert.AnError}
	svc := NewContactServiceWithSender(contactConfig(), sender)

	err := svc.Send(&dto.ContactRequest{Name: "x", Email: "x@example.com", Message: "hi"})
	assertHTTPCode(t, err, http.StatusServiceUnavailable)
}

func TestContactService_ConfigIsPublicSlice(t *testing.T) {
	svc := NewContactServiceWithSender(contactConfig(), &fakeSender{})

	cc := svc.Config()
	assert.Equal(t, "office@marlink.example", cc.Recipient)
	assert.Equal(t, "[Website Contact]", cc.SubjectPrefix)
}
