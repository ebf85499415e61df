package email

import (
	"net/smtp"
	"strings"
	"testing"
)

func newCapturingService(cfg Config) (*Service, *[][]byte, *[][]string) {
	svc := NewService(cfg)
	var messages [][]byte
	var recipients [][]string
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		messages = append(messages, msg)
		recipients = append(recipients, to)
		return nil
	}
	return svc, &messages, &recipients
}

func configured() Config {
	return Config{
		Host:      "smtp.example.com",
		Port:      "587",
		From:      "no-reply@example.com",
		FromName:  "Portfólio",
		ContactTo: "owner@example.com",
	}
}

func TestIsConfigured(t *testing.T) {
	if NewService(Config{}).IsConfigured() {
		t.Error("empty config must not be configured")
	}
	if !NewService(configured()).IsConfigured() {
		t.Error("full config must be configured")
	}
}

func TestSendHTMLEmailNotConfigured(t *testing.T) {
	svc := NewService(Config{})
	if err := svc.SendHTMLEmail([]string{"x@y.com"}, "s", "<p>b</p>"); err == nil {
		t.Error("expected error when not configured")
	}
}

func TestSendContactEmailsSendsBoth(t *testing.T) {
	svc, messages, recipients := newCapturingService(configured())

	err := svc.SendContactEmails(ContactMessage{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Olá",
	})
	if err != nil {
		t.Fatalf("SendContactEmails: %v", err)
	}

	if len(*messages) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(*messages))
	}
	if (*recipients)[0][0] != "owner@example.com" {
		t.Errorf("notification recipient: got %v", (*recipients)[0])
	}
	if (*recipients)[1][0] != "ana@example.com" {
		t.Errorf("confirmation recipient: got %v", (*recipients)[1])
	}
	if !strings.Contains(string((*messages)[0]), "Nova mensagem de contato: Ana") {
		t.Error("notification subject missing")
	}
}

func TestContactBodiesEscapeHTML(t *testing.T) {
	svc, messages, _ := newCapturingService(configured())

	err := svc.SendContactEmails(ContactMessage{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: `<script>alert("xss")</script>`,
	})
	if err != nil {
		t.Fatalf("SendContactEmails: %v", err)
	}

	body := string((*messages)[0])
	if strings.Contains(body, "<script>") {
		t.Error("raw script tag leaked into email body")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected escaped script tag in email body")
	}
}

func TestNotificationRequiresContactDestination(t *testing.T) {
	cfg := configured()
	cfg.ContactTo = ""
	svc, _, _ := newCapturingService(cfg)

	if err := svc.SendContactNotification(ContactMessage{Name: "A", Email: "a@b.com", Message: "m"}); err == nil {
		t.Error("expected error without contact destination")
	}
}

func TestPasswordResetEmail(t *testing.T) {
	svc, messages, recipients := newCapturingService(configured())

	if err := svc.SendPasswordResetEmail("owner@example.com", "Owner", "https://example.com/reset?token=abc"); err != nil {
		t.Fatalf("SendPasswordResetEmail: %v", err)
	}
	if len(*messages) != 1 || (*recipients)[0][0] != "owner@example.com" {
		t.Fatalf("unexpected send: %v", *recipients)
	}
	if !strings.Contains(string((*messages)[0]), "https://example.com/reset?token=abc") {
		t.Error("reset URL missing from body")
	}
}
