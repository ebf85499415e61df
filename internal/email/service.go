// Package email sends the portfolio's transactional mail via SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
	// ContactTo receives contact-form notifications (the site owner).
	ContactTo string
}

// Service provides email sending
type Service struct {
	config Config
	server string
	auth   smtp.Auth
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewService(config Config) *Service {
	return &Service{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   smtp.PlainAuth("", config.Username, config.Password, config.Host),
		send:   smtp.SendMail,
	}
}

// IsConfigured returns true if email is configured
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// SendHTMLEmail sends an HTML email with a plain-text fallback part.
func (s *Service) SendHTMLEmail(to []string, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	boundary := "boundary-portfolio"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary)
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "Por favor, abra este email em um cliente com suporte a HTML.\r\n")
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "%s\r\n", htmlBody)
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return s.send(s.server, s.auth, s.config.From, to, msg.Bytes())
}

// ContactMessage is one contact-form submission. Fields are interpolated
// into the mail bodies through html/template, so user text is always
// HTML-escaped.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// SendContactEmails sends the owner notification and the submitter
// confirmation for one contact-form submission.
func (s *Service) SendContactEmails(msg ContactMessage) error {
	if err := s.SendContactNotification(msg); err != nil {
		return err
	}
	return s.SendContactConfirmation(msg)
}

// SendContactNotification mails the submission to the site owner.
func (s *Service) SendContactNotification(msg ContactMessage) error {
	if s.config.ContactTo == "" {
		return fmt.Errorf("contact destination not configured")
	}
	html, err := renderTemplate(contactNotificationTemplate, msg)
	if err != nil {
		return fmt.Errorf("render contact notification: %w", err)
	}
	subject := "Nova mensagem de contato: " + msg.Name
	return s.SendHTMLEmail([]string{s.config.ContactTo}, subject, html)
}

// SendContactConfirmation mails a receipt back to the submitter.
func (s *Service) SendContactConfirmation(msg ContactMessage) error {
	html, err := renderTemplate(contactConfirmationTemplate, msg)
	if err != nil {
		return fmt.Errorf("render contact confirmation: %w", err)
	}
	return s.SendHTMLEmail([]string{msg.Email}, "Mensagem recebida!", html)
}

// PasswordResetData holds data for the reset template.
type PasswordResetData struct {
	UserName string
	ResetURL string
}

// SendPasswordResetEmail sends a password reset email.
func (s *Service) SendPasswordResetEmail(to, userName, resetURL string) error {
	html, err := renderTemplate(passwordResetEmailTemplate, PasswordResetData{
		UserName: userName,
		ResetURL: resetURL,
	})
	if err != nil {
		return fmt.Errorf("render password reset template: %w", err)
	}
	return s.SendHTMLEmail([]string{to}, "Redefina sua senha", html)
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t := template.Must(template.New("email").Parse(tmpl))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
