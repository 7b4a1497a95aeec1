package mail

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP settings for outbound mail (password reset links).
type Config struct {
	Enable bool   `yaml:"enable"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	From   string `yaml:"from"`
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends emails via SMTP. When disabled, Send is a no-op so local
// environments work without a mail provider.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}

	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

// PasswordReset builds the reset-link email sent by forgot-password.
func PasswordReset(to, link string) Message {
	return Message{
		To:      []string{to},
		Subject: "Reset your admin password",
		HTML: fmt.Sprintf(
			"<p>A password reset was requested for your account.</p>"+
				"<p><a href=%q>Reset password</a> (valid for one hour)</p>"+
				"<p>If you did not request this, you can ignore this email.</p>", link),
	}
}
