package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"

	"go.uber.org/zap"
)

// GenerateRandomCode returns a numeric one-time code of the given length.
func GenerateRandomCode(length int) string {
	code := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			code += "0"
			continue
		}
		code += n.String()
	}
	return code
}

// EmailSender delivers verification codes. The SMTP implementation is
// swapped for a mock in tests.
type EmailSender interface {
	SendVerificationCode(to, code string) error
}

// EmailConfig holds SMTP settings.
type EmailConfig struct {
	SmtpServer  string
	SmtpPort    string
	SenderEmail string
	SenderPass  string
	SenderName  string
}

func LoadEmailConfig() (*EmailConfig, error) {
	config := &EmailConfig{
		SmtpServer:  os.Getenv("SMTP_SERVER"),
		SmtpPort:    os.Getenv("SMTP_PORT"),
		SenderEmail: os.Getenv("SMTP_EMAIL"),
		SenderPass:  os.Getenv("SMTP_PASSWORD"),
		SenderName:  os.Getenv("SMTP_SENDER_NAME"),
	}

	if config.SmtpServer == "" {
		config.SmtpServer = "smtp.gmail.com"
	}
	if config.SmtpPort == "" {
		config.SmtpPort = "587"
	}
	if config.SenderName == "" {
		config.SenderName = "AlmirahShop"
	}

	if config.SenderEmail == "" {
		return nil, fmt.Errorf("SMTP_EMAIL environment variable not set")
	}
	if config.SenderPass == "" {
		return nil, fmt.Errorf("SMTP_PASSWORD environment variable not set")
	}

	return config, nil
}

// LogEmailSender logs codes instead of sending them. Used when SMTP is
// not configured, typically in local development.
type LogEmailSender struct {
	logger *zap.Logger
}

func NewLogEmailSender(logger *zap.Logger) *LogEmailSender {
	return &LogEmailSender{logger: logger}
}

func (s *LogEmailSender) SendVerificationCode(to, code string) error {
	s.logger.Info("Verification code (SMTP disabled)",
		zap.String("to", to),
		zap.String("code", code),
	)
	return nil
}

type SMTPEmailSender struct {
	config *EmailConfig
}

func NewSMTPEmailSender(config *EmailConfig) *SMTPEmailSender {
	return &SMTPEmailSender{config: config}
}

func (s *SMTPEmailSender) SendVerificationCode(to, code string) error {
	subject := fmt.Sprintf("Email Verification - %s", s.config.SenderName)
	from := fmt.Sprintf("%s <%s>", s.config.SenderName, s.config.SenderEmail)
	htmlBody := buildVerificationEmailHTML(s.config.SenderName, code)

	message := fmt.Sprintf("From: %s\r\n", from)
	message += fmt.Sprintf("To: %s\r\n", to)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=UTF-8\r\n"
	message += "\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.config.SenderEmail, s.config.SenderPass, s.config.SmtpServer)
	if err := smtp.SendMail(
		s.config.SmtpServer+":"+s.config.SmtpPort,
		auth,
		s.config.SenderEmail,
		[]string{to},
		[]byte(message),
	); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func buildVerificationEmailHTML(brand, code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>%s</h2>
    <p>Use the code below to verify your email address:</p>
    <p style="font-size: 32px; font-weight: bold; letter-spacing: 4px;">%s</p>
    <p>This code expires in 15 minutes.</p>
    <p>If you did not create this account, please ignore this email.</p>
  </div>
</body>
</html>`, brand, code)
}
