package email

import (
	"bytes"
	"fmt"
	"go-portfolio-backend/config"
	"html/template"
	"net/smtp"
)

// EmailService notifies the portfolio owner of new contact messages
// via SMTP. Entirely optional: when unconfigured, callers skip it.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// MessageNotification holds the data for new-message notifications
type MessageNotification struct {
	SenderName  string
	SenderEmail string
	Message     string
}

func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		toEmail:   cfg.NotifyEmailTo,
	}
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Portfolio Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #222; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #222; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Portfolio Message</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the portfolio contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

// IsConfigured reports whether SMTP settings are complete enough to
// attempt a send.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// SendMessageNotification emails the owner about a new contact
// message.
func (s *EmailService) SendMessageNotification(data MessageNotification) error {
	tmpl, err := template.New("notification").Parse(notificationTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: New message from %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail, s.toEmail, data.SenderEmail, data.SenderName, body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
