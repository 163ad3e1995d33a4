package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the transport settings for the invitation mailer.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// AcceptURL is the base URL the invitation link points at; the token is
	// appended as a query parameter.
	AcceptURL string
}

// Configured reports whether enough settings are present to send mail.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.FromEmail != ""
}

const invitationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>You're invited to {{.ProjectName}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .cta { display: inline-block; padding: 12px 24px; background: #3498db; color: #fff; text-decoration: none; border-radius: 4px; }
        .message { border-left: 3px solid #eee; padding-left: 12px; color: #555; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>You've been invited to join {{.ProjectName}}</h2>
    </div>

    <div class="content">
        <p>Hello,</p>
        <p>You've been invited to join the project <strong>{{.ProjectName}}</strong> as <strong>{{.Role}}</strong>.</p>
        {{if .Message}}<p class="message">{{.Message}}</p>{{end}}

        <p><a class="cta" href="{{.AcceptLink}}">Accept invitation</a></p>

        <p>This invitation expires on {{.Expires}}.</p>
    </div>

    <div class="footer">
        <p>If you weren't expecting this invitation, you can safely ignore this email.</p>
        <p>&copy; {{.Year}} CrewHub. All rights reserved.</p>
    </div>
</body>
</html>`

// SMTPNotifier sends invitation mail over SMTP.
type SMTPNotifier struct {
	cfg  SMTPConfig
	tmpl *template.Template
}

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	tmpl, err := template.New("invitation").Parse(invitationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse invitation template: %w", err)
	}
	return &SMTPNotifier{cfg: cfg, tmpl: tmpl}, nil
}

func (n *SMTPNotifier) NotifyInvitation(ctx context.Context, inv Invitation) error {
	var body bytes.Buffer
	err := n.tmpl.Execute(&body, map[string]any{
		"ProjectName": inv.ProjectName,
		"Role":        inv.Role,
		"Message":     inv.Message,
		"AcceptLink":  fmt.Sprintf("%s?token=%s", n.cfg.AcceptURL, inv.Token),
		"Expires":     inv.ExpiresAt.Format("January 2, 2006"),
		"Year":        time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("render invitation mail: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.FromEmail, n.cfg.FromName))
	m.SetHeader("To", inv.Email)
	m.SetHeader("Subject", fmt.Sprintf("Invitation to join %s", inv.ProjectName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send invitation mail: %w", err)
	}
	return nil
}
