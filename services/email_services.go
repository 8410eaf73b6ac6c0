package services

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"registrations/config"
	"registrations/models"
)

// sendMailFunc matches smtp.SendMail
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
	loginUrl string
	send     sendMailFunc
}

func NewEmailService(cfg config.Config) *EmailService {
	from := cfg.MailFrom
	if from == "" {
		from = cfg.MailUsername
	}
	return &EmailService{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		username: cfg.MailUsername,
		password: cfg.MailPassword,
		from:     from,
		loginUrl: strings.TrimRight(cfg.ClientUrl, "/") + "/login",
		send:     smtp.SendMail,
	}
}

const credentialsTemplate = `
To: %s
From: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Your competition registration account

<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your registration account</title>
</head>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: linear-gradient(to right, #1a1a1a, #2d2d2d); padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Welcome %s</h1>
                <p style="color: #9ca3af; margin-bottom: 20px; font-size: 16px;">An account was created for your registration. Sign in with this one-time password and complete your profile.</p>
                <p style="color: #ffffff; font-family: monospace; font-size: 20px; margin-bottom: 30px;">%s</p>
                <a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold; margin-bottom: 30px;">Sign in</a>
                <p style="color: #9ca3af; font-size: 14px;">If you did not expect this email, please ignore it.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`

// DeliverCredentials emails the one-time password to the new participant
func (s *EmailService) DeliverCredentials(ctx context.Context, recipient models.MinimalParticipant, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(recipient.Email, "\r\n") {
		return fmt.Errorf("invalid recipient address")
	}

	msg := []byte(fmt.Sprintf(strings.TrimSpace(credentialsTemplate),
		recipient.Email,
		s.from,
		html.EscapeString(recipient.FirstName),
		password,
		s.loginUrl,
	))

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return s.send(s.host+":"+s.port, auth, s.from, []string{recipient.Email}, msg)
}
