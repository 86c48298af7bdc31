package email

import (
	"context"
	"fmt"
	"net"
	"time"

	"texportal_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

const subjectEnquiry = "New website enquiry"

// Sender delivers enquiry notifications to the portal owner.
type Sender interface {
	SendEnquiryEmail(ctx context.Context, name, fromEmail, phone, company, message string) error
}

// SMTPSender delivers via the configured SMTP server using go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	toEmail   string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
		toEmail:   cfg.GetEnquiryToAddress(),
	}
}

func (s *SMTPSender) SendEnquiryEmail(ctx context.Context, name, fromEmail, phone, company, message string) error {
	content, err := renderEmailTemplate("enquiry.html", enquiryEmailData{
		Name:    name,
		Email:   fromEmail,
		Phone:   phone,
		Company: company,
		Message: message,
	})
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	if err := msg.ReplyTo(fromEmail); err != nil {
		return fmt.Errorf("smtp reply-to: %w", err)
	}
	msg.Subject(subjectEnquiry)
	msg.SetBodyString(gomail.TypeTextHTML, content)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// NoopSender is used when email delivery is disabled. Enquiries still
// publish their event and land in the log.
type NoopSender struct{}

func (NoopSender) SendEnquiryEmail(context.Context, string, string, string, string, string) error {
	return nil
}
