package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"

	"github.com/resend/resend-go/v2"
)

type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

var invoiceReadyHTML = template.Must(template.New("invoice_ready").Parse(`<p>Hi {{.CustomerName}},</p>
<p>{{.BusinessName}} has sent invoice {{.InvoiceNumber}} for {{.AmountDue}}, due {{.DueAt.Format "January 2, 2006"}}.</p>
<p><a href="{{.HostedURL}}">View and pay your invoice</a></p>`))

// ResendNotifier delivers customer emails through Resend.
type ResendNotifier struct {
	emails sender
	from   string
}

func NewResendNotifier(cfg config.Config) *ResendNotifier {
	client := resend.NewClient(cfg.Email.ResendAPIKey)
	return newResendNotifier(client.Emails, cfg.Email)
}

func newResendNotifier(emails sender, cfg config.EmailConfig) *ResendNotifier {
	return &ResendNotifier{
		emails: emails,
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
	}
}

func (n *ResendNotifier) SendInvoiceReady(ctx context.Context, msg commands.InvoiceReadyMessage) (string, error) {
	if msg.To == "" {
		return "", errs.New("invoice email has no recipient")
	}

	var html bytes.Buffer
	if err := invoiceReadyHTML.Execute(&html, msg); err != nil {
		return "", errs.Wrap(err, "render invoice email")
	}

	sent, err := n.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.To},
		Subject: fmt.Sprintf("Invoice %s from %s", msg.InvoiceNumber, msg.BusinessName),
		Html:    html.String(),
		Text: fmt.Sprintf("Invoice %s for %s is due %s. Pay online: %s",
			msg.InvoiceNumber, msg.AmountDue, msg.DueAt.Format("2006-01-02"), msg.HostedURL),
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice_ready"},
			{Name: "booking_id", Value: msg.BookingID.String()},
		},
	})
	if err != nil {
		return "", errs.Wrap(err, "send invoice email")
	}

	slog.Info("invoice email sent", "email_id", sent.Id, "booking_id", msg.BookingID, "invoice_id", msg.InvoiceID)
	return sent.Id, nil
}
