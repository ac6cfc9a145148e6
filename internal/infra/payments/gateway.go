package payments

import (
	"context"
	"strconv"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
)

const taxLineDescription = "Sales tax"

// Gateway implements commands.PaymentGateway on Stripe connected accounts.
type Gateway struct {
	client *stripe.Client
	retry  retryPolicy
}

func NewGateway(cfg config.Config) *Gateway {
	return &Gateway{
		client: stripe.NewClient(cfg.Stripe.SecretKey),
		retry:  newRetryPolicy(cfg.Retry),
	}
}

func (g *Gateway) EnsureCustomer(ctx context.Context, req commands.CustomerRequest) (string, error) {
	if req.ExistingID != nil && *req.ExistingID != "" {
		params := &stripe.CustomerUpdateParams{
			Email:   stripe.String(req.Email),
			Name:    stripe.String(req.Name),
			Address: toAddressParams(req.Address),
		}
		if req.Phone != "" {
			params.Phone = stripe.String(req.Phone)
		}
		params.Params = connectedParams(req.StripeAccount, "")
		for k, v := range req.Metadata {
			params.AddMetadata(k, v)
		}
		err := g.retry.do(ctx, "customer.update", func() error {
			_, err := g.client.V1Customers.Update(ctx, *req.ExistingID, params)
			return err
		})
		if err != nil {
			return "", errs.Wrap(err, "update stripe customer")
		}
		return *req.ExistingID, nil
	}

	params := &stripe.CustomerCreateParams{
		Email:   stripe.String(req.Email),
		Name:    stripe.String(req.Name),
		Address: toAddressParams(req.Address),
	}
	if req.Phone != "" {
		params.Phone = stripe.String(req.Phone)
	}
	params.Params = connectedParams(req.StripeAccount, "")
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	var created *stripe.Customer
	err := g.retry.do(ctx, "customer.create", func() error {
		var err error
		created, err = g.client.V1Customers.Create(ctx, params)
		return err
	})
	if err != nil {
		return "", errs.Wrap(err, "create stripe customer")
	}
	return created.ID, nil
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(req.Amount.Int64()),
		Currency:    stripe.String(req.Currency),
		Customer:    stripe.String(req.CustomerID),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Params = connectedParams(req.StripeAccount, req.IdempotencyKey)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	var pi *stripe.PaymentIntent
	err := g.retry.do(ctx, "payment_intent.create", func() error {
		var err error
		pi, err = g.client.V1PaymentIntents.Create(ctx, params)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "create payment intent")
	}
	return &commands.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// CancelPaymentIntent voids an intent that a repriced checkout replaced.
func (g *Gateway) CancelPaymentIntent(ctx context.Context, stripeAccount, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonAbandoned)),
	}
	params.Params = connectedParams(stripeAccount, "cancel-"+intentID)

	err := g.retry.do(ctx, "payment_intent.cancel", func() error {
		_, err := g.client.V1PaymentIntents.Cancel(ctx, intentID, params)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "cancel payment intent")
	}
	return nil
}

func (g *Gateway) Refund(ctx context.Context, req commands.RefundRequest) (*commands.RefundResult, error) {
	params := &stripe.RefundCreateParams{
		PaymentIntent: stripe.String(req.PaymentIntentID),
		Amount:        stripe.Int64(req.Amount.Int64()),
	}
	params.Params = connectedParams(req.StripeAccount, req.IdempotencyKey)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	var refund *stripe.Refund
	err := g.retry.do(ctx, "refund.create", func() error {
		var err error
		refund, err = g.client.V1Refunds.Create(ctx, params)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "create refund")
	}
	return &commands.RefundResult{ID: refund.ID, Status: string(refund.Status)}, nil
}

// IssueInvoice creates a draft invoice, attaches one item per line plus a tax
// line, then finalizes and sends it.
func (g *Gateway) IssueInvoice(ctx context.Context, req commands.InvoiceRequest) (*commands.IssuedInvoice, error) {
	createParams := &stripe.InvoiceCreateParams{
		Customer:                    stripe.String(req.CustomerID),
		Currency:                    stripe.String(req.Currency),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:                stripe.Int64(int64(req.DueDays)),
		AutoAdvance:                 stripe.Bool(false),
		PendingInvoiceItemsBehavior: stripe.String("exclude"),
	}
	createParams.Params = connectedParams(req.StripeAccount, req.IdempotencyKey)
	for k, v := range req.Metadata {
		createParams.AddMetadata(k, v)
	}

	var draft *stripe.Invoice
	err := g.retry.do(ctx, "invoice.create", func() error {
		var err error
		draft, err = g.client.V1Invoices.Create(ctx, createParams)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "create invoice")
	}

	for i, line := range req.Lines {
		if err := g.addInvoiceItem(ctx, req, draft.ID, line.Description, line.Amount, subKey(req.IdempotencyKey, "line", i)); err != nil {
			return nil, err
		}
	}
	if req.Tax > 0 {
		if err := g.addInvoiceItem(ctx, req, draft.ID, taxLineDescription, req.Tax, subKey(req.IdempotencyKey, "tax", 0)); err != nil {
			return nil, err
		}
	}

	finalizeParams := &stripe.InvoiceFinalizeInvoiceParams{}
	finalizeParams.Params = connectedParams(req.StripeAccount, "")
	var final *stripe.Invoice
	err = g.retry.do(ctx, "invoice.finalize", func() error {
		var err error
		final, err = g.client.V1Invoices.FinalizeInvoice(ctx, draft.ID, finalizeParams)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "finalize invoice")
	}

	sendParams := &stripe.InvoiceSendInvoiceParams{}
	sendParams.Params = connectedParams(req.StripeAccount, "")
	err = g.retry.do(ctx, "invoice.send", func() error {
		_, err := g.client.V1Invoices.SendInvoice(ctx, final.ID, sendParams)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "send invoice")
	}

	return &commands.IssuedInvoice{
		ID:        final.ID,
		Number:    final.Number,
		HostedURL: final.HostedInvoiceURL,
		AmountDue: money.Cents(final.AmountDue),
	}, nil
}

func (g *Gateway) addInvoiceItem(ctx context.Context, req commands.InvoiceRequest, invoiceID, description string, amount money.Cents, key string) error {
	params := &stripe.InvoiceItemCreateParams{
		Customer:    stripe.String(req.CustomerID),
		Invoice:     stripe.String(invoiceID),
		Currency:    stripe.String(req.Currency),
		Amount:      stripe.Int64(amount.Int64()),
		Description: stripe.String(description),
	}
	params.Params = connectedParams(req.StripeAccount, key)
	err := g.retry.do(ctx, "invoice_item.create", func() error {
		_, err := g.client.V1InvoiceItems.Create(ctx, params)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "create invoice item")
	}
	return nil
}

func connectedParams(account, idempotencyKey string) stripe.Params {
	p := stripe.Params{}
	if account != "" {
		p.StripeAccount = stripe.String(account)
	}
	if idempotencyKey != "" {
		p.IdempotencyKey = stripe.String(idempotencyKey)
	}
	return p
}

func subKey(key, kind string, i int) string {
	if key == "" {
		return ""
	}
	return key + "-" + kind + "-" + strconv.Itoa(i)
}

func toAddressParams(a address.Address) *stripe.AddressParams {
	p := &stripe.AddressParams{
		Line1:      stripe.String(a.Line1),
		City:       stripe.String(a.City),
		State:      stripe.String(a.State),
		PostalCode: stripe.String(a.PostalCode),
		Country:    stripe.String(a.Country),
	}
	if a.Line2 != "" {
		p.Line2 = stripe.String(a.Line2)
	}
	return p
}
