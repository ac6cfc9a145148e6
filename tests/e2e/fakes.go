//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"
)

const fakeTaxRate = 0.0825

// Fakes stands in for Stripe and Resend so flows run without network access.
type Fakes struct {
	Payments *FakePayments
	Notifier *FakeNotifier
}

func NewFakes() *Fakes {
	return &Fakes{Payments: &FakePayments{}, Notifier: &FakeNotifier{}}
}

func (f *Fakes) Reset() {
	f.Payments.reset()
	f.Notifier.reset()
}

type FakePayments struct {
	mu       sync.Mutex
	seq      int
	Intents   []commands.PaymentIntentRequest
	Cancelled []string
	Refunds   []commands.RefundRequest
	Invoices  []commands.InvoiceRequest
}

func (p *FakePayments) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq = 0
	p.Intents = nil
	p.Cancelled = nil
	p.Refunds = nil
	p.Invoices = nil
}

func (p *FakePayments) next(prefix string) string {
	p.seq++
	return fmt.Sprintf("%s_e2e_%d", prefix, p.seq)
}

func (p *FakePayments) EnsureCustomer(_ context.Context, req commands.CustomerRequest) (string, error) {
	if req.ExistingID != nil {
		return *req.ExistingID, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.next("cus"), nil
}

func (p *FakePayments) CreatePaymentIntent(_ context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Intents = append(p.Intents, req)
	id := p.next("pi")
	return &commands.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (p *FakePayments) CancelPaymentIntent(_ context.Context, _, intentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Cancelled = append(p.Cancelled, intentID)
	return nil
}

func (p *FakePayments) Refund(_ context.Context, req commands.RefundRequest) (*commands.RefundResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Refunds = append(p.Refunds, req)
	return &commands.RefundResult{ID: p.next("re"), Status: "succeeded"}, nil
}

func (p *FakePayments) IssueInvoice(_ context.Context, req commands.InvoiceRequest) (*commands.IssuedInvoice, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Invoices = append(p.Invoices, req)
	id := p.next("in")
	amount := req.Tax
	for _, l := range req.Lines {
		amount += l.Amount
	}
	return &commands.IssuedInvoice{
		ID:        id,
		Number:    fmt.Sprintf("E2E-%04d", p.seq),
		HostedURL: "https://invoice.example.com/" + id,
		AmountDue: amount,
	}, nil
}

func (p *FakePayments) Calculate(_ context.Context, req commands.TaxCalculationRequest) (*commands.TaxCalculation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var subtotal money.Cents
	for _, l := range req.Lines {
		subtotal += l.Amount
	}
	return &commands.TaxCalculation{ID: p.next("taxcalc"), Amount: subtotal.MulRate(fakeTaxRate)}, nil
}

func (p *FakePayments) IntentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Intents)
}

type FakeNotifier struct {
	mu   sync.Mutex
	Sent []commands.InvoiceReadyMessage
}

func (n *FakeNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = nil
}

func (n *FakeNotifier) SentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Sent)
}

func (n *FakeNotifier) SendInvoiceReady(_ context.Context, msg commands.InvoiceReadyMessage) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, msg)
	return fmt.Sprintf("email_e2e_%d", len(n.Sent)), nil
}
