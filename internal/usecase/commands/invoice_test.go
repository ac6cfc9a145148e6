//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/invoice"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceFixture struct {
	biz  *builder.BusinessBuilder
	bk   *builder.BookingBuilder
	cust *builder.CustomerBuilder
}

func newInvoiceFixture() *invoiceFixture {
	biz := builder.NewBusinessBuilder()
	stripeID := "cus_existing"
	cust := builder.NewCustomerBuilder().With(func(c *builder.CustomerBuilder) {
		c.BusinessID = biz.ID
		c.StripeCustomerID = &stripeID
	})
	return &invoiceFixture{
		biz:  biz,
		bk:   builder.NewBookingBuilder().WithBusinessID(biz.ID),
		cust: cust,
	}
}

func (f *invoiceFixture) contact() *customer.Contact {
	c := f.cust.Contact
	return &c
}

// =============================================================================
// IssueInvoice Tests
// =============================================================================

func TestInvoice_IssueInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("success: invoice issued, recorded and emailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newInvoiceFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)
		jobID := uuid.New()

		m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
		m.reads.EXPECT().BookingByID(gomock.Any(), f.bk.ID).Return(f.bk.BuildSnapshot(t), nil).Times(2)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(&commands.TaxCalculation{ID: "taxcalc_1", Amount: 800}, nil)
		m.reads.EXPECT().CustomerByEmail(gomock.Any(), f.biz.ID, "parent@example.com").Return(f.cust.BuildSnapshot(), nil)
		m.customers.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, b *booking.Booking) error {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, builder.RefTime.Add(7*24*time.Hour), *b.ExpiresAt())
				return nil
			})
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.CustomerRequest) (string, error) {
				require.NotNil(t, req.ExistingID)
				assert.Equal(t, "cus_existing", *req.ExistingID)
				return "cus_existing", nil
			})
		p.gateway.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.InvoiceRequest) (*commands.IssuedInvoice, error) {
				assert.Equal(t, "cus_existing", req.CustomerID)
				assert.Equal(t, 7, req.DueDays)
				assert.Equal(t, fmt.Sprintf("invoice-%s-10800", f.bk.ID), req.IdempotencyKey)
				require.Len(t, req.Lines, 1)
				return &commands.IssuedInvoice{
					ID:        "in_123",
					Number:    "INV-0001",
					HostedURL: "https://invoice.stripe.com/i/in_123",
					AmountDue: 10800,
				}, nil
			})
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, inv *invoice.Invoice) error {
				assert.Equal(t, "in_123", inv.ExternalID())
				return nil
			})
		m.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), commands.NotificationInvoiceReady, f.bk.ID.String(), gomock.Any(), builder.RefTime.Add(commands.InlineNotifyGrace)).
			Return(jobID, nil)
		p.notifier.EXPECT().SendInvoiceReady(gomock.Any(), gomock.Any()).Return("email_1", nil)
		m.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), jobID, builder.RefTime).Return(nil)

		uc := commands.NewInvoiceUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.notifier, p.cache, newTestClock(), testSettings())
		result, err := uc.IssueInvoice(ctx, f.biz.ID, f.bk.ID, commands.IssueInvoiceRequest{Customer: f.contact()})

		require.NoError(t, err)
		assert.Equal(t, "INV-0001", result.Number)
		assert.Equal(t, "108.00", result.AmountDue)
		assert.Equal(t, builder.RefTime.AddDate(0, 0, 7), result.DueAt)
	})

	t.Run("success: email failure leaves the outbox job pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newInvoiceFixture()
		f.bk.WithCustomer(f.cust.ID)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
		m.reads.EXPECT().BookingByID(gomock.Any(), f.bk.ID).Return(f.bk.BuildSnapshot(t), nil).Times(2)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)
		m.reads.EXPECT().CustomerByID(gomock.Any(), f.cust.ID).Return(f.cust.BuildSnapshot(), nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_existing", nil)
		p.gateway.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(&commands.IssuedInvoice{
			ID: "in_123", Number: "INV-0001", AmountDue: 10800,
		}, nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		p.notifier.EXPECT().SendInvoiceReady(gomock.Any(), gomock.Any()).Return("", errStripeDown)

		due := 14
		uc := commands.NewInvoiceUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.notifier, p.cache, newTestClock(), testSettings())
		result, err := uc.IssueInvoice(ctx, f.biz.ID, f.bk.ID, commands.IssueInvoiceRequest{DueDays: &due})

		require.NoError(t, err)
		assert.Equal(t, builder.RefTime.AddDate(0, 0, 14), result.DueAt)
	})

	t.Run("error: no customer on booking or request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newInvoiceFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
		m.reads.EXPECT().BookingByID(gomock.Any(), f.bk.ID).Return(f.bk.BuildSnapshot(t), nil)

		uc := commands.NewInvoiceUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.notifier, p.cache, newTestClock(), testSettings())
		_, err := uc.IssueInvoice(ctx, f.biz.ID, f.bk.ID, commands.IssueInvoiceRequest{})

		requireKind(t, err, errs.KindInvalidRequest)
	})

	t.Run("error: due days below one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newInvoiceFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
		m.reads.EXPECT().BookingByID(gomock.Any(), f.bk.ID).Return(f.bk.BuildSnapshot(t), nil)

		due := 0
		uc := commands.NewInvoiceUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.notifier, p.cache, newTestClock(), testSettings())
		_, err := uc.IssueInvoice(ctx, f.biz.ID, f.bk.ID, commands.IssueInvoiceRequest{Customer: f.contact(), DueDays: &due})

		requireKind(t, err, errs.KindInvalidRequest)
	})

	t.Run("error: processor rejects the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newInvoiceFixture()
		f.bk.WithCustomer(f.cust.ID)
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
		m.reads.EXPECT().BookingByID(gomock.Any(), f.bk.ID).Return(f.bk.BuildSnapshot(t), nil).Times(2)
		p.tax.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)
		m.reads.EXPECT().CustomerByID(gomock.Any(), f.cust.ID).Return(f.cust.BuildSnapshot(), nil)
		m.bookings.EXPECT().SavePaymentTerms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
		p.gateway.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_existing", nil)
		p.gateway.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(nil, errStripeDown)

		uc := commands.NewInvoiceUseCase(m.uow, p.gateway, commands.NewTaxService(p.tax), p.notifier, p.cache, newTestClock(), testSettings())
		_, err := uc.IssueInvoice(ctx, f.biz.ID, f.bk.ID, commands.IssueInvoiceRequest{})

		requireKind(t, err, errs.KindExternalService)
	})
}
