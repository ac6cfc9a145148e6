//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/shared"
	"bounce-booking/tests/common/builder"
	commandsmock "bounce-booking/tests/mock/commands"
	sharedmock "bounce-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// uowMocks runs every transaction callback against one mocked Tx whose
// repositories are exposed for expectations.
type uowMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	customers     *sharedmock.MockCustomerRepository
	coupons       *sharedmock.MockCouponRepository
	payments      *sharedmock.MockPaymentRepository
	invoices      *sharedmock.MockInvoiceRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
}

func newUoWMocks(ctrl *gomock.Controller) *uowMocks {
	return newRetryingUoWMocks(ctrl, 1)
}

// newRetryingUoWMocks reruns a failed transaction callback up to attempts
// times, the way the Postgres unit of work does on serialization failures.
func newRetryingUoWMocks(ctrl *gomock.Controller, attempts int) *uowMocks {
	m := &uowMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		coupons:       sharedmock.NewMockCouponRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		invoices:      sharedmock.NewMockInvoiceRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		var err error
		for i := 0; i < attempts; i++ {
			if err = fn(ctx, m.tx); err == nil {
				return nil
			}
		}
		return err
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Customers().Return(m.customers).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Invoices().Return(m.invoices).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

type portMocks struct {
	gateway  *commandsmock.MockPaymentGateway
	tax      *commandsmock.MockTaxCalculator
	notifier *commandsmock.MockNotifier
	cache    *commandsmock.MockAvailabilityCache
}

func newPortMocks(ctrl *gomock.Controller) *portMocks {
	return &portMocks{
		gateway:  commandsmock.NewMockPaymentGateway(ctrl),
		tax:      commandsmock.NewMockTaxCalculator(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
		cache:    commandsmock.NewMockAvailabilityCache(ctrl),
	}
}

func newTestClock() *clock.MockClock {
	return clock.NewMockClock(builder.RefTime)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func requireKind(t *testing.T, err error, kind errs.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, errs.KindOf(err), "unexpected error: %v", err)
}

func testSettings() commands.Settings {
	return commands.DefaultSettings()
}
