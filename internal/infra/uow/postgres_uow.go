package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bounce-booking/internal/infra/readstore"
	"bounce-booking/internal/infra/repository"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry config.RetryConfig
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, retry config.RetryConfig) shared.UnitOfWork {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialInterval <= 0 {
		retry.InitialInterval = 100 * time.Millisecond
	}
	if retry.MaxInterval <= 0 {
		retry.MaxInterval = 2 * time.Second
	}
	return &PostgresUoW{pool: pool, q: q, retry: retry}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = u.retry.InitialInterval
	exp.MaxInterval = u.retry.MaxInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, u.retry.MaxRetries), ctx)
}

// run retries the whole transaction on serialization failures and deadlocks.
// Any other error is returned on the first attempt.
func (u *PostgresUoW) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.attempt(ctx, opts, fn)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction",
			"attempt", attempt,
			"isolation", string(opts.IsoLevel),
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, u.backOff(ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	bookingRepo      shared.BookingRepository
	customerRepo     shared.CustomerRepository
	couponRepo       shared.CouponRepository
	paymentRepo      shared.PaymentRepository
	invoiceRepo      shared.InvoiceRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Invoices() shared.InvoiceRepository {
	if t.invoiceRepo == nil {
		t.invoiceRepo = repository.NewInvoiceRepository(t.uow.q, t.dbtx)
	}
	return t.invoiceRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	businessStore    *readstore.BusinessReadStore
	bookingStore     *readstore.BookingReadStore
	inventoryStore   *readstore.InventoryReadStore
	couponStore      *readstore.CouponReadStore
	customerStore    *readstore.CustomerReadStore
	paymentStore     *readstore.PaymentReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) BusinessByID(ctx context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	if r.businessStore == nil {
		r.businessStore = readstore.NewBusinessReadStore(r.uow.q, r.dbtx)
	}
	return r.businessStore.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookings().FindByID(ctx, id)
}

func (r *commandReads) InventoryByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]shared.InventorySnapshot, error) {
	if r.inventoryStore == nil {
		r.inventoryStore = readstore.NewInventoryReadStore(r.uow.q, r.dbtx)
	}
	return r.inventoryStore.FindByIDs(ctx, businessID, ids)
}

func (r *commandReads) ConflictingItems(ctx context.Context, inventoryIDs []uuid.UUID, from, to time.Time) ([]shared.ConflictSnapshot, error) {
	return r.bookings().FindConflicts(ctx, inventoryIDs, from, to)
}

func (r *commandReads) CouponByCode(ctx context.Context, businessID uuid.UUID, code string) (*shared.CouponSnapshot, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore.FindByCode(ctx, businessID, code)
}

func (r *commandReads) CustomerByEmail(ctx context.Context, businessID uuid.UUID, email string) (*shared.CustomerSnapshot, error) {
	return r.customers().FindByEmail(ctx, businessID, email)
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	return r.customers().FindByID(ctx, id)
}

func (r *commandReads) PaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]shared.PaymentSnapshot, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore.ListByBooking(ctx, bookingID)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, businessID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, businessID)
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) customers() *readstore.CustomerReadStore {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.uow.q, r.dbtx)
	}
	return r.customerStore
}
