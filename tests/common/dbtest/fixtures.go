//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultBusinessName = "Default Bounce Co"

// CreateTestBusiness inserts a business that accepts bookings with no lead time.
func CreateTestBusiness(t *testing.T, db DBLike, name string, taxRate float64) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO businesses (id, name, time_zone, min_notice_hours, default_tax_rate, stripe_account_id)
		VALUES ($1, $2, 'America/Chicago', 0, $3, 'acct_test')`,
		businessID, name, taxRate)
	require.NoError(t, err)

	return businessID
}

func SetBusinessBuffers(t *testing.T, db DBLike, businessID uuid.UUID, beforeHours, afterHours int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE businesses SET buffer_before_hours = $2, buffer_after_hours = $3 WHERE id = $1",
		businessID, beforeHours, afterHours)
	require.NoError(t, err)
}

func DefaultBusinessID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var businessID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM businesses WHERE name = $1 LIMIT 1", DefaultBusinessName).Scan(&businessID)
	require.NoError(t, err)
	return businessID
}

func CreateTestInventoryItem(t *testing.T, db DBLike, businessID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO inventory_items (id, business_id, name, price_cents) VALUES ($1, $2, $3, $4)",
		itemID, businessID, name, priceCents)
	require.NoError(t, err)

	return itemID
}

// CreateTestCoupon inserts an active coupon with no usage limit or date window.
func CreateTestCoupon(t *testing.T, db DBLike, businessID uuid.UUID, code, discountType string, value int64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, business_id, code, discount_type, discount_value) VALUES ($1, $2, $3, $4, $5)",
		couponID, businessID, code, discountType, value)
	require.NoError(t, err)

	return couponID
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountBookingItems(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM booking_items WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

// NotificationJob returns the status and run_at of the outbox job for topic.
func NotificationJob(t *testing.T, db DBLike, topic string) (string, time.Time) {
	t.Helper()

	var (
		status string
		runAt  time.Time
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, run_at FROM notification_jobs WHERE topic = $1", topic).Scan(&status, &runAt)
	require.NoError(t, err)
	return status, runAt
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (id, name, time_zone, min_notice_hours, default_tax_rate, stripe_account_id)
		VALUES (gen_random_uuid(), $1, 'America/Chicago', 0, 0.08, 'acct_test')`,
		DefaultBusinessName)
	if err != nil {
		return err
	}

	return nil
}
var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
