//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/tests/common/authtest"
	"bounce-booking/tests/common/builder"
	"bounce-booking/tests/common/dbtest"
	"bounce-booking/tests/common/httptest"
	"bounce-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	holdsURL        = "/api/businesses/%s/holds"
	checkoutURL     = "/api/businesses/%s/checkout"
	availabilityURL = "/api/businesses/%s/availability?from=%s&to=%s"
	publicURL       = "/api/bookings/%s"
	merchantURL     = "/api/merchant/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// eventDay is two weeks out so lead-time rules never interfere.
func eventDay() string {
	loc, _ := time.LoadLocation("America/Chicago")
	return time.Now().In(loc).AddDate(0, 0, 14).Format("2006-01-02")
}

type fixture struct {
	businessID  uuid.UUID
	inventoryID uuid.UUID
	day         string
}

func (s *BookingSuite) seed() fixture {
	t := s.T()
	businessID := dbtest.DefaultBusinessID(t, s.DB)
	return fixture{
		businessID:  businessID,
		inventoryID: dbtest.CreateTestInventoryItem(t, s.DB, businessID, "Castle Bounce House", 10000),
		day:         eventDay(),
	}
}

func (f fixture) holdRequest() reqdto.CreateHoldRequest {
	b := builder.NewBookingBuilder()
	b.Items[0].InventoryID = f.inventoryID
	req := b.BuildHoldRequestDTO()
	req.EventDate = f.day
	return req
}

func (f fixture) checkoutRequest(holdID uuid.UUID) reqdto.CheckoutRequest {
	b := builder.NewBookingBuilder()
	b.ID = holdID
	req := b.BuildCheckoutRequestDTO()
	req.EventDate = f.day
	return req
}

func (s *BookingSuite) createHold(f fixture, headers map[string]string) resdto.HoldResponse {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf(holdsURL, f.businessID), f.holdRequest(), "", headers)

	var hold resdto.HoldResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &hold)
	require.NotEqual(s.T(), uuid.Nil, hold.HoldID)
	return hold
}

// =============================================================================
// TestHold - slot reservation and availability
// =============================================================================

func (s *BookingSuite) TestHold() {
	s.Run("Normal case: hold reserves the slot and shows in availability", func() {
		t := s.T()
		f := s.seed()

		hold := s.createHold(f, nil)
		require.Equal(t, "HOLD", dbtest.BookingStatus(t, s.DB, hold.HoldID))

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, f.businessID, f.day, f.day), nil, "")
		var view resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)

		require.Len(t, view.Reserved, 1)
		want := resdto.ReservedSlotResponse{
			BookingID:     hold.HoldID,
			InventoryID:   f.inventoryID,
			InventoryName: "Castle Bounce House",
			Status:        "HOLD",
		}
		if diff := cmp.Diff(want, view.Reserved[0], cmpopts.IgnoreFields(resdto.ReservedSlotResponse{},
			"StartTime", "EndTime", "BufferedStart", "BufferedEnd")); diff != "" {
			t.Errorf("reserved slot mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: replay with the same idempotency key returns the same hold", func() {
		t := s.T()
		f := s.seed()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		first := s.createHold(f, headers)

		rec := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost,
			fmt.Sprintf(holdsURL, f.businessID), f.holdRequest(), "", headers)
		var replay resdto.HoldResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &replay)
		require.Equal(t, first.HoldID, replay.HoldID)
	})

	s.Run("Error case: overlapping hold on the same item is rejected", func() {
		t := s.T()
		f := s.seed()
		s.createHold(f, nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(holdsURL, f.businessID), f.holdRequest(), "")
		detail := httptest.AssertErrorCode(t, rec, http.StatusConflict, "CONFLICT")
		require.Equal(t, f.inventoryID.String(), detail["inventoryItemId"])
	})

	s.Run("Error case: buffered windows of both bookings may not touch", func() {
		t := s.T()
		f := s.seed()
		dbtest.SetBusinessBuffers(t, s.DB, f.businessID, 1, 1)
		s.createHold(f, nil) // 12:00-16:00, blocked 11:00-17:00

		touching := f.holdRequest()
		touching.StartTime, touching.EndTime = "18:00", "20:00"
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(holdsURL, f.businessID), touching, "")
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "CONFLICT")

		apart := f.holdRequest()
		apart.StartTime, apart.EndTime = "18:30", "20:30"
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(holdsURL, f.businessID), apart, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	s.Run("Error case: unknown inventory item", func() {
		t := s.T()
		f := s.seed()
		f.inventoryID = uuid.New()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(holdsURL, f.businessID), f.holdRequest(), "")
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
	})
}

// =============================================================================
// TestCheckoutLifecycle - checkout, invoice and cancellation
// =============================================================================

func (s *BookingSuite) TestCheckoutLifecycle() {
	s.Run("Normal case: checkout then invoice then cancel", func() {
		t := s.T()
		f := s.seed()
		hold := s.createHold(f, nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(checkoutURL, f.businessID), f.checkoutRequest(hold.HoldID), "")
		var checkout resdto.CheckoutResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &checkout)
		require.Equal(t, hold.HoldID, checkout.BookingID)
		require.NotEmpty(t, checkout.ClientSecret)
		require.Equal(t, 1, s.Fakes.Payments.IntentCount())

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicURL, hold.HoldID), nil, "")
		var public resdto.PublicBookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &public)
		require.Equal(t, "PENDING", public.Status)
		require.Equal(t, "12:00", public.StartTime)
		require.Equal(t, int64(10000), public.Totals.Subtotal.Cents)
		require.Equal(t, public.Totals.Subtotal.Cents+public.Totals.Tax.Cents, public.Totals.Total.Cents)

		token := s.jwt.GenerateMerchantToken(t, f.businessID)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, merchantURL+"/"+hold.HoldID.String()+"/invoice", nil, token)
		var invoice resdto.InvoiceResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &invoice)
		require.Equal(t, public.Totals.Total.Value, invoice.AmountDue)
		require.Equal(t, 1, s.Fakes.Notifier.SentCount())
		jobStatus, runAt := dbtest.NotificationJob(t, s.DB, hold.HoldID.String())
		require.Equal(t, "sent", jobStatus)
		require.True(t, runAt.After(time.Now()), "queued invoice email must not be due while the inline send runs")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, merchantURL+"?status=pending", nil, token)
		var page resdto.BookingPageResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		require.Equal(t, hold.HoldID, page.Items[0].ID)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, merchantURL+"/"+hold.HoldID.String()+"/cancel",
			map[string]any{"reason": "rain"}, token)
		var cancelled resdto.CancelResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)
		require.Nil(t, cancelled.Refund)
		require.Equal(t, 0, dbtest.CountBookingItems(t, s.DB, hold.HoldID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, f.businessID, f.day, f.day), nil, "")
		var view resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		require.Empty(t, view.Reserved)
	})

	s.Run("Error case: checkout with a slot that differs from the hold", func() {
		t := s.T()
		f := s.seed()
		hold := s.createHold(f, nil)

		req := f.checkoutRequest(hold.HoldID)
		req.EndTime = "17:00"
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(checkoutURL, f.businessID), req, "")
		httptest.AssertErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
		require.Equal(t, "HOLD", dbtest.BookingStatus(t, s.DB, hold.HoldID))
	})

	s.Run("Error case: merchant of another business cannot cancel", func() {
		t := s.T()
		f := s.seed()
		hold := s.createHold(f, nil)

		other := dbtest.CreateTestBusiness(t, s.DB, "Other Bounce Co", 0)
		token := s.jwt.GenerateMerchantToken(t, other)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, merchantURL+"/"+hold.HoldID.String()+"/cancel",
			map[string]any{}, token)
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
		require.Equal(t, "HOLD", dbtest.BookingStatus(t, s.DB, hold.HoldID))
	})

	s.Run("Error case: expired merchant token", func() {
		t := s.T()
		f := s.seed()

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, merchantURL, nil, s.jwt.CreateExpiredToken(t, f.businessID))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
