package api

import (
	"net/http"

	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyHeader = "Idempotency-Key"

// PublicBookingHandler serves the storefront booking flow.
type PublicBookingHandler struct {
	holds    commands.HoldCommands
	checkout commands.CheckoutCommands
	q        queries.BookingQueries
}

func NewPublicBookingHandler(
	holds commands.HoldCommands,
	checkout commands.CheckoutCommands,
	q queries.BookingQueries,
) *PublicBookingHandler {
	return &PublicBookingHandler{holds: holds, checkout: checkout, q: q}
}

// @Summary Create hold
// @Description Reserve inventory for a time window. A repeated Idempotency-Key replays the first hold.
// @Tags storefront
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Success 200 {object} resdto.HoldResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /businesses/{businessId}/holds [post]
func (h *PublicBookingHandler) CreateHold(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		badRequest(c, err, "Invalid business id")
		return
	}
	var idemKey *uuid.UUID
	if raw := c.GetHeader(idempotencyHeader); raw != "" {
		key, perr := uuid.Parse(raw)
		if perr != nil {
			badRequest(c, perr, "Invalid idempotency key format")
			return
		}
		idemKey = &key
	}
	var req reqdto.CreateHoldRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	result, err := h.holds.CreateHold(c.Request.Context(), businessID, req.ToCommand(), idemKey)
	if err != nil {
		respondError(c, err, "Create hold failed")
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromHoldResult(result))
}

// @Summary Finalize checkout
// @Description Attach customer and event details to a hold, price it and create the payment intent
// @Tags storefront
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /businesses/{businessId}/checkout [post]
func (h *PublicBookingHandler) FinalizeCheckout(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		badRequest(c, err, "Invalid business id")
		return
	}
	var req reqdto.CheckoutRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	result, err := h.checkout.FinalizeCheckout(c.Request.Context(), businessID, req.ToCommand())
	if err != nil {
		respondError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Availability
// @Description Reserved windows of live bookings between two local dates (inclusive)
// @Tags storefront
// @Produce json
// @Param businessId path string true "Business ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{businessId}/availability [get]
func (h *PublicBookingHandler) Availability(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		badRequest(c, err, "Invalid business id")
		return
	}
	var params reqdto.AvailabilityQuery
	if err = c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}

	view, err := h.q.Availability(c.Request.Context(), businessID, params.From, params.To)
	if err != nil {
		respondError(c, err, "Availability lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get booking
// @Description Public booking summary without customer details
// @Tags storefront
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PublicBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *PublicBookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid booking id")
		return
	}
	view, err := h.q.PublicDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Booking lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicBookingView(view))
}
