package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "bounce-booking/internal/handler/dto/request"
	resdto "bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MerchantBookingHandler struct {
	cancellations commands.CancellationCommands
	invoices      commands.InvoiceCommands
	q             queries.BookingQueries
}

func NewMerchantBookingHandler(
	cancellations commands.CancellationCommands,
	invoices commands.InvoiceCommands,
	q queries.BookingQueries,
) *MerchantBookingHandler {
	return &MerchantBookingHandler{cancellations: cancellations, invoices: invoices, q: q}
}

// @Summary List bookings
// @Description Dashboard list, newest first, keyset paginated
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param status query []string false "Status filter" collectionFormat(multi)
// @Param from query string false "Start time lower bound (RFC3339)"
// @Param to query string false "Start time upper bound (RFC3339)"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /merchant/bookings [get]
func (h *MerchantBookingHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.Abort(c, errUnauthorized, httperr.New(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil))
		return
	}
	var params reqdto.DashboardQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}

	var cursor *queries.Cursor
	if params.After != "" {
		cursor = &queries.Cursor{After: params.After}
	}
	items, next, err := h.q.ListForDashboard(c.Request.Context(), businessID, params.ToFilters(), cursor, params.Limit)
	if err != nil {
		respondError(c, err, "List bookings failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking for editing
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEditResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchant/bookings/{id} [get]
func (h *MerchantBookingHandler) Get(c *gin.Context) {
	businessID, bookingID, ok := h.scope(c)
	if !ok {
		return
	}
	view, err := h.q.EditDetail(c.Request.Context(), businessID, bookingID)
	if err != nil {
		respondError(c, err, "Booking lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingEditView(view))
}

// @Summary Cancel booking
// @Description Cancel and refund. Inside the late window only the configured share is refunded unless fullRefund is set.
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelRequest true "Cancel request"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /merchant/bookings/{id}/cancel [post]
func (h *MerchantBookingHandler) Cancel(c *gin.Context) {
	businessID, bookingID, ok := h.scope(c)
	if !ok {
		return
	}
	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cancellations.CancelBooking(c.Request.Context(), businessID, bookingID, req.ToCommand())
	if err != nil {
		respondError(c, err, "Cancel booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Issue invoice
// @Description Price the booking and send a hosted invoice instead of collecting payment at checkout
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.IssueInvoiceRequest false "Invoice overrides"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/bookings/{id}/invoice [post]
func (h *MerchantBookingHandler) IssueInvoice(c *gin.Context) {
	businessID, bookingID, ok := h.scope(c)
	if !ok {
		return
	}
	// The body is optional; an empty one means no overrides.
	var req reqdto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err, "Invalid request")
		return
	}
	result, err := h.invoices.IssueInvoice(c.Request.Context(), businessID, bookingID, req.ToCommand())
	if err != nil {
		respondError(c, err, "Issue invoice failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInvoiceResult(result))
}

func (h *MerchantBookingHandler) scope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.Abort(c, errUnauthorized, httperr.New(http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil))
		return uuid.Nil, uuid.Nil, false
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid booking id")
		return uuid.Nil, uuid.Nil, false
	}
	return businessID, bookingID, true
}
