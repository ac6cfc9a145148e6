//go:build unit

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bounce-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "public error meta is rendered",
			handler: func(c *gin.Context) {
				resp := httperr.New(http.StatusConflict, "CONFLICT", "slot taken", nil)
				_ = c.Error(&gin.Error{Err: errors.New("overlap"), Type: gin.ErrorTypePublic, Meta: resp})
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"CONFLICT"`,
		},
		{
			name:       "private error becomes a 500 envelope",
			handler:    func(c *gin.Context) { _ = c.Error(errors.New("boom")) },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL"`,
		},
		{
			name:       "written responses are left alone",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "panics are recovered",
			handler:    func(*gin.Context) { panic("kaboom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CustomRecovery(), ErrorHandler())
			r.GET("/x", tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestNoRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(NoRoute)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestWithHeaders(t *testing.T) {
	got := withHeaders([]string{"Content-Type", "idempotency-key"}, "Idempotency-Key", RequestIDHeader)
	assert.Equal(t, []string{"Content-Type", "idempotency-key", RequestIDHeader}, got)
}
