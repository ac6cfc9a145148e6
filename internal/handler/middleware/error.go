package middleware

import (
	"log/slog"
	"net/http"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	codeInternal = "INTERNAL"
	traceLines   = 12
)

func internalError() httperr.Response {
	return httperr.New(http.StatusInternalServerError, codeInternal, "Internal server error", nil)
}

// ErrorHandler renders the error envelope for requests that recorded an
// error with c.Error but never wrote a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		slog.Error("unhandled request error",
			"error", last.Error(),
			"trace", errs.Trace(last.Err, traceLines),
			"route", c.FullPath(),
			"request_id", GetRequestID(c))
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// NoRoute answers unknown paths with the same envelope as the handlers.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.New(http.StatusNotFound, string(errs.KindNotFound), "Route not found", nil))
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
	})
}
