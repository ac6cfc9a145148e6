package api

import (
	"log/slog"
	"net/http"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError renders a use case error with the status for its kind.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	kind := errs.KindOf(err)
	msg := errs.MessageOf(err)
	if msg == "" {
		msg = fallbackMsg
	}

	var status int
	switch kind {
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindInvalidRequest:
		status = http.StatusBadRequest
	case errs.KindConflict, errs.KindExpired:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		slog.Error(fallbackMsg, "kind", string(kind), "error", err.Error(), "path", c.Request.URL.Path)
		msg = "Internal server error"
	}

	var detail any
	if d := errs.DetailOf(err); len(d) > 0 && status < http.StatusInternalServerError {
		detail = d
	}
	httperr.Abort(c, err, httperr.New(status, string(kind), msg, detail))
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.Abort(c, err, httperr.New(http.StatusBadRequest, string(errs.KindInvalidRequest), msg, nil))
}

var errUnauthorized = errs.New("merchant context missing")
