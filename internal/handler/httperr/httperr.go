package httperr

import (
	"github.com/gin-gonic/gin"
)

// Body is the "error" member of every failure envelope.
type Body struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func New(status int, code, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Body{Message: msg, Code: code},
		Detail: detail,
	}
}

// Abort writes resp and records err on the context as a public error so
// the request logger can report the cause the client never sees.
func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}
	_ = c.Error(&gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(resp.Status, resp)
}
