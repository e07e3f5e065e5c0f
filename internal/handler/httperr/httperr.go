package httperr

import (
	"github.com/gin-gonic/gin"
)

// Code is the machine-readable reason carried next to the human message.
type Code string

const (
	CodeInvalidRequest Code = "invalid_request"
	CodeInvalidPayload Code = "invalid_payload"
	CodeUnknownEvent   Code = "unknown_event"
	CodeUnavailable    Code = "unavailable"
	CodeInternal       Code = "internal"
)

type Body struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func New(status int, code Code, msg string, detail any) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}, Detail: detail}
}

// AbortWithError writes resp and keeps err on the context so the error middleware can log it.
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
