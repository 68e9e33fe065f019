// Package response provides the uniform API response envelope.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope codes. Every endpoint reports its outcome through the
// envelope code; the HTTP status stays 200 except at the auth boundary.
const (
	CodeSuccess          = 200
	CodeValidationFailed = 400
	CodeError            = 500
)

// Result is the envelope returned by every API endpoint.
type Result struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// New builds an envelope stamped with the current time in epoch millis.
func New(code int, message string, data interface{}) Result {
	return Result{
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Success writes a success envelope with a message and payload.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, New(CodeSuccess, message, data))
}

// Data writes a success envelope with the default message.
func Data(c *gin.Context, data interface{}) {
	Success(c, "success", data)
}

// Message writes a success envelope with no payload.
func Message(c *gin.Context, message string) {
	Success(c, message, nil)
}

// Error writes a failure envelope with the generic error code.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusOK, New(CodeError, message, nil))
}

// ErrorCode writes a failure envelope with a caller-supplied code.
func ErrorCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, New(code, message, nil))
}
