// Package response writes the JSON envelopes every ChatMint endpoint
// returns.
package response

import (
	"errors"
	"net/http"
	"time"

	"chatmint-studio/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// codeUnclassified is reported for errors that carry no application code.
const codeUnclassified = "SYS_000"

// SuccessResponse wraps a successful payload.
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse carries the error code and the message shown to the user.
// Internal causes never leave the server.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, success(c, data))
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, success(c, data))
}

// Error maps err to its status and code. The full error, cause included,
// is attached to the gin context so the request logger records it.
func Error(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)

	status, body := failure(c, err)
	c.JSON(status, body)
}

// Abort writes the error response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)

	status, body := failure(c, err)
	c.AbortWithStatusJSON(status, body)
}

func success(c *gin.Context, data any) SuccessResponse {
	id, ts := stamp(c)
	return SuccessResponse{Success: true, Data: data, RequestID: id, Timestamp: ts}
}

func failure(c *gin.Context, err error) (int, ErrorResponse) {
	id, ts := stamp(c)
	body := ErrorResponse{
		ErrorCode: codeUnclassified,
		Error:     "Internal server error",
		RequestID: id,
		Timestamp: ts,
	}
	status := http.StatusInternalServerError

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		body.ErrorCode = appErr.Code
		body.Error = appErr.Message
	}
	return status, body
}

// stamp returns the request id and the current time. A request that
// skipped the RequestID middleware still gets an id.
func stamp(c *gin.Context) (string, string) {
	id := c.GetString(RequestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return id, time.Now().UTC().Format(time.RFC3339)
}
