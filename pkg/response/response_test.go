package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatmint-studio/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if requestID != "" {
		c.Set(RequestIDKey, requestID)
	}
	return c, w
}

func TestSuccessEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		write  func(*gin.Context, any)
		status int
	}{
		{name: "ok", write: OK, status: http.StatusOK},
		{name: "created", write: Created, status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("req-" + tt.name)

			tt.write(c, map[string]string{"asset_id": "0xabc"})

			assert.Equal(t, tt.status, w.Code)
			var resp SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "req-"+tt.name, resp.RequestID)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Equal(t, map[string]any{"asset_id": "0xabc"}, resp.Data)
		})
	}
}

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "app error",
			err:     apperror.ErrBudgetExceeded(),
			status:  http.StatusUnprocessableEntity,
			code:    "OWN_005",
			message: "Total co-owner ownership cannot exceed 100%",
		},
		{
			name:    "wrapped app error",
			err:     fmt.Errorf("verify: %w", apperror.ErrInvalidSignature()),
			status:  http.StatusUnauthorized,
			code:    "AUTH_001",
			message: "Invalid wallet signature",
		},
		{
			name:    "cause stays internal",
			err:     apperror.ErrStorageError(errors.New("dial tcp 10.0.0.5:5432")),
			status:  http.StatusInternalServerError,
			code:    "SYS_001",
			message: "Internal storage error",
		},
		{
			name:    "unclassified",
			err:     errors.New("something unexpected"),
			status:  http.StatusInternalServerError,
			code:    "SYS_000",
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("req-err")

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.ErrorCode)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, "req-err", resp.RequestID)
		})
	}
}

func TestError_RecordsCauseOnContext(t *testing.T) {
	c, _ := testContext("")
	cause := errors.New("pinata: 502 bad gateway")

	Error(c, apperror.ErrCollaboratorUnavailable("Pinata", cause))

	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePrivate))
}

func TestAbort(t *testing.T) {
	c, w := testContext("req-abort")

	Abort(c, apperror.ErrRateLimitExceeded())

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_001", resp.ErrorCode)
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	c, w := testContext("")

	OK(c, nil)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.RequestID, 36)
	assert.Nil(t, resp.Data)
}
