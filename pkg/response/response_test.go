package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"saldo-ledger/pkg/apperror"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	// requestid.Get reads the header name configured by the middleware.
	requestid.New()
}

func newContext(requestID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if requestID != "" {
		c.Writer.Header().Set("X-Request-ID", requestID)
	}
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newContext("test-req-123")

	OK(c, map[string]string{"balance": "150000"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-req-123", resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "150000", data["balance"])
}

func TestCreated(t *testing.T) {
	c, w := newContext("test-req-456")

	Created(c, map[string]string{"transfer_id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-req-456", resp.RequestID)
}

func TestError_AppErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"rate limit", apperror.ErrTooManyTransactions(), http.StatusTooManyRequests, "RISK_001"},
		{"vpn", apperror.ErrVPNDetected(), http.StatusForbidden, "RISK_002"},
		{"travel", apperror.ErrImpossibleTravel(), http.StatusForbidden, "RISK_003"},
		{"insufficient funds", apperror.ErrInsufficientFunds(), http.StatusBadRequest, "LED_001"},
		{"wrapped", fmt.Errorf("outer: %w", apperror.ErrSelfTransfer()), http.StatusBadRequest, "VAL_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("req-err")

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.ErrorCode)
			assert.Equal(t, "req-err", resp.RequestID)
		})
	}
}

func TestError_IncludesDetails(t *testing.T) {
	c, w := newContext("req-detail")

	Error(c, apperror.ErrVPNDetected().WithDetail("risk_level", "high"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "high", resp.Details["risk_level"])

	c, w = newContext("req-plain")
	Error(c, apperror.ErrInsufficientFunds())
	assert.NotContains(t, w.Body.String(), "details")
}

func TestError_UnknownError(t *testing.T) {
	c, w := newContext("")

	Error(c, fmt.Errorf("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp.ErrorCode)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestOK_GeneratesRequestID_WhenMissing(t *testing.T) {
	c, w := newContext("")

	OK(c, nil)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
}

func TestOK_EchoesMiddlewareRequestID(t *testing.T) {
	r := gin.New()
	r.Use(requestid.New())
	r.GET("/", func(c *gin.Context) {
		OK(c, nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id-1")
	r.ServeHTTP(w, req)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upstream-id-1", resp.RequestID)
	assert.Equal(t, "upstream-id-1", w.Header().Get("X-Request-ID"))
}
