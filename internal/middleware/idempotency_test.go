package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-leave-agent/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyTest(t *testing.T) (*gin.Engine, redismock.ClientMock, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	handlerRan := false

	r := gin.New()
	r.POST("/invoke", middleware.Idempotency(rdb), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return r, mock, &handlerRan
}

func doPost(r *gin.Engine, idempotencyKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(`{}`))
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	r, mock, handlerRan := setupIdempotencyTest(t)

	w := doPost(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	r, mock, handlerRan := setupIdempotencyTest(t)

	cached := `{"status":"success","action":"submit_leave_request"}`
	mock.ExpectGet("idemp:/invoke:abc-123").SetVal(cached)

	w := doPost(r, "abc-123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, cached, w.Body.String())
	assert.False(t, *handlerRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConflictWhileInFlight(t *testing.T) {
	r, mock, handlerRan := setupIdempotencyTest(t)

	mock.ExpectGet("idemp:/invoke:abc-123").RedisNil()
	mock.ExpectSetNX("idemp:/invoke:abc-123:lock", "locked", 30*time.Second).SetVal(false)

	w := doPost(r, "abc-123")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.False(t, *handlerRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	r, mock, handlerRan := setupIdempotencyTest(t)

	mock.ExpectGet("idemp:/invoke:abc-123").RedisNil()
	mock.ExpectSetNX("idemp:/invoke:abc-123:lock", "locked", 30*time.Second).SetVal(true)

	w := doPost(r, "abc-123")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}
