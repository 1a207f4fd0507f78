package dispatch

import (
	"encoding/json"
	"net/http"
	"time"

	"hr-leave-agent/internal/shared/apperror"
	"hr-leave-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	dispatcher Dispatcher
	rdb        *redis.Client
	logger     *zap.Logger
}

func NewHandler(dispatcher Dispatcher, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dispatch.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dispatch.handler")
	}
	return &Handler{dispatcher: dispatcher, logger: l}
}

// NewHandlerWithRedis additionally stores invoke results for replayed
// Idempotency-Key requests (see middleware.Idempotency).
func NewHandlerWithRedis(dispatcher Dispatcher, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(dispatcher, logger...)
	h.rdb = rdb
	return h
}

// Invoke is the transport face of the dispatcher. The Result envelope is the
// wire body verbatim; only the HTTP status is derived from it.
func (h *Handler) Invoke(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http invoke binding failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		c.JSON(mapped.Status, Result{
			Status:    StatusError,
			ErrorCode: mapped.Code,
			Message:   mapped.Message,
		})
		return
	}

	result := h.dispatcher.Invoke(c.Request.Context(), req)
	h.cacheIdempotentResult(c, result)
	c.JSON(httpStatusFor(result), result)
}

// Actions serves the catalog for the external intent classifier.
func (h *Handler) Actions(c *gin.Context) {
	response.Success(c, http.StatusOK, Catalog())
}

func (h *Handler) cacheIdempotentResult(c *gin.Context, result Result) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	ctx := c.Request.Context()
	// Only terminal business outcomes are replayable; errors may be retried.
	if result.Status != StatusError {
		payload, err := json.Marshal(result)
		if err == nil {
			if err := h.rdb.Set(ctx, cacheKey, payload, idempotencyTTL).Err(); err != nil {
				h.logger.Warn("idempotency cache store failed", zap.Error(err))
			}
		}
	}
	if lockKey != "" {
		if err := h.rdb.Del(ctx, lockKey).Err(); err != nil {
			h.logger.Warn("idempotency lock release failed", zap.Error(err))
		}
	}
}

func httpStatusFor(result Result) int {
	if result.Status != StatusError {
		return http.StatusOK
	}
	switch result.ErrorCode {
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeInvalidInput, apperror.CodeUnknownAction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
