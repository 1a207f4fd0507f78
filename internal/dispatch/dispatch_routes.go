package dispatch

import (
	"hr-leave-agent/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the agent surface. rdb may be nil; idempotency replay
// is then disabled.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	agent := r.Group("/agent")
	{
		if rdb != nil {
			agent.POST("/invoke", middleware.Idempotency(rdb), handler.Invoke)
		} else {
			agent.POST("/invoke", handler.Invoke)
		}
		agent.GET("/actions", handler.Actions)
	}
}
