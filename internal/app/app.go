package app

import (
	"net/http"
	"os"

	"hr-leave-agent/internal/middleware"
	"hr-leave-agent/internal/shared/connection"
	"hr-leave-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and modules. Redis and Kafka are optional
// collaborators: without REDIS_ADDR invoke replay is disabled, without
// KAFKA_BROKERS decision events are dropped.
func BuildApp(router *gin.Engine) error {
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		var err error
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		zap.L().Info("redis connection established", zap.String("addr", addr))
	}

	var kafkaWriter *kafkago.Writer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaWriter = connection.NewKafkaWriter(brokers)
		zap.L().Info("kafka writer configured", zap.String("brokers", brokers))
	}

	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	return registerModules(router, rdb, kafkaWriter)
}
