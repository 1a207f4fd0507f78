package app

import (
	"hr-leave-agent/internal/calendar"
	"hr-leave-agent/internal/dispatch"
	"hr-leave-agent/internal/employee"
	"hr-leave-agent/internal/leave"
	"hr-leave-agent/internal/policy"
	"hr-leave-agent/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

func registerModules(
	router *gin.Engine,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
) error {
	// --- Repositories (seeded once, own all entity state) ---
	employeeRepo := employee.NewInMemoryRepository(seed.Employees())
	calendarRepo := calendar.NewInMemoryRepository(seed.CalendarEntries())
	policyRepo := policy.NewInMemoryRepository(seed.Policies())

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	calendarService := calendar.NewService(calendarRepo)
	policyService := policy.NewService(policyRepo)

	leavePublisher := leave.NewNoopEventPublisher()
	if kafkaWriter != nil {
		leavePublisher = leave.NewKafkaEventPublisher(kafkaWriter)
	}
	leaveService := leave.NewServiceWithEvents(employeeRepo, calendarRepo, leavePublisher)

	// --- Dispatcher & Handler ---
	dispatcher := dispatch.NewDispatcher(employeeService, leaveService, policyService, calendarService)
	var dispatchHandler *dispatch.Handler
	if rdb != nil {
		dispatchHandler = dispatch.NewHandlerWithRedis(dispatcher, rdb)
	} else {
		dispatchHandler = dispatch.NewHandler(dispatcher)
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		dispatch.RegisterRoutes(api, dispatchHandler, rdb)
	}

	return nil
}
