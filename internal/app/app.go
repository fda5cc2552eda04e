package app

import (
	"context"
	"go-hris-registry/internal/config"
	"go-hris-registry/internal/employee"
	"go-hris-registry/internal/middleware"
	"go-hris-registry/internal/position"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires the registry into router. The returned cleanup flushes the
// event publisher and must be called on shutdown.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	ctx := context.Background()

	// 1. Infrastructure
	positionRepo := position.NewRepository()
	for _, seed := range cfg.Positions {
		p, err := position.NewPosition(seed.ID, seed.Title, seed.MinSalary, seed.MaxSalary)
		if err != nil {
			return nil, err
		}
		if err := positionRepo.Create(ctx, p); err != nil {
			return nil, err
		}
		logger.Info("position seeded", zap.String("position_id", p.ID), zap.String("title", p.Title))
	}

	publisher, cleanup := newEventPublisher(cfg.Kafka, logger)

	// 2. Services & handlers
	positionService := position.NewService(positionRepo, logger)
	employeeService := employee.NewServiceWithPublisher(positionRepo, publisher, logger)

	positionHandler := position.NewHandler(positionService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	// 3. Routes
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	{
		position.RegisterRoutes(api, positionHandler)
		employee.RegisterRoutes(api, employeeHandler)
	}

	return cleanup, nil
}

func newEventPublisher(cfg config.KafkaConfig, logger *zap.Logger) (employee.EventPublisher, func()) {
	if len(cfg.Brokers) == 0 {
		logger.Info("kafka brokers not configured, employee events disabled")
		return employee.NewNoopEventPublisher(), func() {}
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	logger.Info("kafka event publisher enabled", zap.Strings("brokers", cfg.Brokers))

	return employee.NewKafkaEventPublisher(writer, cfg.Topic), func() {
		if err := writer.Close(); err != nil {
			logger.Error("close kafka writer failed", zap.Error(err))
		}
	}
}
