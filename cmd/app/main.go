package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/in/http"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/out/cache"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/out/eventbus"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/out/logger"
	"github.com/suchimauz/facility-slot-manager/internal/adapters/out/slotservice"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
	"github.com/suchimauz/facility-slot-manager/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger := logger.NewConsoleLogger()
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"cacheDriver":     cfg.Cache.Driver,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	slotServiceAdapter := slotservice.NewSlotServiceAdapter(cfg, mainLogger.WithModule("SlotServiceAdapter"))

	var cacheAdapter out.CachePort
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		cacheAdapter = cache.NewMemoryCacheAdapter(cfg, services.AvailabilityCacheTTL, mainLogger.WithModule("MemoryCacheAdapter"))
	default:
		cacheAdapter, err = cache.NewRedisCacheAdapter(cfg, mainLogger.WithModule("RedisCacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	var eventBus out.EventBusPort
	if cfg.RabbitMQ.Enabled {
		publisher, err := eventbus.NewRabbitMqPublisher(cfg, mainLogger.WithModule("RabbitMqPublisher"))
		if err != nil {
			log.Error("app.eventbus.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer publisher.Close()
		eventBus = publisher
	} else {
		eventBus = eventbus.NewNoopPublisher(mainLogger.WithModule("NoopPublisher"))
	}

	// Инициализация сервисов
	slotCacheService := services.NewSlotCacheService(slotServiceAdapter, cacheAdapter, mainLogger)
	availabilityService := services.NewAvailabilityService(slotCacheService, mainLogger)
	bookingValidator := services.NewBookingValidator(slotCacheService)
	bookingService := services.NewBookingService(bookingValidator, slotServiceAdapter, eventBus, mainLogger)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := http.NewSlotsController(availabilityService, bookingService, cfg)
	controller.RegisterRoutes(router)

	// Слушатель событий брони для инвалидации кэша
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewSlotBookedListener(slotCacheService, cfg, mainLogger.WithModule("SlotBookedListener"))
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
