package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	adapterhttp "github.com/citamed/agenda-slots-service/internal/adapters/in/http"
	"github.com/citamed/agenda-slots-service/internal/adapters/in/rabbitmq"
	"github.com/citamed/agenda-slots-service/internal/adapters/out/cache"
	"github.com/citamed/agenda-slots-service/internal/adapters/out/logger"
	"github.com/citamed/agenda-slots-service/internal/adapters/out/persistencia"
	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/citamed/agenda-slots-service/internal/core/services/availability_service"
	"github.com/citamed/agenda-slots-service/internal/core/services/schedule_service"
)

func main() {
	// Local runs keep their settings in .env
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	persistenciaAdapter := persistencia.NewPersistenciaAdapter(cfg, log.WithModule("PersistenciaAdapter"))

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, log.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	scheduleService := schedule_service.NewScheduleService(
		persistenciaAdapter,
		cacheAdapter,
		log.WithModule("ScheduleService"),
	)
	availabilityService := availability_service.NewAvailabilityService(
		persistenciaAdapter,
		cacheAdapter,
		log.WithModule("AvailabilityService"),
	)

	router := gin.Default()
	scheduleController := adapterhttp.NewScheduleController(scheduleService, cfg)
	scheduleController.RegisterRoutes(router)
	availabilityController := adapterhttp.NewAvailabilityController(availabilityService, cfg)
	availabilityController.RegisterRoutes(router)

	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewReservaListener(
			scheduleService,
			cfg,
			log.WithModule("ReservaListener"),
		)
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
