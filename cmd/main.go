package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/config"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/dto"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/endpoints"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/service"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/transport"
	"github.com/ijalalfrz/fleet-timetable-service/internal/app/warmer"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/logger"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/snapshot"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/scheduleprovider/upstream"
	"github.com/ijalalfrz/fleet-timetable-service/internal/pkg/timeline"
	"github.com/redis/go-redis/v9"
)

// @title           Fleet Timetable Service API
// @version         0.0.1
// @description     fleet-timetable-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	timetableService := makeTimetableService(ctx, &cfg)

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, timetableService)
	}()

	if cfg.Timetable.WarmerSchedule != "" {
		cacheWarmer, err := warmer.New(timetableService, cfg.Timetable.WarmerSchedule,
			cfg.Timetable.HubCode)
		if err != nil {
			slog.ErrorContext(ctx, "failed to init timetable warmer", slog.String("error", err.Error()))
			panic(err)
		}

		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			cacheWarmer.Run(ctx)
		}()
	}

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config, svc *service.TimetableService) {
	endpts := endpoints.Endpoints{
		TimetableEndpoint: endpoints.MakeTimetableEndpoint(svc),
	}
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeTimetableService(ctx context.Context, cfg *config.Config) *service.TimetableService {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	provider := initScheduleProvider(cfg, redisClient)

	return service.NewTimetableService(
		provider,
		timeline.NewLayoutCache(redisClient),
		timeline.NewEngine(cfg.Timetable.HubCode, cfg.Timetable.TickMinutes),
		cfg.Timetable.CacheExpiration,
		cfg.Timetable.LockTimeout,
	)
}

// an http(s) url calls the scheduling service, anything else is a snapshot file
func initScheduleProvider(cfg *config.Config, redisClient *redis.Client) scheduleprovider.ScheduleProvider {
	providerConfig := scheduleprovider.ScheduleProviderConfig{
		URL:          cfg.ScheduleProvider.URL,
		Timeout:      cfg.ScheduleProvider.Timeout,
		MaxRetries:   cfg.ScheduleProvider.MaxRetries,
		RateLimitRPS: cfg.ScheduleProvider.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	}

	if scheduleprovider.IsRemote(providerConfig.URL) {
		slog.Info("using upstream schedule provider", slog.String("url", providerConfig.URL))
		return upstream.NewProvider(providerConfig)
	}

	slog.Info("using snapshot schedule provider", slog.String("path", providerConfig.URL))
	return snapshot.NewProvider(providerConfig)
}
