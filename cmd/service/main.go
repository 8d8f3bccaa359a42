package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "loadboard/internal/app"
	"loadboard/internal/handlers/rest/bid_accept_post"
	"loadboard/internal/handlers/rest/bid_post"
	"loadboard/internal/handlers/rest/bid_withdraw_post"
	"loadboard/internal/handlers/rest/healthcheck_head"
	"loadboard/internal/handlers/rest/load_bids_get"
	"loadboard/internal/handlers/rest/load_cancel_post"
	"loadboard/internal/handlers/rest/load_complete_post"
	"loadboard/internal/handlers/rest/load_get"
	"loadboard/internal/handlers/rest/load_messages_get"
	"loadboard/internal/handlers/rest/load_post"
	"loadboard/internal/handlers/rest/load_put"
	"loadboard/internal/handlers/rest/load_transit_post"
	"loadboard/internal/handlers/rest/loads_get"
	"loadboard/internal/handlers/rest/message_post"
	"loadboard/internal/handlers/rest/ping_get"
	"loadboard/internal/handlers/rest/saved_load_post"
	"loadboard/internal/handlers/rest/saved_loads_get"
	"loadboard/internal/handlers/rest/stats_get"
	"loadboard/internal/handlers/rest/user_get"
	"loadboard/internal/handlers/rest/users_get"
	"loadboard/internal/pkg/config"
	"loadboard/internal/pkg/dotenv"
	"loadboard/internal/pkg/kafka"
	metrics_system "loadboard/internal/pkg/metrics"
	"loadboard/internal/pkg/middlewares/auth"
	"loadboard/internal/pkg/middlewares/graceful_shutdown"
	"loadboard/internal/pkg/middlewares/metrics"
	"loadboard/internal/pkg/middlewares/rate_limiter"
	"loadboard/internal/pkg/middlewares/timeout"
	"loadboard/internal/pkg/postgres"
	"loadboard/pkg/logger"
	"loadboard/pkg/logger/zap_adapter"
	"loadboard/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting loadboard application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, strings.Split(cfg.Kafka.Brokers, ","))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// доменные маршруты требуют JWT
	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, cfg.Auth.JWTSecret))

	api.Handle("/load/{id}", load_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/loads", loads_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/load", load_post.New(log, app.ServiceLoad)).Methods("POST")
	api.Handle("/load", load_put.New(log, app.ServiceLoad)).Methods("PUT")

	api.Handle("/load/cancel", load_cancel_post.New(log, app.ServiceAssignment)).Methods("POST")
	api.Handle("/load/transit", load_transit_post.New(log, app.ServiceAssignment)).Methods("POST")
	api.Handle("/load/complete", load_complete_post.New(log, app.ServiceAssignment)).Methods("POST")

	api.Handle("/bid", bid_post.New(log, app.ServiceBid)).Methods("POST")
	api.Handle("/bid/withdraw", bid_withdraw_post.New(log, app.ServiceBid)).Methods("POST")
	api.Handle("/bid/accept", bid_accept_post.New(log, app.ServiceAssignment)).Methods("POST")
	api.Handle("/load/{id}/bids", load_bids_get.New(log, app.ServiceBid)).Methods("GET")

	api.Handle("/message", message_post.New(log, app.ServiceMessage)).Methods("POST")
	api.Handle("/load/{id}/messages", load_messages_get.New(log, app.ServiceMessage)).Methods("GET")

	api.Handle("/saved-load", saved_load_post.New(log, app.ServiceSavedLoad)).Methods("POST")
	api.Handle("/saved-loads", saved_loads_get.New(log, app.ServiceSavedLoad)).Methods("GET")

	api.Handle("/user/{id}", user_get.New(log, app.ServiceUser)).Methods("GET")
	api.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")

	api.Handle("/stats", stats_get.New(log, app.ServiceStats)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
