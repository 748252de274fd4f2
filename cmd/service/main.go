package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RanieeelB/PulseFit/internal/config"
	"github.com/RanieeelB/PulseFit/internal/db"
	"github.com/RanieeelB/PulseFit/internal/logging"
	"github.com/RanieeelB/PulseFit/internal/metrics"
	"github.com/RanieeelB/PulseFit/internal/training"
	"github.com/RanieeelB/PulseFit/internal/training/history"
	"github.com/RanieeelB/PulseFit/internal/training/records"
	"github.com/RanieeelB/PulseFit/internal/training/session"
	"github.com/RanieeelB/PulseFit/internal/training/stats"
	"github.com/RanieeelB/PulseFit/internal/training/workouts"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "training-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	redisPassword := os.Getenv("PULSEFIT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use PULSEFIT_REDIS_PASS")
	}
	dbPassword := os.Getenv("PULSEFIT_DB_PASS")

	if cfg.TracingEnabled {
		if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	} else {
		log.Debugln("tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		DBUser:         cfg.DBUser,
		DBPassword:     dbPassword,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: redisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorf("ping redis: %s", err)
	} else {
		log.Debugln("redis ping: pong")
	}

	promReg := prometheus.NewRegistry()
	metricsManager := metrics.NewManager("pulsefit", "training", promReg)

	sessionManager := session.NewManager(session.NewRedisSnapshotStore(rdb))
	workoutsRepo := workouts.NewRepo(dbPool)
	logsRepo := workouts.NewLogsRepo(dbPool)
	profilesRepo := workouts.NewProfilesRepo(dbPool)
	recordsTracker := records.NewTracker(records.NewRepo(dbPool))
	historyRepo := history.NewRepo(dbPool)
	statsEngine := stats.NewEngine(logsRepo, profilesRepo)

	service := training.NewService(training.NewServiceParams{
		Session:           sessionManager,
		Workouts:          workoutsRepo,
		Logs:              logsRepo,
		Profiles:          profilesRepo,
		Records:           recordsTracker,
		History:           historyRepo,
		Stats:             statsEngine,
		Metrics:           metricsManager,
		CaloriesPerMinute: cfg.CaloriesPerMinute,
	})
	service.Subscribe(func(event training.UpdateEvent) {
		log.Tracef("update event: %s", event)
	})

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})).Methods("GET")
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Infof("metrics server listening on: [%s]", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics server: %s", err)
		}
	}()

	metricsManager.GaugeLifeSignal.Set(1)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	metricsManager.GaugeLifeSignal.Set(0)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("metrics server shutdown: %s", err)
	}
}
