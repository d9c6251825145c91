package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetworks/fleetworks/internal/app"
	"github.com/fleetworks/fleetworks/internal/fleet"
	"github.com/fleetworks/fleetworks/internal/fleet/export"
	"github.com/fleetworks/fleetworks/internal/fleet/report"
	jobmetrics "github.com/fleetworks/fleetworks/internal/jobs"
	"github.com/fleetworks/fleetworks/internal/platform/cache"
	"github.com/fleetworks/fleetworks/jobs"
	"golang.org/x/sync/errgroup"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	source := report.NewMemorySource()
	engine := report.NewEngine(source)
	registry := export.NewRegistry()
	summaryCache := fleet.NewCache(redisClient, cfg.QuickSummaryTTL)

	jobsClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	svc := fleet.NewService(fleet.ServiceDeps{
		Templates:  fleet.NewMemoryTemplateRepository(),
		Schedules:  fleet.NewMemoryScheduleRepository(),
		Exports:    fleet.NewMemoryExportRepository(),
		Engine:     engine,
		Registry:   registry,
		Source:     source,
		Dispatcher: jobs.NewQueueDispatcher(jobsClient),
		Cache:      summaryCache,
		Logger:     logger,
	})

	metrics := jobmetrics.NewMetrics(nil)
	sweepJob := jobs.NewSweepJob(svc, logger, metrics)
	dispatchJob := jobs.NewDispatchJob(logger, metrics)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskReportSweep, Handler: sweepJob.Handle},
			{Type: jobs.TaskReportDispatch, Handler: dispatchJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.ReportSweepCron, Task: jobs.NewReportSweepTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	router := chi.NewRouter()
	jobs.NewHandler(inspector, logger).MountRoutes(router)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	healthSrv := &http.Server{
		Addr:              cfg.WorkerHealthAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return worker.Run(groupCtx)
	})
	group.Go(func() error {
		if err := healthSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return healthSrv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
