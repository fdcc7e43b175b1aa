package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"cmpref/internal/audit"
	"cmpref/internal/consent/adapter"
	"cmpref/internal/consent/cmp"
	"cmpref/internal/consent/handler"
	"cmpref/internal/consent/iab"
	consentmetrics "cmpref/internal/consent/metrics"
	"cmpref/internal/consent/notify"
	"cmpref/internal/platform/config"
	"cmpref/internal/platform/health"
	"cmpref/internal/platform/httpserver"
	"cmpref/internal/platform/kafka/producer"
	"cmpref/internal/platform/logger"
	"cmpref/internal/platform/metrics"
	"cmpref/internal/platform/middleware"
	"cmpref/internal/platform/redis"
	"cmpref/internal/platform/tracer"
)

const (
	requestTimeout    = 30 * time.Second
	poolStatsInterval = 15 * time.Second
)

// main wires the reference CMP, the adapter and its notification sinks behind
// an HTTP surface. Everything with a lifetime runs in one errgroup.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing cmpref",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"module", adapter.ModuleID,
		"version", adapter.ModuleVersion,
	)

	g, ctx := errgroup.WithContext(ctx)
	healthHandler := health.New(cfg.Environment)

	storeOpts := []cmp.Option{cmp.WithLogger(log)}
	if cfg.CMP.RandomSeed != nil {
		storeOpts = append(storeOpts, cmp.WithSeed(*cfg.CMP.RandomSeed))
	}
	store := cmp.New(cmp.DefaultState(), storeOpts...)
	presenter := cmp.NewDemoPresenter(store,
		cmp.WithDismissDelay(cfg.CMP.DialogDelay),
		cmp.WithPresenterLogger(log),
	)
	defer presenter.Close()
	healthHandler.RegisterCheck("cmp", func(context.Context) error {
		if !store.Initialized() {
			return errors.New("cmp not initialized")
		}
		return nil
	})

	iabSource, closeIAB, err := newIABSource(ctx, g, cfg.Redis, log, healthHandler)
	if err != nil {
		return err
	}
	defer closeIAB()

	auditPublisher := audit.NewPublisher(audit.NewInMemoryStore(),
		audit.WithAsyncBuffer(cfg.AuditBuffer),
		audit.WithPublisherLogger(log),
	)
	defer auditPublisher.Close()

	credentials, err := cfg.CMP.Credentials()
	if err != nil {
		return err
	}
	consentAdapter, err := adapter.NewFromCredentials(store, presenter, credentials,
		adapter.WithLogger(log),
		adapter.WithMetrics(consentmetrics.New()),
		adapter.WithTracer(tracer.NewOTel()),
		adapter.WithAuditor(auditPublisher),
		adapter.WithIABSource(iabSource),
	)
	if err != nil {
		return fmt.Errorf("create consent adapter: %w", err)
	}
	defer consentAdapter.Close()

	fanout := notify.NewFanout(
		notify.NewLogDelegate(log, consentAdapter),
		notify.NewAuditDelegate(auditPublisher, consentAdapter, log),
	)
	if cfg.Kafka.Brokers != "" {
		kafkaProducer, err := producer.New(producer.DefaultConfig(cfg.Kafka.Brokers), log)
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		defer kafkaProducer.Close() //nolint:errcheck // flush errors are logged by the producer
		healthHandler.RegisterCheck("kafka", kafkaProducer.Health)
		fanout.Add(notify.NewKafkaDelegate(kafkaProducer, consentAdapter, cfg.Kafka.ConsentTopic,
			notify.WithKafkaLogger(log),
		))
	}
	handle := consentAdapter.SetDelegate(fanout)
	defer handle.Release()

	if err := consentAdapter.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize consent adapter: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log, metrics.New()))
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.ContentTypeJSON)

	healthHandler.Register(router)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}))
	handler.New(consentAdapter, auditPublisher, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)
	g.Go(func() error {
		return httpserver.Run(ctx, srv, log)
	})

	return g.Wait()
}

// newIABSource picks the Redis backed source when REDIS_URL is set and an
// in-memory one otherwise. The returned func releases the connection.
func newIABSource(ctx context.Context, g *errgroup.Group, cfg config.RedisConfig, log *slog.Logger, h *health.Handler) (iab.Source, func(), error) {
	client, err := redis.New(ctx, cfg, redis.NewPoolMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	if client == nil {
		log.Info("redis not configured, using in-memory iab source")
		return iab.NewMemorySource(), func() {}, nil
	}

	h.RegisterCheck("redis", client.Health)
	g.Go(func() error {
		return client.RunPoolStats(ctx, poolStatsInterval)
	})
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("close redis", "error", err)
		}
	}
	return iab.NewRedisSource(client,
		iab.WithHashKey(cfg.IABHashKey),
		iab.WithChannel(cfg.IABChannel),
		iab.WithLogger(log),
	), closeFn, nil
}
