package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	accessservice "sokoni/internal/access/service"
	accessstore "sokoni/internal/access/store"
	"sokoni/internal/audit"
	auditkafka "sokoni/internal/audit/kafka"
	auditpublisher "sokoni/internal/audit/publisher"
	auditmemory "sokoni/internal/audit/store/memory"
	auditpostgres "sokoni/internal/audit/store/postgres"
	auditworker "sokoni/internal/audit/worker"
	"sokoni/internal/events"
	inventorystore "sokoni/internal/inventory/store"
	paymentstore "sokoni/internal/payment/store"
	"sokoni/internal/platform/config"
	"sokoni/internal/platform/httpserver"
	"sokoni/internal/platform/logger"
	platformmetrics "sokoni/internal/platform/metrics"
	platformredis "sokoni/internal/platform/redis"
	"sokoni/internal/ratelimit"
	registrationhandler "sokoni/internal/registration/handler"
	registrationmetrics "sokoni/internal/registration/metrics"
	registrationservice "sokoni/internal/registration/service"
	"sokoni/internal/relation"
	tenantstore "sokoni/internal/tenant/store"
	httptransport "sokoni/internal/transport/http"
	id "sokoni/pkg/domain"
	"sokoni/pkg/platform/tx"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages. Without a database
// URL everything runs on in-memory stores for local development.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		db  *sql.DB
		err error
	)
	if cfg.Database.URL != "" {
		db, err = sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
	}

	// Stores: postgres when a database is configured, in-memory otherwise.
	var (
		tenants   registrationservice.TenantStore
		lister    accessservice.TenantLister
		locations registrationservice.StockLocationStore
		payments  registrationservice.PaymentMethodStore
		access    registrationservice.AccessStore
		accessDB  accessservice.RoleStore
		relations relation.Store
		auditDst  audit.Store
		runner    tx.Runner
	)
	if db != nil {
		pgTenants := tenantstore.NewPostgres(db)
		pgAccess := accessstore.NewPostgres(db)
		tenants, lister = pgTenants, pgTenants
		locations = inventorystore.NewPostgres(db)
		payments = paymentstore.NewPostgres(db)
		access, accessDB = pgAccess, pgAccess
		relations = relation.NewPostgres(db)
		auditDst = auditpostgres.New(db)
		runner = newRegistrationPostgresTx(db)
	} else {
		log.Warn("no database configured, using in-memory stores")
		memTenants := tenantstore.NewInMemory()
		memAccess := accessstore.NewInMemory()
		tenants, lister = memTenants, memTenants
		locations = inventorystore.NewInMemory()
		payments = paymentstore.NewInMemory()
		access, accessDB = memAccess, memAccess
		relations = relation.NewInMemory()
		auditDst = auditmemory.NewInMemoryStore()
		runner = tx.Passthrough{}
	}

	// Audit: Kafka sink when brokers are configured, otherwise the store
	// alone. Kafka delivery runs on its own queue and worker so a slow
	// broker never stalls the store append.
	var (
		auditSink   audit.Store = auditDst
		kafkaWorker *auditworker.Worker
	)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := auditkafka.NewSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("create kafka audit sink", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		kafkaInbox := make(chan audit.Event, cfg.Registration.AuditBuffer)
		kafkaWorker = auditworker.NewWorker(kafkaSink, kafkaInbox, auditworker.WithLogger(log))
		auditSink = teeStore{primary: auditDst, secondary: chanSink{ch: kafkaInbox}}
	}
	auditor := auditpublisher.NewPublisher(auditSink, auditpublisher.WithAsyncBuffer(cfg.Registration.AuditBuffer))
	defer auditor.Close()

	// Registration attempt throttling: shared via Redis when configured.
	var attemptStore ratelimit.AttemptStore = ratelimit.NewMemoryStore()
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		attemptStore = ratelimit.NewRedisStore(redisClient.Client)
	}
	limiter := ratelimit.NewLimiter(attemptStore, cfg.Registration.MaxAttempts, cfg.Registration.AttemptWindow)

	router := events.NewRouter(
		events.WithLogger(log),
		events.WithQueueSize(cfg.Registration.EventQueueSize),
	)
	registerNotificationHandlers(router, log)

	roleSvc := accessservice.New(accessDB, relations, lister, accessservice.WithLogger(log))
	if err := roleSvc.RefreshVisibility(ctx); err != nil {
		log.Warn("initial tenant visibility refresh failed", "error", err)
	}

	svc := registrationservice.New(tenants, locations, payments, access, roleSvc, relations,
		registrationservice.WithLogger(log),
		registrationservice.WithAuditPublisher(auditor),
		registrationservice.WithEventRouter(router),
		registrationservice.WithMetrics(registrationmetrics.New()),
	)

	httpMetrics := platformmetrics.New()
	regHandler := registrationhandler.New(svc, runner, log, httpMetrics, limiter)

	health := func() error {
		if db != nil {
			if err := db.Ping(); err != nil {
				return err
			}
		}
		if redisClient != nil {
			if err := redisClient.Health(context.Background()); err != nil {
				return err
			}
		}
		return nil
	}
	srv := httpserver.New(cfg.Server.Addr, httptransport.NewRouter(health, regHandler))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := router.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if kafkaWorker != nil {
		g.Go(func() error {
			err := kafkaWorker.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		log.Info("starting sokoni", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// teeStore fans audit appends out to two sinks while queries go to the
// primary.
type teeStore struct {
	primary   audit.Store
	secondary audit.Sink
}

func (t teeStore) Append(ctx context.Context, event audit.Event) error {
	if err := t.primary.Append(ctx, event); err != nil {
		return err
	}
	return t.secondary.Append(ctx, event)
}

func (t teeStore) ListByTenant(ctx context.Context, tenantID id.TenantID) ([]audit.Event, error) {
	return t.primary.ListByTenant(ctx, tenantID)
}

// chanSink hands events to the kafka worker's queue. A full queue drops the
// event rather than blocking the audit publisher.
type chanSink struct {
	ch chan<- audit.Event
}

func (c chanSink) Append(_ context.Context, event audit.Event) error {
	select {
	case c.ch <- event:
		return nil
	default:
		return errors.New("kafka audit queue full")
	}
}
