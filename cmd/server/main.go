// Command server runs the roster HTTP service: stores, validation, filtering,
// enrollment management, audit trail, and metrics behind one chi router.
// Business logic lives in the internal services packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"rollbook/internal/audit"
	"rollbook/internal/platform/config"
	"rollbook/internal/platform/httpserver"
	"rollbook/internal/platform/logger"
	"rollbook/internal/platform/metrics"
	"rollbook/internal/platform/postgres"
	"rollbook/internal/platform/redis"
	"rollbook/internal/roster/service"
	"rollbook/internal/roster/store"
	"rollbook/internal/roster/store/cache"
	"rollbook/internal/token"
	"rollbook/pkg/platform/tx"
)

const auditBuffer = 256

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	tokens := token.NewManager(cfg.JWTSigningKey, "rollbook")

	// Stores: postgres when configured, in-memory otherwise.
	var (
		schools     service.SchoolStore
		classes     service.ClassStore
		people      service.PersonStore
		enrollments service.EnrollmentStore
		txRunner    service.StoreTx
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		schools = store.NewPostgresSchoolStore(db)
		classes = store.NewPostgresClassStore(db)
		people = store.NewPostgresPersonStore(db)
		enrollments = store.NewPostgresEnrollmentStore(db)
		txRunner = tx.NewSQLRunner(db)
	} else {
		log.Warn("no database configured, using in-memory stores")
		schools = store.NewInMemorySchoolStore()
		classes = store.NewInMemoryClassStore()
		people = store.NewInMemoryPersonStore()
		enrollments = store.NewInMemoryEnrollmentStore()
	}

	// Audit sink: Kafka when brokers are configured, in-memory otherwise.
	var sink audit.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafka.Close(closeCtx); err != nil {
				log.Error("kafka close failed", "error", err)
			}
		}()
		sink = kafka
	} else {
		sink = audit.NewInMemoryPublisher()
	}
	worker := audit.NewWorker(sink, auditBuffer, log)

	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithAudit(worker.Publisher()),
	}
	if txRunner != nil {
		opts = append(opts, service.WithTx(txRunner))
	}
	if viewCache := cache.New(redisClient, cfg.CacheTTL, log); viewCache != nil {
		opts = append(opts, service.WithCache(viewCache))
	}
	roster := service.New(schools, classes, people, enrollments, opts...)

	router := newRouter(roster, tokens, cfg.StaffSecretHash, log, m, redisClient)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting rollbook", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("rollbook stopped")
}
