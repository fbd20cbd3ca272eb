package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/internal/config"
	"github.com/jabonilla/ascend/internal/feed"
	"github.com/jabonilla/ascend/internal/handlers"
	"github.com/jabonilla/ascend/internal/metrics"
	"github.com/jabonilla/ascend/internal/notify"
	"github.com/jabonilla/ascend/internal/pg"
	"github.com/jabonilla/ascend/internal/repo"
	"github.com/jabonilla/ascend/internal/service"
	"github.com/jabonilla/ascend/pkg/auth"
	"github.com/jabonilla/ascend/pkg/clients"
	"github.com/jabonilla/ascend/pkg/logger"
	"github.com/jabonilla/ascend/pkg/rabbitmq"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	metrics    *metrics.Metrics
	dispatcher *notify.Dispatcher
	pool       *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.metrics = metrics.New()
	a.dispatcher = notify.NewDispatcher(newPublisher(cfg), notify.NewWorkerPool(cfg.NotifyWorkers))
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(
		a.repo,
		a.dispatcher,
		feed.New(cfg.FeedAddress, clients.NewHTTPClient()),
		a.metrics,
		service.Options{
			DefaultIncrement: cfg.RoundUpIncrement,
			BatchConcurrency: cfg.BatchConcurrency,
		},
	)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), a.metrics.Handler())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// newPublisher falls back to log-only delivery when no broker is configured
// or it cannot be reached at startup.
func newPublisher(cfg *config.Config) notify.Publisher {
	if cfg.RabbitMQURL == "" {
		zap.L().Info("rabbitmq url not set, events will be logged only")
		return rabbitmq.FallbackProducer{}
	}
	producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, notify.Exchange)
	if err != nil {
		zap.L().Warn("rabbitmq unavailable, events will be logged only", zap.Error(err))
		return rabbitmq.FallbackProducer{}
	}
	return producer
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		// In-flight requests are done; drain queued events before the pool goes.
		a.dispatcher.Close()
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
