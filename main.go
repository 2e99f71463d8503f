package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	accounts "bluepenguin/internal/accountService"
	auction "bluepenguin/internal/auctionService"
	"bluepenguin/internal/auth"
	"bluepenguin/internal/closer"
	"bluepenguin/internal/config"
	"bluepenguin/internal/events"
	market "bluepenguin/internal/marketService"
	"bluepenguin/internal/metrics"
	"bluepenguin/internal/repository"
	"bluepenguin/internal/server"
	"bluepenguin/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		utils.Fatal("server stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

func run(ctx context.Context, cfg *config.Config) (err error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, store.Close()) }()

	notifier, closeNotifier, err := openNotifier(cfg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeNotifier()) }()

	clock := utils.SystemClock{}
	m := metrics.New()
	sessions := auth.NewSessionStore(cfg.SessionTTL, clock)

	auctionSvc := auction.NewAuctionService(store,
		auction.WithNotifier(notifier),
		auction.WithClock(clock),
		auction.WithMetrics(m),
		auction.WithRejectCascade(cfg.RejectCascade),
	)
	marketSvc := market.NewMarketService(store, clock)
	accountSvc := accounts.NewAccountService(store, sessions, clock, cfg.SuspensionFine)

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, accountSvc, marketSvc, clock); err != nil {
			return err
		}
	}

	router := server.SetupRouter(server.Dependencies{
		Bidding:      auctionSvc,
		Transactions: auctionSvc,
		Market:       marketSvc,
		Accounts:     accountSvc,
		Sessions:     sessions,
		Metrics:      m,
		Storage:      store,
	})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	auctionCloser := closer.New(auctionSvc, closer.Config{
		Interval:       cfg.CloserInterval,
		Concurrency:    cfg.CloserConcurrency,
		ReminderWindow: cfg.ReminderWindow,
	}, m)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr, "storage": cfg.StorageBackend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		auctionCloser.Run(gctx)
		return nil
	})
	g.Go(func() error {
		sessions.Run(gctx, 10*time.Minute)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		utils.Info("shutting down auction server", nil)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if cfg.StorageBackend == config.BackendPostgres {
		return repository.NewPostgresRepo(ctx, cfg.DSN())
	}
	return repository.NewMemoryRepo(), nil
}

// openNotifier logs every event and also publishes to RabbitMQ when AMQP_URL is set
func openNotifier(cfg *config.Config) (events.Notifier, func() error, error) {
	if cfg.AMQPURL == "" {
		return events.LogNotifier{}, func() error { return nil }, nil
	}
	rabbit, err := events.NewRabbitNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, err
	}
	utils.Info("publishing auction events to rabbitmq", map[string]any{"exchange": cfg.AMQPExchange})
	return events.Fanout{events.LogNotifier{}, rabbit}, rabbit.Close, nil
}
