package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carparts/carparts-api/internal/api"
	"github.com/carparts/carparts-api/internal/core/ports"
	mongodb "github.com/carparts/carparts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/carparts/carparts-api/internal/infrastructure/db/redis"
	"github.com/carparts/carparts-api/internal/infrastructure/payment"
	"github.com/carparts/carparts-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	log := logger.Component("server")

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	var roles ports.RoleCache
	if rdb != nil {
		defer rdb.Close()
		roles = redisdb.NewRoleCache(rdb, cfg.Redis.RoleTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("role cache enabled")
	}

	e := api.NewRouter(api.Dependencies{
		Parts:           mongodb.NewPartRepository(db),
		Orders:          mongodb.NewOrderRepository(db),
		Users:           mongodb.NewUserRepository(db),
		Payments:        mongodb.NewPaymentRepository(db),
		RoleCache:       roles,
		PaymentProvider: payment.NewStripeProvider(cfg.Payment.StripeSecretKey, nil),
		JWTSecret:       cfg.JWTSecret,
		TokenTTL:        cfg.TokenTTL,
		Currency:        cfg.Payment.Currency,
		Logger:          logger.Component("http"),
		Mongo:           db,
		Redis:           rdb,
		EnableMetrics:   true,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("car parts server is running")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})
	return g.Wait()
}
