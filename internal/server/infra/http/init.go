package http

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sodiqit/signceremony.git/internal/logger"
	"github.com/sodiqit/signceremony.git/internal/server/adapters/http/ceremony"
	"github.com/sodiqit/signceremony.git/internal/server/config"
	"github.com/sodiqit/signceremony.git/internal/server/services/ceremonyprocessor"
	"github.com/sodiqit/signceremony.git/pkg/esign"
)

const shutdownTimeout = 10 * time.Second

func NewRouter(config *config.Config, logger logger.ILogger) chi.Router {
	client := esign.NewClient(esign.Options{
		BasePath: config.BasePath,
		Timeout:  config.Timeout(),
		Logger:   logger,
	})

	ceremonyService := ceremonyprocessor.New(client, config, logger)
	ceremonyAdapter := ceremony.New(ceremonyService, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Mount("/", ceremonyAdapter.Route())

	return r
}

func RunServer(config *config.Config) error {
	logger, err := logger.Initialize(config.LogLevel, config.LogFile)

	if err != nil {
		return err
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              config.Address,
		Handler:           NewRouter(config, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infow("start server", "address", config.Address, "baseUrl", config.BaseURL, "basePath", config.BasePath, "accountId", config.AccountID)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Infow("shutdown server", "reason", ctx.Err())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
