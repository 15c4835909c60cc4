package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"referral/internal/api"
	"referral/internal/api/handler/apihandler"
	"referral/internal/config"
	"referral/internal/referral"
	"referral/pkg/logger"
	"referral/pkg/mailer/smtp"
	"referral/pkg/metrics"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupReferralService(ctx context.Context, deps referral.Deps) referral.Service {
	svc, err := referral.New(deps, referral.Options{})
	if err != nil {
		logger.Fatal(ctx, "could not create referral service", zap.Error(err))
	}

	return svc
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the referral API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := cfg.ValidateEmail(); err != nil {
				logger.Fatal(ctx, "invalid email config", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			if err := strg.Ping(ctx); err != nil {
				logger.Warn(ctx, "database is not reachable yet", zap.Error(err))
			}

			reg := metrics.NewRegistry()
			mp, err := metrics.NewMeterProvider(reg)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}
			}()

			sender := smtp.New(smtp.NewDialer(smtp.Options{
				Host:     cfg.Email.Host,
				Port:     cfg.Email.Port,
				Username: cfg.Email.User,
				Password: cfg.Email.Pass,
			}), cfg.Sender())

			svc := setupReferralService(ctx, referral.Deps{
				Storage:       strg,
				Mailer:        sender,
				MeterProvider: mp,
			})

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:     apihandler.Deps{Referral: svc},
				Registry: reg,
			})

			// wait for interrupt
			<-ctx.Done()
			logger.Info(ctx, "shutdown signal received")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
