package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"singleton"
	"singleton/config"
	"singleton/logger"
	"singleton/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.L().Error("fxdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fxdemo",
		Short:         "Ask for the singleton twice and print whether both calls returned the same object",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	app := fx.New(options(cfg, out))
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}

func options(cfg config.Config, out io.Writer) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			service.NewChecker,
			func() io.Writer { return out },
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(report),
	)
}

func newLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.Development})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr can't always be synced; nothing to do about it on shutdown.
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func report(cfg config.Config, checker *service.Checker, out io.Writer) error {
	var refs []*singleton.Singleton
	if cfg.Workers > 0 {
		refs = race(cfg.Workers)
	}

	singleton1 := singleton.GetInstance()
	singleton2 := singleton.GetInstance()

	if _, err := fmt.Fprintln(out, service.Same(checker, singleton1, singleton2)); err != nil {
		return err
	}
	if refs != nil {
		_, err := fmt.Fprintf(out, "distinct instances: %d\n", service.Distinct(checker, refs))
		return err
	}
	return nil
}
