package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fineprint-dev/fineprint/internal/engine"
	"github.com/fineprint-dev/fineprint/internal/server"
	"github.com/fineprint-dev/fineprint/internal/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Long: `Start an HTTP server exposing the analyzer, for browser extensions and
other local tooling. Serves /v1/analyze, /v1/analyze/batch, /v1/categories,
/v1/history, /healthz, and Prometheus metrics on /metrics.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8420)")
	cmd.Flags().Bool("no-storage", false, "run without history storage or caching")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	noStorage, _ := cmd.Flags().GetBool("no-storage")

	var store service.Storage
	if !noStorage {
		s, err := initStorage(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	analyzer, err := engine.New()
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	if addr := viper.GetString("server.addr"); addr != "" {
		cfg.Addr = addr
	}

	slog.Info("starting fineprint server", "addr", cfg.Addr, "storage", !noStorage)
	return server.New(analyzer, store, cfg).Start(ctx)
}
