package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/tdnguyen/finsight/internal/config"
	finsightHttp "github.com/tdnguyen/finsight/internal/http"
	txHandler "github.com/tdnguyen/finsight/internal/http/transaction"
	"github.com/tdnguyen/finsight/internal/source"
	"github.com/tdnguyen/finsight/internal/source/csvfile"
	"github.com/tdnguyen/finsight/internal/source/sheets"
	"github.com/tdnguyen/finsight/internal/store"
	"github.com/tdnguyen/finsight/internal/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	src, err := newSource(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to set up transaction source", "error", err)
		os.Exit(1)
	}

	snapshots := store.New(src)

	if cfg.Source.RefreshCron != "" {
		scheduler := cron.New()

		_, err := scheduler.AddFunc(cfg.Source.RefreshCron, func() {
			if _, err := snapshots.Reload(context.Background()); err != nil {
				slog.Error("scheduled reload failed", "error", err)
			}
		})
		if err != nil {
			slog.Error("failed to schedule source refresh", "cron", cfg.Source.RefreshCron, "error", err)
			os.Exit(1)
		}

		scheduler.Start()
		defer scheduler.Stop()
	}

	transactionService := transaction.NewService(snapshots)
	transactionH := txHandler.NewHandler(transactionService)

	router := finsightHttp.New(finsightHttp.AppInfo{
		Name:        cfg.App.Name,
		Environment: cfg.App.Environment,
	}, transactionH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "source", cfg.Source.Kind)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newSource(ctx context.Context, cfg *config.Config) (source.Source, error) {
	switch cfg.Source.Kind {
	case "csv":
		comma := ','
		if cfg.Source.Comma != "" {
			comma = []rune(cfg.Source.Comma)[0]
		}

		return csvfile.New(cfg.Source.Path, comma), nil
	case "sheets":
		return sheets.New(ctx, cfg.Source.SpreadsheetID, cfg.Source.ReadRange, cfg.Source.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
