package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	votingledger "fanvote/contexts/fan-engagement/voting-ledger"
	postgresadapter "fanvote/contexts/fan-engagement/voting-ledger/adapters/postgres"
	"fanvote/internal/platform/config"
	"fanvote/internal/platform/db"
	"fanvote/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var (
		ledger votingledger.Module
		pg     *db.Postgres
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		// No DSN means a local/dev run against the in-memory adapter.
		logger.Warn("postgres dsn missing, using in-memory store",
			"event", "bootstrap_memory_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		ledger = votingledger.NewInMemoryModule(cfg.TreasuryWithdrawers, logger)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		repo := postgresadapter.NewRepository(pg.DB, logger)
		if cfg.AutoMigrateOnStartup {
			if err := repo.AutoMigrate(); err != nil {
				_ = pg.Close()
				return nil, err
			}
		}

		ledger = votingledger.NewModule(votingledger.Dependencies{
			Store:                 repo,
			Clock:                 postgresadapter.SystemClock{},
			IDGen:                 postgresadapter.UUIDGenerator{},
			AuthorizedWithdrawers: cfg.TreasuryWithdrawers,
			Logger:                logger,
		})
	}

	server := httpserver.New(ledger, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
