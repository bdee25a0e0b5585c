package cmd

import (
	"fmt"

	"collection-sync/core/config"
	"collection-sync/core/database"
	"collection-sync/core/logger"
	"collection-sync/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by the commands.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
}

// bootstrap loads the configuration and opens storage. The database is only opened when
// requireDB is set; otherwise a failed connection is logged and db stays nil.
func bootstrap(requireDB bool) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	rt := &deps{cfg: cfg, logger: l, client: client}

	db, err := database.Connect(cfg.Database)
	switch {
	case err == nil:
		rt.db = db
	case requireDB:
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	default:
		l.Warn("Optional database connection failed", zap.Error(err))
	}

	return rt, nil
}
