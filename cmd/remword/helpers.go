package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/simonggx/remword/internal/config"
	"github.com/simonggx/remword/internal/database"
	"github.com/simonggx/remword/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*sqlx.DB, vocabulary.Store, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, vocabulary.NewDBStore(db), nil
}
