package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/choreography"
	"github.com/powerfrill/showcase-backend-go/internal/config"
	"github.com/powerfrill/showcase-backend-go/internal/database"
	"github.com/powerfrill/showcase-backend-go/internal/repository"
	"github.com/powerfrill/showcase-backend-go/internal/service"
)

// app holds what every subcommand needs: the catalog index and the resolved choreography
type app struct {
	Index        *catalog.Index
	Choreography choreography.Config
	closeDB      bool
}

func (a *app) Close() {
	if a.closeDB {
		if err := database.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
}

func buildApp(ctx context.Context) (*app, error) {
	ch, err := cfg.Choreography.Resolve()
	if err != nil {
		return nil, err
	}

	a := &app{Choreography: ch}

	table := catalog.Builtin()
	if cfg.Catalog.Source == config.CatalogSQLite {
		if err := database.Init(database.Config{Path: cfg.Database.Path}, logger); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closeDB = true

		db, err := database.GetDB()
		if err != nil {
			a.Close()
			return nil, err
		}
		table, err = service.LoadTable(ctx, repository.NewCatalogRepository(db), table, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	a.Index = catalog.NewIndex(table)

	logger.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("solutions", len(table.Solutions)),
		zap.Int("categories", len(table.Categories)),
		zap.Int("products", len(table.Products)),
	)
	for _, p := range a.Index.OrphanProducts() {
		logger.Warn("product matches no category by name",
			zap.String("product", p.ID),
			zap.String("category_name", p.CategoryName()),
		)
	}

	return a, nil
}
