package config

import (
	"context"
	"fmt"

	"github.com/lawnchairsociety/lootscale/internal/database"
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/logger"
)

// OpenCatalog loads the item catalog from the configured source.
func (c *Config) OpenCatalog(ctx context.Context) (*items.Catalog, error) {
	switch c.Catalog.Source {
	case CatalogSourceYAML:
		catalog, err := items.LoadCatalog(c.Catalog.ItemsFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Item catalog loaded", "source", c.Catalog.Source, "path", c.Catalog.ItemsFile, "count", catalog.Len())
		return catalog, nil

	case CatalogSourceDatabase:
		db, err := database.OpenWithConfig(c.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog database: %w", err)
		}
		defer db.Close()

		catalog, err := db.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("Item catalog loaded", "source", c.Catalog.Source, "driver", c.Database.Driver, "count", catalog.Len())
		return catalog, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
}
