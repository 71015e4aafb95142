package main

import (
	"context"
	"fmt"
	"langtrainer/internal/app"
	"langtrainer/internal/catalog"
	"langtrainer/internal/config"
	"langtrainer/internal/storage"
	"langtrainer/internal/workbook"

	"github.com/sirupsen/logrus"
)

// Builds the catalog from the configured source. The result is guaranteed
// to have at least one word and one phrase.
func openCatalog(ctx context.Context, cfg config.CatalogConfig, logger logrus.FieldLogger) (*catalog.Memory, error) {
	c, err := catalog.New(catalog.SampleLanguages)

	if err != nil {
		return nil, err
	}

	err = fill(ctx, cfg, c)

	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", cfg.Source, err)
	}

	vocabularyCount, phrasesCount := c.Counts()

	logger.WithFields(logrus.Fields{
		"source":     cfg.Source,
		"path":       cfg.Path,
		"vocabulary": vocabularyCount,
		"phrases":    phrasesCount,
	}).Info("catalog loaded")

	err = c.Ready()

	if err != nil {
		return nil, err
	}

	return c, nil
}

func fill(ctx context.Context, cfg config.CatalogConfig, c app.Catalog) error {
	switch cfg.Source {
	case config.SourceXLSX:
		return workbook.Load(cfg.Path, c)
	case config.SourceSQLite:
		file, err := storage.Open(ctx, cfg.Path)

		if err != nil {
			return err
		}

		defer file.Close()

		return file.LoadCatalog(ctx, c)
	}

	catalog.Sample(c)

	return nil
}
