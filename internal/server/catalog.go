package server

import (
	"context"

	"github.com/jonathan/campus-connect/internal/db"
	"github.com/jonathan/campus-connect/internal/ingestion"
	"github.com/jonathan/campus-connect/internal/recommend"
)

// DBCatalog serves the job catalog from the database.
type DBCatalog struct {
	Store *db.DB
}

func (c DBCatalog) Jobs(ctx context.Context) ([]recommend.Job, error) {
	return c.Store.ListActiveJobs(ctx)
}

// FileCatalog serves the job catalog from a JSON seed file, re-reading it on
// every refresh so edits are picked up without a restart.
type FileCatalog struct {
	Path       string
	SchemaPath string
}

func (c FileCatalog) Jobs(_ context.Context) ([]recommend.Job, error) {
	seeds, err := ingestion.LoadSeedFile(c.Path, c.SchemaPath)
	if err != nil {
		return nil, err
	}
	return ingestion.EngineJobs(seeds), nil
}

// StaticCatalog serves a fixed in-memory catalog, mainly for tests.
type StaticCatalog struct {
	Catalog []recommend.Job
}

func (c StaticCatalog) Jobs(_ context.Context) ([]recommend.Job, error) {
	return c.Catalog, nil
}
