package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/campus-connect/internal/config"
	"github.com/jonathan/campus-connect/internal/db"
	"github.com/jonathan/campus-connect/internal/ingestion"
)

var (
	ingestSeedFile   string
	ingestSchemaFile string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a seed catalog into the database",
	Long: `Validate a JSON seed catalog against its schema and upsert every
job into the database. Requires DATABASE_URL.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSeedFile, "seed", "", "Path to the JSON seed catalog (overrides SEED_FILE)")
	ingestCmd.Flags().StringVar(&ingestSchemaFile, "schema", "", "Path to the catalog JSON Schema (overrides SCHEMA_FILE)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	envCfg := config.FromEnv()
	cfg := envCfg.Resolved()
	if ingestSeedFile != "" {
		cfg.SeedFile = ingestSeedFile
	}
	if ingestSchemaFile != "" {
		cfg.SchemaFile = ingestSchemaFile
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.SeedFile == "" {
		return fmt.Errorf("a seed catalog is required (--seed or SEED_FILE)")
	}

	schemaPath := ingestion.ResolveSchemaPath(cfg.SchemaFile)
	if schemaPath == "" {
		log.Printf("Schema %s not found, skipping validation", cfg.SchemaFile)
	}

	seeds, err := ingestion.LoadSeedFile(cfg.SeedFile, schemaPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	if err := ingestion.SeedDatabase(ctx, store, seeds); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	count, err := store.CountJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}

	log.Printf("Ingested %d seed jobs; catalog now holds %d active jobs", len(seeds), count)
	return nil
}
