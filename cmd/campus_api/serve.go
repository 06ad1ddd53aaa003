package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/campus-connect/internal/config"
	"github.com/jonathan/campus-connect/internal/db"
	"github.com/jonathan/campus-connect/internal/ingestion"
	"github.com/jonathan/campus-connect/internal/recommend"
	"github.com/jonathan/campus-connect/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the recommendation endpoints.

The job catalog is loaded from the database when DATABASE_URL is set,
otherwise from the JSON seed file given by SEED_FILE.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	engine := recommend.NewEngine()

	var store *db.DB
	var catalog server.CatalogSource
	switch {
	case cfg.DatabaseURL != "":
		store, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
		catalog = server.DBCatalog{Store: store}
	case cfg.SeedFile != "":
		schemaPath := ingestion.ResolveSchemaPath(cfg.SchemaFile)
		if schemaPath == "" {
			log.Printf("Schema %s not found, skipping seed validation", cfg.SchemaFile)
		}
		catalog = server.FileCatalog{Path: cfg.SeedFile, SchemaPath: schemaPath}
	default:
		return fmt.Errorf("either DATABASE_URL or SEED_FILE must be set")
	}

	jobs, err := catalog.Jobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}
	if err := engine.Fit(jobs); err != nil {
		return fmt.Errorf("failed to fit job catalog: %w", err)
	}
	log.Printf("Fitted job catalog: %d jobs", len(jobs))

	srv := server.New(server.Config{
		Port:          cfg.Port,
		TopN:          cfg.TopN,
		ContentWeight: cfg.ContentWeight,
	}, engine, catalog, store)

	return srv.Start()
}

// resolveConfig layers the environment over an optional config file, then
// applies built-in defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.FromEnv()

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
