// Command seed loads a YAML interaction dataset into SQLite or Memgraph so the
// server can be pointed at a real backend.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/agenthands/interactome/internal/config"
	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/driver"
	"github.com/agenthands/interactome/internal/source"
)

func main() {
	dataset := flag.String("dataset", "", "YAML dataset to import")
	target := flag.String("target", "sqlite", "import target: sqlite or memgraph")
	sqlitePath := flag.String("sqlite", "", "SQLite database path (defaults to [sqlite] path)")
	cfgPath := flag.String("config", "config/config.toml", "configuration file")
	flag.Parse()

	if *dataset == "" {
		log.Fatal("-dataset is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	if *sqlitePath != "" {
		cfg.SQLite.Path = *sqlitePath
	}

	tables, err := source.LoadDataset(*dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	ctx := context.Background()

	var importer source.Importer
	switch *target {
	case "sqlite":
		s, err := source.NewSQLiteSource(cfg.SQLite.Path)
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		defer s.Close()
		importer = s
	case "memgraph":
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		defer d.Close(ctx)
		if err := d.BuildIndices(ctx); err != nil {
			log.Printf("Warning: failed to build indices: %v", err)
		}
		importer = source.NewMemgraphSource(d)
	default:
		log.Fatalf("Unknown target %q (want sqlite or memgraph)", *target)
	}

	dbs := make([]model.Database, 0, len(tables))
	for db := range tables {
		dbs = append(dbs, db)
	}
	sort.Slice(dbs, func(i, j int) bool { return dbs[i] < dbs[j] })

	total := 0
	for _, db := range dbs {
		if err := importer.Import(ctx, db, tables[db]); err != nil {
			log.Fatalf("Failed to import %s: %v", db, err)
		}
		log.Printf("Imported %d %s interactions", len(tables[db]), db)
		total += len(tables[db])
	}
	log.Printf("Seed complete: %d interactions into %s", total, *target)
}
