package source

import (
	"context"
	"fmt"
	"log"

	"github.com/agenthands/interactome/internal/config"
	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/driver"
)

// FromConfig builds a router for the configured databases. Backends shared
// by several databases are opened once. The returned function releases
// every opened backend.
func FromConfig(ctx context.Context, cfg *config.Config) (*Router, func(), error) {
	router := NewRouter()
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var (
		mock     *MockSource
		memgraph *MemgraphSource
		sqlites  = map[string]*SQLiteSource{}
	)

	for _, dc := range cfg.Databases {
		db, ok := model.ParseDatabase(dc.Name)
		if !ok {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %q in config", ErrUnknownDatabase, dc.Name)
		}

		var src RecordSource
		switch dc.Backend {
		case "mock":
			if mock == nil {
				mock = NewMockSource()
			}
			src = mock

		case "yaml":
			y, err := NewYAMLSource(dc.Path)
			if err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("database %s: %w", db, err)
			}
			src = y

		case "sqlite":
			path := dc.Path
			if path == "" {
				path = cfg.SQLite.Path
			}
			s, ok := sqlites[path]
			if !ok {
				var err error
				s, err = NewSQLiteSource(path)
				if err != nil {
					closeAll()
					return nil, nil, fmt.Errorf("database %s: %w", db, err)
				}
				sqlites[path] = s
				closers = append(closers, func() { s.Close() })
			}
			src = s

		case "memgraph":
			if memgraph == nil {
				d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
				if err != nil {
					closeAll()
					return nil, nil, fmt.Errorf("database %s: %w", db, err)
				}
				if err := d.BuildIndices(ctx); err != nil {
					log.Printf("Warning: failed to build indices: %v", err)
				}
				memgraph = NewMemgraphSource(d)
				closers = append(closers, func() { d.Close(context.Background()) })
			}
			src = memgraph

		default:
			closeAll()
			return nil, nil, fmt.Errorf("database %s: unsupported backend %q", db, dc.Backend)
		}

		log.Printf("Database %s served by %s backend", db, dc.Backend)
		router.Register(db, src)
	}

	return router, closeAll, nil
}
