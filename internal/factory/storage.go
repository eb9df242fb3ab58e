package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/config"
	storepkg "github.com/sharmaeishan/Grocery-list-Manager/internal/store"
	storefs "github.com/sharmaeishan/Grocery-list-Manager/internal/store/firestore"
	storemem "github.com/sharmaeishan/Grocery-list-Manager/internal/store/memory"
	storemongo "github.com/sharmaeishan/Grocery-list-Manager/internal/store/mongo"
	storepg "github.com/sharmaeishan/Grocery-list-Manager/internal/store/postgres"
	storesqlite "github.com/sharmaeishan/Grocery-list-Manager/internal/store/sqlite"
)

// NewStore opens the store.Store selected by cfg.DBDriver.
// The connection is opened synchronously since health checks need it immediately; the
// returned handle is shared by every request for the lifetime of the process.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	bootstrapTimeout := time.Duration(cfg.BootstrapTimeoutSeconds) * time.Second
	if bootstrapTimeout <= 0 {
		bootstrapTimeout = 5 * time.Second
	}
	openCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	switch cfg.DBDriver {
	case "mongo":
		client, err := storemongo.Open(openCtx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("database", config.DatabaseName).Msg("store connected")
		return storemongo.NewWithClient(client, config.DatabaseName, config.CollectionName), nil

	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("GROCERY_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := storepg.EnsureSchema(openCtx, db, config.CollectionName); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		log.Debug().Str("driver", cfg.DBDriver).Msg("store connected")
		return storepg.NewWithDB(db, config.CollectionName), nil

	case "sqlite":
		db, err := storesqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := storesqlite.EnsureSchema(openCtx, db, config.CollectionName); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite schema: %w", err)
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return storesqlite.NewWithDB(db, config.CollectionName), nil

	case "firestore":
		// The client must outlive the bootstrap context.
		client, err := storefs.Open(ctx, cfg.GCPProjectID)
		if err != nil {
			return nil, fmt.Errorf("open firestore: %w", err)
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("project", cfg.GCPProjectID).Msg("store connected")
		return storefs.NewWithClient(client, config.CollectionName), nil

	case "memory":
		if cfg.IsProduction() {
			return nil, fmt.Errorf("DB_DRIVER=memory is not allowed in production")
		}
		log.Warn().Msg("using in-memory store; data is lost on exit")
		return storemem.New(), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
