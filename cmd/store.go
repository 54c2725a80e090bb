package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/store"
)

const defaultSQLitePath = "merge_runs.db"

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = defaultSQLitePath
		}
		return store.NewSQLite(dsn)
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("store.database_url is required for the postgres driver (MERGER_STORE_DATABASE_URL)")
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	case "":
		return nil, eris.New("run history is disabled; set store.driver to sqlite or postgres")
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
