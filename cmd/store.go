package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/icp-autopilot/internal/store"
)

// initStore opens the configured snapshot store backend and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "open %s store", cfg.Store.Driver)
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// initService opens the store and hydrates the state service from it.
func initService(ctx context.Context) (*store.Service, store.Store, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc, err := store.NewService(ctx, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, st, nil
}
