package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 4
	pgxCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}

	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*model.AppState, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM snapshots WHERE key = $1`, StateKey,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NewAppState(), nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: load snapshot")
	}

	return decodeSnapshot(data), nil
}

func (s *PostgresStore) Save(ctx context.Context, state *model.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal snapshot")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		StateKey, data, time.Now().UTC(),
	)
	return eris.Wrap(err, "postgres: save snapshot")
}
