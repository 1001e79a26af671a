package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (*model.AppState, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, StateKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewAppState(), nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: load snapshot")
	}

	return decodeSnapshot([]byte(data)), nil
}

func (s *SQLiteStore) Save(ctx context.Context, state *model.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal snapshot")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		StateKey, string(data), time.Now().UTC(),
	)
	return eris.Wrap(err, "sqlite: save snapshot")
}

// decodeSnapshot deserializes a persisted snapshot, discarding a corrupt one
// in favor of the empty initial state. There is no versioning or migration
// for the blob itself.
func decodeSnapshot(data []byte) *model.AppState {
	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		zap.L().Warn("store: discarding corrupt snapshot", zap.Error(err))
		return model.NewAppState()
	}
	if state.ActivatedActions == nil {
		state.ActivatedActions = make(map[string]bool)
	}
	return &state
}
