package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/icp-autopilot/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_LoadMissingSnapshot(t *testing.T) {
	st := newTestSQLiteStore(t)

	state, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Emails)
	assert.Empty(t, state.Records)
	assert.Empty(t, state.Segments)
	assert.Empty(t, state.History)
	assert.NotNil(t, state.ActivatedActions)
}

func TestSQLite_RoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	state := model.NewAppState()
	state.Emails = []string{"a@b.com", "c@d.org"}
	state.Records = []model.EnrichedRecord{{
		Email:        "a@b.com",
		Name:         "A User",
		Company:      "Acme Corp",
		Title:        "CTO",
		Seniority:    model.SeniorityCLevel,
		CompanySize:  model.SizeSmall,
		Industry:     "Technology",
		FundingStage: model.FundingSeed,
		Technologies: []string{"AWS", "Docker"},
		Engagement:   88,
	}}
	state.Segments = []model.ICPSegment{{
		ID:         "icp-1",
		Name:       "Technology C-Levels",
		Confidence: 92,
		Tags:       []string{"C-Level", "Technology", "1-50", "Seed", "High Engagement"},
		IsTop:      true,
	}}
	state.ActivatedActions["sales-1"] = true
	state.AppendHistory(model.HistoryEntry{
		ID:          "run-1",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		RecordCount: 1,
		TopSegment:  "Technology C-Levels",
	})

	require.NoError(t, st.Save(ctx, state))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSQLite_SaveOverwrites(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first := model.NewAppState()
	first.Emails = []string{"a@b.com"}
	require.NoError(t, st.Save(ctx, first))

	second := model.NewAppState()
	second.Emails = []string{"x@y.com", "z@w.com"}
	require.NoError(t, st.Save(ctx, second))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x@y.com", "z@w.com"}, loaded.Emails)
}

func TestSQLite_CorruptSnapshotYieldsEmptyState(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data) VALUES (?, ?)`,
		StateKey, `{not valid json!!`,
	)
	require.NoError(t, err)

	state, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Emails)
	assert.NotNil(t, state.ActivatedActions)
}

func TestDecodeSnapshot_NilActionMap(t *testing.T) {
	state := decodeSnapshot([]byte(`{"emails": ["a@b.com"]}`))
	assert.Equal(t, []string{"a@b.com"}, state.Emails)
	assert.NotNil(t, state.ActivatedActions)
}
