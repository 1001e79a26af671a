package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// Service owns the live application state and persists the whole snapshot
// synchronously after every mutation. It is the single source of truth for
// all workflow steps; callers never cache state across steps.
type Service struct {
	mu    sync.Mutex
	store Store
	state *model.AppState
	busy  atomic.Bool
}

// NewService hydrates a Service from the persisted snapshot.
func NewService(ctx context.Context, st Store) (*Service, error) {
	state, err := st.Load(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "store: hydrate state")
	}
	return &Service{store: st, state: state}, nil
}

// State returns a deep copy of the current state.
func (s *Service) State() *model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetEmails replaces the email batch.
func (s *Service) SetEmails(ctx context.Context, emails []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Emails = emails
	return s.persist(ctx)
}

// SetRecords replaces the enriched-record collection.
func (s *Service) SetRecords(ctx context.Context, records []model.EnrichedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Records = records
	return s.persist(ctx)
}

// SetSegments replaces the ICP segment list and appends a history entry for
// the run, evicting entries beyond the retention bound.
func (s *Service) SetSegments(ctx context.Context, segments []model.ICPSegment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Segments = segments
	if len(segments) > 0 {
		s.state.AppendHistory(model.HistoryEntry{
			ID:          uuid.New().String(),
			CreatedAt:   time.Now().UTC(),
			RecordCount: len(s.state.Records),
			TopSegment:  segments[0].Name,
		})
	}
	return s.persist(ctx)
}

// ToggleAction flips one activation flag. Unknown action IDs are rejected.
func (s *Service) ToggleAction(ctx context.Context, actionID string) error {
	if !model.ValidActionID(actionID) {
		return eris.Errorf("store: unknown action %q", actionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActivatedActions[actionID] = !s.state.ActivatedActions[actionID]
	return s.persist(ctx)
}

// ActivateAllActions sets every catalog action active.
func (s *Service) ActivateAllActions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range model.AllActionIDs() {
		s.state.ActivatedActions[id] = true
	}
	return s.persist(ctx)
}

// BeginRun marks an enrichment or analysis run in flight, guarding against
// double submission. It returns false if one is already running.
func (s *Service) BeginRun() bool {
	return s.busy.CompareAndSwap(false, true)
}

// EndRun clears the in-flight flag.
func (s *Service) EndRun() {
	s.busy.Store(false)
}

// persist writes the snapshot. Callers must hold mu.
func (s *Service) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.state)
}

// snapshot deep-copies the state. Callers must hold mu.
func (s *Service) snapshot() *model.AppState {
	cp := &model.AppState{
		Emails:           append([]string(nil), s.state.Emails...),
		Records:          append([]model.EnrichedRecord(nil), s.state.Records...),
		Segments:         append([]model.ICPSegment(nil), s.state.Segments...),
		ActivatedActions: make(map[string]bool, len(s.state.ActivatedActions)),
		History:          append([]model.HistoryEntry(nil), s.state.History...),
	}
	for k, v := range s.state.ActivatedActions {
		cp.ActivatedActions[k] = v
	}
	return cp
}
