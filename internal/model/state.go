package model

import "time"

// MaxHistory bounds the analysis history retained in the state snapshot.
const MaxHistory = 10

// HistoryEntry records one completed analysis run.
type HistoryEntry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	RecordCount int       `json:"record_count"`
	TopSegment  string    `json:"top_segment"`
}

// AppState is the full application state snapshot. It is the single source of
// truth for every workflow step and is persisted wholesale after each mutation.
type AppState struct {
	Emails           []string         `json:"emails"`
	Records          []EnrichedRecord `json:"enrichedData"`
	Segments         []ICPSegment     `json:"icpResults"`
	ActivatedActions map[string]bool  `json:"activatedActions"`
	History          []HistoryEntry   `json:"history"`
}

// NewAppState returns an empty initial state.
func NewAppState() *AppState {
	return &AppState{
		ActivatedActions: make(map[string]bool),
	}
}

// AppendHistory inserts an entry at the head of the history, evicting the
// oldest entries beyond MaxHistory.
func (s *AppState) AppendHistory(e HistoryEntry) {
	s.History = append([]HistoryEntry{e}, s.History...)
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}
}

// Drift reports whether the top-ranked segment name changed between the two
// most recent analysis runs.
func (s *AppState) Drift() (from, to string, drifted bool) {
	if len(s.History) < 2 {
		return "", "", false
	}
	from = s.History[1].TopSegment
	to = s.History[0].TopSegment
	return from, to, from != to
}
