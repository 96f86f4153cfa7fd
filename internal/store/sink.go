package store

import (
	"context"
	"encoding/json"
	"fmt"

	"oscesim/internal/session"
)

// Sink adapts the event and snapshot repositories to the session package's
// persistence interface.
type Sink struct {
	events    EventRepo
	snapshots SnapshotRepo
}

// NewSink builds a session sink writing to the given repositories.
func NewSink(events EventRepo, snapshots SnapshotRepo) *Sink {
	return &Sink{events: events, snapshots: snapshots}
}

// RecordActivity appends one timeline event to the event store.
func (s *Sink) RecordActivity(ctx context.Context, sessionID, userID, caseID string, ev session.ActivityEvent) error {
	return s.events.AppendActivity(ctx, ActivityEventData{
		SessionID:        sessionID,
		UserID:           userID,
		CaseID:           caseID,
		ActivityType:     string(ev.Type),
		Description:      ev.Description,
		Timestamp:        ev.Timestamp,
		TimeSinceStartMs: ev.TimeSinceStart.Milliseconds(),
		Details:          ev.Details,
	})
}

// SaveSnapshot upserts the full session state, JSON-encoded, keyed by the
// state's (user, case) pair.
func (s *Sink) SaveSnapshot(ctx context.Context, sessionID string, state *session.State) error {
	data, err := stateToMap(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.snapshots.Upsert(ctx, &SessionSnapshot{
		SessionID: sessionID,
		UserID:    state.UserID,
		CaseID:    state.CaseID,
		Data:      data,
	})
}

// stateToMap converts the state into a generic map via a JSON round-trip so
// the snapshot column stays schema-free.
func stateToMap(state *session.State) (map[string]any, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
