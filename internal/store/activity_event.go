package store

import (
	"context"
	"fmt"

	"oscesim/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetActivityType(data.ActivityType).
		SetDescription(data.Description).
		SetTimeSinceStartMs(data.TimeSinceStartMs)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}
	if data.UserID != "" {
		builder = builder.SetUserID(data.UserID)
	}
	if len(data.Details) > 0 {
		builder = builder.SetDetails(data.Details)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}
