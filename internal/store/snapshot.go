package store

import (
	"context"
	"fmt"

	"oscesim/ent"
	"oscesim/ent/sessionsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Upsert(ctx context.Context, snap *SessionSnapshot) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	existing, err := r.client.SessionSnapshot.Query().
		Where(
			sessionsnapshot.UserID(snap.UserID),
			sessionsnapshot.CaseID(snap.CaseID),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetSessionID(snap.SessionID).
			SetSequence(seqNum).
			SetData(snap.Data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update snapshot: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.SessionSnapshot.Create().
			SetSessionID(snap.SessionID).
			SetUserID(snap.UserID).
			SetCaseID(snap.CaseID).
			SetSequence(seqNum).
			SetData(snap.Data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query snapshot: %w", err)
	}
}

func (r *snapshotRepo) Get(ctx context.Context, userID, caseID string) (*SessionSnapshot, error) {
	s, err := r.client.SessionSnapshot.Query().
		Where(
			sessionsnapshot.UserID(userID),
			sessionsnapshot.CaseID(caseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	return &SessionSnapshot{
		SessionID: s.SessionID,
		UserID:    s.UserID,
		CaseID:    s.CaseID,
		Sequence:  s.Sequence,
		UpdatedAt: s.UpdatedAt,
		Data:      s.Data,
	}, nil
}
