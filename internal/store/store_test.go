package store

import (
	"context"
	"testing"
	"time"

	"oscesim/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"activity_events", "evaluation_events", "llm_request_events", "session_snapshots",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestAppendActivity(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendActivity(ctx, ActivityEventData{
		SessionID:        "sess-1",
		UserID:           "user-1",
		CaseID:           "case-1",
		ActivityType:     "test_order",
		Description:      "Ordered test: ECG",
		Timestamp:        time.Now(),
		TimeSinceStartMs: 1500,
		Details:          map[string]any{"name": "ECG"},
	})
	if err != nil {
		t.Fatalf("append activity: %v", err)
	}

	count, err := s.Client().ActivityEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("activity events = %d, want 1", count)
	}
}

func TestEvaluationsQueryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, caseID := range []string{"case-a", "case-b", "case-a"} {
		err := repo.AppendEvaluation(ctx, EvaluationEventData{
			ReportID:         "report-" + string(rune('0'+i)),
			SessionID:        "sess-1",
			CaseID:           caseID,
			StudentDiagnosis: "Pneumonia",
			ActualDiagnosis:  "Pneumonia",
			Correct:          true,
			Scores:           map[string]any{"overall_score": 8},
			CategoryScores:   map[string]any{"interaction": 8},
			Feedback:         "Good clinical reasoning.",
		})
		if err != nil {
			t.Fatalf("append evaluation %d: %v", i, err)
		}
	}

	recs, err := repo.QueryEvaluations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	if recs[0].ReportID != "report-2" {
		t.Errorf("newest report = %q, want report-2", recs[0].ReportID)
	}

	// Case filter.
	recs, err = repo.QueryEvaluations(ctx, QueryOpts{CaseID: "case-a"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("case-a records = %d, want 2", len(recs))
	}

	// Limit.
	recs, err = repo.QueryEvaluations(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("limited records = %d, want 1", len(recs))
	}
}

func TestLLMEventsPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"rubric-interaction", "rubric-workflow", "rubric-interaction"}
	for i, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      p,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "rubric-interaction"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	// Newest first.
	if recs[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", recs[0].InputTokens)
	}
}

func TestSnapshotUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Get(ctx, "user-1", "case-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Upsert(ctx, &SessionSnapshot{
		SessionID: "sess-1",
		UserID:    "user-1",
		CaseID:    "case-1",
		Data:      map[string]any{"submitted_diagnosis": "Migraine"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second upsert for the same (user, case) replaces rather than appends.
	err = repo.Upsert(ctx, &SessionSnapshot{
		SessionID: "sess-2",
		UserID:    "user-1",
		CaseID:    "case-1",
		Data:      map[string]any{"submitted_diagnosis": "Tension headache"},
	})
	if err != nil {
		t.Fatalf("upsert replace: %v", err)
	}

	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshots = %d, want 1", count)
	}

	snap, err = repo.Get(ctx, "user-1", "case-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.SessionID != "sess-2" {
		t.Errorf("session id = %q, want sess-2", snap.SessionID)
	}
	if got := snap.Data["submitted_diagnosis"]; got != "Tension headache" {
		t.Errorf("data diagnosis = %v, want Tension headache", got)
	}
}

func TestSinkPersistsActivityAndSnapshot(t *testing.T) {
	s := openTestStore(t)
	sink := NewSink(s.EventRepo(), s.SnapshotRepo())
	ctx := context.Background()

	ev := session.ActivityEvent{
		Timestamp:      time.Now(),
		Type:           session.ActivityTestOrder,
		Description:    "Ordered test: Troponin",
		TimeSinceStart: 30 * time.Second,
		Details:        map[string]any{"name": "Troponin"},
	}
	if err := sink.RecordActivity(ctx, "sess-1", "user-1", "case-1", ev); err != nil {
		t.Fatalf("record activity: %v", err)
	}

	state := &session.State{
		CaseID:             "case-1",
		UserID:             "user-1",
		SessionStartTime:   time.Now(),
		OrderedTests:       map[string]bool{"Troponin": true},
		SubmittedDiagnosis: "MI",
	}
	if err := sink.SaveSnapshot(ctx, "sess-1", state); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	count, err := s.Client().ActivityEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if count != 1 {
		t.Errorf("activity events = %d, want 1", count)
	}

	snap, err := s.SnapshotRepo().Get(ctx, "user-1", "case-1")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", snap.SessionID)
	}
}
