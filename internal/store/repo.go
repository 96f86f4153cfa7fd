package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose (empty = all)
	CaseID  string // filter by case (empty = all)
}

// ActivityEventData captures one session timeline entry for persistence.
type ActivityEventData struct {
	SessionID        string
	UserID           string
	CaseID           string
	ActivityType     string
	Description      string
	Timestamp        time.Time
	TimeSinceStartMs int64
	Details          map[string]any
}

// EvaluationEventData captures one completed evaluation report.
type EvaluationEventData struct {
	ReportID         string
	SessionID        string
	UserID           string
	CaseID           string
	StudentDiagnosis string
	ActualDiagnosis  string
	Correct          bool
	Scores           map[string]any
	CategoryScores   map[string]any
	Feedback         string
}

// EvaluationRecord is a stored evaluation as returned by queries.
type EvaluationRecord struct {
	Sequence         int64
	Timestamp        time.Time
	ReportID         string
	SessionID        string
	CaseID           string
	StudentDiagnosis string
	ActualDiagnosis  string
	Correct          bool
	CategoryScores   map[string]any
	Feedback         string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request as returned by queries.
type LLMRequestRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage per request purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendActivity records one session timeline event.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// AppendEvaluation records a completed evaluation report.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns a single LLM event, including the captured request
	// and response bodies, or nil if the id is unknown.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QueryEvaluations returns stored evaluations, newest first.
	QueryEvaluations(ctx context.Context, opts QueryOpts) ([]EvaluationRecord, error)
}

// SessionSnapshot is the durable copy of one session's state.
type SessionSnapshot struct {
	SessionID string
	UserID    string
	CaseID    string
	Sequence  int64
	UpdatedAt time.Time
	Data      map[string]any
}

// SnapshotRepo manages session state snapshots keyed by (userID, caseID).
type SnapshotRepo interface {
	// Upsert stores the snapshot, replacing any prior snapshot for the
	// same (userID, caseID) pair.
	Upsert(ctx context.Context, snap *SessionSnapshot) error

	// Get returns the snapshot for (userID, caseID), or nil if none exists.
	Get(ctx context.Context, userID, caseID string) (*SessionSnapshot, error)
}
