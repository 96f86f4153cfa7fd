package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"oscesim/internal/cases"
	"oscesim/internal/logger"
)

// IdleThreshold is the gap between consecutive activities beyond which an
// idle period is recorded.
const IdleThreshold = 60 * time.Second

// Sink receives state-change notifications from a Manager. Implementations
// persist them; failures are logged by the Manager and never affect the
// in-memory state.
type Sink interface {
	// RecordActivity persists a single timeline event.
	RecordActivity(ctx context.Context, sessionID, userID, caseID string, ev ActivityEvent) error

	// SaveSnapshot upserts the full session state keyed by (userID, caseID).
	SaveSnapshot(ctx context.Context, sessionID string, state *State) error
}

// Config holds the optional collaborators of a Manager.
type Config struct {
	// Sink receives activity and snapshot notifications. May be nil.
	Sink Sink

	// Logger for non-fatal conditions. Defaults to a no-op logger.
	Logger *logger.Logger

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Manager owns the state of one active case attempt. All access goes through
// its methods; an internal mutex serializes concurrent callers for the same
// session id.
type Manager struct {
	mu        sync.Mutex
	sessionID string
	kase      *cases.Case
	state     *State
	sink      Sink
	log       *logger.Logger
	now       func() time.Time
}

// NewManager starts a session for the given case and records the opening
// session_start activity.
func NewManager(kase *cases.Case, userID string, cfg Config) *Manager {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	m := &Manager{
		sessionID: uuid.NewString(),
		kase:      kase,
		sink:      cfg.Sink,
		log:       cfg.Logger,
		now:       cfg.Now,
	}
	m.state = newState(kase.ID, userID, m.now())
	m.recordActivity(ActivitySessionStart, "Session started for case "+kase.ID, nil)
	return m
}

// SessionID returns the unique id of this attempt.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Case returns the case this session runs against. Reset swaps the case, so
// the read takes the lock like every other accessor.
func (m *Manager) Case() *cases.Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kase
}

// OrderTest adds a lab test to the ordered set. Re-ordering an already
// ordered test is an idempotent no-op: no timeline event, no critical-time
// update, and a false return.
func (m *Manager) OrderTest(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order(name, m.state.OrderedTests, ActivityTestOrder, "Ordered test: ")
}

// OrderImaging adds an imaging study to the ordered set, symmetric to
// OrderTest.
func (m *Manager) OrderImaging(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order(name, m.state.OrderedImaging, ActivityImagingOrder, "Ordered imaging: ")
}

func (m *Manager) order(name string, set map[string]bool, typ ActivityType, descPrefix string) bool {
	if set[name] {
		return false
	}
	set[name] = true

	if m.kase.IsCriticalTest(name) {
		if _, timed := m.state.CriticalTestTimes[name]; !timed {
			m.state.CriticalTestTimes[name] = m.now()
		}
	}

	m.recordActivity(typ, descPrefix+name, map[string]any{"name": name})
	return true
}

// AddPhysicalExam appends an examination record. No idempotence check: the
// same system may be examined repeatedly.
func (m *Manager) AddPhysicalExam(system, findings string) PhysicalExam {
	m.mu.Lock()
	defer m.mu.Unlock()

	exam := PhysicalExam{System: system, Findings: findings, Timestamp: m.now()}
	m.state.PhysicalExams = append(m.state.PhysicalExams, exam)
	m.recordActivity(ActivityPhysicalExam, "Physical exam: "+system, map[string]any{
		"system": system,
	})
	return exam
}

// AddVerifiedProcedure appends a scored exam procedure.
func (m *Manager) AddVerifiedProcedure(examName string, steps []string, score float64) VerifiedProcedure {
	m.mu.Lock()
	defer m.mu.Unlock()

	proc := VerifiedProcedure{
		ExamName:  examName,
		Steps:     append([]string(nil), steps...),
		Score:     score,
		Timestamp: m.now(),
	}
	m.state.VerifiedProcedures = append(m.state.VerifiedProcedures, proc)
	m.recordActivity(ActivityVerifiedProcedure, "Verified procedure: "+examName, map[string]any{
		"score":      score,
		"step_count": len(proc.Steps),
	})
	return proc
}

// AddPatientInteraction appends an exchange with the virtual patient and
// returns the created record plus its index. The index is used by a later
// UpdatePatientResponse once the asynchronous model response is available.
func (m *Manager) AddPatientInteraction(userMessage string) (Interaction, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it := Interaction{UserMessage: userMessage, Timestamp: m.now()}
	m.state.PatientInteractions = append(m.state.PatientInteractions, it)
	idx := len(m.state.PatientInteractions) - 1

	m.recordActivity(ActivityPatientInteraction, "Patient interaction", map[string]any{
		"message_length": len(userMessage),
	})
	return it, idx
}

// UpdatePatientResponse attaches the patient's response to the interaction
// at idx. Out-of-range indices are a silent no-op returning false.
func (m *Manager) UpdatePatientResponse(idx int, response string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx < 0 || idx >= len(m.state.PatientInteractions) {
		return false
	}
	m.state.PatientInteractions[idx].PatientResponse = response
	return true
}

// SaveNotes replaces the SOAP notes wholesale. When the content differs from
// the previous notes, a notes_update activity carrying the old and new word
// counts is recorded; identical content is an idempotent no-op.
func (m *Manager) SaveNotes(notes map[string]string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if notesEqual(m.state.PatientNotes, notes) {
		return false
	}

	oldCount := wordCount(m.state.PatientNotes)
	newCount := wordCount(notes)

	replaced := make(map[string]string, len(notes))
	for k, v := range notes {
		replaced[k] = v
	}
	m.state.PatientNotes = replaced

	m.recordActivity(ActivityNotesUpdate, "Notes updated", map[string]any{
		"old_word_count": oldCount,
		"new_word_count": newCount,
	})
	return true
}

// RecordDiagnosisSubmission marks the session's diagnosis milestone.
func (m *Manager) RecordDiagnosisSubmission(diagnosis string) DiagnosisRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.state.DiagnosisSubmissionTime = now
	m.state.SubmittedDiagnosis = diagnosis
	elapsed := now.Sub(m.state.SessionStartTime)

	m.recordActivity(ActivityDiagnosisSubmission, "Diagnosis submitted: "+diagnosis, map[string]any{
		"time_to_diagnosis": elapsed.Seconds(),
	})

	return DiagnosisRecord{Diagnosis: diagnosis, Timestamp: now, TimeToDiagnosis: elapsed}
}

// Reset ends the current attempt and starts a fresh one against newCase.
// The prior state gets a terminal session_end activity before being
// discarded. userID preserves the current user when empty.
func (m *Manager) Reset(newCase *cases.Case, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recordActivity(ActivitySessionEnd, "Session ended for case "+m.state.CaseID, nil)
	m.log.Debug("session reset", "session_id", m.sessionID, "counts", describeCounts(m.state))

	if userID == "" {
		userID = m.state.UserID
	}

	m.sessionID = uuid.NewString()
	m.kase = newCase
	m.state = newState(newCase.ID, userID, m.now())
	m.recordActivity(ActivitySessionStart, "Session started for case "+newCase.ID, nil)
}

// GetSessionTimeline returns a copy of the timeline sorted ascending by
// timestamp. Callers must not assume insertion order equals chronological
// order.
func (m *Manager) GetSessionTimeline() []ActivityEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ActivityEvent, len(m.state.Timeline))
	copy(out, m.state.Timeline)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// GetIdlePeriods returns a copy of the recorded idle periods.
func (m *Manager) GetIdlePeriods() []IdlePeriod {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]IdlePeriod, len(m.state.IdlePeriods))
	copy(out, m.state.IdlePeriods)
	return out
}

// State returns the live state. Exposed for the evaluation aggregator and
// tests; callers must treat it as read-only.
func (m *Manager) State() *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// recordActivity is the terminal step of every mutator: idle-gap detection,
// lastActivityTime update, timeline append, then best-effort emission to the
// sink. Callers must hold m.mu.
func (m *Manager) recordActivity(typ ActivityType, description string, details map[string]any) {
	now := m.now()

	if gap := now.Sub(m.state.LastActivityTime); gap > IdleThreshold {
		m.state.IdlePeriods = append(m.state.IdlePeriods, IdlePeriod{
			Start:    m.state.LastActivityTime,
			End:      now,
			Duration: gap,
		})
	}
	m.state.LastActivityTime = now

	ev := ActivityEvent{
		Timestamp:      now,
		Type:           typ,
		Description:    description,
		TimeSinceStart: now.Sub(m.state.SessionStartTime),
		Details:        details,
	}
	m.state.Timeline = append(m.state.Timeline, ev)

	m.emit(ev)
}

// emit pushes the event and a state snapshot to the sink. The sink is an
// outbox: its failures are logged and swallowed so the in-memory mutation
// always succeeds.
func (m *Manager) emit(ev ActivityEvent) {
	if m.sink == nil {
		return
	}
	ctx := context.Background()
	if err := m.sink.RecordActivity(ctx, m.sessionID, m.state.UserID, m.state.CaseID, ev); err != nil {
		m.log.Warn("persist activity failed",
			"session_id", m.sessionID, "type", string(ev.Type), "err", err)
	}
	if err := m.sink.SaveSnapshot(ctx, m.sessionID, m.state); err != nil {
		m.log.Warn("persist snapshot failed",
			"session_id", m.sessionID, "err", err)
	}
}

// wordCount counts whitespace-separated words across all note sections.
func wordCount(notes map[string]string) int {
	total := 0
	for _, text := range notes {
		total += len(strings.Fields(text))
	}
	return total
}

func notesEqual(a, b map[string]string) bool {
	if len(trimEmpty(a)) != len(trimEmpty(b)) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; ok {
			if bv != v {
				return false
			}
		} else if strings.TrimSpace(v) != "" {
			return false
		}
	}
	for k, v := range b {
		if _, ok := a[k]; !ok && strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func trimEmpty(notes map[string]string) map[string]string {
	out := make(map[string]string, len(notes))
	for k, v := range notes {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// describeCounts renders a short human-readable summary of a state's
// collection sizes, used in log lines.
func describeCounts(s *State) string {
	return fmt.Sprintf("tests=%d imaging=%d exams=%d procedures=%d interactions=%d",
		len(s.OrderedTests), len(s.OrderedImaging), len(s.PhysicalExams),
		len(s.VerifiedProcedures), len(s.PatientInteractions))
}
