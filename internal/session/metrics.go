package session

import (
	"sort"
	"time"
)

// EfficiencyMetrics is a pure derivation from session state, computed on
// demand and never cached. Nil duration pointers mean "not derivable yet"
// (for example no diagnosis submitted, or fewer than two qualifying
// activities for a span).
type EfficiencyMetrics struct {
	SessionDuration   time.Duration       `json:"session_duration"`
	TimeToDiagnosis   *time.Duration      `json:"time_to_diagnosis,omitempty"`
	HistoryTakingTime *time.Duration      `json:"history_taking_time,omitempty"`
	PhysicalExamTime  *time.Duration      `json:"physical_exam_time,omitempty"`
	IdlePeriodsCount  int                 `json:"idle_periods_count"`
	TotalIdleTime     time.Duration       `json:"total_idle_time"`
	CriticalTests     int                 `json:"critical_tests_ordered"`
	CriticalSequence  []CriticalTestOrder `json:"critical_test_ordering_sequence"`
}

// CriticalTestOrder is one entry of the critical-test ordering sequence.
type CriticalTestOrder struct {
	Test           string        `json:"test"`
	TimeSinceStart time.Duration `json:"time_since_start"`
}

// GetEfficiencyMetrics derives the metrics from the current state.
func (m *Manager) GetEfficiencyMetrics() EfficiencyMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	now := m.now()

	em := EfficiencyMetrics{
		SessionDuration:  now.Sub(s.SessionStartTime),
		IdlePeriodsCount: len(s.IdlePeriods),
		CriticalTests:    len(s.CriticalTestTimes),
	}

	if s.DiagnosisSubmitted() {
		d := s.DiagnosisSubmissionTime.Sub(s.SessionStartTime)
		em.TimeToDiagnosis = &d
	}

	for _, p := range s.IdlePeriods {
		em.TotalIdleTime += p.Duration
	}

	em.HistoryTakingTime = activitySpan(s.Timeline, ActivityPatientInteraction)
	em.PhysicalExamTime = activitySpan(s.Timeline, ActivityPhysicalExam, ActivityVerifiedProcedure)

	em.CriticalSequence = make([]CriticalTestOrder, 0, len(s.CriticalTestTimes))
	for test, ts := range s.CriticalTestTimes {
		em.CriticalSequence = append(em.CriticalSequence, CriticalTestOrder{
			Test:           test,
			TimeSinceStart: ts.Sub(s.SessionStartTime),
		})
	}
	sort.Slice(em.CriticalSequence, func(i, j int) bool {
		return em.CriticalSequence[i].TimeSinceStart < em.CriticalSequence[j].TimeSinceStart
	})

	return em
}

// activitySpan computes last-minus-first timestamp over the timeline events
// matching the given types. Returns nil when fewer than two events qualify.
func activitySpan(timeline []ActivityEvent, types ...ActivityType) *time.Duration {
	var first, last time.Time
	count := 0
	for _, ev := range timeline {
		for _, t := range types {
			if ev.Type != t {
				continue
			}
			if count == 0 || ev.Timestamp.Before(first) {
				first = ev.Timestamp
			}
			if count == 0 || ev.Timestamp.After(last) {
				last = ev.Timestamp
			}
			count++
			break
		}
	}
	if count < 2 {
		return nil
	}
	span := last.Sub(first)
	return &span
}

// Summary is the at-a-glance view of a session exposed to the serving layer.
type Summary struct {
	SessionID          string        `json:"session_id"`
	CaseID             string        `json:"case_id"`
	UserID             string        `json:"user_id,omitempty"`
	Duration           time.Duration `json:"duration"`
	TestsOrdered       int           `json:"tests_ordered"`
	ImagingOrdered     int           `json:"imaging_ordered"`
	PhysicalExams      int           `json:"physical_exams"`
	VerifiedProcedures int           `json:"verified_procedures"`
	Interactions       int           `json:"interactions"`
	NotesWordCount     int           `json:"notes_word_count"`
	IdlePeriods        int           `json:"idle_periods"`
	DiagnosisSubmitted bool          `json:"diagnosis_submitted"`
}

// GetSessionSummary returns duration, counts and milestone flags for the
// current attempt.
func (m *Manager) GetSessionSummary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	return Summary{
		SessionID:          m.sessionID,
		CaseID:             s.CaseID,
		UserID:             s.UserID,
		Duration:           m.now().Sub(s.SessionStartTime),
		TestsOrdered:       len(s.OrderedTests),
		ImagingOrdered:     len(s.OrderedImaging),
		PhysicalExams:      len(s.PhysicalExams),
		VerifiedProcedures: len(s.VerifiedProcedures),
		Interactions:       len(s.PatientInteractions),
		NotesWordCount:     s.NotesWordCount(),
		IdlePeriods:        len(s.IdlePeriods),
		DiagnosisSubmitted: s.DiagnosisSubmitted(),
	}
}
