package session

import (
	"time"
)

// ActivityType identifies what kind of event a timeline entry records.
type ActivityType string

const (
	ActivitySessionStart        ActivityType = "session_start"
	ActivitySessionEnd          ActivityType = "session_end"
	ActivityPatientInteraction  ActivityType = "patient_interaction"
	ActivityTestOrder           ActivityType = "test_order"
	ActivityImagingOrder        ActivityType = "imaging_order"
	ActivityPhysicalExam        ActivityType = "physical_exam"
	ActivityVerifiedProcedure   ActivityType = "verified_procedure"
	ActivityNotesUpdate         ActivityType = "notes_update"
	ActivityDiagnosisSubmission ActivityType = "diagnosis_submission"
)

// ActivityEvent is a single timeline entry. Events are appended in wall-clock
// order and never reordered on write; readers get a timestamp-sorted copy.
type ActivityEvent struct {
	Timestamp      time.Time      `json:"timestamp"`
	Type           ActivityType   `json:"activity_type"`
	Description    string         `json:"description"`
	TimeSinceStart time.Duration  `json:"time_since_start"`
	Details        map[string]any `json:"details,omitempty"`
}

// IdlePeriod records a gap between consecutive activities longer than the
// idle threshold.
type IdlePeriod struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// PhysicalExam is one examination of a body system. A system may be examined
// more than once (re-checking vitals is routine), so these accumulate.
type PhysicalExam struct {
	System    string    `json:"system"`
	Findings  string    `json:"findings"`
	Timestamp time.Time `json:"timestamp"`
}

// VerifiedProcedure is a scored step-by-step exam procedure the student
// performed under verification.
type VerifiedProcedure struct {
	ExamName  string    `json:"exam_name"`
	Steps     []string  `json:"steps"`
	Score     float64   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Interaction is one exchange with the virtual patient. The patient response
// arrives asynchronously and may be attached after the fact via
// UpdatePatientResponse.
type Interaction struct {
	UserMessage     string    `json:"user_message"`
	PatientResponse string    `json:"patient_response,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// DiagnosisRecord is returned by RecordDiagnosisSubmission.
type DiagnosisRecord struct {
	Diagnosis       string        `json:"diagnosis"`
	Timestamp       time.Time     `json:"timestamp"`
	TimeToDiagnosis time.Duration `json:"time_to_diagnosis"`
}

// Canonical SOAP note section names.
const (
	NoteSubjective = "subjective"
	NoteObjective  = "objective"
	NoteAssessment = "assessment"
	NotePlan       = "plan"
)

// State is the full mutable state of one case attempt. It is owned by
// exactly one Manager and must only be touched through it.
type State struct {
	CaseID string `json:"case_id"`
	UserID string `json:"user_id,omitempty"`

	OrderedTests   map[string]bool `json:"ordered_tests"`
	OrderedImaging map[string]bool `json:"ordered_imaging"`

	PhysicalExams       []PhysicalExam      `json:"physical_exams"`
	VerifiedProcedures  []VerifiedProcedure `json:"verified_procedures"`
	PatientInteractions []Interaction       `json:"patient_interactions"`
	PatientNotes        map[string]string   `json:"patient_notes"`

	SessionStartTime        time.Time `json:"session_start_time"`
	LastActivityTime        time.Time `json:"last_activity_time"`
	DiagnosisSubmissionTime time.Time `json:"diagnosis_submission_time,omitzero"`
	SubmittedDiagnosis      string    `json:"submitted_diagnosis,omitempty"`

	Timeline    []ActivityEvent `json:"timeline"`
	IdlePeriods []IdlePeriod    `json:"idle_periods"`

	// CriticalTestTimes holds the first-order timestamp of each ordered
	// test/imaging item that is on the case's critical-test list.
	CriticalTestTimes map[string]time.Time `json:"critical_test_times"`
}

// newState allocates a State with initialized collections and time anchors
// set to now.
func newState(caseID, userID string, now time.Time) *State {
	return &State{
		CaseID:            caseID,
		UserID:            userID,
		OrderedTests:      make(map[string]bool),
		OrderedImaging:    make(map[string]bool),
		PatientNotes:      make(map[string]string),
		CriticalTestTimes: make(map[string]time.Time),
		SessionStartTime:  now,
		LastActivityTime:  now,
	}
}

// DiagnosisSubmitted reports whether a diagnosis has been recorded.
func (s *State) DiagnosisSubmitted() bool {
	return !s.DiagnosisSubmissionTime.IsZero()
}

// NotesWordCount is the total word count across all note sections.
func (s *State) NotesWordCount() int {
	return wordCount(s.PatientNotes)
}
