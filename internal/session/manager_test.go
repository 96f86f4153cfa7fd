package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"oscesim/internal/cases"
)

// fakeClock is a manually advanced clock injected via Config.Now.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testCase() *cases.Case {
	return &cases.Case{
		ID:                  "case-chest-pain",
		Title:               "Acute chest pain",
		PresentingComplaint: "Crushing substernal chest pain for 2 hours",
		Diagnosis:           "Myocardial infarction",
		CriticalTests:       []string{"ECG", "Troponin"},
	}
}

func newTestManager(t *testing.T) (*Manager, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	mgr := NewManager(testCase(), "student-1", Config{Now: clock.Now})
	return mgr, clock
}

func TestNewManagerRecordsSessionStart(t *testing.T) {
	mgr, _ := newTestManager(t)

	timeline := mgr.GetSessionTimeline()
	if len(timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(timeline))
	}
	if timeline[0].Type != ActivitySessionStart {
		t.Errorf("first event type = %s, want %s", timeline[0].Type, ActivitySessionStart)
	}
	if timeline[0].TimeSinceStart != 0 {
		t.Errorf("time since start = %v, want 0", timeline[0].TimeSinceStart)
	}
	if mgr.SessionID() == "" {
		t.Error("expected non-empty session id")
	}
}

func TestOrderTestIdempotent(t *testing.T) {
	mgr, clock := newTestManager(t)

	clock.Advance(30 * time.Second)
	if !mgr.OrderTest("ECG") {
		t.Fatal("first order should return true")
	}
	firstTime := mgr.State().CriticalTestTimes["ECG"]

	clock.Advance(30 * time.Second)
	if mgr.OrderTest("ECG") {
		t.Fatal("repeat order should return false")
	}

	// The critical-test timestamp keeps its first-order value.
	if got := mgr.State().CriticalTestTimes["ECG"]; !got.Equal(firstTime) {
		t.Errorf("critical test time moved from %v to %v", firstTime, got)
	}

	// A single test_order event on the timeline.
	count := 0
	for _, ev := range mgr.GetSessionTimeline() {
		if ev.Type == ActivityTestOrder {
			count++
		}
	}
	if count != 1 {
		t.Errorf("test_order events = %d, want 1", count)
	}
}

func TestOrderImagingIdempotent(t *testing.T) {
	mgr, _ := newTestManager(t)

	if !mgr.OrderImaging("Chest X-ray") {
		t.Fatal("first order should return true")
	}
	if mgr.OrderImaging("Chest X-ray") {
		t.Fatal("repeat order should return false")
	}
	if !mgr.State().OrderedImaging["Chest X-ray"] {
		t.Error("imaging not recorded in state")
	}
}

func TestNonCriticalTestGetsNoCriticalTime(t *testing.T) {
	mgr, _ := newTestManager(t)

	mgr.OrderTest("CBC")
	if _, ok := mgr.State().CriticalTestTimes["CBC"]; ok {
		t.Error("non-critical test should not be tracked in CriticalTestTimes")
	}
}

func TestCriticalTestMatchIsCaseInsensitive(t *testing.T) {
	mgr, _ := newTestManager(t)

	mgr.OrderTest("troponin")
	if _, ok := mgr.State().CriticalTestTimes["troponin"]; !ok {
		t.Error("case-insensitive critical test match failed")
	}
}

func TestIdleDetection(t *testing.T) {
	mgr, clock := newTestManager(t)

	// Exactly at the threshold: no idle period (gap must exceed it).
	clock.Advance(IdleThreshold)
	mgr.OrderTest("CBC")
	if got := mgr.GetIdlePeriods(); len(got) != 0 {
		t.Fatalf("idle periods at threshold = %d, want 0", len(got))
	}

	// Past the threshold: one idle period covering the gap.
	clock.Advance(IdleThreshold + time.Second)
	mgr.OrderTest("BMP")
	periods := mgr.GetIdlePeriods()
	if len(periods) != 1 {
		t.Fatalf("idle periods = %d, want 1", len(periods))
	}
	if periods[0].Duration != IdleThreshold+time.Second {
		t.Errorf("idle duration = %v, want %v", periods[0].Duration, IdleThreshold+time.Second)
	}
}

func TestSaveNotesWordCountDelta(t *testing.T) {
	mgr, _ := newTestManager(t)

	if !mgr.SaveNotes(map[string]string{NoteSubjective: "chest pain two hours"}) {
		t.Fatal("first save should return true")
	}
	if !mgr.SaveNotes(map[string]string{NoteSubjective: "chest pain two hours", NotePlan: "order ECG"}) {
		t.Fatal("changed save should return true")
	}

	var last ActivityEvent
	for _, ev := range mgr.GetSessionTimeline() {
		if ev.Type == ActivityNotesUpdate {
			last = ev
		}
	}
	if last.Details["old_word_count"] != 4 {
		t.Errorf("old_word_count = %v, want 4", last.Details["old_word_count"])
	}
	if last.Details["new_word_count"] != 6 {
		t.Errorf("new_word_count = %v, want 6", last.Details["new_word_count"])
	}
}

func TestSaveNotesIdenticalIsNoOp(t *testing.T) {
	mgr, _ := newTestManager(t)

	notes := map[string]string{NoteSubjective: "stable", NoteObjective: ""}
	mgr.SaveNotes(notes)
	before := len(mgr.GetSessionTimeline())

	if mgr.SaveNotes(map[string]string{NoteSubjective: "stable"}) {
		t.Error("identical content (modulo empty sections) should be a no-op")
	}
	if got := len(mgr.GetSessionTimeline()); got != before {
		t.Errorf("timeline grew from %d to %d on no-op save", before, got)
	}
}

func TestUpdatePatientResponse(t *testing.T) {
	mgr, _ := newTestManager(t)

	_, idx := mgr.AddPatientInteraction("Where does it hurt?")
	if !mgr.UpdatePatientResponse(idx, "In my chest, doctor.") {
		t.Fatal("in-range update should return true")
	}
	if got := mgr.State().PatientInteractions[idx].PatientResponse; got != "In my chest, doctor." {
		t.Errorf("response = %q", got)
	}

	if mgr.UpdatePatientResponse(-1, "x") {
		t.Error("negative index should return false")
	}
	if mgr.UpdatePatientResponse(99, "x") {
		t.Error("out-of-range index should return false")
	}
}

func TestRecordDiagnosisSubmission(t *testing.T) {
	mgr, clock := newTestManager(t)

	clock.Advance(5 * time.Minute)
	rec := mgr.RecordDiagnosisSubmission("Myocardial infarction")

	if rec.TimeToDiagnosis != 5*time.Minute {
		t.Errorf("time to diagnosis = %v, want 5m", rec.TimeToDiagnosis)
	}
	if !mgr.State().DiagnosisSubmitted() {
		t.Error("diagnosis should be marked submitted")
	}
	if mgr.State().SubmittedDiagnosis != "Myocardial infarction" {
		t.Errorf("submitted diagnosis = %q", mgr.State().SubmittedDiagnosis)
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	mgr, clock := newTestManager(t)
	oldID := mgr.SessionID()

	mgr.OrderTest("ECG")
	clock.Advance(time.Minute)
	mgr.Reset(&cases.Case{ID: "case-2", Diagnosis: "Pneumonia"}, "")

	if mgr.SessionID() == oldID {
		t.Error("reset should mint a new session id")
	}
	state := mgr.State()
	if state.CaseID != "case-2" {
		t.Errorf("case id = %q, want case-2", state.CaseID)
	}
	if state.UserID != "student-1" {
		t.Errorf("user id = %q, want preserved student-1", state.UserID)
	}
	if len(state.OrderedTests) != 0 {
		t.Error("ordered tests should be empty after reset")
	}
	timeline := mgr.GetSessionTimeline()
	if len(timeline) != 1 || timeline[0].Type != ActivitySessionStart {
		t.Errorf("fresh timeline = %v", timeline)
	}
}

// Case reads must stay safe while Reset swaps the case underneath them.
// Run with -race to catch an unlocked read.
func TestCaseAccessorDuringReset(t *testing.T) {
	mgr, _ := newTestManager(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if c := mgr.Case(); c == nil {
				t.Error("Case returned nil mid-session")
				return
			}
		}
	}()
	for i := 0; i < 200; i++ {
		mgr.Reset(&cases.Case{ID: "case-2", Diagnosis: "Pneumonia"}, "")
	}
	<-done

	if got := mgr.Case().ID; got != "case-2" {
		t.Errorf("case id after reset = %q, want case-2", got)
	}
}

func TestTimelineSortedByTimestamp(t *testing.T) {
	mgr, clock := newTestManager(t)

	for i := 0; i < 4; i++ {
		clock.Advance(10 * time.Second)
		mgr.AddPhysicalExam("system", "findings")
	}

	timeline := mgr.GetSessionTimeline()
	for i := 1; i < len(timeline); i++ {
		if timeline[i].Timestamp.Before(timeline[i-1].Timestamp) {
			t.Fatalf("timeline out of order at %d", i)
		}
	}
}

func TestEfficiencyMetrics(t *testing.T) {
	mgr, clock := newTestManager(t)

	// Two interactions 2 minutes apart -> history span.
	mgr.AddPatientInteraction("q1")
	clock.Advance(2 * time.Minute)
	mgr.AddPatientInteraction("q2")

	// One exam only -> no exam span.
	clock.Advance(time.Minute)
	mgr.AddPhysicalExam("cardiovascular", "normal")

	clock.Advance(30 * time.Second)
	mgr.OrderTest("Troponin")
	clock.Advance(30 * time.Second)
	mgr.OrderTest("ECG")

	clock.Advance(time.Minute)
	mgr.RecordDiagnosisSubmission("Myocardial infarction")

	m := mgr.GetEfficiencyMetrics()

	if m.TimeToDiagnosis == nil || *m.TimeToDiagnosis != 5*time.Minute {
		t.Errorf("time to diagnosis = %v, want 5m", m.TimeToDiagnosis)
	}
	if m.HistoryTakingTime == nil || *m.HistoryTakingTime != 2*time.Minute {
		t.Errorf("history taking time = %v, want 2m", m.HistoryTakingTime)
	}
	if m.PhysicalExamTime != nil {
		t.Errorf("physical exam time = %v, want nil with a single exam", *m.PhysicalExamTime)
	}
	if m.CriticalTests != 2 {
		t.Errorf("critical tests = %d, want 2", m.CriticalTests)
	}
	if len(m.CriticalSequence) != 2 {
		t.Fatalf("critical sequence length = %d, want 2", len(m.CriticalSequence))
	}
	// Sequence ordered by first-order time: Troponin before ECG.
	if m.CriticalSequence[0].Test != "Troponin" || m.CriticalSequence[1].Test != "ECG" {
		t.Errorf("critical sequence = %v", m.CriticalSequence)
	}
}

func TestMetricsBeforeDiagnosis(t *testing.T) {
	mgr, _ := newTestManager(t)

	m := mgr.GetEfficiencyMetrics()
	if m.TimeToDiagnosis != nil {
		t.Error("time to diagnosis should be nil before submission")
	}
	if m.HistoryTakingTime != nil {
		t.Error("history taking time should be nil with no interactions")
	}
}

// recordingSink captures everything a Manager emits.
type recordingSink struct {
	activities []ActivityEvent
	snapshots  int
	fail       bool
}

func (s *recordingSink) RecordActivity(_ context.Context, _, _, _ string, ev ActivityEvent) error {
	if s.fail {
		return errors.New("disk full")
	}
	s.activities = append(s.activities, ev)
	return nil
}

func (s *recordingSink) SaveSnapshot(_ context.Context, _ string, _ *State) error {
	if s.fail {
		return errors.New("disk full")
	}
	s.snapshots++
	return nil
}

func TestSinkReceivesEvents(t *testing.T) {
	clock := newFakeClock()
	sink := &recordingSink{}
	mgr := NewManager(testCase(), "student-1", Config{Sink: sink, Now: clock.Now})

	mgr.OrderTest("ECG")
	mgr.AddPhysicalExam("general", "alert")

	// session_start + two mutations.
	if len(sink.activities) != 3 {
		t.Errorf("sink activities = %d, want 3", len(sink.activities))
	}
	if sink.snapshots != 3 {
		t.Errorf("sink snapshots = %d, want 3", sink.snapshots)
	}
}

func TestSinkFailureDoesNotAffectState(t *testing.T) {
	clock := newFakeClock()
	sink := &recordingSink{fail: true}
	mgr := NewManager(testCase(), "student-1", Config{Sink: sink, Now: clock.Now})

	if !mgr.OrderTest("ECG") {
		t.Fatal("mutation should succeed despite sink failure")
	}
	if !mgr.State().OrderedTests["ECG"] {
		t.Error("state should reflect the mutation")
	}
	if len(mgr.GetSessionTimeline()) != 2 {
		t.Errorf("timeline length = %d, want 2", len(mgr.GetSessionTimeline()))
	}
}

func TestSessionSummary(t *testing.T) {
	mgr, clock := newTestManager(t)

	mgr.OrderTest("ECG")
	mgr.OrderImaging("Chest X-ray")
	mgr.AddPatientInteraction("hello")
	mgr.SaveNotes(map[string]string{NotePlan: "admit for observation"})
	clock.Advance(10 * time.Minute)

	sum := mgr.GetSessionSummary()
	if sum.TestsOrdered != 1 || sum.ImagingOrdered != 1 || sum.Interactions != 1 {
		t.Errorf("summary counts = %+v", sum)
	}
	if sum.NotesWordCount != 3 {
		t.Errorf("notes word count = %d, want 3", sum.NotesWordCount)
	}
	if sum.Duration != 10*time.Minute {
		t.Errorf("duration = %v, want 10m", sum.Duration)
	}
	if sum.DiagnosisSubmitted {
		t.Error("diagnosis should not be submitted yet")
	}
}
