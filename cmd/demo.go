package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"oscesim/internal/cases"
	"oscesim/internal/eval"
	"oscesim/internal/llm"
	"oscesim/internal/logger"
	"oscesim/internal/report"
	"oscesim/internal/session"
	"oscesim/internal/store"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted encounter and evaluate it",
	Long: "Plays through a scripted student encounter against one of the built-in\n" +
		"cases, submits a diagnosis, runs the five-rubric evaluation and prints\n" +
		"the resulting report.",
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("case", "", "Case id to run (defaults to the first built-in case)")
	demoCmd.Flags().String("diagnosis", "", "Diagnosis to submit (defaults to the case's expected diagnosis)")
	demoCmd.Flags().String("log", "dev", "Log mode: dev or prod")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logMode, _ := cmd.Flags().GetString("log")
	log, err := logger.New(logMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Rubric scores will fall back to technical-error defaults.")
		provider = nil
	}

	kase, err := pickCase(cmd)
	if err != nil {
		return err
	}

	diagnosis, _ := cmd.Flags().GetString("diagnosis")
	if diagnosis == "" {
		diagnosis = cases.ResolveDiagnosis(kase)
	}

	mgr := session.NewManager(kase, "demo-user", session.Config{
		Sink:   store.NewSink(st.EventRepo(), st.SnapshotRepo()),
		Logger: log,
	})
	playScript(mgr, kase, diagnosis)

	agg := eval.NewAggregator(provider, eval.DefaultConfig(), log)
	rep := agg.Evaluate(ctx, kase, evaluationInput(mgr))

	if err := persistReport(ctx, st, mgr, rep); err != nil {
		log.Warn("persist report failed", "report_id", rep.ID, "err", err)
	}

	fmt.Println(report.Render(rep))
	return nil
}

// pickCase resolves the --case flag against the built-in pack.
func pickCase(cmd *cobra.Command) (*cases.Case, error) {
	ctx := cmd.Context()
	provider, err := cases.LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("load built-in cases: %w", err)
	}

	caseID, _ := cmd.Flags().GetString("case")
	if caseID == "" {
		ids, err := provider.ListCases(ctx)
		if err != nil || len(ids) == 0 {
			return nil, fmt.Errorf("no built-in cases available")
		}
		caseID = ids[0]
	}

	kase, err := provider.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", caseID, err)
	}
	return kase, nil
}

// playScript performs a plausible student encounter: history, examination,
// orders (including a repeated order, which is a no-op), notes and diagnosis.
func playScript(mgr *session.Manager, kase *cases.Case, diagnosis string) {
	questions := []string{
		"Can you tell me what brought you in today?",
		"When did the symptoms start, and have they changed since?",
		"Do you have any past medical history or take any medications?",
	}
	for _, q := range questions {
		_, idx := mgr.AddPatientInteraction(q)
		mgr.UpdatePatientResponse(idx, "Patient describes: "+kase.PresentingComplaint)
	}

	mgr.AddPhysicalExam("general", "Alert, appears uncomfortable")
	mgr.AddPhysicalExam("cardiovascular", "Regular rhythm, no murmurs")
	mgr.AddVerifiedProcedure("Focused cardiac exam", []string{
		"Inspect precordium", "Palpate apex beat", "Auscultate all four areas",
	}, 0.9)

	for _, test := range kase.CriticalTests {
		mgr.OrderTest(test)
	}
	if len(kase.CriticalTests) > 0 {
		// Duplicate orders are idempotent.
		mgr.OrderTest(kase.CriticalTests[0])
	}
	mgr.OrderImaging("Chest X-ray")

	mgr.SaveNotes(map[string]string{
		session.NoteSubjective: kase.PresentingComplaint,
		session.NoteObjective:  "Vitals stable. Focused exam performed.",
		session.NoteAssessment: "Working diagnosis: " + diagnosis,
		session.NotePlan:       "Await results of ordered investigations.",
	})

	mgr.RecordDiagnosisSubmission(diagnosis)
}

// evaluationInput assembles the aggregator input from the live session.
func evaluationInput(mgr *session.Manager) eval.Input {
	state := mgr.State()
	metrics := mgr.GetEfficiencyMetrics()
	return eval.Input{
		Diagnosis:          state.SubmittedDiagnosis,
		OrderedTests:       sortedKeys(state.OrderedTests),
		OrderedImaging:     sortedKeys(state.OrderedImaging),
		Interactions:       state.PatientInteractions,
		PhysicalExams:      state.PhysicalExams,
		VerifiedProcedures: state.VerifiedProcedures,
		Notes:              state.PatientNotes,
		Timestamps: eval.TimestampData{
			Timeline: mgr.GetSessionTimeline(),
			Metrics:  &metrics,
		},
	}
}

// persistReport appends the finished evaluation to the event store.
func persistReport(ctx context.Context, st *store.Store, mgr *session.Manager, rep *eval.Report) error {
	state := mgr.State()

	scores := make(map[string]any, len(rep.Scores))
	for k, v := range rep.Scores {
		scores[k] = v
	}
	categoryScores := make(map[string]any, len(rep.CategoryScores))
	for f, v := range rep.CategoryScores {
		categoryScores[string(f)] = v
	}

	return st.EventRepo().AppendEvaluation(ctx, store.EvaluationEventData{
		ReportID:         rep.ID,
		SessionID:        mgr.SessionID(),
		UserID:           state.UserID,
		CaseID:           state.CaseID,
		StudentDiagnosis: rep.StudentDiagnosis,
		ActualDiagnosis:  rep.ActualDiagnosis,
		Correct:          rep.Correct,
		Scores:           scores,
		CategoryScores:   categoryScores,
		Feedback:         rep.Feedback,
	})
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
