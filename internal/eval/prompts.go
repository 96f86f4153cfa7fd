package eval

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"oscesim/internal/cases"
	"oscesim/internal/session"
)

const interactionSystemPrompt = `You are an expert medical-education examiner. Score a student's communication with a virtual patient against the rubric fields you are given. Scores are integers from 1 (poor) to 10 (excellent). Base every score and observation strictly on the transcript; do not invent exchanges that are not there. Keep strengths and areas for improvement specific and short.`

const physicalExamSystemPrompt = `You are an expert medical-education examiner. Score a student's physical examination of a virtual patient. Scores are integers from 1 (poor) to 10 (excellent). Judge exam selection against the presenting complaint, and technique against the verified procedure steps and scores. List key exams that were missed and exams that added no value.`

const clinicalSystemPrompt = `You are an expert medical-education examiner. Score a student's diagnostic decision-making. Scores are integers from 1 (poor) to 10 (excellent). Compare the submitted diagnosis to the actual diagnosis, judge the ordered tests against the case's critical-test list, and set diagnosis_correct strictly: only true when the submitted diagnosis identifies the same condition.`

const notesSystemPrompt = `You are an expert medical-education examiner. Score a student's clinical notes against the SOAP structure (Subjective, Objective, Assessment, Plan). Scores are integers from 1 (poor) to 10 (excellent). Reward complete, concise documentation that captures the clinical reasoning.`

const workflowSystemPrompt = `You are an expert medical-education examiner. Score a student's workflow timing on a clinical case. Scores are integers from 1 (poor) to 10 (excellent). Weight decision timing by the case urgency: an emergent case demands fast critical-test ordering, a routine case rewards thoroughness over speed. Use the timeline and efficiency metrics you are given; do not speculate beyond them.`

// renderCaseContext renders the read-only case facts shared by every
// rubric prompt.
func renderCaseContext(c *cases.Case) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s (%s)\n", c.Title, c.Specialty)
	fmt.Fprintf(&b, "Presenting complaint: %s\n", c.PresentingComplaint)
	fmt.Fprintf(&b, "Symptoms: %s\n", strings.Join(c.Symptoms, ", "))
	fmt.Fprintf(&b, "Actual diagnosis: %s\n", c.Diagnosis)
	fmt.Fprintf(&b, "Critical tests: %s\n", strings.Join(c.CriticalTests, ", "))
	fmt.Fprintf(&b, "Key findings: %s", strings.Join(c.KeyFindings, ", "))
	return b.String()
}

var interactionUserTemplate = template.Must(template.New("interaction").Parse(`{{.CaseContext}}

Patient interview transcript ({{len .Interactions}} exchanges):
{{range .Interactions}}Student: {{.UserMessage}}
{{if .PatientResponse}}Patient: {{.PatientResponse}}
{{end}}{{end}}`))

func buildInteractionMessage(c *cases.Case, interactions []session.Interaction) (string, error) {
	return execTemplate(interactionUserTemplate, map[string]any{
		"CaseContext":  renderCaseContext(c),
		"Interactions": interactions,
	})
}

var physicalExamUserTemplate = template.Must(template.New("physical-exam").Parse(`{{.CaseContext}}
Key exams for this case: {{.KeyExams}}

Examinations performed ({{len .Exams}}):
{{range .Exams}}- {{.System}}: {{.Findings}}
{{end}}
Verified procedures ({{len .Procedures}}):
{{range .Procedures}}- {{.ExamName}} (score {{printf "%.1f" .Score}}, {{len .Steps}} steps)
{{end}}`))

func buildPhysicalExamMessage(c *cases.Case, exams []session.PhysicalExam, procs []session.VerifiedProcedure) (string, error) {
	return execTemplate(physicalExamUserTemplate, map[string]any{
		"CaseContext": renderCaseContext(c),
		"KeyExams":    strings.Join(c.KeyExams, ", "),
		"Exams":       exams,
		"Procedures":  procs,
	})
}

var clinicalUserTemplate = template.Must(template.New("clinical").Parse(`{{.CaseContext}}

Submitted diagnosis: {{.Diagnosis}}
Tests ordered: {{.Tests}}
Imaging ordered: {{.Imaging}}
Systems examined: {{.Systems}}`))

func buildClinicalMessage(c *cases.Case, diagnosis string, tests, imaging []string, exams []session.PhysicalExam) (string, error) {
	systems := make([]string, 0, len(exams))
	for _, e := range exams {
		systems = append(systems, e.System)
	}
	return execTemplate(clinicalUserTemplate, map[string]any{
		"CaseContext": renderCaseContext(c),
		"Diagnosis":   diagnosis,
		"Tests":       joinOrNone(tests),
		"Imaging":     joinOrNone(imaging),
		"Systems":     joinOrNone(systems),
	})
}

var notesUserTemplate = template.Must(template.New("notes").Parse(`{{.CaseContext}}

Student notes:
{{range $section, $text := .Notes}}[{{$section}}]
{{$text}}

{{end}}`))

func buildNotesMessage(c *cases.Case, notes map[string]string) (string, error) {
	return execTemplate(notesUserTemplate, map[string]any{
		"CaseContext": renderCaseContext(c),
		"Notes":       notes,
	})
}

var workflowUserTemplate = template.Must(template.New("workflow").Parse(`{{.CaseContext}}
Case urgency: {{.Urgency}}

Session timing:
- duration: {{.Duration}}
- time to diagnosis: {{.TimeToDiagnosis}}
- idle periods: {{.IdleCount}} (total {{.IdleTotal}})
- critical tests ordered: {{.CriticalCount}}
{{range .CriticalSeq}}- {{.Test}} ordered at +{{.TimeSinceStart}}
{{end}}
Activity timeline ({{len .Timeline}} events):
{{range .Timeline}}- +{{.TimeSinceStart}} {{.Type}}: {{.Description}}
{{end}}`))

func buildWorkflowMessage(c *cases.Case, data TimestampData) (string, error) {
	m := data.Metrics
	ttd := "not submitted"
	if m.TimeToDiagnosis != nil {
		ttd = m.TimeToDiagnosis.Round(time.Second).String()
	}
	return execTemplate(workflowUserTemplate, map[string]any{
		"CaseContext":     renderCaseContext(c),
		"Urgency":         cases.ClassifyUrgency(c),
		"Duration":        m.SessionDuration.Round(time.Second),
		"TimeToDiagnosis": ttd,
		"IdleCount":       m.IdlePeriodsCount,
		"IdleTotal":       m.TotalIdleTime.Round(time.Second),
		"CriticalCount":   m.CriticalTests,
		"CriticalSeq":     m.CriticalSequence,
		"Timeline":        data.Timeline,
	})
}

func execTemplate(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
