// Package report renders evaluation reports for terminal display.
package report

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"oscesim/internal/eval"
	"oscesim/internal/session"
)

var facetLabels = []struct {
	facet eval.Facet
	label string
}{
	{eval.FacetInteraction, "Patient Interaction"},
	{eval.FacetPhysicalExam, "Physical Examination"},
	{eval.FacetClinical, "Clinical Decision-Making"},
	{eval.FacetNotes, "Documentation"},
	{eval.FacetWorkflow, "Workflow & Timing"},
}

// Render formats a complete evaluation report as a styled terminal card.
func Render(rep *eval.Report) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Evaluation Report"))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(rep.CreatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString("\n\n")

	if rep.Error != "" {
		b.WriteString(styleIncorrect.Render("Evaluation error: " + rep.Error))
		b.WriteString("\n\n")
	}

	verdict := styleIncorrect.Render("INCORRECT")
	if rep.Correct {
		verdict = styleCorrect.Render("CORRECT")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n",
		styleLabel.Render("Diagnosis:"),
		styleBody.Render(rep.StudentDiagnosis)))
	b.WriteString(fmt.Sprintf("%s  %s  (%s)\n",
		styleLabel.Render("Expected: "),
		styleBody.Render(rep.ActualDiagnosis),
		verdict))

	b.WriteString(styleSection.Render("Category Scores"))
	b.WriteString("\n")
	for _, fl := range facetLabels {
		score := rep.CategoryScores[fl.facet]
		b.WriteString(fmt.Sprintf("  %-26s %s  %s\n",
			fl.label,
			scoreBar(score),
			scoreStyle(float64(score)).Render(fmt.Sprintf("%2d/10", score))))
	}

	for _, fl := range facetLabels {
		section := renderFacet(rep, fl.facet, fl.label)
		if section != "" {
			b.WriteString(section)
		}
	}

	if len(rep.MissedCriticalTests) > 0 {
		b.WriteString(styleSection.Render("Missed Critical Tests"))
		b.WriteString("\n")
		for _, t := range rep.MissedCriticalTests {
			b.WriteString("  " + styleIncorrect.Render("! ") + styleBody.Render(t) + "\n")
		}
	}

	if rep.Metrics != nil {
		b.WriteString(renderMetrics(rep.Metrics))
	}

	b.WriteString(styleSection.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(styleBody.Render(wrap(rep.Feedback, 76)))
	b.WriteString("\n")

	return styleCard.Render(b.String())
}

func renderFacet(rep *eval.Report, f eval.Facet, label string) string {
	strengths := rep.Strengths[f]
	improvements := rep.Improvements[f]
	if len(strengths) == 0 && len(improvements) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleSection.Render(label))
	b.WriteString("\n")
	for _, s := range strengths {
		b.WriteString("  " + styleCorrect.Render("+ ") + styleBody.Render(s) + "\n")
	}
	for _, s := range improvements {
		b.WriteString("  " + styleLabel.Render("- ") + styleBody.Render(s) + "\n")
	}
	return b.String()
}

func renderMetrics(m *session.EfficiencyMetrics) string {
	var b strings.Builder
	b.WriteString(styleSection.Render("Efficiency"))
	b.WriteString("\n")
	b.WriteString(metricLine("Session duration", formatDuration(m.SessionDuration)))
	if m.TimeToDiagnosis != nil {
		b.WriteString(metricLine("Time to diagnosis", formatDuration(*m.TimeToDiagnosis)))
	}
	if m.HistoryTakingTime != nil {
		b.WriteString(metricLine("History taking", formatDuration(*m.HistoryTakingTime)))
	}
	if m.PhysicalExamTime != nil {
		b.WriteString(metricLine("Physical exam", formatDuration(*m.PhysicalExamTime)))
	}
	if m.IdlePeriodsCount > 0 {
		b.WriteString(metricLine("Idle time",
			fmt.Sprintf("%s across %d period(s)", formatDuration(m.TotalIdleTime), m.IdlePeriodsCount)))
	}
	for _, c := range m.CriticalSequence {
		b.WriteString(metricLine("Critical: "+c.Test, "at "+formatDuration(c.TimeSinceStart)))
	}
	return b.String()
}

func metricLine(label, value string) string {
	return fmt.Sprintf("  %-22s %s\n", styleLabel.Render(label), styleBody.Render(value))
}

// scoreBar renders a 10-cell bar for a 0-10 score.
func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	filled := scoreStyle(float64(score)).Render(strings.Repeat("█", score))
	empty := styleLabel.Render(strings.Repeat("░", 10-score))
	return filled + empty
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// wrap folds text at width without breaking words.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+lipgloss.Width(w) > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += lipgloss.Width(w)
	}
	return b.String()
}
