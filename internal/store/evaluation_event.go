package store

import (
	"context"
	"fmt"

	"oscesim/ent"
	"oscesim/ent/evaluationevent"
)

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetReportID(data.ReportID).
		SetSessionID(data.SessionID).
		SetCaseID(data.CaseID).
		SetStudentDiagnosis(data.StudentDiagnosis).
		SetActualDiagnosis(data.ActualDiagnosis).
		SetCorrect(data.Correct).
		SetScores(data.Scores).
		SetCategoryScores(data.CategoryScores).
		SetFeedback(data.Feedback)

	if data.UserID != "" {
		builder = builder.SetUserID(data.UserID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryEvaluations(ctx context.Context, opts QueryOpts) ([]EvaluationRecord, error) {
	q := r.client.EvaluationEvent.Query().
		Order(ent.Desc(evaluationevent.FieldSequence))

	if opts.CaseID != "" {
		q = q.Where(evaluationevent.CaseID(opts.CaseID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}

	out := make([]EvaluationRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, EvaluationRecord{
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
			ReportID:         e.ReportID,
			SessionID:        e.SessionID,
			CaseID:           e.CaseID,
			StudentDiagnosis: e.StudentDiagnosis,
			ActualDiagnosis:  e.ActualDiagnosis,
			Correct:          e.Correct,
			CategoryScores:   e.CategoryScores,
			Feedback:         e.Feedback,
		})
	}
	return out, nil
}
