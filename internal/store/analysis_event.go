package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathlens/ent"
	"github.com/abhisek/mathlens/ent/analysisevent"
)

// AnalysisEventData captures the data for a single question classification.
type AnalysisEventData struct {
	Question     string
	MainConcept  string
	Confidence   float64
	Observations []string
}

// AnalysisRecord is a stored analysis event.
type AnalysisRecord struct {
	Sequence  int64
	Timestamp time.Time
	Data      AnalysisEventData
}

// AnalysisRepo provides append and query access to analysis events.
type AnalysisRepo interface {
	// Append records one classification result.
	Append(ctx context.Context, data AnalysisEventData) error

	// Recent returns the most recent analysis events, newest first.
	Recent(ctx context.Context, limit int) ([]AnalysisRecord, error)
}

// analysisRepo implements AnalysisRepo backed by ent and the shared event sequence.
type analysisRepo struct {
	client *ent.Client
	seq    *eventSequence
}

func (r *analysisRepo) Append(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetQuestion(data.Question).
		SetMainConcept(data.MainConcept).
		SetConfidence(data.Confidence).
		SetObservations(data.Observations).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *analysisRepo) Recent(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	q := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}

	records := make([]AnalysisRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AnalysisRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			Data: AnalysisEventData{
				Question:     row.Question,
				MainConcept:  row.MainConcept,
				Confidence:   row.Confidence,
				Observations: row.Observations,
			},
		})
	}
	return records, nil
}
