package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathlens/ent"
	"github.com/abhisek/mathlens/ent/practicetestevent"
)

// PracticeEventData captures the data for a single generated practice test.
type PracticeEventData struct {
	Concept         string
	NumQuestions    int
	ConceptsCovered []string
}

// PracticeRecord is a stored practice test event.
type PracticeRecord struct {
	Sequence  int64
	Timestamp time.Time
	Data      PracticeEventData
}

// PracticeRepo provides append and query access to practice test events.
type PracticeRepo interface {
	// Append records one generated practice test.
	Append(ctx context.Context, data PracticeEventData) error

	// Recent returns the most recent practice test events, newest first.
	Recent(ctx context.Context, limit int) ([]PracticeRecord, error)
}

type practiceRepo struct {
	client *ent.Client
	seq    *eventSequence
}

func (r *practiceRepo) Append(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeTestEvent.Create().
		SetSequence(seqNum).
		SetConcept(data.Concept).
		SetNumQuestions(data.NumQuestions).
		SetConceptsCovered(data.ConceptsCovered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice test event: %w", err)
	}
	return nil
}

func (r *practiceRepo) Recent(ctx context.Context, limit int) ([]PracticeRecord, error) {
	q := r.client.PracticeTestEvent.Query().
		Order(ent.Desc(practicetestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice test events: %w", err)
	}

	records := make([]PracticeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, PracticeRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			Data: PracticeEventData{
				Concept:         row.Concept,
				NumQuestions:    row.NumQuestions,
				ConceptsCovered: row.ConceptsCovered,
			},
		})
	}
	return records, nil
}
