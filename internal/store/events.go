package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/boussole-app/boussole/ent"
	"github.com/boussole-app/boussole/ent/resultevent"
	"github.com/boussole-app/boussole/ent/sessionevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetAnswered(data.Answered).
		SetTotal(data.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetQuestionType(data.QuestionType).
		SetValue(data.Value).
		SetElapsedMs(data.ElapsedMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResultEvent(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	// One cached result per session; a re-fetch replaces the old record.
	_, err = r.client.ResultEvent.Delete().
		Where(resultevent.SessionID(data.SessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("replace result event: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSessionID(data.SessionID).
		SetFieldIds(data.FieldIDs).
		SetTopScore(data.TopScore).
		SetJustification(data.Justification).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, limit int) ([]SessionHistoryRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	bySession := make(map[int64]*SessionHistoryRecord)
	for _, e := range events {
		rec := bySession[e.SessionID]
		if rec == nil {
			rec = &SessionHistoryRecord{
				SessionID: e.SessionID,
				StartedAt: e.Timestamp,
			}
			bySession[e.SessionID] = rec
		}
		rec.LastSeen = e.Timestamp
		rec.Answered = e.Answered
		rec.Total = e.Total
		if e.Action == "complete" {
			rec.Completed = true
		}
	}

	records := make([]SessionHistoryRecord, 0, len(bySession))
	for _, rec := range bySession {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].LastSeen.After(records[j].LastSeen)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *eventRepo) CachedResult(ctx context.Context, sessionID int64) (*ResultRecord, error) {
	e, err := r.client.ResultEvent.Query().
		Where(resultevent.SessionID(sessionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cached result: %w", err)
	}
	return &ResultRecord{
		SessionID:     e.SessionID,
		FieldIDs:      e.FieldIds,
		TopScore:      e.TopScore,
		Justification: e.Justification,
		RecordedAt:    e.Timestamp,
	}, nil
}
