package store

import (
	"context"
	"fmt"

	"github.com/rmehra/retain/ent"
	"github.com/rmehra/retain/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetVideoID(data.VideoID).
		SetAction(data.Action).
		SetDurationSecs(data.DurationSecs).
		SetFinalPositionSecs(data.FinalPositionSecs).
		SetCheckpointsCompleted(data.CheckpointsCompleted).
		SetCheckpointsSkipped(data.CheckpointsSkipped).
		SetReachedEnd(data.ReachedEnd).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldTimestamp))
	if opts.VideoID != "" {
		q = q.Where(sessionevent.VideoID(opts.VideoID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			SessionID:            e.SessionID,
			VideoID:              e.VideoID,
			Timestamp:            e.Timestamp,
			DurationSecs:         e.DurationSecs,
			FinalPositionSecs:    e.FinalPositionSecs,
			CheckpointsCompleted: e.CheckpointsCompleted,
			CheckpointsSkipped:   e.CheckpointsSkipped,
			ReachedEnd:           e.ReachedEnd,
		})
	}
	return records, nil
}
