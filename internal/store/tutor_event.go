package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTutorEvent(ctx context.Context, data TutorEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TutorEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetVideoID(data.VideoID).
		SetPositionSecs(data.PositionSecs).
		SetQuestion(data.Question).
		SetReply(data.Reply).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save tutor event: %w", err)
	}
	return nil
}
