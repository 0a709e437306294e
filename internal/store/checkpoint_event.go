package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCheckpointEvent(ctx context.Context, data CheckpointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckpointEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetVideoID(data.VideoID).
		SetCheckpointID(data.CheckpointID).
		SetAction(data.Action).
		SetPositionSecs(data.PositionSecs).
		SetLearnerAnswer(data.LearnerAnswer).
		SetAttempts(data.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint event: %w", err)
	}
	return nil
}
