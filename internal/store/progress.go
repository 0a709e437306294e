package store

import (
	"context"
	"fmt"

	"github.com/rmehra/retain/ent"
	"github.com/rmehra/retain/ent/progressrecord"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, videoID string) (*Progress, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.VideoID(videoID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToProgress(rec), nil
}

func (r *progressRepo) Upsert(ctx context.Context, userID, videoID string, positionSecs float64) error {
	existing, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.VideoID(videoID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress for upsert: %w", err)
		}
		_, err = r.client.ProgressRecord.Create().
			SetUserID(userID).
			SetVideoID(videoID).
			SetPositionSecs(positionSecs).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetPositionSecs(positionSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID, videoID string) error {
	existing, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.VideoID(videoID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress for completion: %w", err)
		}
		_, err = r.client.ProgressRecord.Create().
			SetUserID(userID).
			SetVideoID(videoID).
			SetCompleted(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create completed progress: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetCompleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark progress completed: %w", err)
	}
	return nil
}

func (r *progressRepo) All(ctx context.Context, userID string) ([]Progress, error) {
	recs, err := r.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		Order(ent.Desc(progressrecord.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}

	out := make([]Progress, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *entProgressToProgress(rec))
	}
	return out, nil
}

func (r *progressRepo) DeleteAll(ctx context.Context, userID string) (int, error) {
	n, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	return n, nil
}

func entProgressToProgress(rec *ent.ProgressRecord) *Progress {
	return &Progress{
		UserID:       rec.UserID,
		VideoID:      rec.VideoID,
		PositionSecs: rec.PositionSecs,
		Completed:    rec.Completed,
		UpdatedAt:    rec.UpdatedAt,
	}
}
