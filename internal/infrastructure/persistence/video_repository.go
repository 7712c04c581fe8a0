package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/molpadia/molpashow/internal/domain/entity"
	"github.com/molpadia/molpashow/internal/domain/repository"
	"go.uber.org/zap"
)

// VideoRepository keeps the showcased video as one JSON value under a reserved key.
type VideoRepository struct {
	store  repository.KeyValueStore
	key    string
	logger *zap.Logger
}

func NewVideoRepository(store repository.KeyValueStore, key string, logger *zap.Logger) *VideoRepository {
	return &VideoRepository{store, key, logger}
}

// Save the video to the persistence, replacing the previous one.
func (r *VideoRepository) Save(ctx context.Context, video *entity.Video) error {
	b, err := json.Marshal(video)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key, b)
}

// Load the video. Unset, undecodable and incomplete values are all reported as no
// video.
func (r *VideoRepository) Load(ctx context.Context) (*entity.Video, error) {
	b, err := r.store.Get(ctx, r.key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var video *entity.Video
	if err := json.Unmarshal(b, &video); err != nil || video == nil {
		r.logger.Warn("ignoring corrupt video record", zap.String("key", r.key), zap.Error(err))
		return nil, nil
	}
	if err := video.Validate(); err != nil {
		r.logger.Warn("ignoring incomplete video record", zap.String("key", r.key), zap.Error(err))
		return nil, nil
	}
	return video, nil
}

// Remove the video from the persistence.
func (r *VideoRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
