package repository

import (
	"context"

	"github.com/molpadia/molpashow/internal/domain/entity"
)

// The single-slot store of the showcased video.
type VideoRepository interface {
	// Save the video, overwriting any prior one.
	Save(ctx context.Context, video *entity.Video) error
	// Load the stored video. Returns nil without error if there is none.
	Load(ctx context.Context) (*entity.Video, error)
	// Remove the stored video unconditionally.
	Clear(ctx context.Context) error
}
