package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/molpadia/molpashow/internal/domain/entity"
	"github.com/molpadia/molpashow/internal/domain/repository"
	"github.com/molpadia/molpashow/internal/editor"
	"go.uber.org/zap"
)

// Controller serves the showcase pages and the JSON API over one video repository.
type Controller struct {
	videos    repository.VideoRepository
	editor    *editor.Editor
	logger    *zap.Logger
	createdBy string
	newID     func() string
	now       func() time.Time
}

type Option func(*Controller)

// Set the author written to new videos.
func WithCreatedBy(name string) Option {
	return func(c *Controller) { c.createdBy = name }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

func NewController(videos repository.VideoRepository, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		videos:    videos,
		editor:    editor.New(),
		logger:    logger,
		createdBy: entity.DefaultCreatedBy,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create a new video and store it in place of the previous one.
func (c *Controller) create(ctx context.Context, title, link, notes string) (*entity.Video, error) {
	video := entity.NewVideo(c.newID(), title, link, notes, c.createdBy, c.now())
	if err := video.Validate(); err != nil {
		return nil, &AppError{http.StatusBadRequest, err.Error()}
	}
	if err := c.videos.Save(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to save video: %w", err)
	}
	// A pending notes edit belongs to the replaced video.
	c.editor.Cancel()
	c.logger.Info("video created", zap.String("id", video.Id), zap.String("link", video.Link))
	return video, nil
}

// Remove the stored video along with any pending notes edit.
func (c *Controller) remove(ctx context.Context) error {
	if err := c.videos.Clear(ctx); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	c.editor.Cancel()
	c.logger.Info("video deleted")
	return nil
}
