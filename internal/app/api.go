package app

import (
	"net/http"

	"github.com/molpadia/molpashow/internal/domain/entity"
	"github.com/molpadia/molpashow/internal/embed"
	"go.uber.org/zap"
)

func newVideoResponse(video *entity.Video) VideoResponse {
	embedURL, ok := embed.Resolve(video.Link)
	return VideoResponse{video, embedURL, ok}
}

// Get the stored video with its embeddable player URL.
func (c *Controller) getVideo(w http.ResponseWriter, r *http.Request) error {
	video, err := c.videos.Load(r.Context())
	if err != nil {
		return err
	}
	if video == nil {
		return &AppError{http.StatusNotFound, "video does not exist"}
	}
	return replyJSON(w, newVideoResponse(video), http.StatusOK)
}

// Create a new video, replacing the stored one.
func (c *Controller) createVideo(w http.ResponseWriter, r *http.Request) error {
	var data VideoRequest
	if err := parseJSON(w, r, &data); err != nil {
		return err
	}
	video, err := c.create(r.Context(), data.Title, data.Link, data.Notes)
	if err != nil {
		return err
	}
	return replyJSON(w, newVideoResponse(video), http.StatusCreated)
}

// Replace the notes of the stored video.
func (c *Controller) updateNotes(w http.ResponseWriter, r *http.Request) error {
	var data NotesRequest
	if err := parseJSON(w, r, &data); err != nil {
		return err
	}
	video, err := c.videos.Load(r.Context())
	if err != nil {
		return err
	}
	if video == nil {
		return &AppError{http.StatusNotFound, "video does not exist"}
	}
	video = video.WithNotes(data.Notes)
	if err := c.videos.Save(r.Context(), video); err != nil {
		return err
	}
	c.logger.Info("video notes updated", zap.String("id", video.Id))
	return replyJSON(w, newVideoResponse(video), http.StatusOK)
}

func (c *Controller) removeVideo(w http.ResponseWriter, r *http.Request) error {
	if err := c.remove(r.Context()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Resolve a link to its embeddable player URL.
func (c *Controller) resolveEmbed(w http.ResponseWriter, r *http.Request) error {
	link := r.URL.Query().Get("url")
	if link == "" {
		return &AppError{http.StatusBadRequest, "url query parameter must be required"}
	}
	embedURL, ok := embed.Resolve(link)
	if !ok {
		return &AppError{http.StatusUnprocessableEntity, "Invalid YouTube URL"}
	}
	return replyJSON(w, EmbedResponse{embedURL}, http.StatusOK)
}
