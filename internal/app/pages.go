package app

import (
	"errors"
	"net/http"

	"github.com/molpadia/molpashow/internal/domain/entity"
	"github.com/molpadia/molpashow/internal/editor"
	"github.com/molpadia/molpashow/internal/embed"
	"go.uber.org/zap"
)

type formPage struct {
	Title, Link, Notes string
	Error              string
}

type videoPage struct {
	Video      *entity.Video
	EmbedURL   string
	Embeddable bool
	Editing    bool
	Draft      string
}

func (c *Controller) showForm(w http.ResponseWriter, r *http.Request) error {
	return render(w, http.StatusOK, "form", formPage{})
}

// Create the video from the submitted form and move on to its display page.
func (c *Controller) submitForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := r.ParseForm(); err != nil {
		return &AppError{http.StatusBadRequest, "cannot parse form"}
	}
	form := formPage{
		Title: r.PostForm.Get("title"),
		Link:  r.PostForm.Get("link"),
		Notes: r.PostForm.Get("notes"),
	}
	_, err := c.create(r.Context(), form.Title, form.Link, form.Notes)
	var e *AppError
	if errors.As(err, &e) && e.Code == http.StatusBadRequest {
		form.Error = e.Message
		return render(w, http.StatusBadRequest, "form", form)
	}
	if err != nil {
		return err
	}
	http.Redirect(w, r, "/video", http.StatusSeeOther)
	return nil
}

// Display the stored video, or send the user back to the form when there is none.
func (c *Controller) showVideo(w http.ResponseWriter, r *http.Request) error {
	video, err := c.videos.Load(r.Context())
	if err != nil {
		return err
	}
	if video == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	if id := c.editor.RecordID(); id != "" && id != video.Id {
		c.logger.Info("discarding notes edit of a replaced video", zap.String("id", id))
		c.editor.Cancel()
	}
	embedURL, ok := embed.Resolve(video.Link)
	return render(w, http.StatusOK, "video", videoPage{
		Video:      video,
		EmbedURL:   embedURL,
		Embeddable: ok,
		Editing:    c.editor.Mode() == editor.Editing,
		Draft:      c.editor.Draft(),
	})
}

func (c *Controller) editNotes(w http.ResponseWriter, r *http.Request) error {
	video, err := c.videos.Load(r.Context())
	if err != nil {
		return err
	}
	if video == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	c.editor.Begin(video)
	http.Redirect(w, r, "/video", http.StatusSeeOther)
	return nil
}

// Commit or discard the notes draft.
func (c *Controller) saveNotes(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := r.ParseForm(); err != nil {
		return &AppError{http.StatusBadRequest, "cannot parse form"}
	}
	switch r.PostForm.Get("action") {
	case "cancel":
		c.editor.Cancel()
	case "save":
		if err := c.editor.SetDraft(r.PostForm.Get("notes")); err != nil {
			if errors.Is(err, editor.ErrNotEditing) {
				return &AppError{http.StatusConflict, "notes are not being edited"}
			}
			return err
		}
		video, err := c.editor.Commit(func(v *entity.Video) error {
			if err := v.Validate(); err != nil {
				return &AppError{http.StatusBadRequest, err.Error()}
			}
			return c.videos.Save(r.Context(), v)
		})
		if err != nil {
			return err
		}
		c.logger.Info("video notes updated", zap.String("id", video.Id))
	default:
		return &AppError{http.StatusBadRequest, "action must be save or cancel"}
	}
	http.Redirect(w, r, "/video", http.StatusSeeOther)
	return nil
}

func (c *Controller) confirmDelete(w http.ResponseWriter, r *http.Request) error {
	video, err := c.videos.Load(r.Context())
	if err != nil {
		return err
	}
	if video == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return render(w, http.StatusOK, "confirm", video)
}

func (c *Controller) deleteVideo(w http.ResponseWriter, r *http.Request) error {
	if err := c.remove(r.Context()); err != nil {
		return err
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}
