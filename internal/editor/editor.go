// Package editor holds the notes editing state of the showcased video.
//
// An Editor is either Viewing or Editing. Entering Editing copies the record's notes
// into a draft; the draft only reaches the record through a successful Commit and is
// thrown away by Cancel.
package editor

import (
	"errors"
	"sync"

	"github.com/molpadia/molpashow/internal/domain/entity"
)

type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

var ErrNotEditing = errors.New("notes are not being edited")

type Editor struct {
	mu     sync.Mutex
	mode   Mode
	record *entity.Video
	draft  string
}

func New() *Editor { return &Editor{} }

// Begin editing the notes of the video. Beginning again on the same record keeps the
// pending draft.
func (e *Editor) Begin(video *entity.Video) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == Editing && e.record.Id == video.Id {
		return
	}
	cp := *video
	e.mode = Editing
	e.record = &cp
	e.draft = video.Notes
}

// Replace the draft notes.
func (e *Editor) SetDraft(notes string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != Editing {
		return ErrNotEditing
	}
	e.draft = notes
	return nil
}

// Commit hands the edited video to save. The editor returns to Viewing only when save
// succeeds; otherwise the draft is kept for another attempt.
func (e *Editor) Commit(save func(*entity.Video) error) (*entity.Video, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != Editing {
		return nil, ErrNotEditing
	}
	video := e.record.WithNotes(e.draft)
	if err := save(video); err != nil {
		return nil, err
	}
	e.reset()
	return video, nil
}

// Discard the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Editor) reset() {
	e.mode = Viewing
	e.record = nil
	e.draft = ""
}

func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *Editor) Draft() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Get the ID of the video under edit, empty while Viewing.
func (e *Editor) RecordID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record == nil {
		return ""
	}
	return e.record.Id
}
