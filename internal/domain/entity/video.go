package entity

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Placeholder author written to every record in absence of an auth system.
const DefaultCreatedBy = "Demo User"

// Layout of CreatedAt: ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

var (
	ErrTitleRequired = errors.New("video title must be required")
	ErrLinkRequired  = errors.New("video link must be required")
	ErrInvalidText   = errors.New("video fields must be valid UTF-8 text")
)

// The entity of showcased video. Only one is ever persisted.
type Video struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Notes     string `json:"notes"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

func NewVideo(id, title, link, notes, createdBy string, createdAt time.Time) *Video {
	return &Video{
		Id:        id,
		Title:     title,
		Link:      link,
		Notes:     notes,
		CreatedBy: createdBy,
		CreatedAt: createdAt.UTC().Format(TimeLayout),
	}
}

// Check the fields required at creation. Text that is not valid UTF-8 would not
// survive JSON encoding unchanged, so it is refused as well.
func (v *Video) Validate() error {
	if v.Title == "" {
		return ErrTitleRequired
	}
	if v.Link == "" {
		return ErrLinkRequired
	}
	for _, s := range []string{v.Title, v.Link, v.Notes, v.CreatedBy} {
		if !utf8.ValidString(s) {
			return ErrInvalidText
		}
	}
	return nil
}

// Copy the video with its notes replaced.
func (v *Video) WithNotes(notes string) *Video {
	cp := *v
	cp.Notes = notes
	return &cp
}
