package app

import "github.com/molpadia/molpashow/internal/domain/entity"

type VideoRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Notes string `json:"notes"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type VideoResponse struct {
	Video      *entity.Video `json:"video"`
	EmbedURL   string        `json:"embedUrl"`
	Embeddable bool          `json:"embeddable"`
}

type EmbedResponse struct {
	EmbedURL string `json:"embedUrl"`
}
