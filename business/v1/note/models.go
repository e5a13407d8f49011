package note

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("note not found")
	ErrInvalidContent = errors.New("note content must not be empty")
)

type Note struct {
	Id          string    `json:"id" example:"0b6f9c1e-8d0e-4c4e-9f0b-3d8e2a9e6c11"`
	DateCreated time.Time `json:"dateCreated" example:"2006-01-02T15:04:05Z"`
	Content     string    `json:"content" example:"my note text"`
}

type NewNote struct {
	Content string `json:"content" example:"my note text"`
}

// Event is published on the events topic after a note changes
type Event struct {
	Type   string `json:"type" example:"created"`
	UserId string `json:"userId"`
	Data   any    `json:"data"`
}

const (
	EventCreated = "created"
	EventDeleted = "deleted"
)
