package note

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/user-notes/persistence/v1/note"
)

func Create(ctx context.Context, userId string, newN NewNote) (Note, error) {
	if strings.TrimSpace(newN.Content) == "" {
		return Note{}, ErrInvalidContent
	}

	n := note.Note{
		Id:          uuid.NewString(),
		UserId:      userId,
		Content:     newN.Content,
		DateCreated: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := note.Insert(ctx, n); err != nil {
		return Note{}, err
	}

	created := fromPersistence(n)
	Publish(ctx, Event{Type: EventCreated, UserId: userId, Data: created})
	return created, nil
}

func fromPersistence(n note.Note) Note {
	return Note{
		Id:          n.Id,
		DateCreated: n.DateCreated,
		Content:     n.Content,
	}
}
