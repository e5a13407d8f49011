package note

import (
	"context"
	"errors"
	"github.com/ribgsilva/user-notes/persistence/v1/note"
)

// Delete removes the note id owned by userId, ErrNotFound when there is no such note
func Delete(ctx context.Context, userId, id string) error {
	err := note.Delete(ctx, userId, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return err
	}

	Publish(ctx, Event{Type: EventDeleted, UserId: userId, Data: Note{Id: id}})
	return nil
}
