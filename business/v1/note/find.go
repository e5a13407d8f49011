package note

import (
	"context"
	"github.com/ribgsilva/user-notes/persistence/v1/note"
)

func Find(ctx context.Context, userId, id string) (Note, error) {
	find, err := note.Find(ctx, userId, id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == "" {
		return Note{}, nil
	}
	return fromPersistence(find), nil
}
