package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/user-notes/sys"
)

// Find returns the note with id owned by userId, or the zero Note when there is none
func Find(ctx context.Context, userId, id string) (Note, error) {
	db := sys.R.Database

	v, cacheable := version(ctx, userId)
	key := fmt.Sprintf(noteKey, userId, v, id)

	var note Note
	if cacheable && fromCache(ctx, key, &note) {
		return note, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, user_id, content, date_created FROM notes WHERE id = ? AND user_id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(dbCtx, id, userId).Scan(&note.Id, &note.UserId, &note.Content, &note.DateCreated)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	if cacheable {
		toCache(ctx, key, note)
	}
	return note, nil
}

// FindByUser returns every note owned by userId, in storage order
func FindByUser(ctx context.Context, userId string) ([]Note, error) {
	db := sys.R.Database

	// the version is read before the rows, a write racing this read bumps it
	// and the list cached below is never served
	v, cacheable := version(ctx, userId)
	key := fmt.Sprintf(listKey, userId, v)

	var notes []Note
	if cacheable && fromCache(ctx, key, &notes) {
		return notes, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, user_id, content, date_created FROM notes WHERE user_id = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find by user stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query find by user stmt: %w", err)
	}
	defer rows.Close()

	notes = []Note{}
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.Id, &note.UserId, &note.Content, &note.DateCreated); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating db data: %w", err)
	}

	if cacheable {
		toCache(ctx, key, notes)
	}
	return notes, nil
}
