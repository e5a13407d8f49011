package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/user-notes/sys"
)

// Delete removes the note id owned by userId, ErrNotFound when no row was removed
func Delete(ctx context.Context, userId, id string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ? AND user_id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()
	res, err := stmt.ExecContext(dbCtx, id, userId)
	if err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	// cached entries may still hold the note even when nothing was removed
	invalidate(ctx, userId)

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
