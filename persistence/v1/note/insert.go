package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/user-notes/sys"
)

func Insert(ctx context.Context, n Note) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (id, user_id, content, date_created) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, n.Id, n.UserId, n.Content, n.DateCreated); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	invalidate(ctx, n.UserId)
	return nil
}
