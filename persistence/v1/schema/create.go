package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/user-notes/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
