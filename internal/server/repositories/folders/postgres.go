// Package folders provides the PostgreSQL-backed folder registry.
package folders

import (
	"context"
	"fmt"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/dbx"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
)

// PostgresRepository implements folder storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new folder. Duplicate names are permitted; CreatedAt is
// assigned by the database and written back into folder.
func (r *PostgresRepository) Create(ctx context.Context, folder *models.Folder) error {
	q := `
		INSERT INTO folders (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, q, folder.ID, folder.UserID, folder.Name).Scan(&folder.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns all folders owned by userID, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	q := `SELECT id, user_id, name, created_at FROM folders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}
	defer rows.Close()

	var result []*models.Folder
	for rows.Next() {
		var item models.Folder
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Rename updates the folder name with a single conditional UPDATE keyed on
// (id, user_id). Zero affected rows means absent or foreign: common.ErrNotFound.
func (r *PostgresRepository) Rename(ctx context.Context, userID, id, name string) error {
	q := `UPDATE folders SET name = $1 WHERE id = $2 AND user_id = $3`
	return r.execExpectOne(ctx, q, name, id, userID)
}

// Delete removes the folder row. Callers are expected to detach the folder's
// files first, inside the same transaction (see services.FolderService).
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	q := `DELETE FROM folders WHERE id = $1 AND user_id = $2`
	return r.execExpectOne(ctx, q, id, userID)
}

// Exists reports whether a folder with the given id is owned by userID.
// Used to validate folder references before attaching files.
func (r *PostgresRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM folders WHERE id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) execExpectOne(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
