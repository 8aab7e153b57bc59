// Package files provides the PostgreSQL-backed file metadata registry.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/dbx"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/query"
)

const fileColumns = "id, user_id, name, storage_key, content_type, size, folder_id, is_favorite, is_trashed, uploaded_at"

// PostgresRepository implements file storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new file row. The caller assigns the ID and has already
// validated the folder reference; UploadedAt is assigned by the database and
// written back into file.
func (r *PostgresRepository) Create(ctx context.Context, file *models.File) error {
	q := `
		INSERT INTO files (id, user_id, name, storage_key, content_type, size, folder_id, is_favorite, is_trashed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING uploaded_at
	`
	err := r.db.QueryRowContext(ctx, q,
		file.ID, file.UserID, file.Name, file.StorageKey, file.ContentType,
		file.Size, file.FolderID, file.IsFavorite, file.IsTrashed,
	).Scan(&file.UploadedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the file with the given id owned by userID.
// Foreign and absent rows both yield common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.File, error) {
	q := fmt.Sprintf(`SELECT %s FROM files WHERE id = $1 AND user_id = $2`, fileColumns)
	return r.getOne(ctx, q, id, userID)
}

// GetByStorageKey resolves a file by its object-storage key, used by the
// download path to authorize the requester before streaming bytes.
func (r *PostgresRepository) GetByStorageKey(ctx context.Context, userID, key string) (*models.File, error) {
	q := fmt.Sprintf(`SELECT %s FROM files WHERE storage_key = $1 AND user_id = $2`, fileColumns)
	return r.getOne(ctx, q, key, userID)
}

func (r *PostgresRepository) getOne(ctx context.Context, q string, args ...any) (*models.File, error) {
	file := &models.File{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&file.ID, &file.UserID, &file.Name, &file.StorageKey, &file.ContentType,
		&file.Size, &file.FolderID, &file.IsFavorite, &file.IsTrashed, &file.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// List returns the owner's files matching the resolved criteria, ordered by
// the criteria's sort contract.
func (r *PostgresRepository) List(ctx context.Context, userID string, c query.Criteria) ([]*models.File, error) {
	where, whereArgs := c.Where(2)
	q := fmt.Sprintf(`SELECT %s FROM files WHERE user_id = $1 AND (%s) ORDER BY %s`,
		fileColumns, where, c.OrderBy())

	args := append([]any{userID}, whereArgs...)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		var item models.File
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.StorageKey, &item.ContentType,
			&item.Size, &item.FolderID, &item.IsFavorite, &item.IsTrashed, &item.UploadedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update applies the non-nil patch fields in a single conditional UPDATE keyed
// on (id, user_id), making the ownership check and the mutation indivisible.
// The updated row is returned from the same statement, so a concurrent delete
// cannot slip between the write and the read-back. An absent or foreign file
// yields common.ErrNotFound. An empty patch degrades to a plain read.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.FilePatch) (*models.File, error) {
	if patch.Empty() {
		return r.GetByID(ctx, userID, id)
	}

	var sets []string
	var args []any
	next := 1
	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, val)
		next++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.IsFavorite != nil {
		add("is_favorite", *patch.IsFavorite)
	}
	if patch.IsTrashed != nil {
		add("is_trashed", *patch.IsTrashed)
	}
	if patch.SetFolder {
		add("folder_id", patch.FolderID)
	}

	q := fmt.Sprintf(`UPDATE files SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), next, next+1, fileColumns)
	args = append(args, id, userID)

	return r.getOne(ctx, q, args...)
}

// Delete removes the owner's file row and returns the deleted record so the
// caller can release the blob afterwards. The conditional DELETE doubles as
// the ownership check.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (*models.File, error) {
	q := fmt.Sprintf(`DELETE FROM files WHERE id = $1 AND user_id = $2 RETURNING %s`, fileColumns)
	return r.getOne(ctx, q, id, userID)
}

// DetachFolder clears folder_id on every file of userID inside folderID.
// Any number of affected rows is fine, including zero.
func (r *PostgresRepository) DetachFolder(ctx context.Context, userID, folderID string) error {
	q := `UPDATE files SET folder_id = NULL WHERE folder_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, q, folderID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
