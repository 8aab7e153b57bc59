package files

import (
	"context"

	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/query"
)

// Repository is the file metadata registry. Every operation is scoped to an
// owner: rows belonging to other users behave exactly as if they did not
// exist.
type Repository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, userID, id string) (*models.File, error)
	GetByStorageKey(ctx context.Context, userID, key string) (*models.File, error)
	List(ctx context.Context, userID string, c query.Criteria) ([]*models.File, error)
	Update(ctx context.Context, userID, id string, patch models.FilePatch) (*models.File, error)
	Delete(ctx context.Context, userID, id string) (*models.File, error)
	DetachFolder(ctx context.Context, userID, folderID string) error
}
