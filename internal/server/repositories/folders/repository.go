package folders

import (
	"context"

	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
)

// Repository is the folder registry. Like the file registry, every operation
// is owner-scoped and foreign rows are indistinguishable from absent ones.
type Repository interface {
	Create(ctx context.Context, folder *models.Folder) error
	List(ctx context.Context, userID string) ([]*models.Folder, error)
	Rename(ctx context.Context, userID, id, name string) error
	Delete(ctx context.Context, userID, id string) error
	Exists(ctx context.Context, userID, id string) (bool, error)
}
