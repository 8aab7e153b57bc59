package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/dbx"
	"github.com/AbdullahMustajab711/cloudshare/internal/logging"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FolderService implements the folder operations. Folders are a flat,
// per-user namespace; deleting one detaches its files instead of deleting
// them.
type FolderService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

// NewFolderService constructs a FolderService.
func NewFolderService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *FolderService {
	return &FolderService{db: db, repos: repos, logger: logger}
}

// Create adds a new folder. Duplicate names are allowed.
func (s *FolderService) Create(ctx context.Context, userID, name string) (*models.Folder, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: folder name required", common.ErrValidation)
	}

	folder := &models.Folder{ID: uuid.NewString(), UserID: userID, Name: name}
	if err := s.repos.Folders(s.db).Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// List returns all folders owned by userID.
func (s *FolderService) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return s.repos.Folders(s.db).List(ctx, userID)
}

// Rename changes the folder's name.
func (s *FolderService) Rename(ctx context.Context, userID, folderID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: folder name required", common.ErrValidation)
	}
	return s.repos.Folders(s.db).Rename(ctx, userID, folderID, name)
}

// Delete removes the folder after detaching every file inside it. Both steps
// run in one transaction: an interrupted delete can never leave a file
// pointing at a folder that no longer exists, and a missing folder rolls the
// detach back.
func (s *FolderService) Delete(ctx context.Context, userID, folderID string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Files(tx).DetachFolder(ctx, userID, folderID); err != nil {
			return err
		}
		return s.repos.Folders(tx).Delete(ctx, userID, folderID)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "folder deleted", "folder_id", folderID, "user_id", userID)
	return nil
}
