// Package services contains server-side business logic on top of the
// repositories: upload/download orchestration against the blob store,
// listing through the query engine, and transactional folder deletion.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/logging"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/query"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/repomanager"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/storage"
	"github.com/google/uuid"
)

// FileService implements the file operations: upload, list, update (rename,
// favorite, trash, move), delete, and download resolution.
type FileService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	blobs  storage.BlobStore
	logger logging.Logger
}

// NewFileService constructs a FileService.
func NewFileService(db *sql.DB, repos repomanager.RepositoryManager, blobs storage.BlobStore, logger logging.Logger) *FileService {
	return &FileService{db: db, repos: repos, blobs: blobs, logger: logger}
}

// UploadInput carries a single upload: the client-declared name and content
// type, the payload stream with its size, and an optional target folder.
type UploadInput struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	FolderID    *string
}

// ListInput carries the listing parameters resolved by the query engine.
type ListInput struct {
	View     query.View
	FolderID *string
	Search   string
	Sort     query.Sort
}

// Upload persists the payload in the blob store and then records the file
// metadata. The metadata insert is the commit point: a blob store failure
// leaves no metadata behind, and a blob that was written but whose metadata
// insert failed is orphaned (not cleaned up here).
func (s *FileService) Upload(ctx context.Context, userID string, in UploadInput) (*models.File, error) {
	if in.Name == "" || in.Body == nil || in.Size < 0 {
		return nil, fmt.Errorf("%w: upload requires a name and a payload", common.ErrValidation)
	}
	if err := s.checkFolderRef(ctx, userID, in.FolderID); err != nil {
		return nil, err
	}

	// Blob I/O happens before, and outside of, any metadata transaction.
	key := storage.NewStorageKey(userID)
	if err := s.blobs.Put(ctx, key, in.ContentType, in.Size, in.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}

	file := &models.File{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		StorageKey:  key,
		ContentType: in.ContentType,
		Size:        in.Size,
		FolderID:    in.FolderID,
	}
	if err := s.repos.Files(s.db).Create(ctx, file); err != nil {
		s.logger.Warn(ctx, "metadata insert failed, blob orphaned", "storage_key", key, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "file uploaded", "file_id", file.ID, "user_id", userID, "size", in.Size)
	return file, nil
}

// List returns the owner's files for the requested view, folder, search, and
// sort, per the query engine's filter contract.
func (s *FileService) List(ctx context.Context, userID string, in ListInput) ([]*models.File, error) {
	c := query.Resolve(in.View, in.FolderID, in.Search, in.Sort)
	return s.repos.Files(s.db).List(ctx, userID, c)
}

// Update applies a partial patch to the owner's file and returns the updated
// record. A patch attaching the file to a folder is validated against the
// folder registry before anything is written.
func (s *FileService) Update(ctx context.Context, userID, fileID string, patch models.FilePatch) (*models.File, error) {
	if patch.SetFolder {
		if err := s.checkFolderRef(ctx, userID, patch.FolderID); err != nil {
			return nil, err
		}
	}

	return s.repos.Files(s.db).Update(ctx, userID, fileID, patch)
}

// Delete removes the file metadata and then releases the blob. Metadata
// removal is authoritative; a blob store failure is logged and swallowed.
func (s *FileService) Delete(ctx context.Context, userID, fileID string) error {
	deleted, err := s.repos.Files(s.db).Delete(ctx, userID, fileID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, deleted.StorageKey); err != nil {
		s.logger.Warn(ctx, "blob delete failed", "storage_key", deleted.StorageKey, "error", err)
	}

	s.logger.Info(ctx, "file deleted", "file_id", fileID, "user_id", userID)
	return nil
}

// Download resolves the storage key to a file owned by userID and opens the
// payload stream. Ownership failure and absence are both common.ErrNotFound.
func (s *FileService) Download(ctx context.Context, userID, storageKey string) (*models.File, io.ReadCloser, error) {
	file, err := s.repos.Files(s.db).GetByStorageKey(ctx, userID, storageKey)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	return file, body, nil
}

// checkFolderRef validates that a non-nil folder id resolves to a folder
// owned by userID. A nil id (root) is always valid.
func (s *FileService) checkFolderRef(ctx context.Context, userID string, folderID *string) error {
	if folderID == nil {
		return nil
	}
	ok, err := s.repos.Folders(s.db).Exists(ctx, userID, *folderID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: folder %s", common.ErrInvalidReference, *folderID)
	}
	return nil
}
