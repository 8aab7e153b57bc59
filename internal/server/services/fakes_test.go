package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/AbdullahMustajab711/cloudshare/internal/dbx"
	"github.com/AbdullahMustajab711/cloudshare/internal/logging"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/query"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/files"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/folders"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/users"
)

// -------- test fakes --------

type fakeFilesRepo struct {
	files.Repository

	created   []*models.File
	createErr error

	listCriteria *query.Criteria
	listResult   []*models.File
	listErr      error

	byID    *models.File
	byIDErr error

	byKey    *models.File
	byKeyErr error

	updates      []models.FilePatch
	updateResult *models.File
	updateErr    error

	deleted   *models.File
	deleteErr error

	calls *[]string
}

func (f *fakeFilesRepo) record(op string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, op)
	}
}

func (f *fakeFilesRepo) Create(ctx context.Context, file *models.File) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, file)
	return nil
}

func (f *fakeFilesRepo) List(ctx context.Context, userID string, c query.Criteria) ([]*models.File, error) {
	f.listCriteria = &c
	return f.listResult, f.listErr
}

func (f *fakeFilesRepo) GetByID(ctx context.Context, userID, id string) (*models.File, error) {
	return f.byID, f.byIDErr
}

func (f *fakeFilesRepo) GetByStorageKey(ctx context.Context, userID, key string) (*models.File, error) {
	return f.byKey, f.byKeyErr
}

func (f *fakeFilesRepo) Update(ctx context.Context, userID, id string, patch models.FilePatch) (*models.File, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, patch)
	return f.updateResult, nil
}

func (f *fakeFilesRepo) Delete(ctx context.Context, userID, id string) (*models.File, error) {
	return f.deleted, f.deleteErr
}

func (f *fakeFilesRepo) DetachFolder(ctx context.Context, userID, folderID string) error {
	f.record("detach " + folderID)
	return nil
}

type fakeFoldersRepo struct {
	folders.Repository

	exists    bool
	existsErr error

	created   []*models.Folder
	createErr error

	listResult []*models.Folder

	renameErr error
	deleteErr error

	calls *[]string
}

func (f *fakeFoldersRepo) record(op string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, op)
	}
}

func (f *fakeFoldersRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeFoldersRepo) Create(ctx context.Context, folder *models.Folder) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, folder)
	return nil
}

func (f *fakeFoldersRepo) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return f.listResult, nil
}

func (f *fakeFoldersRepo) Rename(ctx context.Context, userID, id, name string) error {
	return f.renameErr
}

func (f *fakeFoldersRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.record("remove " + id)
	return nil
}

type fakeUsersRepo struct {
	users.Repository

	created   []*models.User
	createErr error

	byEmail    *models.User
	byEmailErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail, f.byEmailErr
}

type fakeRepoManager struct {
	files   *fakeFilesRepo
	folders *fakeFoldersRepo
	users   *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Files(dbx.DBTX) files.Repository             { return m.files }
func (m *fakeRepoManager) Folders(dbx.DBTX) folders.Repository         { return m.folders }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }

type fakeBlobStore struct {
	putKeys []string
	putErr  error

	getBody io.ReadCloser
	getErr  error

	deleted   []string
	deleteErr error
}

func (b *fakeBlobStore) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.putKeys = append(b.putKeys, key)
	return nil
}

func (b *fakeBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return b.getBody, b.getErr
}

func (b *fakeBlobStore) Delete(ctx context.Context, key string) error {
	b.deleted = append(b.deleted, key)
	return b.deleteErr
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
