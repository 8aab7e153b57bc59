package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahMustajab711/cloudshare/internal/common"
)

func TestFolderCreate_Success(t *testing.T) {
	foldersRepo := &fakeFoldersRepo{}
	svc := NewFolderService(nil, &fakeRepoManager{folders: foldersRepo}, discardLogger())

	folder, err := svc.Create(context.Background(), "u1", "Documents")
	require.NoError(t, err)

	assert.NotEmpty(t, folder.ID)
	assert.Equal(t, "u1", folder.UserID)
	assert.Equal(t, "Documents", folder.Name)
	require.Len(t, foldersRepo.created, 1)
}

func TestFolderCreate_EmptyName(t *testing.T) {
	svc := NewFolderService(nil, &fakeRepoManager{folders: &fakeFoldersRepo{}}, discardLogger())

	_, err := svc.Create(context.Background(), "u1", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestFolderRename_EmptyName(t *testing.T) {
	svc := NewFolderService(nil, &fakeRepoManager{folders: &fakeFoldersRepo{}}, discardLogger())

	err := svc.Rename(context.Background(), "u1", "g1", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

// Folder deletion detaches the folder's files and removes the folder inside
// one transaction, detach first.
func TestFolderDelete_DetachesFilesInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var calls []string
	repos := &fakeRepoManager{
		files:   &fakeFilesRepo{calls: &calls},
		folders: &fakeFoldersRepo{calls: &calls},
	}
	svc := NewFolderService(db, repos, discardLogger())

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), "u1", "g1"))
	assert.Equal(t, []string{"detach g1", "remove g1"}, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A missing (or foreign) folder rolls the whole transaction back, so the
// detach never becomes visible.
func TestFolderDelete_NotFoundRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var calls []string
	repos := &fakeRepoManager{
		files:   &fakeFilesRepo{calls: &calls},
		folders: &fakeFoldersRepo{calls: &calls, deleteErr: common.ErrNotFound},
	}
	svc := NewFolderService(db, repos, discardLogger())

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = svc.Delete(context.Background(), "u2", "g1")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, []string{"detach g1"}, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}
