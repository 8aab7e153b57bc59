package folders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/AbdullahMustajab711/cloudshare/internal/common"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := `(?s)^\s*INSERT\s+INTO\s+folders\b.*RETURNING\s+created_at\s*$`
	mock.ExpectQuery(q).
		WithArgs("g1", "u1", "Documents").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	f := &models.Folder{ID: "g1", UserID: "u1", Name: "Documents"}
	if err := repo.Create(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.CreatedAt.Equal(created) {
		t.Fatalf("created_at not written back: %v", f.CreatedAt)
	}
}

func TestList_ReturnsOwnedFolders(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "created_at"}).
		AddRow("g1", "u1", "Documents", time.Now().UTC()).
		AddRow("g2", "u1", "Documents", time.Now().UTC())

	mock.ExpectQuery(`SELECT id, user_id, name, created_at FROM folders WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// duplicate names are allowed
	if len(got) != 2 {
		t.Fatalf("want 2 folders, got %d", len(got))
	}
}

func TestRename_NotFoundForForeignOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE folders SET name = \$1 WHERE id = \$2 AND user_id = \$3$`).
		WithArgs("New", "g1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rename(context.Background(), "intruder", "g1", "New")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE FROM folders WHERE id = \$1 AND user_id = \$2$`).
		WithArgs("g1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("g1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("want true")
	}
}
