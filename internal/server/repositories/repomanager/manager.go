package repomanager

import (
	"context"
	"database/sql"

	"github.com/AbdullahMustajab711/cloudshare/internal/dbx"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/files"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/folders"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to an arbitrary
// DBTX, so services can run the same repositories standalone or inside a
// transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Folders(db dbx.DBTX) folders.Repository
	Files(db dbx.DBTX) files.Repository
}
