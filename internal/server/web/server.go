// Package web exposes the HTTP/JSON API: auth, file upload/download, file and
// folder management. It is a thin layer over the services; all invariants
// live below it.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AbdullahMustajab711/cloudshare/internal/logging"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/config"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/services"
)

// UserProvider is the slice of UserService consumed by the handlers.
type UserProvider interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// FileProvider is the slice of FileService consumed by the handlers.
type FileProvider interface {
	Upload(ctx context.Context, userID string, in services.UploadInput) (*models.File, error)
	List(ctx context.Context, userID string, in services.ListInput) ([]*models.File, error)
	Update(ctx context.Context, userID, fileID string, patch models.FilePatch) (*models.File, error)
	Delete(ctx context.Context, userID, fileID string) error
	Download(ctx context.Context, userID, storageKey string) (*models.File, io.ReadCloser, error)
}

// FolderProvider is the slice of FolderService consumed by the handlers.
type FolderProvider interface {
	Create(ctx context.Context, userID, name string) (*models.Folder, error)
	List(ctx context.Context, userID string) ([]*models.Folder, error)
	Rename(ctx context.Context, userID, folderID, name string) error
	Delete(ctx context.Context, userID, folderID string) error
}

// Server is the HTTP front of the application.
type Server struct {
	echo      *echo.Echo
	addr      string
	jwtSecret []byte
	logger    logging.Logger

	users   UserProvider
	files   FileProvider
	folders FolderProvider
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// NewServer wires the routes and middleware.
func NewServer(cfg *config.Config, logger logging.Logger, users UserProvider, files FileProvider, folders FolderProvider) *Server {
	s := &Server{
		addr:      cfg.EndpointAddr,
		jwtSecret: []byte(cfg.SecretKey),
		logger:    logger,
		users:     users,
		files:     files,
		folders:   folders,
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &payloadValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadSize, 10)))

	e.POST("/api/auth/register", s.handleRegister)
	e.POST("/api/auth/login", s.handleLogin)

	api := e.Group("", s.authMiddleware)
	api.POST("/api/files/upload", s.handleUpload)
	api.GET("/api/files", s.handleListFiles)
	api.PUT("/api/files/:id", s.handleUpdateFile)
	api.DELETE("/api/files/:id", s.handleDeleteFile)
	api.GET("/download/:key", s.handleDownload)

	api.POST("/api/folders", s.handleCreateFolder)
	api.GET("/api/folders", s.handleListFolders)
	api.PUT("/api/folders/:id", s.handleRenameFolder)
	api.DELETE("/api/folders/:id", s.handleDeleteFolder)

	s.echo = e
	return s
}

// Run starts the listener and shuts it down when ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// Handler exposes the routing tree, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

