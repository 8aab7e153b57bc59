package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/query"
	"github.com/AbdullahMustajab711/cloudshare/internal/server/services"
)

func (s *Server) handleUpload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file"})
	}
	if header.Filename == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file selected"})
	}

	src, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not open file"})
	}
	defer src.Close()

	var folderID *string
	if v := c.FormValue("folder_id"); v != "" {
		folderID = &v
	}

	file, err := s.files.Upload(c.Request().Context(), ownerID(c), services.UploadInput{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        src,
		FolderID:    folderID,
	})
	if err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, file)
}

func (s *Server) handleListFiles(c echo.Context) error {
	in := services.ListInput{
		View:   query.View(c.QueryParam("view")),
		Search: c.QueryParam("search"),
		Sort:   query.Sort(c.QueryParam("sort")),
	}
	if v := c.QueryParam("folder_id"); v != "" {
		in.FolderID = &v
	}

	files, err := s.files.List(c.Request().Context(), ownerID(c), in)
	if err != nil {
		return s.jsonError(c, err)
	}
	if files == nil {
		files = []*models.File{}
	}
	return c.JSON(http.StatusOK, files)
}

// updateFileRequest is the partial-update payload. NewFolderID is a
// non-pointer raw message so that an explicit null (move to root) can be told
// apart from the field being absent: absent leaves the raw message empty,
// while null arrives as the bytes "null". A pointer field would be nil in
// both cases.
type updateFileRequest struct {
	NewName     *string         `json:"new_name"`
	IsFavorite  *bool           `json:"is_favorite"`
	IsTrashed   *bool           `json:"is_trashed"`
	NewFolderID json.RawMessage `json:"new_folder_id"`
}

func (r updateFileRequest) patch() (models.FilePatch, error) {
	patch := models.FilePatch{
		Name:       r.NewName,
		IsFavorite: r.IsFavorite,
		IsTrashed:  r.IsTrashed,
	}
	if len(r.NewFolderID) > 0 {
		patch.SetFolder = true
		var target *string
		if err := json.Unmarshal(r.NewFolderID, &target); err != nil {
			return models.FilePatch{}, fmt.Errorf("invalid new_folder_id: %w", err)
		}
		// an empty string moves to root, like a null
		if target != nil && *target != "" {
			patch.FolderID = target
		}
	}
	return patch, nil
}

func (s *Server) handleUpdateFile(c echo.Context) error {
	var req updateFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	patch, err := req.patch()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	file, err := s.files.Update(c.Request().Context(), ownerID(c), c.Param("id"), patch)
	if err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, file)
}

func (s *Server) handleDeleteFile(c echo.Context) error {
	if err := s.files.Delete(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *Server) handleDownload(c echo.Context) error {
	file, body, err := s.files.Download(c.Request().Context(), ownerID(c), c.Param("key"))
	if err != nil {
		return s.jsonError(c, err)
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Name))

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, body)
}
