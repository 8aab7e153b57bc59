package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
)

type createFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

type renameFolderRequest struct {
	NewName string `json:"new_name" validate:"required"`
}

func (s *Server) handleCreateFolder(c echo.Context) error {
	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	folder, err := s.folders.Create(c.Request().Context(), ownerID(c), req.Name)
	if err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, folder)
}

func (s *Server) handleListFolders(c echo.Context) error {
	folders, err := s.folders.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return s.jsonError(c, err)
	}
	if folders == nil {
		folders = []*models.Folder{}
	}
	return c.JSON(http.StatusOK, folders)
}

func (s *Server) handleRenameFolder(c echo.Context) error {
	var req renameFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.folders.Rename(c.Request().Context(), ownerID(c), c.Param("id"), req.NewName); err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
}

func (s *Server) handleDeleteFolder(c echo.Context) error {
	if err := s.folders.Delete(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return s.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
