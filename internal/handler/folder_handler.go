package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"folio/internal/model"
	"folio/internal/service"
)

type FolderHandler struct {
	service service.FolderService
}

type folderRequest struct {
	Name string `json:"name"`
}

// folderResponse is the wire shape of a folder. Record keys are rendered as
// decimal strings so they survive JSON number precision limits.
type folderResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	UserID    string `json:"userId"`
}

func NewFolderHandler(service service.FolderService) *FolderHandler {
	return &FolderHandler{service: service}
}

func (h *FolderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/folders", h.List)
	g.POST("/folders", h.Create)
	g.GET("/folders/:id", h.Get)
	g.PUT("/folders/:id", h.Update)
	g.DELETE("/folders/:id", h.Delete)
}

func (h *FolderHandler) List(c echo.Context) error {
	folders, err := h.service.List(c.Request().Context(), userIDFromContext(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]folderResponse, 0, len(folders))
	for _, folder := range folders {
		response = append(response, toFolderResponse(folder))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *FolderHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	folder, err := h.service.Get(c.Request().Context(), userIDFromContext(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFolderResponse(folder))
}

func (h *FolderHandler) Create(c echo.Context) error {
	var req folderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `name` in request body"})
	}
	folder, err := h.service.Create(c.Request().Context(), userIDFromContext(c), req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/api/folders/"+itoa(folder.ID))
	return c.JSON(http.StatusCreated, toFolderResponse(folder))
}

func (h *FolderHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	var req folderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `name` in request body"})
	}
	folder, err := h.service.Update(c.Request().Context(), userIDFromContext(c), id, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFolderResponse(folder))
}

// Delete returns 204 whether or not the folder existed. Only a malformed id
// is an error.
func (h *FolderHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := h.service.Delete(c.Request().Context(), userIDFromContext(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toFolderResponse(folder model.Folder) folderResponse {
	return folderResponse{
		ID:        itoa(folder.ID),
		Name:      folder.Name,
		CreatedAt: folder.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: folder.UpdatedAt.UTC().Format(time.RFC3339),
		UserID:    itoa(folder.UserID),
	}
}
