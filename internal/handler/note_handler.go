package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"folio/internal/identifier"
	"folio/internal/model"
	"folio/internal/service"
)

type NoteHandler struct {
	service service.NoteService
}

type noteRequest struct {
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	FolderID *string `json:"folderId"`
}

type noteResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	FolderID  *string `json:"folderId,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	UserID    string  `json:"userId"`
}

func NewNoteHandler(service service.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notes", h.List)
	g.POST("/notes", h.Create)
	g.GET("/notes/:id", h.Get)
	g.PUT("/notes/:id", h.Update)
	g.DELETE("/notes/:id", h.Delete)
}

func (h *NoteHandler) List(c echo.Context) error {
	var folderID *int64
	if raw := c.QueryParam("folderId"); raw != "" {
		id, err := identifier.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Message: "The `folderId` is not valid"})
		}
		folderID = &id
	}

	notes, err := h.service.List(c.Request().Context(), userIDFromContext(c), folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, toNoteResponse(note))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *NoteHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	note, err := h.service.Get(c.Request().Context(), userIDFromContext(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

func (h *NoteHandler) Create(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `title` in request body"})
	}
	folderID, err := parseFolderID(req.FolderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	note, err := h.service.Create(c.Request().Context(), userIDFromContext(c), req.Title, req.Content, folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/api/notes/"+itoa(note.ID))
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

func (h *NoteHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `title` in request body"})
	}
	folderID, err := parseFolderID(req.FolderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	note, err := h.service.Update(c.Request().Context(), userIDFromContext(c), id, req.Title, req.Content, folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return writeServiceError(c, err)
	}
	if err := h.service.Delete(c.Request().Context(), userIDFromContext(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseFolderID turns the optional string key from the request body into an
// int64. A present but malformed value is rejected before any lookup.
func parseFolderID(raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := identifier.Parse(*raw)
	if err != nil {
		return nil, service.ErrFolderNotFound
	}
	return &id, nil
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		ID:        itoa(note.ID),
		Title:     note.Title,
		Content:   note.Content,
		FolderID:  idPtrToString(note.FolderID),
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.UTC().Format(time.RFC3339),
		UserID:    itoa(note.UserID),
	}
}
