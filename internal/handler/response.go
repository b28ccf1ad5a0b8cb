package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/service"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeServiceError maps service sentinels to their fixed status codes and
// messages. Missing resources render as a bare 404 with no body. Anything
// unmatched is a 500 with a generic message so internals never leak.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "The `id` is not valid"})
	case errors.Is(err, service.ErrNameRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `name` in request body"})
	case errors.Is(err, service.ErrDuplicateName):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Folder name already exists"})
	case errors.Is(err, service.ErrTitleRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `title` in request body"})
	case errors.Is(err, service.ErrFolderNotFound):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "The `folderId` is not valid"})
	case errors.Is(err, service.ErrNotFound):
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, service.ErrUsernameRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `username` in request body"})
	case errors.Is(err, service.ErrPasswordRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `password` in request body"})
	case errors.Is(err, service.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Password must be at least 6 characters"})
	case errors.Is(err, service.ErrUserExists):
		return c.JSON(http.StatusConflict, errorResponse{Message: "Username already taken"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid username or password"})
	case errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid or expired token"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
