package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"folio/internal/model"
	"folio/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPublicRoutes mounts the endpoints that work without a token.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts the endpoints that need an authenticated
// owner on the context.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `username` in request body"})
	}
	resp, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toAuthResponse(resp))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Missing `username` in request body"})
	}
	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAuthResponse(resp))
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), userIDFromContext(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toAuthResponse(resp *service.AuthResponse) authResponse {
	return authResponse{
		Token: resp.Token,
		User:  toUserResponse(resp.User),
	}
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        itoa(user.ID),
		Username:  user.Username,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
