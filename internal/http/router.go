package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"folio/internal/handler"
	"folio/internal/service"
)

// NewRouter wires the API surface. Everything under /api except the
// credential endpoints sits behind the auth middleware.
func NewRouter(
	folderHandler *handler.FolderHandler,
	noteHandler *handler.NoteHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")

	public := api.Group("")
	public.Use(LoginRateLimitMiddleware(rate.Every(time.Minute/10), 10))
	authHandler.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(JWTAuthMiddleware(authService))
	authHandler.RegisterProtectedRoutes(protected)
	folderHandler.RegisterRoutes(protected)
	noteHandler.RegisterRoutes(protected)

	return e
}
