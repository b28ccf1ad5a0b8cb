package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"folio/internal/identifier"
	"folio/internal/service"
)

// parseIDParam validates a path segment as a record key before it reaches
// any query. Malformed input fails here with ErrInvalidID; it never turns
// into a lookup that merely finds nothing.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := identifier.Parse(c.Param(name))
	if err != nil {
		return 0, service.ErrInvalidID
	}
	return id, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func idPtrToString(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}
