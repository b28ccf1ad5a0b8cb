package handler

import "github.com/labstack/echo/v4"

// ContextKeyUserID is where the auth middleware stores the authenticated
// owner's id on the request context.
const ContextKeyUserID = "userID"

func userIDFromContext(c echo.Context) int64 {
	id, _ := c.Get(ContextKeyUserID).(int64)
	return id
}
