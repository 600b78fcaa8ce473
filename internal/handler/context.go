package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/middleware"
)

// CurrentUserID returns the authenticated user's ID. When the ID is
// missing or malformed it writes a 401 and returns false; the caller
// should stop handling the request.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid user identity"))
		return uuid.Nil, false
	}
	return id, true
}
