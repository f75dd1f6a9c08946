package common

import (
	"github.com/gin-gonic/gin"

	"gmao/internal/shared/authorization"
	"gmao/internal/shared/constants"
)

// Actor extracts the authenticated caller's identity and role from the
// request context, as populated by the auth middleware.
func Actor(c *gin.Context) (uint, authorization.Role) {
	actorID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := actorID.(uint)

	return id, authorization.ParseRole(c.GetString(constants.ContextKeyUserRole))
}
